// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transport installs the connection strategy shared by every
// outbound request a process issues: direct or proxied, with HTTP/2
// connection multiplexing negotiated in either mode.
//
// # Why multiplexing
//
// The Go standard transport reuses idle keep-alive connections between
// sequential requests to the same host. If the remote peer closes its
// end of a pooled connection between two such requests, the next
// request attempted on the stale connection can fail outright instead
// of transparently opening a fresh one. A multiplexed (HTTP/2)
// transport avoids this class of failure structurally: logical
// requests are streams on a managed connection, and the peer closing
// one stream does not poison the next request. EnableMultiplexed and
// ConfigureProxy both negotiate HTTP/2; proxying never silently falls
// back to the one-connection-per-request default.
//
// # The configuration handle
//
// Config is an explicit handle around the process-wide configuration
// rather than hidden global mutation. Most programs use the
// package-level Default handle through the EnableMultiplexed and
// ConfigureProxy functions once during startup; tests substitute a
// fresh Config per test case. Exactly one mode is active on a handle
// at a time, and the last configuration call wins.
//
// Configure-before-use ordering is the caller's responsibility: a
// request issued before the first configuration call rides on
// http.DefaultTransport. There are no per-request overrides; a
// component wanting different transport behavior for specific calls
// must be handed its own Config.
package transport
