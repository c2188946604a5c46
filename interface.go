// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"context"
	"time"
)

// Fetcher is the interface that wraps the basic Fetch method.
//
// Fetch issues a timeout-bounded GET to the specified URL and returns
// the buffered result (and error, if any). Client implements the
// Fetcher interface, and any other Fetcher implementation must behave
// substantially the same as Client.Fetch.
type Fetcher interface {
	Fetch(url string, timeout time.Duration) (*Result, error)
}

// ContextFetcher is the interface that wraps the basic FetchContext
// method.
//
// FetchContext behaves like Fetch but is additionally bounded by the
// given context. Client implements the ContextFetcher interface.
type ContextFetcher interface {
	FetchContext(ctx context.Context, url string, timeout time.Duration) (*Result, error)
}

// Poster is the interface that wraps the basic Post method.
//
// Post issues a timeout-bounded POST to the specified URL and returns
// the buffered result (and error, if any). Client implements the
// Poster interface.
//
// The body parameter may be nil for an empty body, or may be any of
// the types supported by BodyBytes, namely: string; []byte; io.Reader;
// and io.ReadCloser.
type Poster interface {
	Post(url, contentType string, body interface{}, timeout time.Duration) (*Result, error)
}

// IdleCloser is the interface that wraps the basic CloseIdleConnections
// method.
//
// If the underlying implementation supports it, CloseIdleConnections
// closes any connections which were previously connected from previous
// requests but are now sitting idle in a "keep-alive" state. It does
// not interrupt any connections currently in use.
//
// If the underlying implementation does not support this ability,
// CloseIdleConnections does nothing.
type IdleCloser interface {
	CloseIdleConnections()
}

// Executor is the interface that groups the basic Fetch, FetchContext,
// Post, and CloseIdleConnections methods. Client implements Executor.
type Executor interface {
	Fetcher
	ContextFetcher
	Poster
	IdleCloser
}
