// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package hostaddr classifies URL hostnames as private or public
// network addresses. This is handy for writing security policies that
// warn on, or block, outbound requests to reserved or internal address
// ranges.
//
// The classification is purely syntactic: only literal IP address
// hostnames are examined, and no DNS resolution is ever performed. A
// hostname that resolves to a private address through DNS is therefore
// classified Public. This is a deliberate limitation, not a gap to be
// fixed: resolving would introduce blocking I/O and a resolution
// policy of its own, and callers needing resolution-aware enforcement
// must do it at connection time. For the same reason the package must
// never be used as a standalone security control on untrusted input,
// only as a best-effort hint.
//
// Package hostaddr is extremely lightweight, as it depends only on the
// standard library packages "net" and "net/url", so it doesn't bring
// any significant dependencies when imported as a standalone package.
package hostaddr
