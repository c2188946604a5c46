// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package fault provides a uniform, inspectable error type for
// failures of outbound HTTP request attempts, and classifies arbitrary
// request errors into a small taxonomy: timeout, network failure, and
// other.
//
// The package exists to serve retry policies. A retry policy deciding
// whether a failed attempt is worth resending needs the original
// low-level failure, not a summary of it: the POSIX error code, the
// TLS alert number, or the DNS failure kind. Every Error produced by
// this package therefore retains the original cause in full (reachable
// through errors.Is, errors.As, and Unwrap) and exposes a
// machine-readable Code when one can be recovered. Flattening an error
// to a string and discarding its code is exactly the failure mode this
// package is designed to prevent.
//
// Package fault is extremely lightweight, as it depends only on
// standard library packages, so it doesn't bring any significant
// dependencies when imported as a standalone package.
package fault
