// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fault

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
	"time"
)

// A Category is the failure category of a request attempt error, as
// reported by function CategoryOf() and carried by Error.
type Category int

const (
	// Other indicates any failure not recognized as a timeout or a
	// network failure, for example a malformed request URL.
	Other Category = iota
	// Timeout indicates the attempt deadline was exceeded before a
	// response was obtained.
	//
	// Function Classify() produces a Timeout error if the error or any
	// of its wrapped causes is context.DeadlineExceeded, or has a
	// Timeout() function that reports true.
	Timeout
	// Network indicates an underlying transport failure: a socket
	// error such as a connection reset or refusal, a DNS lookup
	// failure, or a TLS handshake or alert failure. Where the failure
	// carries a recognizable low-level code, Error.Code exposes it.
	//
	// Network failures are the category a retry policy is most
	// interested in, since many of them (connection reset on a stale
	// keep-alive connection, refusal from a restarting service) have a
	// high probability of success on retry.
	Network
)

var categoryNames = []string{
	"Other",
	"Timeout",
	"Network",
}

// Name returns the name of the category.
func (c Category) Name() string {
	return categoryNames[int(c)]
}

// String returns the name of the category.
func (c Category) String() string {
	return c.Name()
}

// An Error is the uniform error type for a failed request attempt. It
// tags the failure with a Category, exposes a machine-readable Code
// when the underlying failure carried one, and always retains the
// original cause.
//
// The cause is reachable through Unwrap, so errors.Is and errors.As
// see through an Error to the low-level failure. For example, after a
// connection reset:
//
//	err := c.Fetch(url, timeout)
//	errors.Is(err, syscall.ECONNRESET) // true
//
// Error implements a Timeout() method in the conventional net.Error
// style, so generic code checking for timeouts keeps working.
type Error struct {
	// Category is the failure category of the attempt.
	Category Category
	// Code is an optional machine-readable identifier recovered from
	// the underlying failure, for example "ECONNRESET", "ENOTFOUND",
	// or "TLS_ALERT_112". It is empty when the underlying failure
	// carried no recognizable code.
	Code string
	// Elapsed is the configured attempt timeout. It is set only on
	// Timeout errors.
	Elapsed time.Duration
	cause   error
}

// Error returns a human-readable message. Timeout messages state the
// configured timeout; all other messages surface the underlying
// cause's message.
func (e *Error) Error() string {
	if e.Category == Timeout {
		return fmt.Sprintf("fetchx: request timed out after %s", e.Elapsed)
	}
	if e.cause != nil {
		return "fetchx: " + e.cause.Error()
	}
	return "fetchx: request failed"
}

// Unwrap returns the original underlying failure, never summarized or
// replaced. It is nil only for an Error constructed without a cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// Timeout reports whether the error is a timeout.
func (e *Error) Timeout() bool {
	return e.Category == Timeout
}

// Classify wraps an error from an HTTP request attempt into an Error.
//
// A nil err produces nil. An err that is already an Error, or wraps
// one, is returned as is, so classification is idempotent across
// wrapping layers. Otherwise the error and its wrapped causes are
// examined to pick the category, and the error itself becomes the
// cause of the returned Error.
//
// Parameter timeout is the attempt timeout that was configured for the
// request; it is recorded as Elapsed on Timeout errors and is ignored
// for the other categories.
func Classify(err error, timeout time.Duration) *Error {
	if err == nil {
		return nil
	}

	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}

	if isTimeout(err) {
		return &Error{Category: Timeout, Code: netCode(err), Elapsed: timeout, cause: err}
	}

	if code, ok := network(err); ok {
		return &Error{Category: Network, Code: code, cause: err}
	}

	return &Error{Category: Other, cause: err}
}

// CategoryOf returns the failure category of the given error. It is
// only meaningful for non-nil errors; a nil error, like any
// unrecognized error, produces Other.
//
// In assessing the category, CategoryOf looks at wrapped cause errors
// contained within err, not just err itself. It never checks whether
// an error has a Temporary() function that returns true, as the
// semantics of Temporary() aren't entirely clear.
func CategoryOf(err error) Category {
	if err == nil {
		return Other
	}

	var fe *Error
	if errors.As(err, &fe) {
		return fe.Category
	}

	if isTimeout(err) {
		return Timeout
	}

	if _, ok := network(err); ok {
		return Network
	}

	return Other
}

// Code returns the machine-readable code of the given error, or the
// empty string if neither the error nor any of its wrapped causes
// carries a recognizable code. Retry policies can match the returned
// value against their own tables of retryable codes.
func Code(err error) string {
	var fe *Error
	if errors.As(err, &fe) && fe.Code != "" {
		return fe.Code
	}

	return netCode(err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var hasTimeout hasTimeout
	return errors.As(err, &hasTimeout) && hasTimeout.Timeout()
}

// network reports whether err, or any of its wrapped causes, is a
// transport-level failure, along with the recovered code if any.
func network(err error) (string, bool) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errnoCode(errno), true
	}

	if code := netCode(err); code != "" {
		return code, true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "", true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return "", true
	}

	var recordErr tls.RecordHeaderError
	if errors.As(err, &recordErr) {
		return "", true
	}

	// A pooled connection the peer already closed surfaces as EOF on
	// the next request attempt.
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return "", true
	}

	// No catch-all on the net.Error interface: *url.Error implements
	// it for every failure it wraps, including cancellation, which is
	// not a network fault.
	return "", false
}

func netCode(err error) string {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errnoCode(errno)
	}

	var alertErr tls.AlertError
	if errors.As(err, &alertErr) {
		return fmt.Sprintf("TLS_ALERT_%d", uint8(alertErr))
	}

	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return "ERR_TLS_CERT_VERIFICATION"
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
		return "ENOTFOUND"
	}

	return ""
}

func errnoCode(errno syscall.Errno) string {
	switch errno {
	case syscall.ECONNRESET:
		return "ECONNRESET"
	case syscall.ECONNREFUSED:
		return "ECONNREFUSED"
	case syscall.ECONNABORTED:
		return "ECONNABORTED"
	case syscall.EPIPE:
		return "EPIPE"
	case syscall.ETIMEDOUT:
		return "ETIMEDOUT"
	case syscall.EHOSTUNREACH:
		return "EHOSTUNREACH"
	case syscall.ENETUNREACH:
		return "ENETUNREACH"
	case syscall.ENETRESET:
		return "ENETRESET"
	default:
		return ""
	}
}

type hasTimeout interface {
	Timeout() bool
}
