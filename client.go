// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/harshanm65/fetchx/fault"
	"github.com/harshanm65/fetchx/transport"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

// A Client issues timeout-guarded outbound HTTP requests. Its zero
// value is a valid configuration.
//
// The zero value client rides on the process-wide transport
// configuration handle transport.Default, so requests inherit whatever
// connection strategy the program installed at startup (multiplexed
// direct, or proxied). Client is safe for concurrent use by multiple
// goroutines: concurrent calls are fully independent, each owning its
// own deadline timer and cancellation, and share no mutable state
// beyond the read-only transport configuration.
//
// On top of the HTTP request features provided by the HTTPDoer, Client
// adds the following behavior:
//
// • every request is bounded by a caller-supplied timeout whose timer
// is released on every exit path, and whose expiry aborts the
// in-flight request through context cancellation;
//
// • every failure is surfaced as a *fault.Error that classifies the
// failure (timeout, network, other), exposes a machine-readable code
// when one exists, and retains the original cause for downstream
// retry classification; and
//
// • the entire response body is read and buffered into a []byte
// (returned as the Result.Body field) before the call returns.
//
// Client never retries. Retry policy belongs to the caller, which is
// why fault.Error preserves everything a retry decision needs.
type Client struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, an http.Client riding on the Transport
	// configuration handle is used.
	HTTPDoer HTTPDoer
	// Transport is the transport configuration handle consulted when
	// HTTPDoer is nil.
	//
	// If Transport is nil, the process-wide transport.Default handle
	// is used. Tests can point Transport at a fresh transport.Config
	// instead of sharing the process-wide one.
	Transport *transport.Config
}

// A Result is the outcome of a successfully completed request.
type Result struct {
	// Request is the HTTP request that was sent, carrying the
	// deadline-bearing context it was sent with.
	Request *http.Request
	// Response is the HTTP response. Its Body has already been fully
	// read and closed; use the Result's Body field instead.
	Response *http.Response
	// Body is the fully buffered response body. It may have zero
	// length.
	Body []byte
}

// StatusCode returns the status code of the HTTP response, or 0 if
// there is none.
func (r *Result) StatusCode() int {
	if r.Response == nil {
		return 0
	}

	return r.Response.StatusCode
}

// Header returns the HTTP response headers, or the nil header if there
// is no response.
//
// A nil return value is always safe for read-only operations, since
// http.Header is a map type.
func (r *Result) Header() http.Header {
	if r.Response == nil {
		var nilHeader http.Header
		return nilHeader
	}

	return r.Response.Header
}

// Fetch issues a GET to the specified URL, bounded by the given
// timeout.
//
// See Do for the timeout and error contract.
func (c *Client) Fetch(url string, timeout time.Duration) (*Result, error) {
	return c.FetchContext(context.Background(), url, timeout)
}

// FetchContext issues a GET to the specified URL, bounded by the given
// timeout and additionally by ctx, which may not be nil. Whichever of
// the two cancels first aborts the request.
//
// See Do for the timeout and error contract.
func (c *Client) FetchContext(ctx context.Context, url string, timeout time.Duration) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fault.Classify(err, timeout)
	}

	return c.Do(req, timeout)
}

// Head issues a HEAD to the specified URL, bounded by the given
// timeout.
//
// See Do for the timeout and error contract.
func (c *Client) Head(url string, timeout time.Duration) (*Result, error) {
	req, err := http.NewRequestWithContext(context.Background(), "HEAD", url, nil)
	if err != nil {
		return nil, fault.Classify(err, timeout)
	}

	return c.Do(req, timeout)
}

// Post issues a POST to the specified URL, bounded by the given
// timeout.
//
// The body parameter may be nil for an empty body, or may be any of
// the types supported by BodyBytes, namely: string; []byte; io.Reader;
// and io.ReadCloser.
//
// See Do for the timeout and error contract.
func (c *Client) Post(url, contentType string, body interface{}, timeout time.Duration) (*Result, error) {
	b, err := BodyBytes(body)
	if err != nil {
		return nil, fault.Classify(err, timeout)
	}

	req, err := http.NewRequestWithContext(context.Background(), "POST", url, bodyReader(b))
	if err != nil {
		return nil, fault.Classify(err, timeout)
	}
	req.Header.Set("Content-Type", contentType)

	return c.Do(req, timeout)
}

// Do sends an HTTP request bounded by the given timeout and returns a
// Result with the response body fully buffered.
//
// The deadline covers the whole attempt: obtaining a connection,
// writing the request, and reading the response headers and body. On
// expiry the in-flight request is aborted through cancellation of its
// context, so the underlying connection is completed or torn down,
// never leaked half-finished into the pool, and the call fails with a
// timeout fault whose message states the configured duration. The
// deadline timer is released on every exit path, whether the call
// succeeds, times out, or fails for another reason.
//
// Any returned error is a *fault.Error. The original underlying
// failure is always reachable through errors.Is and errors.As, and the
// fault's Code field carries the low-level error code when one exists,
// so a retry policy examining the error loses nothing to this layer's
// classification.
func (c *Client) Do(req *http.Request, timeout time.Duration) (*Result, error) {
	ctx, cancel := context.WithTimeout(req.Context(), timeout)
	defer cancel()
	req = req.WithContext(ctx)

	resp, err := c.doer().Do(req)
	if err != nil {
		return nil, fault.Classify(err, timeout)
	}

	body, err := readBody(resp)
	if err != nil {
		return nil, fault.Classify(err, timeout)
	}

	return &Result{Request: req, Response: resp, Body: body}, nil
}

// CloseIdleConnections closes idle connections held by the client's
// underlying HTTPDoer or transport configuration.
//
// If a custom HTTPDoer is set and has no CloseIdleConnections method,
// this method does nothing.
func (c *Client) CloseIdleConnections() {
	if c.HTTPDoer != nil {
		if ic, ok := c.HTTPDoer.(IdleCloser); ok {
			ic.CloseIdleConnections()
		}
		return
	}

	c.config().CloseIdleConnections()
}

func (c *Client) doer() HTTPDoer {
	if c.HTTPDoer != nil {
		return c.HTTPDoer
	}

	// The http.Client wrapper is stateless; connection pooling lives
	// in the transport the Config delegates to.
	return &http.Client{Transport: c.config()}
}

func (c *Client) config() *transport.Config {
	if c.Transport != nil {
		return c.Transport
	}

	return transport.Default
}

func readBody(resp *http.Response) ([]byte, error) {
	defer func() {
		_ = resp.Body.Close()
	}()
	return io.ReadAll(resp.Body)
}
