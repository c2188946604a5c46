// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/net/http2"
)

// A Mode identifies the connection strategy installed on a Config.
type Mode int

const (
	// ModeDefault indicates no strategy has been installed yet.
	// Requests issued against an unconfigured Config ride on
	// http.DefaultTransport, whose keep-alive reuse semantics are
	// vulnerable to stale-connection failures (see the package
	// documentation), so programs should configure a mode before the
	// first request that needs it.
	ModeDefault Mode = iota
	// ModeDirect indicates a direct multiplexed transport installed by
	// EnableMultiplexed.
	ModeDirect
	// ModeProxied indicates a proxied multiplexed transport installed
	// by ConfigureProxy.
	ModeProxied
)

var modeNames = []string{
	"ModeDefault",
	"ModeDirect",
	"ModeProxied",
}

// Name returns the name of the mode.
func (m Mode) Name() string {
	return modeNames[int(m)]
}

// String returns the name of the mode.
func (m Mode) String() string {
	return m.Name()
}

// A ConfigError reports a transport configuration that could not be
// installed, for example a syntactically invalid proxy URI. It is
// returned at configuration time so a bad proxy setting fails fast at
// startup instead of silently degrading into unproxied behavior.
type ConfigError struct {
	// URI is the rejected proxy URI.
	URI   string
	cause error
}

// Error returns a human-readable message naming the rejected URI.
func (e *ConfigError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("fetchx/transport: invalid proxy URI %q: %s", e.URI, e.cause.Error())
	}
	return fmt.Sprintf("fetchx/transport: invalid proxy URI %q", e.URI)
}

// Unwrap returns the underlying parse failure, if one exists.
func (e *ConfigError) Unwrap() error {
	return e.cause
}

// A Config is a handle to a process-wide transport configuration. The
// zero value is a valid, unconfigured handle.
//
// A Config is written at most a small constant number of times,
// typically once during startup, and read on every outbound request
// issued through it thereafter. Writes are rare mode changes with
// last-writer-wins semantics: installing one mode replaces the other
// without error. Config is safe for concurrent use by multiple
// goroutines.
//
// Config implements http.RoundTripper, delegating each request to the
// currently installed transport, so it can be placed directly into an
// http.Client:
//
//	transport.EnableMultiplexed()
//	client := &http.Client{Transport: transport.Default}
type Config struct {
	mu        sync.RWMutex
	mode      Mode
	proxyURL  *url.URL
	transport *http.Transport
}

// Default is the process-wide configuration handle. The package-level
// EnableMultiplexed and ConfigureProxy functions operate on it, as
// does a fetchx Client whose Transport field is nil. Tests should
// construct their own Config rather than mutating Default.
var Default = &Config{}

// EnableMultiplexed installs a direct multiplexed connection strategy
// on the default handle. See Config.EnableMultiplexed.
func EnableMultiplexed() {
	Default.EnableMultiplexed()
}

// ConfigureProxy installs a proxied multiplexed connection strategy on
// the default handle. See Config.ConfigureProxy.
func ConfigureProxy(proxyURI string) error {
	return Default.ConfigureProxy(proxyURI)
}

// EnableMultiplexed installs a direct connection strategy with HTTP/2
// multiplexing negotiated on TLS connections, replacing any previously
// installed strategy.
//
// EnableMultiplexed is idempotent: calling it again installs an
// equivalent fresh transport. Idle connections held by the replaced
// transport are closed.
func (c *Config) EnableMultiplexed() {
	c.install(ModeDirect, nil, newTransport(nil))
}

// ConfigureProxy installs a connection strategy that routes every
// subsequent request through the proxy endpoint at proxyURI, replacing
// any previously installed strategy. HTTP/2 multiplexing remains
// negotiated on TLS connections; proxying never falls back to the
// non-multiplexed default.
//
// If proxyURI is not an absolute URI with a host, ConfigureProxy
// installs nothing and returns a *ConfigError.
func (c *Config) ConfigureProxy(proxyURI string) error {
	u, err := url.Parse(proxyURI)
	if err != nil {
		return &ConfigError{URI: proxyURI, cause: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return &ConfigError{URI: proxyURI}
	}

	c.install(ModeProxied, u, newTransport(http.ProxyURL(u)))
	return nil
}

// Mode returns the currently installed connection strategy.
func (c *Config) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// ProxyURL returns the proxy endpoint of the currently installed
// strategy, or nil if the mode is not ModeProxied.
func (c *Config) ProxyURL() *url.URL {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.proxyURL
}

// Transport returns the currently installed transport, or nil if the
// handle is unconfigured.
func (c *Config) Transport() *http.Transport {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.transport
}

// RoundTrip implements http.RoundTripper by delegating to the
// currently installed transport, or to http.DefaultTransport if the
// handle is unconfigured.
func (c *Config) RoundTrip(r *http.Request) (*http.Response, error) {
	return c.roundTripper().RoundTrip(r)
}

// CloseIdleConnections closes idle connections held by the installed
// transport. It does nothing on an unconfigured handle.
func (c *Config) CloseIdleConnections() {
	if t := c.Transport(); t != nil {
		t.CloseIdleConnections()
	}
}

func (c *Config) roundTripper() http.RoundTripper {
	c.mu.RLock()
	t := c.transport
	c.mu.RUnlock()

	if t == nil {
		return http.DefaultTransport
	}
	return t
}

func (c *Config) install(mode Mode, proxyURL *url.URL, t *http.Transport) {
	c.mu.Lock()
	old := c.transport
	c.mode = mode
	c.proxyURL = proxyURL
	c.transport = t
	c.mu.Unlock()

	if old != nil {
		old.CloseIdleConnections()
	}
}

func newTransport(proxy func(*http.Request) (*url.URL, error)) *http.Transport {
	t := &http.Transport{
		Proxy: proxy,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	// ConfigureTransport only fails if the transport was already set
	// up for HTTP/2, which cannot be the case for a fresh transport.
	_ = http2.ConfigureTransport(t)
	return t
}
