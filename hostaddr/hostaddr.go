// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hostaddr

import (
	"net"
	"net/url"
)

// A Class is the address classification of a URL hostname, as reported
// by function Classify().
//
// The class Private means the hostname is a literal IP address inside
// a reserved or private range. The class Public means the hostname is
// a literal IP address outside those ranges, or a DNS name (which may
// still resolve to a private address; see the package documentation).
// The class Unknown means no hostname could be extracted from the
// input.
type Class int

const (
	// Unknown indicates that the input could not be parsed as a URL,
	// or parsed to a URL with no hostname.
	Unknown Class = iota
	// Public indicates a hostname which is not a literal private IP
	// address. DNS names always classify Public, whatever they resolve
	// to.
	Public
	// Private indicates a literal IP address hostname within one of
	// the reserved ranges: 10.0.0.0/8, 127.0.0.0/8, 172.16.0.0/12,
	// 192.168.0.0/16, 169.254.0.0/16, the IPv6 loopback ::1, unique
	// local fc00::/7, and link-local fe80::/10.
	Private
)

var classNames = []string{
	"Unknown",
	"Public",
	"Private",
}

// Name returns the name of the class.
func (c Class) Name() string {
	return classNames[int(c)]
}

// String returns the name of the class.
func (c Class) String() string {
	return c.Name()
}

// Classify reports the address class of the hostname of rawurl.
//
// Only the hostname is examined: port, path, query, and scheme are all
// ignored. The check is syntactic, so only literal IP address
// hostnames can produce Private. Classify never returns an error: a
// rawurl that cannot be parsed, or that has no hostname, produces
// Unknown.
func Classify(rawurl string) Class {
	u, err := url.Parse(rawurl)
	if err != nil {
		return Unknown
	}

	host := u.Hostname()
	if host == "" {
		return Unknown
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return Public
	}

	if ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() {
		return Private
	}

	return Public
}

// IsPrivate reports whether the hostname of rawurl is a literal IP
// address within a reserved or private range.
//
// IsPrivate fails open: a malformed rawurl returns false rather than
// an error, so callers must not rely on it as a security control for
// untrusted input, only as a best-effort hint.
func IsPrivate(rawurl string) bool {
	return Classify(rawurl) == Private
}
