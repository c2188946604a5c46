// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package fetchx provides a hardened outbound HTTP request layer for
client applications that issue many sequential and concurrent HTTPS
requests to remote APIs over the lifetime of a process.

Three concerns live here. The root package bounds every request with a
caller-supplied timeout and surfaces every failure as a uniform,
inspectable fault. The transport subpackage installs the process-wide
connection strategy (direct or proxied, multiplexed in either case)
that all subsequent requests inherit. The hostaddr subpackage
classifies destination hostnames as private or public to support
security policy decisions made by callers.

Configure the transport once at startup, then create a Client to begin
making requests:

	transport.EnableMultiplexed()
	// or, when a proxy is configured:
	if err := transport.ConfigureProxy(proxyURI); err != nil {
		log.Fatal(err)
	}

	client := &fetchx.Client{}
	res, err := client.Fetch("https://api.example.com/v1/models", 30*time.Second)
	...
	res, err := client.Post("https://api.example.com/v1/complete",
		"application/json", payload, 60*time.Second)

Every error returned by Client is a *fault.Error carrying a category
(timeout, network failure, other), an optional machine-readable code
such as "ECONNRESET" or a TLS alert identifier, and the original
underlying cause, reachable through errors.Is and errors.As. A retry
policy layered on top of this package decides whether to resend from
that information; this package never retries on its own:

	res, err := client.Fetch(url, timeout)
	var fe *fault.Error
	if errors.As(err, &fe) && fe.Category == fault.Network {
		// consult the retry table using fe.Code and fe.Unwrap()
	}

To warn on or block requests to private network destinations, consult
hostaddr independently:

	if hostaddr.IsPrivate(url) {
		// apply policy
	}

For control over how requests are sent, set a custom HTTPDoer, or hand
a Client its own transport configuration handle:

	cfg := &transport.Config{}
	cfg.EnableMultiplexed()
	client := &fetchx.Client{Transport: cfg}

Package fetchx provides basic interfaces for each method of the client
(Fetcher, ContextFetcher, Poster, and IdleCloser) and a combined
interface that composes them (Executor).
*/
package fetchx
