// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// tls-version-checker is a diagnostic command-line tool that performs one TLS
// handshake against a host on port 443 and reports what was negotiated.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/tls-version-checker/cmd/tls-version-checker@latest
//
// # Usage
//
//	tls-version-checker --target-host HOST [FLAGS]
//
// # Flags
//
//	-t, --target-host      Host to connect with [required]
//	-u, --use-tls-version  Pin the protocol: tls13, tls12, tls11, tls, system (default: system)
//	-c, --cert-path        Client certificate bundle (PKCS#12 or PEM)
//	-p, --cert-pwd         Client certificate password
//	    --table            Display the negotiated values as a markdown table
//	-v, --verbose          Trace the connection attempt on stderr
//
// The client certificate is only used when both --cert-path and --cert-pwd
// are given; supplying one of them alone is silently ignored.
//
// # Examples
//
// Connect using the default negotiation:
//
//	tls-version-checker --target-host example.com
//
// Pin the handshake to TLS 1.2:
//
//	tls-version-checker --target-host example.com --use-tls-version tls12
//
// Present a client certificate:
//
//	tls-version-checker --target-host example.com --cert-path cert.pfx --cert-pwd 123456
//
// # Exit Status
//
// The exit status is 0 whenever the arguments were parsed, including when the
// connection or handshake fails; failures are printed to stdout. Argument
// errors exit with status 1.
package main
