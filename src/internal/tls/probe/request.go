// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsprobe

import (
	"strings"

	tlsversion "github.com/H0llyW00dzZ/tls-version-checker/src/internal/tls/version"
)

// Request describes one connection attempt. It is built once per invocation
// and not modified afterwards.
type Request struct {
	// TargetHost is the TCP endpoint and the name verified against the server certificate.
	TargetHost string
	// Version is the protocol constraint for the handshake.
	Version tlsversion.Version
	// ClientCertificate is presented during the handshake when non-nil.
	ClientCertificate *ClientCertificate
}

// ClientCertificate identifies a client certificate bundle on disk.
type ClientCertificate struct {
	Path     string
	Password string
}

// NewClientCertificate returns a ClientCertificate only when both path and
// password are non-blank. If either is blank the certificate is treated as
// absent and nil is returned; supplying just one of them is not an error.
func NewClientCertificate(path, password string) *ClientCertificate {
	if strings.TrimSpace(path) == "" || strings.TrimSpace(password) == "" {
		return nil
	}
	return &ClientCertificate{Path: path, Password: password}
}
