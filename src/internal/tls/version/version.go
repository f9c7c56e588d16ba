// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsversion

import (
	"crypto/tls"
	"strings"
)

// Version identifies the protocol constraint requested for a handshake.
type Version int

const (
	// Unrecognized is returned for any token outside the lookup table.
	Unrecognized Version = iota
	// SystemDefault leaves protocol selection to crypto/tls.
	SystemDefault
	// V1_0 pins the handshake to TLS 1.0.
	V1_0
	// V1_1 pins the handshake to TLS 1.1.
	V1_1
	// V1_2 pins the handshake to TLS 1.2.
	V1_2
	// V1_3 pins the handshake to TLS 1.3.
	V1_3
)

// DefaultToken is the token used when no version is requested.
const DefaultToken = "system"

// tokens is ordered the way the tokens are listed to users.
var tokens = []struct {
	token   string
	version Version
}{
	{"tls13", V1_3},
	{"tls12", V1_2},
	{"tls11", V1_1},
	{"tls", V1_0},
	{DefaultToken, SystemDefault},
}

var protocols = map[Version]uint16{
	V1_0: tls.VersionTLS10,
	V1_1: tls.VersionTLS11,
	V1_2: tls.VersionTLS12,
	V1_3: tls.VersionTLS13,
}

// Parse resolves a token. Matching is case-sensitive.
func Parse(token string) Version {
	for _, t := range tokens {
		if t.token == token {
			return t.version
		}
	}
	return Unrecognized
}

// Tokens returns the accepted tokens in display order.
func Tokens() []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.token)
	}
	return out
}

// TokenList returns the accepted tokens joined for use in messages.
func TokenList() string { return strings.Join(Tokens(), ", ") }

// Pinned reports whether v constrains the handshake to one protocol version.
func (v Version) Pinned() bool {
	_, ok := protocols[v]
	return ok
}

// Protocol returns the crypto/tls protocol constant for a pinned version.
// It returns 0 for [SystemDefault] and [Unrecognized].
func (v Version) Protocol() uint16 { return protocols[v] }

// String returns the token that selects v.
func (v Version) String() string {
	for _, t := range tokens {
		if t.version == v {
			return t.token
		}
	}
	return "unrecognized"
}
