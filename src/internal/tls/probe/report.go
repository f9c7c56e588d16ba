// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsprobe

import (
	"crypto/tls"

	tlssuite "github.com/H0llyW00dzZ/tls-version-checker/src/internal/tls/suite"
)

// Report holds the parameters negotiated by a successful handshake.
// Empty fields could not be determined and are left out of rendered output.
// CipherStrength is in bits and Protocol is a version name such as "TLS 1.3".
type Report struct {
	CipherSuite    string
	CipherSuiteID  uint16
	Cipher         string
	CipherStrength int
	Hash           string
	KeyExchange    string
	Protocol       string
}

// NewReport builds a Report from a completed handshake.
func NewReport(state tls.ConnectionState) *Report {
	b := tlssuite.Describe(state.CipherSuite, state.Version, state.CurveID)

	r := &Report{
		CipherSuite:    b.Name,
		CipherSuiteID:  b.ID,
		Cipher:         b.Cipher,
		CipherStrength: b.Strength,
		Hash:           b.Hash,
		KeyExchange:    b.KeyExchange,
	}
	if state.Version != 0 {
		r.Protocol = tls.VersionName(state.Version)
	}
	return r
}
