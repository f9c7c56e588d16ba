// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlssuite

import (
	"crypto/tls"
	"fmt"
	"strings"
)

// Breakdown describes the components of a cipher suite.
// Fields that cannot be derived are left at their zero value.
type Breakdown struct {
	// Name is the IANA name, or a hex form for suites crypto/tls does not know.
	Name string
	// ID is the two-byte suite identifier.
	ID uint16
	// Cipher is the bulk encryption algorithm, e.g. AES_128_GCM.
	Cipher string
	// Strength is the bulk cipher key strength in bits.
	Strength int
	// Hash is the MAC or PRF hash, e.g. SHA256.
	Hash string
	// KeyExchange is the key-exchange algorithm, e.g. ECDHE_RSA (X25519).
	KeyExchange string
}

var strengths = []struct {
	prefix string
	bits   int
}{
	{"AES_128", 128},
	{"AES_256", 256},
	{"CHACHA20", 256},
	{"3DES_EDE", 168},
	{"RC4_128", 128},
}

var hashes = map[string]string{
	"SHA":    "SHA1",
	"SHA256": "SHA256",
	"SHA384": "SHA384",
}

// Describe breaks down the suite id negotiated at protocol version.
// curve is the negotiated key-exchange group, or 0 when none is known.
func Describe(id uint16, version uint16, curve tls.CurveID) Breakdown {
	b := Breakdown{ID: id, Name: tls.CipherSuiteName(id)}

	body, ok := strings.CutPrefix(b.Name, "TLS_")
	if !ok {
		return b
	}

	rest := body
	if kx, bulk, found := strings.Cut(body, "_WITH_"); found {
		b.KeyExchange = kx
		rest = bulk
	}

	if i := strings.LastIndexByte(rest, '_'); i > 0 {
		if h, known := hashes[rest[i+1:]]; known {
			b.Hash = h
			rest = rest[:i]
		}
	}
	b.Cipher = rest

	for _, s := range strengths {
		if strings.HasPrefix(b.Cipher, s.prefix) {
			b.Strength = s.bits
			break
		}
	}

	b.KeyExchange = keyExchange(b.KeyExchange, version, curve)
	return b
}

// keyExchange annotates the suite key exchange with the negotiated group.
func keyExchange(kx string, version uint16, curve tls.CurveID) string {
	if curve == 0 {
		return kx
	}
	if version >= tls.VersionTLS13 || kx == "" {
		return curve.String()
	}
	if strings.HasPrefix(kx, "ECDHE") {
		return fmt.Sprintf("%s (%s)", kx, curve)
	}
	return kx
}

// IDString formats a suite identifier the way it appears on the wire.
func IDString(id uint16) string { return fmt.Sprintf("0x%04X", id) }
