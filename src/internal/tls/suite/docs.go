// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package tlssuite breaks a negotiated [cipher suite] down into its bulk cipher,
// cipher strength, hash algorithm and key-exchange algorithm.
//
// The breakdown is derived from the IANA suite name reported by crypto/tls,
// using the naming grammar TLS_<kx>_WITH_<cipher>_<hash> for TLS 1.2 and
// earlier, and TLS_<cipher>_<hash> for TLS 1.3. TLS 1.3 suites do not name the
// key exchange, so it is taken from the negotiated group instead.
//
// [cipher suite]: https://grokipedia.com/page/Cipher_suite
package tlssuite
