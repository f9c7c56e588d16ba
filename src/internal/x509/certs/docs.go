// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs loads client certificate bundles for presentation during
// a [TLS] handshake.
//
// The primary format is a password-protected [PKCS12] archive (.pfx, .p12),
// in either the legacy 3DES/RC2 encryption or the PBES2/AES encryption with a
// SHA-256 MAC that current OpenSSL releases produce by default.
// A PEM file holding the certificate chain and an unencrypted private key is
// also accepted. [PKCS7] bundles are recognised but rejected because they
// carry no private key.
//
// [TLS]: https://grokipedia.com/page/Transport_Layer_Security
// [PKCS12]: https://grokipedia.com/page/PKCS_12
// [PKCS7]: https://grokipedia.com/page/PKCS_7
package x509certs
