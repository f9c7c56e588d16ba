// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package tlsprobe performs a single [TLS] handshake against a remote host and
// reports the negotiated security parameters.
//
// A probe opens one TCP connection, layers a crypto/tls client session on top,
// optionally presents a client certificate and optionally pins the protocol
// version. Server-name verification stays enabled. Both the TCP connection
// and the TLS session are closed before [Prober.Probe] returns, whatever the
// outcome. There are no retries.
//
// [TLS]: https://grokipedia.com/page/Transport_Layer_Security
package tlsprobe
