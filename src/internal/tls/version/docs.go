// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package tlsversion maps the command-line protocol tokens onto [TLS] protocol
// versions. The mapping is a closed lookup table: every token either resolves
// to one of the known variants or to [Unrecognized].
//
// [TLS]: https://grokipedia.com/page/Transport_Layer_Security
package tlsversion
