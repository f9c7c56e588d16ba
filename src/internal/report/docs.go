// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package report renders handshake results as human-readable text.
//
// Fields are always emitted in the same order: cipher suite, cipher, cipher
// strength, hash algorithm, key-exchange algorithm and protocol version.
// Fields that could not be determined are skipped rather than printed empty.
package report
