// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the TLS version checker.
// It implements a Cobra-based command that resolves the target host, the
// requested protocol version and an optional client certificate, runs a single
// handshake probe and prints the negotiated parameters.
//
// Argument errors are returned to the caller so the process can exit non-zero.
// An unrecognized version token and every connection or handshake failure are
// reported on the output and the command still succeeds.
package cli
