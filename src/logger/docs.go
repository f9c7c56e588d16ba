// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for logging operations.
// It defines the Logger interface used for user-facing report output, with
// CLILogger as its human-readable implementation, and a [zerolog] based debug
// trace that is written to stderr when verbose output is requested.
//
// [zerolog]: https://github.com/rs/zerolog
package logger
