// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-style helpers for cross-platform command-line
// behavior, such as deriving a clean program name for usage text regardless
// of how the binary was invoked.
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
