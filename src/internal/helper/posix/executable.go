// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// FallbackName is used when the invocation name cannot be determined.
const FallbackName = "tls-version-checker"

// GetExecutableName returns the name the program was invoked with, without
// directory or .exe extension, for use in usage strings.
func GetExecutableName() string {
	if len(os.Args) == 0 {
		return FallbackName
	}
	return ExecutableName(os.Args[0])
}

// ExecutableName cleans arg0 into a program name.
//
// Both separators are honored so that a Windows path produces the same
// result on every GOOS:
//   - "/usr/local/bin/tls-version-checker" -> "tls-version-checker"
//   - "C:\tools\TlsVersionChecker.exe" -> "TlsVersionChecker"
func ExecutableName(arg0 string) string {
	name := filepath.Base(arg0)
	if strings.ContainsAny(name, `/\`) {
		parts := strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' })
		if len(parts) > 0 {
			name = parts[len(parts)-1]
		}
	}

	name = strings.TrimSuffix(name, ".exe")
	if name == "" || name == "." || name == string(filepath.Separator) {
		return FallbackName
	}
	return name
}
