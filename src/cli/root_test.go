// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tls-version-checker/src/cli"
	tlsprobe "github.com/H0llyW00dzZ/tls-version-checker/src/internal/tls/probe"
	tlsversion "github.com/H0llyW00dzZ/tls-version-checker/src/internal/tls/version"
	"github.com/H0llyW00dzZ/tls-version-checker/src/logger"
)

const version = "1.3.3.7-testing"

// fakeProber records probe calls instead of touching the network.
type fakeProber struct {
	calls  int
	req    tlsprobe.Request
	report *tlsprobe.Report
	err    error
}

func (f *fakeProber) Probe(_ context.Context, req tlsprobe.Request) (*tlsprobe.Report, error) {
	f.calls++
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

var sampleReport = &tlsprobe.Report{
	CipherSuite:    "TLS_AES_128_GCM_SHA256",
	CipherSuiteID:  tls.TLS_AES_128_GCM_SHA256,
	Cipher:         "AES_128_GCM",
	CipherStrength: 128,
	Hash:           "SHA256",
	KeyExchange:    "X25519",
	Protocol:       "TLS 1.3",
}

// execute runs the command with args and returns stdout, stderr and the error.
func execute(t *testing.T, prober cli.Prober, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&out)

	cmd := cli.NewCommand(version, log, prober)
	cmd.SetOut(&errOut)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestExecute_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		expectErr error
	}{
		{name: "Missing target host", args: []string{}},
		{name: "Missing target host with version", args: []string{"-u", "tls12"}},
		{name: "Unknown flag", args: []string{"-t", "example.com", "--port", "8443"}},
		{name: "Positional argument", args: []string{"-t", "example.com", "extra"}},
		{name: "Blank target host", args: []string{"-t", "  "}, expectErr: cli.ErrTargetHostRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prober := &fakeProber{report: sampleReport}
			_, stderr, err := execute(t, prober, tt.args...)

			require.Error(t, err)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			}
			assert.Contains(t, stderr, "Usage:", "expected usage message")
			assert.Zero(t, prober.calls, "no connection should be attempted")
		})
	}
}

func TestExecute_VersionTokens(t *testing.T) {
	tests := []struct {
		token    string
		expected tlsversion.Version
	}{
		{token: "tls13", expected: tlsversion.V1_3},
		{token: "tls12", expected: tlsversion.V1_2},
		{token: "tls11", expected: tlsversion.V1_1},
		{token: "tls", expected: tlsversion.V1_0},
		{token: "system", expected: tlsversion.SystemDefault},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			prober := &fakeProber{report: sampleReport}
			_, _, err := execute(t, prober, "--target-host", "example.com", "--use-tls-version", tt.token)

			require.NoError(t, err)
			require.Equal(t, 1, prober.calls)
			assert.Equal(t, tt.expected, prober.req.Version)
			assert.Equal(t, "example.com", prober.req.TargetHost)
		})
	}

	t.Run("Default", func(t *testing.T) {
		prober := &fakeProber{report: sampleReport}
		_, _, err := execute(t, prober, "-t", "example.com")

		require.NoError(t, err)
		assert.Equal(t, tlsversion.SystemDefault, prober.req.Version)
	})
}

func TestExecute_InvalidVersionToken(t *testing.T) {
	for _, token := range []string{"TLS12", "ssl3", "tls10", ""} {
		t.Run(token, func(t *testing.T) {
			prober := &fakeProber{report: sampleReport}
			stdout, _, err := execute(t, prober, "-t", "example.com", "-u", token)

			require.NoError(t, err, "invalid token is not a parse error")
			assert.Equal(t, "Invalid TLS version. Use one of the following: tls13, tls12, tls11, tls, system\n", stdout)
			assert.Zero(t, prober.calls, "no connection should be attempted")
		})
	}
}

func TestExecute_ClientCertificateResolution(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		present bool
	}{
		{name: "Both", args: []string{"-c", "C:/cert.pfx", "-p", "123456"}, present: true},
		{name: "Path only", args: []string{"-c", "C:/cert.pfx"}},
		{name: "Password only", args: []string{"--cert-pwd", "123456"}},
		{name: "Blank password", args: []string{"-c", "C:/cert.pfx", "-p", " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prober := &fakeProber{report: sampleReport}
			_, _, err := execute(t, prober, append([]string{"-t", "example.com"}, tt.args...)...)
			require.NoError(t, err)
			require.Equal(t, 1, prober.calls)

			if !tt.present {
				assert.Nil(t, prober.req.ClientCertificate)
				return
			}
			require.NotNil(t, prober.req.ClientCertificate)
			assert.Equal(t, "C:/cert.pfx", prober.req.ClientCertificate.Path)
			assert.Equal(t, "123456", prober.req.ClientCertificate.Password)
		})
	}
}

func TestExecute_Report(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		stdout, _, err := execute(t, &fakeProber{report: sampleReport}, "-t", "example.com")
		require.NoError(t, err)

		assert.Equal(t, "Values being used:\n"+
			"Negotiated Cipher Suite: TLS_AES_128_GCM_SHA256 (0x1301)\n"+
			"Cipher: AES_128_GCM\n"+
			"Cipher strength: 128\n"+
			"Hash Algorithm: SHA256\n"+
			"Key Exchange Algorithm: X25519\n"+
			"SSL/TLS Protocol version: TLS 1.3\n", stdout)
	})

	t.Run("Table", func(t *testing.T) {
		stdout, _, err := execute(t, &fakeProber{report: sampleReport}, "-t", "example.com", "--table")
		require.NoError(t, err)

		assert.Contains(t, stdout, "|")
		assert.Contains(t, stdout, "TLS 1.3")
		assert.NotContains(t, stdout, "Values being used:")
	})
}

func TestExecute_ProbeFailure(t *testing.T) {
	prober := &fakeProber{err: errors.New("tlsprobe: handshake failed: remote error: tls: protocol version not supported")}
	stdout, _, err := execute(t, prober, "-t", "example.com", "-u", "tls11")

	require.NoError(t, err, "probe failures must not change the exit status")
	assert.True(t, strings.HasPrefix(stdout, cli.ErrorPrefix+"\n"), "expected fixed error prefix, got %q", stdout)
	assert.Contains(t, stdout, "protocol version not supported")
}

func TestExecute_MissingCertificateAgainstServer(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	roots := x509.NewCertPool()
	roots.AddCert(srv.Certificate())
	prober := tlsprobe.New(tlsprobe.Config{Port: port, RootCAs: roots})

	missing := filepath.Join(t.TempDir(), "missing.pfx")
	stdout, _, err := execute(t, prober, "-t", "127.0.0.1", "-c", missing, "-p", "123456")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, cli.ErrorPrefix), "expected fixed error prefix, got %q", stdout)
	assert.Contains(t, stdout, "missing.pfx")
}

func TestExecute_EndToEnd(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	roots := x509.NewCertPool()
	roots.AddCert(srv.Certificate())
	prober := tlsprobe.New(tlsprobe.Config{Port: port, RootCAs: roots})

	stdout, _, err := execute(t, prober, "--target-host", "127.0.0.1")
	require.NoError(t, err)

	assert.Contains(t, stdout, "SSL/TLS Protocol version: TLS 1.3")
	for _, label := range []string{"Negotiated Cipher Suite: ", "Cipher: ", "Cipher strength: ", "Hash Algorithm: ", "Key Exchange Algorithm: "} {
		assert.Contains(t, stdout, label)
	}
}

func TestExecute_Version(t *testing.T) {
	_, stderr, err := execute(t, &fakeProber{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, stderr, version)
}
