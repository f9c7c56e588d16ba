// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsprobe

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/net/idna"

	tlsversion "github.com/H0llyW00dzZ/tls-version-checker/src/internal/tls/version"
	x509certs "github.com/H0llyW00dzZ/tls-version-checker/src/internal/x509/certs"
)

// DefaultPort is the only port the command-line tool connects to.
const DefaultPort = 443

var (
	// ErrInvalidHost indicates an empty target host.
	ErrInvalidHost = errors.New("tlsprobe: invalid target host")

	// ErrUnrecognizedVersion indicates a request whose protocol version is not in the lookup table.
	ErrUnrecognizedVersion = errors.New("tlsprobe: unrecognized TLS version")

	// ErrConnect indicates that the TCP connection could not be established.
	ErrConnect = errors.New("tlsprobe: failed to connect")

	// ErrClientCertificate indicates that the client certificate could not be loaded.
	ErrClientCertificate = errors.New("tlsprobe: failed to load client certificate")

	// ErrHandshake indicates that the TLS handshake failed.
	ErrHandshake = errors.New("tlsprobe: handshake failed")
)

// CertificateLoader loads a client certificate bundle.
type CertificateLoader interface {
	Load(path, password string) (tls.Certificate, error)
}

// Config holds the probe settings. Zero values select the defaults.
type Config struct {
	// Port defaults to [DefaultPort].
	Port int
	// RootCAs defaults to the system pool.
	RootCAs *x509.CertPool
	// Dialer defaults to a zero net.Dialer, which applies no timeout of its own.
	Dialer *net.Dialer
	// Certificates defaults to [x509certs.New].
	Certificates CertificateLoader
	// Debug receives the probe trace; nil disables tracing.
	Debug *zerolog.Logger
}

// Prober runs handshake probes.
type Prober struct {
	port   int
	roots  *x509.CertPool
	dialer *net.Dialer
	loader CertificateLoader
	debug  zerolog.Logger
}

// New creates a Prober from cfg.
func New(cfg Config) *Prober {
	p := &Prober{
		port:   cfg.Port,
		roots:  cfg.RootCAs,
		dialer: cfg.Dialer,
		loader: cfg.Certificates,
		debug:  zerolog.Nop(),
	}
	if p.port == 0 {
		p.port = DefaultPort
	}
	if p.dialer == nil {
		p.dialer = &net.Dialer{}
	}
	if p.loader == nil {
		p.loader = x509certs.New()
	}
	if cfg.Debug != nil {
		p.debug = *cfg.Debug
	}
	return p
}

// Probe performs one handshake as described by req and returns the
// negotiated parameters. Every failure is returned wrapped in one of the
// package sentinel errors; nothing is retried.
func (p *Prober) Probe(ctx context.Context, req Request) (*Report, error) {
	if req.Version == tlsversion.Unrecognized {
		return nil, ErrUnrecognizedVersion
	}

	if req.TargetHost == "" {
		return nil, ErrInvalidHost
	}
	host := asciiHost(req.TargetHost)

	addr := net.JoinHostPort(host, strconv.Itoa(p.port))
	p.debug.Debug().Str("address", addr).Str("version", req.Version.String()).Msg("dialing")

	conn, err := p.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w to %s: %w", ErrConnect, addr, err)
	}
	defer conn.Close()

	config := &tls.Config{
		ServerName: host,
		RootCAs:    p.roots,
	}
	if req.Version.Pinned() {
		config.MinVersion = req.Version.Protocol()
		config.MaxVersion = req.Version.Protocol()
	}

	if cc := req.ClientCertificate; cc != nil {
		p.debug.Debug().Str("path", cc.Path).Msg("loading client certificate")

		cert, err := p.loader.Load(cc.Path, cc.Password)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrClientCertificate, err)
		}
		config.Certificates = []tls.Certificate{cert}
	}

	tlsConn := tls.Client(conn, config)
	defer tlsConn.Close()

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		return nil, fmt.Errorf("%w with %s: %w", ErrHandshake, addr, err)
	}

	state := tlsConn.ConnectionState()
	p.debug.Debug().
		Str("protocol", tls.VersionName(state.Version)).
		Str("cipher_suite", tls.CipherSuiteName(state.CipherSuite)).
		Bool("resumed", state.DidResume).
		Msg("handshake complete")

	return NewReport(state), nil
}

// asciiHost converts an internationalized host name to the form used on the
// wire. IP literals, including scoped IPv6 addresses, are returned without
// brackets and otherwise unchanged. Names that IDNA rejects, such as
// "my_service", are passed through so the resolver gets to decide.
func asciiHost(host string) string {
	if len(host) > 2 && host[0] == '[' && host[len(host)-1] == ']' {
		host = host[1 : len(host)-1]
	}

	ip := host
	if i := strings.LastIndex(ip, "%"); i > 0 {
		ip = ip[:i]
	}
	if net.ParseIP(ip) != nil {
		return host
	}

	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return host
	}
	return ascii
}
