// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
	"software.sslmate.com/src/go-pkcs12"
)

var (
	// ErrReadBundle indicates that the certificate bundle could not be read from disk.
	ErrReadBundle = errors.New("x509certs: failed to read certificate bundle")

	// ErrDecodePKCS12 indicates that the data is not a PKCS12 archive or the password is wrong.
	ErrDecodePKCS12 = errors.New("x509certs: failed to decode PKCS12 bundle")

	// ErrKeyPair indicates that the certificate and private key could not be paired.
	ErrKeyPair = errors.New("x509certs: invalid certificate key pair")

	// ErrNoPrivateKey indicates a bundle that holds certificates but no private key.
	ErrNoPrivateKey = errors.New("x509certs: bundle contains no private key")
)

// Loader turns client certificate bundles into [tls.Certificate] values.
type Loader struct {
	readFile func(name string) ([]byte, error)
}

// New creates a Loader that reads bundles from the local filesystem.
func New() *Loader {
	return &Loader{readFile: os.ReadFile}
}

// IsPEM checks if the data is in PEM format.
func (l *Loader) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// Load reads the bundle at path and decodes it with password.
func (l *Loader) Load(path, password string) (tls.Certificate, error) {
	data, err := l.readFile(path)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("%w %q: %w", ErrReadBundle, path, err)
	}
	return l.Decode(data, password)
}

// Decode decodes a PKCS12 or PEM bundle held in memory.
// The password is ignored for PEM input.
func (l *Loader) Decode(data []byte, password string) (tls.Certificate, error) {
	if l.IsPEM(data) {
		return keyPair(data)
	}

	key, leaf, caCerts, err := pkcs12.DecodeChain(data, password)
	if err != nil {
		// A PKCS7 bundle fails PKCS12 decoding too; report the real cause.
		if p, perr := pkcs7.ParsePKCS7(data); perr == nil && p.ContentInfo == "SignedData" {
			return tls.Certificate{}, fmt.Errorf("%w: PKCS7 bundle with %d certificate(s)",
				ErrNoPrivateKey, len(p.Content.SignedData.Certificates))
		}
		return tls.Certificate{}, fmt.Errorf("%w: %w", ErrDecodePKCS12, err)
	}

	keyDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("%w: %w", ErrKeyPair, err)
	}

	// Leaf first, then the CA certificates shipped in the bundle.
	pemData := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: leaf.Raw})
	for _, ca := range caCerts {
		pemData = append(pemData, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: ca.Raw})...)
	}
	pemData = append(pemData, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER})...)
	return keyPair(pemData)
}

// keyPair pairs the certificates and the private key found in PEM data.
func keyPair(pemData []byte) (tls.Certificate, error) {
	cert, err := tls.X509KeyPair(pemData, pemData)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("%w: %w", ErrKeyPair, err)
	}
	return cert, nil
}
