// Package credentials loads the TLS material handed to the protocol engine.
// A load failure is fatal at startup; the server must not start accepting
// datagrams without valid credentials.
package credentials

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
)

// Load reads a PEM certificate chain and a password-less PEM private key
// from the given files. The parsed leaf certificate is attached so callers
// can inspect subject and expiry without re-parsing.
func Load(certFile, keyFile string) (tls.Certificate, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("tls.LoadX509KeyPair(%s, %s): %w", certFile, keyFile, err)
	}

	leaf, err := x509.ParseCertificate(cert.Certificate[0])
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("x509.ParseCertificate(leaf): %w", err)
	}
	cert.Leaf = leaf

	return cert, nil
}
