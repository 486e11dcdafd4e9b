// Package crypto generates ephemeral self-signed TLS certificates. The
// server falls back to these when no certificate files are configured, and
// tests use them to avoid shipping fixture credentials.
package crypto

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// GenerateCertificate creates a self-signed server certificate. With a
// non-empty seed the key pair is derived deterministically from it, so
// repeated calls agree on the same certificate.
func GenerateCertificate(seed string) (tls.Certificate, error) {
	var out tls.Certificate

	key, der, err := generateSelfSigned(seed)
	if err != nil {
		return out, fmt.Errorf("generateSelfSigned(): %s", err)
	}

	leaf, err := x509.ParseCertificate(der)
	if err != nil {
		return out, fmt.Errorf("x509.ParseCertificate(): %s", err)
	}

	out = tls.Certificate{
		Certificate: [][]byte{der},
		PrivateKey:  key,
		Leaf:        leaf,
	}

	return out, nil
}

// GeneratePEM returns a self-signed certificate and its private key as PEM
// blocks, ready to be written to disk.
func GeneratePEM(seed string) ([]byte, []byte, error) {
	key, der, err := generateSelfSigned(seed)
	if err != nil {
		return nil, nil, fmt.Errorf("generateSelfSigned(): %s", err)
	}

	certPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "CERTIFICATE",
		Bytes: der,
	})

	b, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to marshal ECDSA private key: %v", err)
	}
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: b})

	return certPEM, keyPEM, nil
}
