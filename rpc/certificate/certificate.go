// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Mintmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS setup for the client RPC listener
package certificate

import (
	"crypto/tls"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
)

// Get - build the listener TLS configuration from PEM content
//
// name labels the listener in the log; the returned fingerprint
// identifies the certificate to clients pinning the server key
func Get(log *logger.L, name string, certificatePEM string, keyPEM string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificatePEM), []byte(keyPEM))
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// sha3-256 over the DER form, matching:
//   openssl x509 -outform DER -in rpc.crt | sha3sum -a 256
func fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
