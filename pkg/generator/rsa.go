package generator

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"

	"github.com/pkg/errors"
	"github.com/youmark/pkcs8"
)

const (
	pemPublicKey           = "PUBLIC KEY"
	pemRSAPrivateKey       = "RSA PRIVATE KEY"
	pemPrivateKey          = "PRIVATE KEY"
	pemEncryptedPrivateKey = "ENCRYPTED PRIVATE KEY"
)

var encryptedKeyOpts = &pkcs8.Opts{
	Cipher: pkcs8.AES256CBC,
	KDFOpts: pkcs8.PBKDF2Opts{
		SaltSize:       16,
		IterationCount: 10000,
		HMACHash:       crypto.SHA256,
	},
}

// RSA encodes the public key as SPKI. The private key is PKCS#1 unless a
// passphrase is given, in which case it is PKCS#8 encrypted with AES-256-CBC.
func (g *generatorImpl) RSA(passphrase string) (KeyPair, error) {
	g.logger.WithField("bits", g.rsaBits).Debug("generating rsa key")
	key, err := rsa.GenerateKey(g.entropy, g.rsaBits)
	if err != nil {
		return KeyPair{}, errors.Wrap(err, "generate rsa key")
	}

	spki, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return KeyPair{}, errors.Wrap(err, "marshal public key")
	}
	publicKey := pem.EncodeToMemory(&pem.Block{Type: pemPublicKey, Bytes: spki})

	if passphrase == "" {
		privateKey := pem.EncodeToMemory(&pem.Block{
			Type:  pemRSAPrivateKey,
			Bytes: x509.MarshalPKCS1PrivateKey(key),
		})
		return KeyPair{PublicKey: string(publicKey), PrivateKey: string(privateKey)}, nil
	}

	der, err := pkcs8.MarshalPrivateKey(key, []byte(passphrase), encryptedKeyOpts)
	if err != nil {
		return KeyPair{}, errors.Wrap(err, "encrypt private key")
	}
	privateKey := pem.EncodeToMemory(&pem.Block{Type: pemEncryptedPrivateKey, Bytes: der})
	return KeyPair{PublicKey: string(publicKey), PrivateKey: string(privateKey)}, nil
}

// ParsePrivateKey decodes a private key produced by RSA. The passphrase is
// only used for encrypted keys.
func ParsePrivateKey(pemData string, passphrase string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemData))
	if block == nil {
		return nil, ErrInvalidPEM
	}

	switch block.Type {
	case pemRSAPrivateKey:
		return x509.ParsePKCS1PrivateKey(block.Bytes)
	case pemPrivateKey:
		return pkcs8.ParsePKCS8PrivateKeyRSA(block.Bytes)
	case pemEncryptedPrivateKey:
		if passphrase == "" {
			return nil, ErrPassphraseRequired
		}
		key, err := pkcs8.ParsePKCS8PrivateKeyRSA(block.Bytes, []byte(passphrase))
		if err != nil {
			return nil, errors.Wrap(err, "decrypt private key")
		}
		return key, nil
	}
	return nil, &UnsupportedKeyError{BlockType: block.Type}
}

// ParsePublicKey decodes the SPKI public key of a pair.
func ParsePublicKey(pemData string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(pemData))
	if block == nil {
		return nil, ErrInvalidPEM
	}
	if block.Type != pemPublicKey {
		return nil, &UnsupportedKeyError{BlockType: block.Type}
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, errors.Wrap(err, "parse public key")
	}
	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, &UnsupportedKeyError{BlockType: block.Type}
	}
	return rsaKey, nil
}

// Fingerprint is the hex encoded SHA-256 of the DER public key.
func (k KeyPair) Fingerprint() (string, error) {
	block, _ := pem.Decode([]byte(k.PublicKey))
	if block == nil {
		return "", ErrInvalidPEM
	}
	sum := sha256.Sum256(block.Bytes)
	return hex.EncodeToString(sum[:]), nil
}
