package generator

type Generator interface {
	// Produces a random RFC 4122 version 4 UUID.
	UUID() (string, error)
	// Produces size lowercase hex characters from the secure
	// entropy source. The size must be even.
	Sequence(size int) (string, error)
	// Produces an integer n such that min <= n < max.
	Int(min int64, max int64) (int64, error)
	// Produces size decimal digits from the non-cryptographic
	// pseudorandom source.
	Code(size int) (string, error)
	// Produces a PEM encoded RSA key pair. A non-empty passphrase
	// encrypts the private key.
	RSA(passphrase string) (KeyPair, error)
}

type KeyPair struct {
	PublicKey  string
	PrivateKey string
}
