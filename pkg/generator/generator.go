package generator

import (
	crand "crypto/rand"
	"io"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DefaultRSAModulusBits = 4096
	DefaultCodeMaxRedraws = 8
)

type GeneratorParams struct {
	// Cryptographically secure source used by UUID, Sequence, Int and RSA,
	// crypto/rand.Reader when nil.
	Entropy io.Reader
	// Source backing Code, the global math/rand/v2 generator when nil.
	CodeSource rand.Source
	// Key size for RSA, DefaultRSAModulusBits when 0.
	RSAModulusBits int
	// How many times a decimal chunk that came out short is drawn again.
	// A reference so that 0 (fail on the first short chunk) can be told apart
	// from unset. A negative value accepts short chunks as they are.
	CodeMaxRedraws *int
}

type generatorImpl struct {
	entropy        io.Reader
	codeMaxRedraws int
	rsaBits        int
	logger         *logrus.Logger

	mu       sync.Mutex
	codeRand *rand.Rand
}

// NewDefaultGenerator creates a generator from params, where nil params or a
// nil logger fall back to defaults.
func NewDefaultGenerator(params *GeneratorParams, logger *logrus.Logger) Generator {
	if params == nil {
		params = &GeneratorParams{}
	}
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	g := &generatorImpl{
		entropy:        params.Entropy,
		codeMaxRedraws: DefaultCodeMaxRedraws,
		rsaBits:        params.RSAModulusBits,
		logger:         logger,
	}
	if g.entropy == nil {
		g.entropy = crand.Reader
	}
	if params.CodeMaxRedraws != nil {
		g.codeMaxRedraws = *params.CodeMaxRedraws
	}
	if g.rsaBits == 0 {
		g.rsaBits = DefaultRSAModulusBits
	}
	if params.CodeSource != nil {
		g.codeRand = rand.New(params.CodeSource)
	}
	return g
}

func (g *generatorImpl) UUID() (string, error) {
	id, err := uuid.NewRandomFromReader(g.entropy)
	if err != nil {
		return "", errors.Wrap(err, "generate uuid")
	}
	return id.String(), nil
}

// nextFloat draws from the code source. A *rand.Rand built over a caller's
// source is not safe for concurrent use, the global generator is.
func (g *generatorImpl) nextFloat() float64 {
	if g.codeRand == nil {
		return rand.Float64()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.codeRand.Float64()
}

var defaultGenerator = NewDefaultGenerator(nil, nil)

// UUID generates a random version 4 UUID with the default generator.
func UUID() (string, error) {
	return defaultGenerator.UUID()
}

// Sequence generates size cryptographically strong hex characters with the
// default generator. size must be a non-negative multiple of 2.
func Sequence(size int) (string, error) {
	return defaultGenerator.Sequence(size)
}

// Int returns a random integer n such that min <= n < max with the default
// generator. Both bounds must be safe integers and max-min less than 2^48.
func Int(min int64, max int64) (int64, error) {
	return defaultGenerator.Int(min, max)
}

// Code generates size pseudorandom decimal digits with the default generator.
// It is not suitable where the code must be unguessable.
func Code(size int) (string, error) {
	return defaultGenerator.Code(size)
}

// RSA generates a 4096 bit RSA key pair with the default generator.
func RSA(passphrase string) (KeyPair, error) {
	return defaultGenerator.RSA(passphrase)
}
