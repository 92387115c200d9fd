package generator

import (
	crand "crypto/rand"
	"encoding/hex"
	"io"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// SequenceChunkCap is the most hex characters drawn from the entropy
	// source in one read.
	SequenceChunkCap = 1 << 30
	// CodeChunkCap is the most digits taken from a single float64 draw.
	CodeChunkCap = 9

	maxSafeInteger int64 = 1<<53 - 1
	maxIntRange    int64 = 1 << 48
)

// produceChunked asks draw for min(remaining, chunkCap) characters at a time
// and concatenates the chunks left to right.
func produceChunked(size int, chunkCap int, draw func(n int) (string, error)) (string, error) {
	if size <= 0 {
		return "", nil
	}

	var out strings.Builder
	for remaining := size; remaining > 0; {
		n := min(remaining, chunkCap)
		chunk, err := draw(n)
		if err != nil {
			return "", err
		}
		out.WriteString(chunk)
		remaining -= n
	}
	return out.String(), nil
}

func (g *generatorImpl) Sequence(size int) (string, error) {
	if size < 0 || size%2 != 0 {
		return "", &SizeError{Op: "sequence", Size: size, Reason: "must be a non-negative multiple of 2"}
	}
	return produceChunked(size, SequenceChunkCap, g.hexChunk)
}

func (g *generatorImpl) hexChunk(n int) (string, error) {
	buf := make([]byte, n/2)
	if _, err := io.ReadFull(g.entropy, buf); err != nil {
		return "", errors.Wrap(err, "read entropy")
	}
	g.logger.WithField("size", n).Debug("drew sequence chunk")
	return hex.EncodeToString(buf), nil
}

func (g *generatorImpl) Code(size int) (string, error) {
	if size < 0 {
		return "", &SizeError{Op: "code", Size: size, Reason: "must not be negative"}
	}
	return produceChunked(size, CodeChunkCap, g.decimalChunk)
}

func (g *generatorImpl) decimalChunk(n int) (string, error) {
	var digits string
	draw := func() error {
		digits = fractionDigits(g.nextFloat(), n)
		if len(digits) < n {
			return &ShortCodeError{Want: n, Got: len(digits)}
		}
		return nil
	}

	if g.codeMaxRedraws < 0 {
		// Short chunks are kept, the result may be shorter than requested.
		_ = draw()
		return digits, nil
	}

	notify := func(err error, _ time.Duration) {
		g.logger.WithFields(logrus.Fields{
			"size":  n,
			"error": err,
		}).Debug("redrawing short code chunk")
	}
	retries := backoff.WithMaxRetries(&backoff.ZeroBackOff{}, uint64(g.codeMaxRedraws))
	if err := backoff.RetryNotify(draw, retries, notify); err != nil {
		return "", err
	}
	return digits, nil
}

// fractionDigits returns at most n characters following the decimal point of
// the shortest decimal form of f.
func fractionDigits(f float64, n int) string {
	_, frac, found := strings.Cut(strconv.FormatFloat(f, 'f', -1, 64), ".")
	if !found {
		return ""
	}
	if len(frac) > n {
		return frac[:n]
	}
	return frac
}

func (g *generatorImpl) Int(min int64, max int64) (int64, error) {
	if min < -maxSafeInteger || min > maxSafeInteger || max < -maxSafeInteger || max > maxSafeInteger {
		return 0, &RangeError{Min: min, Max: max, Reason: "bounds must be safe integers"}
	}
	if max <= min {
		return 0, &RangeError{Min: min, Max: max, Reason: "max must be greater than min"}
	}
	if max-min >= maxIntRange {
		return 0, &RangeError{Min: min, Max: max, Reason: "max - min must be less than 2^48"}
	}

	n, err := crand.Int(g.entropy, big.NewInt(max-min))
	if err != nil {
		return 0, errors.Wrap(err, "read entropy")
	}
	return min + n.Int64(), nil
}
