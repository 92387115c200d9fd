package generator

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions without extra context.
var (
	ErrInvalidPEM         = errors.New("no PEM block found")
	ErrPassphraseRequired = errors.New("private key is encrypted, a passphrase is required")
)

// SizeError is returned when a requested output length can not be produced.
type SizeError struct {
	Op     string
	Size   int
	Reason string
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s: invalid size %d: %s", e.Op, e.Size, e.Reason)
}

// RangeError is returned when the bounds given to Int are not usable.
type RangeError struct {
	Min    int64
	Max    int64
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range [%d, %d): %s", e.Min, e.Max, e.Reason)
}

// ShortCodeError is returned when every draw of a decimal chunk yielded
// fewer digits than were asked for.
type ShortCodeError struct {
	Want int
	Got  int
}

func (e *ShortCodeError) Error() string {
	return fmt.Sprintf("code chunk has %d digits, want %d", e.Got, e.Want)
}

// UnsupportedKeyError is returned by ParsePrivateKey for PEM blocks that do
// not hold an RSA private key.
type UnsupportedKeyError struct {
	BlockType string
}

func (e *UnsupportedKeyError) Error() string {
	return fmt.Sprintf("unsupported PEM block type %q", e.BlockType)
}
