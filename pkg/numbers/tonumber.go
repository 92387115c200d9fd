package numbers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNotANumber is returned when a string holds no leading integer.
var ErrNotANumber = errors.New("not a number")

// TypeError is returned by ToNumber for values that are neither absent,
// numeric nor a string.
type TypeError struct {
	Value any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("can not coerce %T to a number", e.Value)
}

// ToNumber coerces value to a number. A nil value stays absent and numeric
// values are returned unchanged, strings go through ParseInt.
func ToNumber(value any) (*float64, error) {
	var n float64
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		parsed, err := ParseInt(v)
		if err != nil {
			return nil, err
		}
		n = float64(parsed)
	case *string:
		if v == nil {
			return nil, nil
		}
		return ToNumber(*v)
	case *float64:
		return v, nil
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int8:
		n = float64(v)
	case int16:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case uint:
		n = float64(v)
	case uint8:
		n = float64(v)
	case uint16:
		n = float64(v)
	case uint32:
		n = float64(v)
	case uint64:
		n = float64(v)
	default:
		return nil, &TypeError{Value: value}
	}
	return &n, nil
}

// ParseInt removes the first character of s that is not an ASCII digit and
// parses the leading integer of what remains. Only that one character is
// removed, so "1,234,567" parses as 1234.
func ParseInt(s string) (int64, error) {
	return parseLeadingInt(removeFirstNonDigit(s))
}

func removeFirstNonDigit(s string) string {
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRuneInString(s[i:])
		if r < '0' || r > '9' {
			return s[:i] + s[i+width:]
		}
		i += width
	}
	return s
}

// parseLeadingInt skips leading whitespace, accepts an optional sign and
// parses the longest run of digits after it. Anything after the digits is
// ignored.
func parseLeadingInt(s string) (int64, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, ErrNotANumber
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s[:end], err)
	}
	return n, nil
}
