package fixedhex

import (
	"encoding/hex"
	"errors"
)

// ErrInvalidHex is the only error Decode returns. Odd length, input too long
// for the target, and characters outside [0-9a-fA-F] are deliberately not
// distinguished.
var ErrInvalidHex = errors.New("fixedhex: invalid hex input")

// Decode writes the bytes encoded by text into the prefix of target and
// returns how many were written (always len(text)/2). Bytes of target past
// that count are left as they were.
//
// The whole input is validated before the first write, so on error target is
// unchanged.
func Decode(text string, target []byte) (int, error) {
	if len(text)%2 != 0 || len(text)/2 > len(target) {
		return 0, ErrInvalidHex
	}
	for i := 0; i < len(text); i++ {
		if _, ok := nibble(text[i]); !ok {
			return 0, ErrInvalidHex
		}
	}

	n := len(text) / 2
	for i := 0; i < n; i++ {
		hi, _ := nibble(text[2*i])
		lo, _ := nibble(text[2*i+1])
		target[i] = hi<<4 | lo
	}
	return n, nil
}

// DecodeExact is Decode for callers that need target filled completely: the
// text must encode exactly len(target) bytes.
func DecodeExact(text string, target []byte) error {
	if len(text) != 2*len(target) {
		return ErrInvalidHex
	}
	_, err := Decode(text, target)
	return err
}

// Encode returns the lower-case hex form of src.
func Encode(src []byte) string {
	return hex.EncodeToString(src)
}

func nibble(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
