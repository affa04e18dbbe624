package opaque

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/hsiuhsiu/secp256k1-zkp-go/pkg/zkp"
	"github.com/hsiuhsiu/secp256k1-zkp-go/pkg/zkp/logging"
)

// Tweak is a 32-byte big-endian scalar below the group order: a blinding
// factor, a secret key or a key tweak.
type Tweak [TweakSize]byte

// TweakFromBytes copies src into a Tweak after checking it is a scalar in
// range.
func TweakFromBytes(src []byte) (Tweak, error) {
	if err := checkWidth(src, TweakSize, "tweak"); err != nil {
		return Tweak{}, err
	}
	var s btcec.ModNScalar
	overflow := s.SetByteSlice(src)
	s.Zero()
	if overflow {
		return Tweak{}, fmt.Errorf("opaque: tweak: %w: not below group order", ErrInvalidEncoding)
	}
	var t Tweak
	copy(t[:], src)
	return t, nil
}

// TweakFromHex decodes a 64-character hex string.
func TweakFromHex(text string) (Tweak, error) {
	var buf [TweakSize]byte
	defer zkp.ZeroizeBytes(buf[:])
	if err := decodeHex(text, buf[:], "tweak"); err != nil {
		return Tweak{}, err
	}
	return TweakFromBytes(buf[:])
}

// Bytes returns a copy of the tweak.
func (t Tweak) Bytes() []byte { return cloneBytes(t[:]) }

// String never reveals the tweak.
func (t Tweak) String() string { return logging.Placeholder() }

// Equal compares in constant time.
func (t Tweak) Equal(o Tweak) bool { return equal(t[:], o[:]) }

// Zeroize clears the tweak in place.
func (t *Tweak) Zeroize() { zkp.ZeroizeBytes(t[:]) }
