package opaque

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/hsiuhsiu/secp256k1-zkp-go/pkg/zkp/fixedhex"
)

// Serialized sizes, in bytes.
const (
	TweakSize          = 32
	PublicKeySize      = 33
	XOnlyPublicKeySize = 32
	SignatureSize      = 64
	CommitmentSize     = 33
	GeneratorSize      = 33
)

// ErrInvalidEncoding reports bytes of the wrong width or that fail the
// structural check for their type.
var ErrInvalidEncoding = errors.New("opaque: invalid encoding")

// Value is implemented by every type in this package.
type Value interface {
	Bytes() []byte
	String() string
}

// Kind names a type for Parse.
type Kind string

const (
	KindTweak      Kind = "tweak"
	KindPublicKey  Kind = "pubkey"
	KindXOnly      Kind = "xonly"
	KindSignature  Kind = "signature"
	KindCommitment Kind = "commitment"
	KindGenerator  Kind = "generator"
)

// Kinds lists every Kind Parse accepts.
func Kinds() []Kind {
	return []Kind{KindTweak, KindPublicKey, KindXOnly, KindSignature, KindCommitment, KindGenerator}
}

// Parse decodes hex text into the type named by kind.
func Parse(kind Kind, text string) (Value, error) {
	switch kind {
	case KindTweak:
		return TweakFromHex(text)
	case KindPublicKey:
		return PublicKeyFromHex(text)
	case KindXOnly:
		return XOnlyPublicKeyFromHex(text)
	case KindSignature:
		return SignatureFromHex(text)
	case KindCommitment:
		return CommitmentFromHex(text)
	case KindGenerator:
		return GeneratorFromHex(text)
	default:
		return nil, fmt.Errorf("opaque: unknown kind %q", kind)
	}
}

func checkWidth(src []byte, size int, name string) error {
	if len(src) != size {
		return fmt.Errorf("opaque: %s: %w: got %d bytes, want %d", name, ErrInvalidEncoding, len(src), size)
	}
	return nil
}

func decodeHex(text string, dst []byte, name string) error {
	if err := fixedhex.DecodeExact(text, dst); err != nil {
		return fmt.Errorf("opaque: %s: %w", name, err)
	}
	return nil
}

func cloneBytes(src []byte) []byte {
	out := make([]byte, len(src))
	copy(out, src)
	return out
}

func equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
