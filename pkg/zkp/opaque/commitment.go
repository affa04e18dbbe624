package opaque

import (
	"fmt"

	"github.com/hsiuhsiu/secp256k1-zkp-go/pkg/zkp/fixedhex"
)

// Commitment is a serialized Pedersen commitment. The first byte is 0x08 or
// 0x09, the remaining 32 are the x coordinate.
type Commitment [CommitmentSize]byte

// CommitmentFromBytes checks width and prefix. Whether x is on the curve is
// left to secp256k1_pedersen_commitment_parse.
func CommitmentFromBytes(src []byte) (Commitment, error) {
	if err := checkWidth(src, CommitmentSize, "commitment"); err != nil {
		return Commitment{}, err
	}
	if src[0]&0xfe != 0x08 {
		return Commitment{}, fmt.Errorf("opaque: commitment: %w: prefix 0x%02x", ErrInvalidEncoding, src[0])
	}
	var c Commitment
	copy(c[:], src)
	return c, nil
}

// CommitmentFromHex decodes a 66-character hex string.
func CommitmentFromHex(text string) (Commitment, error) {
	var buf [CommitmentSize]byte
	if err := decodeHex(text, buf[:], "commitment"); err != nil {
		return Commitment{}, err
	}
	return CommitmentFromBytes(buf[:])
}

func (c Commitment) Bytes() []byte           { return cloneBytes(c[:]) }
func (c Commitment) String() string          { return fixedhex.Encode(c[:]) }
func (c Commitment) Equal(o Commitment) bool { return equal(c[:], o[:]) }

// Generator is a serialized secp256k1-zkp generator (asset tag). The first
// byte is 0x0a or 0x0b.
type Generator [GeneratorSize]byte

// GeneratorFromBytes checks width and prefix.
func GeneratorFromBytes(src []byte) (Generator, error) {
	if err := checkWidth(src, GeneratorSize, "generator"); err != nil {
		return Generator{}, err
	}
	if src[0]&0xfe != 0x0a {
		return Generator{}, fmt.Errorf("opaque: generator: %w: prefix 0x%02x", ErrInvalidEncoding, src[0])
	}
	var g Generator
	copy(g[:], src)
	return g, nil
}

// GeneratorFromHex decodes a 66-character hex string.
func GeneratorFromHex(text string) (Generator, error) {
	var buf [GeneratorSize]byte
	if err := decodeHex(text, buf[:], "generator"); err != nil {
		return Generator{}, err
	}
	return GeneratorFromBytes(buf[:])
}

func (g Generator) Bytes() []byte          { return cloneBytes(g[:]) }
func (g Generator) String() string         { return fixedhex.Encode(g[:]) }
func (g Generator) Equal(o Generator) bool { return equal(g[:], o[:]) }
