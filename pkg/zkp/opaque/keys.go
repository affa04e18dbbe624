package opaque

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"github.com/hsiuhsiu/secp256k1-zkp-go/pkg/zkp/fixedhex"
)

// PublicKey is a compressed SEC1 secp256k1 point.
type PublicKey [PublicKeySize]byte

// PublicKeyFromBytes accepts a 33-byte compressed point that lies on the
// curve.
func PublicKeyFromBytes(src []byte) (PublicKey, error) {
	if err := checkWidth(src, PublicKeySize, "public key"); err != nil {
		return PublicKey{}, err
	}
	if _, err := btcec.ParsePubKey(src); err != nil {
		return PublicKey{}, fmt.Errorf("opaque: public key: %w: %v", ErrInvalidEncoding, err)
	}
	var p PublicKey
	copy(p[:], src)
	return p, nil
}

// PublicKeyFromHex decodes a 66-character hex string.
func PublicKeyFromHex(text string) (PublicKey, error) {
	var buf [PublicKeySize]byte
	if err := decodeHex(text, buf[:], "public key"); err != nil {
		return PublicKey{}, err
	}
	return PublicKeyFromBytes(buf[:])
}

// BTCEC parses the key into a btcec public key.
func (p PublicKey) BTCEC() (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(p[:])
}

func (p PublicKey) Bytes() []byte          { return cloneBytes(p[:]) }
func (p PublicKey) String() string         { return fixedhex.Encode(p[:]) }
func (p PublicKey) Equal(o PublicKey) bool { return equal(p[:], o[:]) }

// XOnlyPublicKey is a BIP-340 x-only public key.
type XOnlyPublicKey [XOnlyPublicKeySize]byte

// XOnlyPublicKeyFromBytes accepts a 32-byte x coordinate with a point on the
// curve.
func XOnlyPublicKeyFromBytes(src []byte) (XOnlyPublicKey, error) {
	if err := checkWidth(src, XOnlyPublicKeySize, "x-only public key"); err != nil {
		return XOnlyPublicKey{}, err
	}
	if _, err := schnorr.ParsePubKey(src); err != nil {
		return XOnlyPublicKey{}, fmt.Errorf("opaque: x-only public key: %w: %v", ErrInvalidEncoding, err)
	}
	var p XOnlyPublicKey
	copy(p[:], src)
	return p, nil
}

// XOnlyPublicKeyFromHex decodes a 64-character hex string.
func XOnlyPublicKeyFromHex(text string) (XOnlyPublicKey, error) {
	var buf [XOnlyPublicKeySize]byte
	if err := decodeHex(text, buf[:], "x-only public key"); err != nil {
		return XOnlyPublicKey{}, err
	}
	return XOnlyPublicKeyFromBytes(buf[:])
}

func (p XOnlyPublicKey) Bytes() []byte               { return cloneBytes(p[:]) }
func (p XOnlyPublicKey) String() string              { return fixedhex.Encode(p[:]) }
func (p XOnlyPublicKey) Equal(o XOnlyPublicKey) bool { return equal(p[:], o[:]) }

// Signature is a 64-byte BIP-340 Schnorr signature (r || s).
type Signature [SignatureSize]byte

// SignatureFromBytes accepts a signature whose r is a field element and whose
// s is below the group order.
func SignatureFromBytes(src []byte) (Signature, error) {
	if err := checkWidth(src, SignatureSize, "signature"); err != nil {
		return Signature{}, err
	}
	if _, err := schnorr.ParseSignature(src); err != nil {
		return Signature{}, fmt.Errorf("opaque: signature: %w: %v", ErrInvalidEncoding, err)
	}
	var s Signature
	copy(s[:], src)
	return s, nil
}

// SignatureFromHex decodes a 128-character hex string.
func SignatureFromHex(text string) (Signature, error) {
	var buf [SignatureSize]byte
	if err := decodeHex(text, buf[:], "signature"); err != nil {
		return Signature{}, err
	}
	return SignatureFromBytes(buf[:])
}

func (s Signature) Bytes() []byte          { return cloneBytes(s[:]) }
func (s Signature) String() string         { return fixedhex.Encode(s[:]) }
func (s Signature) Equal(o Signature) bool { return equal(s[:], o[:]) }
