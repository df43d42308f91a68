// Package crypto holds the key types shared by the apero server and clients
// and the sealing/signing primitives built on them.
package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	// SecretBoxKeySize must match the key size expected by nacl/secretbox.
	SecretBoxKeySize = 32

	PublicKeySize  = ed25519.PublicKeySize
	PrivateKeySize = ed25519.PrivateKeySize
	SignatureSize  = ed25519.SignatureSize

	nonceSize = 24

	// Overhead is the number of bytes a sealed box adds to its message.
	Overhead = nonceSize + secretbox.Overhead
)

var (
	ErrInvalidKeySize = errors.New("invalid key size")
	ErrUnableToOpen   = errors.New("unable to open box")
)

// SecretBoxKey is the pre-shared key used to seal every message exchanged
// between the server and its clients.
type SecretBoxKey [SecretBoxKeySize]byte

// NewSecretBoxKey returns a random key.
func NewSecretBoxKey() (SecretBoxKey, error) {
	var key SecretBoxKey
	if _, err := io.ReadFull(rand.Reader, key[:]); err != nil {
		return key, fmt.Errorf("read random data: %w", err)
	}
	return key, nil
}

// SecretBoxKeyFromString parses a base64 encoded key.
func SecretBoxKeyFromString(s string) (SecretBoxKey, error) {
	var key SecretBoxKey
	err := key.UnmarshalText([]byte(s))
	return key, err
}

// SecretBoxKeyFromBytes copies p into a key.
func SecretBoxKeyFromBytes(p []byte) (SecretBoxKey, error) {
	var key SecretBoxKey
	if len(p) != SecretBoxKeySize {
		return key, fmt.Errorf("secret box key: %w (%d bytes)", ErrInvalidKeySize, len(p))
	}
	copy(key[:], p)
	return key, nil
}

// IsValid reports whether the key is set.
func (k SecretBoxKey) IsValid() bool {
	var zero SecretBoxKey
	return k != zero
}

func (k SecretBoxKey) String() string {
	return base64.StdEncoding.EncodeToString(k[:])
}

func (k SecretBoxKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *SecretBoxKey) UnmarshalText(p []byte) error {
	data, err := base64.StdEncoding.DecodeString(string(p))
	if err != nil {
		return fmt.Errorf("secret box key: %w", err)
	}
	key, err := SecretBoxKeyFromBytes(data)
	if err != nil {
		return err
	}
	*k = key
	return nil
}

// PublicKey is the public half of an ed25519 key pair.
type PublicKey ed25519.PublicKey

func (k PublicKey) String() string {
	return base64.StdEncoding.EncodeToString(k)
}

func (k PublicKey) IsValid() bool {
	return len(k) == PublicKeySize
}

func (k PublicKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *PublicKey) UnmarshalText(p []byte) error {
	data, err := decodeKey(p, PublicKeySize)
	if err != nil {
		return fmt.Errorf("public key: %w", err)
	}
	*k = PublicKey(data)
	return nil
}

// PrivateKey is the private half of an ed25519 key pair.
type PrivateKey ed25519.PrivateKey

func (k PrivateKey) String() string {
	return base64.StdEncoding.EncodeToString(k)
}

func (k PrivateKey) IsValid() bool {
	return len(k) == PrivateKeySize
}

// Public returns the public key matching k.
func (k PrivateKey) Public() PublicKey {
	return PublicKey(ed25519.PrivateKey(k).Public().(ed25519.PublicKey))
}

func (k PrivateKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *PrivateKey) UnmarshalText(p []byte) error {
	data, err := decodeKey(p, PrivateKeySize)
	if err != nil {
		return fmt.Errorf("private key: %w", err)
	}
	*k = PrivateKey(data)
	return nil
}

func decodeKey(p []byte, size int) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(string(p))
	if err != nil {
		return nil, err
	}
	if len(data) != size {
		return nil, fmt.Errorf("%w (%d bytes)", ErrInvalidKeySize, len(data))
	}
	return data, nil
}

// GenerateKeyPair generates an ed25519 key pair.
func GenerateKeyPair() (PublicKey, PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	return PublicKey(pub), PrivateKey(priv), nil
}

// SecretBoxSeal seals data with key. The random nonce is prepended to the box.
func SecretBoxSeal(data []byte, key SecretBoxKey) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("read nonce: %w", err)
	}
	return secretbox.Seal(nonce[:], data, &nonce, (*[SecretBoxKeySize]byte)(&key)), nil
}

// SecretBoxOpen opens a box produced by SecretBoxSeal.
func SecretBoxOpen(box []byte, key SecretBoxKey) ([]byte, bool) {
	if len(box) < Overhead {
		return nil, false
	}

	var nonce [nonceSize]byte
	copy(nonce[:], box[:nonceSize])

	return secretbox.Open(nil, box[nonceSize:], &nonce, (*[SecretBoxKeySize]byte)(&key))
}

// Sign signs content with priv.
func Sign(priv PrivateKey, content []byte) []byte {
	return ed25519.Sign(ed25519.PrivateKey(priv), content)
}

// Verify reports whether signature is a valid signature of content by pub.
func Verify(pub PublicKey, content, signature []byte) bool {
	if !pub.IsValid() || len(signature) != SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), content, signature)
}

var (
	_ encoding.TextUnmarshaler = (*SecretBoxKey)(nil)
	_ encoding.TextUnmarshaler = (*PublicKey)(nil)
	_ encoding.TextUnmarshaler = (*PrivateKey)(nil)
)
