// Package protocol defines the JSON payloads exchanged with the apero API.
// Every payload travels inside a secretbox sealed with the pre-shared key.
package protocol

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/GustavoCaso/apero/internal/crypto"
)

// ListSignedContent is what clients sign for a list request, which has no
// content of its own.
var ListSignedContent = []byte("L")

var ErrInvalidPayload = errors.New("invalid payload")

type CopyRequest struct {
	Content   []byte `json:"content"`
	Signature []byte `json:"signature"`
}

func (r CopyRequest) Validate() error {
	if len(r.Content) == 0 {
		return fmt.Errorf("%w: content is empty", ErrInvalidPayload)
	}
	return validateSignature(r.Signature)
}

// EntryRequest targets a single entry, used by move and paste.
// A nil ID targets the most recent entry. The signature covers the 16 ID bytes.
type EntryRequest struct {
	ID        uuid.UUID `json:"id"`
	Signature []byte    `json:"signature"`
}

func (r EntryRequest) Validate() error {
	return validateSignature(r.Signature)
}

// SignedContent returns the bytes covered by the signature.
func (r EntryRequest) SignedContent() []byte {
	return r.ID[:]
}

type ListRequest struct {
	Signature []byte `json:"signature"`
}

func (r ListRequest) Validate() error {
	return validateSignature(r.Signature)
}

type ListResponse struct {
	Entries []uuid.UUID `json:"entries"`
}

func validateSignature(sig []byte) error {
	if len(sig) != crypto.SignatureSize {
		return fmt.Errorf("%w: signature is not the correct size", ErrInvalidPayload)
	}
	return nil
}
