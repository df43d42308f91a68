// Package provisioning renders the pre-shared key in the two forms shown on
// the provisioning screen and parses them back.
package provisioning

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"

	"github.com/GustavoCaso/apero/internal/crypto"
)

const (
	// HexGroups is the number of hex groups a key is split into.
	HexGroups = 8
	groupSize = crypto.SecretBoxKeySize / HexGroups

	// MnemonicWords is the number of words encoding a 32 byte key.
	MnemonicWords = 24
)

var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// Data is what a new device needs to be provisioned.
type Data struct {
	Mnemonic []string
	Hex      [HexGroups]string
}

// New builds the provisioning data for key.
func New(key crypto.SecretBoxKey) (Data, error) {
	var data Data

	for i := 0; i < HexGroups; i++ {
		data.Hex[i] = hex.EncodeToString(key[i*groupSize : (i+1)*groupSize])
	}

	mnemonic, err := bip39.NewMnemonic(key[:])
	if err != nil {
		return Data{}, fmt.Errorf("encode mnemonic: %w", err)
	}
	data.Mnemonic = strings.Fields(mnemonic)

	return data, nil
}

// KeyFromMnemonic decodes the words produced by New.
func KeyFromMnemonic(words []string) (crypto.SecretBoxKey, error) {
	if len(words) != MnemonicWords {
		return crypto.SecretBoxKey{}, fmt.Errorf("%w: expected %d words, got %d", ErrInvalidMnemonic, MnemonicWords, len(words))
	}

	entropy, err := bip39.EntropyFromMnemonic(strings.ToLower(strings.Join(words, " ")))
	if err != nil {
		return crypto.SecretBoxKey{}, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}

	return crypto.SecretBoxKeyFromBytes(entropy)
}

// KeyFromHex decodes hex groups. Groups may also be passed as a single
// string, whitespace is ignored.
func KeyFromHex(groups ...string) (crypto.SecretBoxKey, error) {
	s := strings.Join(strings.Fields(strings.Join(groups, " ")), "")

	data, err := hex.DecodeString(s)
	if err != nil {
		return crypto.SecretBoxKey{}, fmt.Errorf("decode hex key: %w", err)
	}

	return crypto.SecretBoxKeyFromBytes(data)
}
