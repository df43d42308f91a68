package provisioning

import (
	"errors"
	"strings"
	"testing"

	"github.com/GustavoCaso/apero/internal/crypto"
)

func testKey() crypto.SecretBoxKey {
	var key crypto.SecretBoxKey
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

func TestNewHex(t *testing.T) {
	data, err := New(testKey())
	if err != nil {
		t.Fatal(err)
	}

	exp := [HexGroups]string{
		"00010203", "04050607", "08090a0b", "0c0d0e0f",
		"10111213", "14151617", "18191a1b", "1c1d1e1f",
	}
	if data.Hex != exp {
		t.Fatalf("expected %v but got %v", exp, data.Hex)
	}
}

func TestNewMnemonic(t *testing.T) {
	data, err := New(testKey())
	if err != nil {
		t.Fatal(err)
	}

	if got := len(data.Mnemonic); got != MnemonicWords {
		t.Fatalf("expected %d words but got %d", MnemonicWords, got)
	}
	if data.Mnemonic[0] != "abandon" {
		t.Errorf("first word = %q, want %q", data.Mnemonic[0], "abandon")
	}
}

func TestRoundTrip(t *testing.T) {
	key, err := crypto.NewSecretBoxKey()
	if err != nil {
		t.Fatal(err)
	}

	data, err := New(key)
	if err != nil {
		t.Fatal(err)
	}

	fromWords, err := KeyFromMnemonic(data.Mnemonic)
	if err != nil {
		t.Fatal(err)
	}
	if fromWords != key {
		t.Errorf("mnemonic decoded to %s, want %s", fromWords, key)
	}

	fromHex, err := KeyFromHex(data.Hex[:]...)
	if err != nil {
		t.Fatal(err)
	}
	if fromHex != key {
		t.Errorf("hex decoded to %s, want %s", fromHex, key)
	}

	fromLine, err := KeyFromHex(strings.Join(data.Hex[:], " "))
	if err != nil {
		t.Fatal(err)
	}
	if fromLine != key {
		t.Errorf("hex line decoded to %s, want %s", fromLine, key)
	}
}

func TestKeyFromMnemonicErrors(t *testing.T) {
	if _, err := KeyFromMnemonic([]string{"abandon"}); !errors.Is(err, ErrInvalidMnemonic) {
		t.Errorf("expected ErrInvalidMnemonic, got %v", err)
	}

	words := make([]string, MnemonicWords)
	for i := range words {
		words[i] = "zzzz"
	}
	if _, err := KeyFromMnemonic(words); !errors.Is(err, ErrInvalidMnemonic) {
		t.Errorf("expected ErrInvalidMnemonic, got %v", err)
	}
}

func TestKeyFromHexErrors(t *testing.T) {
	if _, err := KeyFromHex("zz"); err == nil {
		t.Error("expected an error for invalid hex")
	}
	if _, err := KeyFromHex("0001"); !errors.Is(err, crypto.ErrInvalidKeySize) {
		t.Errorf("expected ErrInvalidKeySize, got %v", err)
	}
}
