package feistel64

import (
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// kdfInfo separates master key derivation from other uses of the passphrase.
var kdfInfo = []byte("feistel64 master key")

// KeyFromPassphrase derives a 64-bit master key from a passphrase using
// HKDF-SHA-512. An empty salt is replaced by a block of zeros.
func KeyFromPassphrase(passphrase, salt []byte) (uint64, error) {
	if len(passphrase) == 0 {
		return 0, ErrEmptyPassphrase
	}
	if len(salt) == 0 {
		salt = make([]byte, sha512.Size)
	}

	reader := hkdf.New(sha512.New, passphrase, salt, kdfInfo)
	var key [KeySize]byte
	if _, err := io.ReadFull(reader, key[:]); err != nil {
		return 0, fmt.Errorf("feistel64: failed to derive key: %w", err)
	}

	return binary.BigEndian.Uint64(key[:]), nil
}
