package feistel64

import "errors"

var (
	// ErrInvalidKeySize is returned when a raw key is not exactly 8 bytes.
	ErrInvalidKeySize = errors.New("feistel64: invalid key size, must be 8 bytes")

	// ErrInvalidKeyFormat is returned when a hex key is not exactly 16 hexadecimal characters.
	ErrInvalidKeyFormat = errors.New("feistel64: key must be exactly 16 hexadecimal characters")

	// ErrInvalidCiphertextFormat is returned when a hex ciphertext is not exactly
	// 16 hexadecimal characters.
	ErrInvalidCiphertextFormat = errors.New("feistel64: ciphertext must be exactly 16 hexadecimal characters")

	// ErrInputTooLong is returned when a plaintext exceeds the 8-byte block size.
	// Longer inputs are rejected, never truncated.
	ErrInputTooLong = errors.New("feistel64: input exceeds 8 bytes")

	// ErrNilCipher is returned when attempting to use a nil cipher instance.
	ErrNilCipher = errors.New("feistel64: cipher instance is nil")

	// ErrEmptyPassphrase is returned when deriving a key from an empty passphrase.
	ErrEmptyPassphrase = errors.New("feistel64: passphrase is empty")
)

const (
	// Rounds is the number of Feistel rounds applied to every block.
	Rounds = 32

	// BlockSize is the cipher block size in bytes.
	BlockSize = 8

	// KeySize is the master key size in bytes.
	KeySize = 8
)
