package feistel64

import (
	"bytes"
	"fmt"
)

// Session binds a master key to a cipher and exposes the text and hex
// oriented operations used by front ends.
type Session struct {
	cipher *Cipher
}

// NewSession creates a session from a key given as 16 hexadecimal characters.
func NewSession(hexKey string, opts ...Option) (*Session, error) {
	key, err := ParseKey(hexKey)
	if err != nil {
		return nil, err
	}
	return &Session{cipher: NewCipherFromKey(key, opts...)}, nil
}

// NewSessionFromPassphrase creates a session whose key is derived with
// KeyFromPassphrase.
func NewSessionFromPassphrase(passphrase, salt []byte, opts ...Option) (*Session, error) {
	key, err := KeyFromPassphrase(passphrase, salt)
	if err != nil {
		return nil, err
	}
	return &Session{cipher: NewCipherFromKey(key, opts...)}, nil
}

// Cipher returns the underlying cipher.
func (s *Session) Cipher() *Cipher {
	if s == nil {
		return nil
	}
	return s.cipher
}

// Encrypt pads plaintext with spaces to 8 bytes and encrypts it. It returns
// the ciphertext block and its hexadecimal form.
func (s *Session) Encrypt(plaintext []byte) (uint64, string, error) {
	if s == nil || s.cipher == nil {
		return 0, "", ErrNilCipher
	}
	if len(plaintext) > BlockSize {
		return 0, "", fmt.Errorf("%w: got %d bytes", ErrInputTooLong, len(plaintext))
	}

	padded := bytes.Repeat([]byte{' '}, BlockSize)
	copy(padded, plaintext)
	block, err := TextToBlock(padded)
	if err != nil {
		return 0, "", err
	}

	enc := s.cipher.EncryptBlock(block)
	return enc, FormatBlockHex(enc), nil
}

// Decrypt decrypts a block given as 16 hexadecimal characters. It returns the
// raw 8 plaintext bytes and the same bytes as a string with trailing spaces
// removed.
func (s *Session) Decrypt(hexBlock string) ([BlockSize]byte, string, error) {
	if s == nil || s.cipher == nil {
		return [BlockSize]byte{}, "", ErrNilCipher
	}

	block, err := ParseBlockHex(hexBlock)
	if err != nil {
		return [BlockSize]byte{}, "", err
	}

	plain := BlockToText(s.cipher.DecryptBlock(block))
	return plain, string(bytes.TrimRight(plain[:], " ")), nil
}

// Avalanche runs Cipher.Avalanche on up to 8 bytes of zero-padded input.
func (s *Session) Avalanche(input []byte) (AvalancheResult, error) {
	block, err := s.inputBlock(input)
	if err != nil {
		return AvalancheResult{}, err
	}
	return s.cipher.Avalanche(block), nil
}

// Differential runs Cipher.Differential on up to 8 bytes of zero-padded input.
func (s *Session) Differential(input []byte) (DifferentialResult, error) {
	block, err := s.inputBlock(input)
	if err != nil {
		return DifferentialResult{}, err
	}
	return s.cipher.Differential(block), nil
}

// Linear runs Cipher.Linear on up to 8 bytes of zero-padded input.
func (s *Session) Linear(input []byte) (LinearResult, error) {
	block, err := s.inputBlock(input)
	if err != nil {
		return LinearResult{}, err
	}
	return s.cipher.Linear(block), nil
}

// AvalancheSweep runs Cipher.AvalancheSweep on up to 8 bytes of zero-padded input.
func (s *Session) AvalancheSweep(input []byte) (SweepResult, error) {
	block, err := s.inputBlock(input)
	if err != nil {
		return SweepResult{}, err
	}
	return s.cipher.AvalancheSweep(block), nil
}

func (s *Session) inputBlock(input []byte) (uint64, error) {
	if s == nil || s.cipher == nil {
		return 0, ErrNilCipher
	}
	return TextToBlock(input)
}
