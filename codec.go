package feistel64

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// TextToBlock packs up to 8 bytes into a block, first byte in the most
// significant position. Missing trailing bytes are zero.
func TextToBlock(text []byte) (uint64, error) {
	if len(text) > BlockSize {
		return 0, fmt.Errorf("%w: got %d bytes", ErrInputTooLong, len(text))
	}
	var buf [BlockSize]byte
	copy(buf[:], text)
	return binary.BigEndian.Uint64(buf[:]), nil
}

// BlockToText unpacks a block into 8 bytes, most significant byte first.
func BlockToText(block uint64) [BlockSize]byte {
	var buf [BlockSize]byte
	binary.BigEndian.PutUint64(buf[:], block)
	return buf
}

// parseHex64 decodes exactly 16 hexadecimal characters of either case.
func parseHex64(s string) (uint64, bool) {
	if len(s) != 2*BlockSize {
		return 0, false
	}
	var buf [BlockSize]byte
	if _, err := hex.Decode(buf[:], []byte(s)); err != nil {
		return 0, false
	}
	return binary.BigEndian.Uint64(buf[:]), true
}

// ParseKey decodes a master key given as 16 hexadecimal characters.
func ParseKey(s string) (uint64, error) {
	key, ok := parseHex64(s)
	if !ok {
		return 0, fmt.Errorf("%w: got %d characters", ErrInvalidKeyFormat, len(s))
	}
	return key, nil
}

// ParseBlockHex decodes a ciphertext block given as 16 hexadecimal characters.
func ParseBlockHex(s string) (uint64, error) {
	block, ok := parseHex64(s)
	if !ok {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidCiphertextFormat, s)
	}
	return block, nil
}

// FormatBlockHex renders a block as 16 uppercase hexadecimal characters.
func FormatBlockHex(block uint64) string {
	return fmt.Sprintf("%016X", block)
}

// FormatBlockBinary renders a block as 64 binary digits in groups of eight.
func FormatBlockBinary(block uint64) string {
	var sb strings.Builder
	sb.Grow(64 + 7)
	for i := 63; i >= 0; i-- {
		sb.WriteByte('0' + byte(block>>uint(i)&1))
		if i%8 == 0 && i > 0 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
