package feistel64

import (
	"encoding/binary"
	"fmt"
)

// Cipher is a 32-round Feistel network over 64-bit blocks.
// A Cipher is immutable once built and safe for concurrent use.
type Cipher struct {
	key            uint64
	roundKeys      RoundKeys
	sboxes         *SBoxSet
	roundKeyMixing bool
}

// RoundState is the pair of halves after one round has been applied.
type RoundState struct {
	Round int
	Left  uint32
	Right uint32
}

// Block returns the state as a 64-bit block.
func (s RoundState) Block() uint64 {
	return join(s.Left, s.Right)
}

// NewCipher creates a cipher from an 8-byte big-endian master key.
func NewCipher(key []byte, opts ...Option) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, len(key))
	}
	return NewCipherFromKey(binary.BigEndian.Uint64(key), opts...), nil
}

// NewCipherFromKey creates a cipher from a 64-bit master key.
func NewCipherFromKey(key uint64, opts ...Option) *Cipher {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sboxes == nil {
		cfg.sboxes = DefaultSBoxes()
	}

	return &Cipher{
		key:            key,
		roundKeys:      GenerateRoundKeys(key),
		sboxes:         cfg.sboxes,
		roundKeyMixing: cfg.roundKeyMixing,
	}
}

// Key returns the master key.
func (c *Cipher) Key() uint64 {
	if c == nil {
		return 0
	}
	return c.key
}

// RoundKeys returns the scheduled round keys.
func (c *Cipher) RoundKeys() RoundKeys {
	if c == nil {
		return RoundKeys{}
	}
	return c.roundKeys
}

// BlockSize returns the cipher block size in bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the first block of src into dst.
// dst and src must overlap entirely or not at all.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("feistel64: input not full block")
	}
	if len(dst) < BlockSize {
		panic("feistel64: output not full block")
	}
	binary.BigEndian.PutUint64(dst, c.EncryptBlock(binary.BigEndian.Uint64(src)))
}

// Decrypt decrypts the first block of src into dst.
// dst and src must overlap entirely or not at all.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("feistel64: input not full block")
	}
	if len(dst) < BlockSize {
		panic("feistel64: output not full block")
	}
	binary.BigEndian.PutUint64(dst, c.DecryptBlock(binary.BigEndian.Uint64(src)))
}

// EncryptBlock runs the 32 forward rounds over a block.
// A nil cipher returns the block unchanged.
func (c *Cipher) EncryptBlock(block uint64) uint64 {
	if c == nil {
		return block
	}
	return c.forwardRounds(block, nil)
}

// DecryptBlock runs the 32 rounds in reverse, undoing EncryptBlock.
// A nil cipher returns the block unchanged.
func (c *Cipher) DecryptBlock(block uint64) uint64 {
	if c == nil {
		return block
	}
	return c.inverseRounds(block, nil)
}

// EncryptTrace encrypts a block and also returns the state after each round.
func (c *Cipher) EncryptTrace(block uint64) (uint64, []RoundState) {
	if c == nil {
		return block, nil
	}
	trace := make([]RoundState, Rounds)
	return c.forwardRounds(block, trace), trace
}

// DecryptTrace decrypts a block and also returns the state after each round,
// in processing order (round 31 first).
func (c *Cipher) DecryptTrace(block uint64) (uint64, []RoundState) {
	if c == nil {
		return block, nil
	}
	trace := make([]RoundState, Rounds)
	return c.inverseRounds(block, trace), trace
}

// roundFunction applies mix for a round, with the round key if enabled.
func (c *Cipher) roundFunction(half uint32, round int) uint32 {
	sbox := &c.sboxes[round]
	if c.roundKeyMixing {
		return keyedMix(half, sbox, c.roundKeys[round])
	}
	return mix(half, sbox)
}

// forwardRounds applies every encryption round. If trace is non-nil it
// receives one entry per round.
func (c *Cipher) forwardRounds(block uint64, trace []RoundState) uint64 {
	left, right := split(block)

	for round := 0; round < Rounds; round++ {
		left, right = right, left^c.roundFunction(right, round)
		left, right = permute(left, right)
		if trace != nil {
			trace[round] = RoundState{Round: round, Left: left, Right: right}
		}
	}

	return join(left, right)
}

// inverseRounds applies every decryption round, last round first. If trace is
// non-nil it receives one entry per round in processing order.
func (c *Cipher) inverseRounds(block uint64, trace []RoundState) uint64 {
	left, right := split(block)

	for round := Rounds - 1; round >= 0; round-- {
		left, right = invPermute(left, right)
		left, right = right^c.roundFunction(left, round), left
		if trace != nil {
			trace[Rounds-1-round] = RoundState{Round: round, Left: left, Right: right}
		}
	}

	return join(left, right)
}

func split(block uint64) (left, right uint32) {
	return uint32(block >> 32), uint32(block)
}

func join(left, right uint32) uint64 {
	return uint64(left)<<32 | uint64(right)
}
