package feistel64

import "sync"

const (
	// sboxModulus is the prime used to build the substitution tables.
	sboxModulus = 257
	// sboxRoundStride offsets the table input for each round.
	sboxRoundStride = 17
	// sboxInputMask is XORed into the shifted input before inversion.
	sboxInputMask = 0x5F
)

// SBox maps a byte to the modular inverse of its transformed value mod 257.
// Every inverse of a residue in 1..255 is itself in 1..255, so a byte holds it.
type SBox [256]uint8

// SBoxSet holds one substitution table per round.
type SBoxSet [Rounds]SBox

var (
	defaultSBoxes     *SBoxSet
	defaultSBoxesOnce sync.Once
)

// modInverse returns x in 1..255 with a*x ≡ 1 (mod 257), or 0 if there is none.
func modInverse(a int) int {
	for x := 1; x < 256; x++ {
		if (a*x)%sboxModulus == 1 {
			return x
		}
	}
	return 0
}

// sboxInput returns the residue whose inverse fills entry v of a round's table.
func sboxInput(round, v int) int {
	val := (v + round*sboxRoundStride) % 256
	in := val ^ sboxInputMask
	if in == 0 {
		in = 1
	}
	return in
}

// GenerateSBox builds the substitution table for a round.
// The table depends only on the round index.
func GenerateSBox(round int) SBox {
	var s SBox
	for v := range s {
		s[v] = uint8(modInverse(sboxInput(round, v)))
	}
	return s
}

// NewSBoxSet builds the tables for all rounds.
func NewSBoxSet() *SBoxSet {
	set := new(SBoxSet)
	for round := range set {
		set[round] = GenerateSBox(round)
	}
	return set
}

// DefaultSBoxes returns the process-wide table set, building it on first use.
// The returned set must not be modified.
func DefaultSBoxes() *SBoxSet {
	defaultSBoxesOnce.Do(func() {
		defaultSBoxes = NewSBoxSet()
	})
	return defaultSBoxes
}
