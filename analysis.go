package feistel64

import "math/bits"

// lsbDelta is the input difference used by the single-bit tests.
const lsbDelta uint64 = 1

// Correlation labels the outcome of the parity test.
type Correlation int

const (
	// CorrelationLow means input and output parities differ.
	CorrelationLow Correlation = iota
	// CorrelationHigh means input and output parities match.
	CorrelationHigh
)

func (c Correlation) String() string {
	if c == CorrelationHigh {
		return "High Correlation"
	}
	return "Low Correlation"
}

// AvalancheResult reports how many ciphertext bits change when the least
// significant plaintext bit is flipped.
type AvalancheResult struct {
	Original    uint64 // ciphertext of the input block
	Flipped     uint64 // ciphertext of the input block with bit 0 flipped
	BitsChanged int
	Percent     int // BitsChanged*100/64, rounded down
}

// DifferentialResult is the XOR of the ciphertexts of two blocks that differ
// in bit 0, with the positions of its set bits.
type DifferentialResult struct {
	Differential uint64
	Positions    []int // ascending, bit 0 is the least significant
}

// LinearResult compares the parity of a block with the parity of its
// ciphertext. It is a single-sample heuristic.
type LinearResult struct {
	InputParity  int
	OutputParity int
	Correlation  Correlation
}

// SweepResult summarizes the avalanche effect of flipping each input bit.
type SweepResult struct {
	PerBit [64]int // ciphertext bits changed when input bit i is flipped
	Min    int
	Max    int
	Mean   float64
}

// Avalanche encrypts block and block with its lowest bit flipped and counts
// the ciphertext bits that differ.
func (c *Cipher) Avalanche(block uint64) AvalancheResult {
	enc1 := c.EncryptBlock(block)
	enc2 := c.EncryptBlock(block ^ lsbDelta)
	diff := bits.OnesCount64(enc1 ^ enc2)
	return AvalancheResult{
		Original:    enc1,
		Flipped:     enc2,
		BitsChanged: diff,
		Percent:     diff * 100 / 64,
	}
}

// Differential encrypts block and block with its lowest bit flipped and
// reports the output difference.
func (c *Cipher) Differential(block uint64) DifferentialResult {
	diff := c.EncryptBlock(block) ^ c.EncryptBlock(block^lsbDelta)
	return DifferentialResult{
		Differential: diff,
		Positions:    setBits(diff),
	}
}

// Linear compares the XOR of all plaintext bits with the XOR of all
// ciphertext bits for one encryption.
func (c *Cipher) Linear(block uint64) LinearResult {
	in := parity(block)
	out := parity(c.EncryptBlock(block))
	res := LinearResult{InputParity: in, OutputParity: out}
	if in == out {
		res.Correlation = CorrelationHigh
	}
	return res
}

// AvalancheSweep flips every input bit in turn and records how many
// ciphertext bits change each time.
func (c *Cipher) AvalancheSweep(block uint64) SweepResult {
	base := c.EncryptBlock(block)
	res := SweepResult{Min: 64}
	total := 0
	for i := 0; i < 64; i++ {
		n := bits.OnesCount64(base ^ c.EncryptBlock(block^(1<<uint(i))))
		res.PerBit[i] = n
		total += n
		if n < res.Min {
			res.Min = n
		}
		if n > res.Max {
			res.Max = n
		}
	}
	res.Mean = float64(total) / 64
	return res
}

func parity(v uint64) int {
	return bits.OnesCount64(v) & 1
}

func setBits(v uint64) []int {
	positions := make([]int, 0, bits.OnesCount64(v))
	for v != 0 {
		i := bits.TrailingZeros64(v)
		positions = append(positions, i)
		v &= v - 1
	}
	return positions
}
