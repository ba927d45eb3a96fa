package feistel64

import "math/bits"

// keyScheduleConstant is XORed into the master key before mixing.
const keyScheduleConstant = 0xA5A5A5A5A5A5A5A5

// RoundKeys holds one scheduled key byte per round.
type RoundKeys [Rounds]byte

// mixHash folds the master key and a round index into a 64-bit value.
func mixHash(key uint64, round int) uint64 {
	h := key ^ keyScheduleConstant
	for j := 0; j < 8; j++ {
		h = bits.RotateLeft64(h, 7) ^ uint64(round*157+j*73)
		h ^= (h << 11) ^ (h >> 3)
	}
	return h
}

// GenerateRoundKeys derives the round keys for a master key.
// Round i takes byte (i mod 8) of mixHash(key, i), counting from the least
// significant byte. Distinct rounds may share a key.
func GenerateRoundKeys(key uint64) RoundKeys {
	var rk RoundKeys
	for i := range rk {
		rk[i] = byte(mixHash(key, i) >> (8 * uint(i%8)))
	}
	return rk
}
