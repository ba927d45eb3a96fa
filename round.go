package feistel64

import "math/bits"

// mix is the round function. It is never inverted; the Feistel structure
// provides reversibility.
func mix(half uint32, sbox *SBox) uint32 {
	res := uint32(sbox[half>>24]) ^
		uint32(sbox[byte(half>>16)]) ^
		uint32(sbox[byte(half>>8)]) ^
		uint32(sbox[byte(half)])
	res = bits.RotateLeft32(res, 7)
	res ^= res >> 16
	return bits.RotateLeft32(res, 3)
}

// keyedMix feeds the round key into mix by XORing it into every byte of the
// half block first.
func keyedMix(half uint32, sbox *SBox, key byte) uint32 {
	return mix(half^uint32(key)*0x01010101, sbox)
}

// permute is the key-independent diffusion step applied after every
// encryption round.
func permute(left, right uint32) (uint32, uint32) {
	left ^= right >> 3
	right ^= left << 5
	return bits.RotateLeft32(left, 16), bits.RotateLeft32(right, -8)
}

// invPermute undoes permute.
func invPermute(left, right uint32) (uint32, uint32) {
	right = bits.RotateLeft32(right, 8)
	left = bits.RotateLeft32(left, 16)
	right ^= left << 5
	left ^= right >> 3
	return left, right
}
