package feistel64

import (
	"math/rand"
	"testing"
)

func TestMix(t *testing.T) {
	set := DefaultSBoxes()

	testCases := []struct {
		name  string
		half  uint32
		round int
		want  uint32
	}{
		{"ascii", 0x41424344, 0, 0x0001D000},
		{"equal_bytes_cancel", 0x12121212, 5, 0},
		{"equal_pairs_cancel", 0x12341234, 7, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mix(tc.half, &set[tc.round]); got != tc.want {
				t.Errorf("mix(%08X, %d) = %08X, want %08X", tc.half, tc.round, got, tc.want)
			}
		})
	}
}

func TestKeyedMix(t *testing.T) {
	set := DefaultSBoxes()

	if got := keyedMix(0x41424344, &set[0], 0xB6); got != 0x0003B400 {
		t.Errorf("keyedMix() = %08X, want 0003B400", got)
	}
	if keyedMix(0x41424344, &set[0], 0) != mix(0x41424344, &set[0]) {
		t.Error("keyedMix with a zero key should equal mix")
	}
}

func TestPermute(t *testing.T) {
	testCases := []struct {
		name                string
		left, right         uint32
		wantLeft, wantRight uint32
	}{
		{"ascii", 0x41424344, 0x45464748, 0x8BAD49EA, 0xE8781732},
		{"low_bit", 0, 1, 0, 0x01000000},
		{"zero", 0, 0, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, r := permute(tc.left, tc.right)
			if l != tc.wantLeft || r != tc.wantRight {
				t.Errorf("permute(%08X, %08X) = (%08X, %08X), want (%08X, %08X)",
					tc.left, tc.right, l, r, tc.wantLeft, tc.wantRight)
			}
		})
	}
}

func TestPermuteInverse(t *testing.T) {
	edges := []uint32{0, 1, 0x80000000, 0xFFFFFFFF, 0x0000FFFF, 0xFFFF0000, 0xAAAAAAAA, 0x55555555}
	for _, l := range edges {
		for _, r := range edges {
			gl, gr := invPermute(permute(l, r))
			if gl != l || gr != r {
				t.Errorf("invPermute(permute(%08X, %08X)) = (%08X, %08X)", l, r, gl, gr)
			}
			gl, gr = permute(invPermute(l, r))
			if gl != l || gr != r {
				t.Errorf("permute(invPermute(%08X, %08X)) = (%08X, %08X)", l, r, gl, gr)
			}
		}
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100000; i++ {
		l, r := rng.Uint32(), rng.Uint32()
		gl, gr := invPermute(permute(l, r))
		if gl != l || gr != r {
			t.Fatalf("invPermute(permute(%08X, %08X)) = (%08X, %08X)", l, r, gl, gr)
		}
	}
}
