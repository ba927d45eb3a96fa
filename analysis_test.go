package feistel64

import (
	"math/bits"
	"slices"
	"testing"
)

func TestAvalanche(t *testing.T) {
	c := NewCipherFromKey(0x0123456789ABCDEF)

	res := c.Avalanche(0x4142434445464748)
	if res.Original != 0x8234B5E019F507CE {
		t.Errorf("Original = %016X, want 8234B5E019F507CE", res.Original)
	}
	if res.Flipped != 0x7B55AE392ADB61C8 {
		t.Errorf("Flipped = %016X, want 7B55AE392ADB61C8", res.Flipped)
	}
	if res.BitsChanged != 32 || res.Percent != 50 {
		t.Errorf("Avalanche = %d bits (%d%%), want 32 bits (50%%)", res.BitsChanged, res.Percent)
	}
}

// TestAvalancheNonTrivial checks that a single flipped bit always changes the
// ciphertext for a spread of keys and inputs
func TestAvalancheNonTrivial(t *testing.T) {
	for _, opts := range [][]Option{nil, {WithRoundKeyMixing()}} {
		for i := 0; i < 50; i++ {
			c := NewCipherFromKey(randomUint64(t), opts...)
			block := randomUint64(t)
			res := c.Avalanche(block)
			if res.BitsChanged == 0 {
				t.Fatalf("flipping bit 0 of %016X changed no output bits", block)
			}
			if res.BitsChanged != bits.OnesCount64(res.Original^res.Flipped) {
				t.Fatalf("BitsChanged = %d disagrees with the ciphertexts", res.BitsChanged)
			}
			if res.Percent != res.BitsChanged*100/64 {
				t.Fatalf("Percent = %d, want %d", res.Percent, res.BitsChanged*100/64)
			}
		}
	}
}

func TestDifferential(t *testing.T) {
	c := NewCipherFromKey(0xFFFFFFFFFFFFFFFF)

	res := c.Differential(0x5445535454455354) // "TESTTEST"
	if res.Differential != 0x9996D6063BC399D8 {
		t.Errorf("Differential = %016X, want 9996D6063BC399D8", res.Differential)
	}
	if len(res.Positions) == 0 {
		t.Fatal("Differential reported no flipped bits")
	}
	if len(res.Positions) != 32 {
		t.Errorf("len(Positions) = %d, want 32", len(res.Positions))
	}
	if !slices.Equal(res.Positions[:4], []int{3, 4, 6, 7}) {
		t.Errorf("Positions start with %v, want [3 4 6 7]", res.Positions[:4])
	}
	if !slices.IsSorted(res.Positions) {
		t.Errorf("Positions are not ascending: %v", res.Positions)
	}

	var rebuilt uint64
	for _, p := range res.Positions {
		rebuilt |= 1 << uint(p)
	}
	if rebuilt != res.Differential {
		t.Errorf("Positions rebuild %016X, want %016X", rebuilt, res.Differential)
	}
}

func TestLinear(t *testing.T) {
	c := NewCipherFromKey(0x0123456789ABCDEF)

	testCases := []struct {
		name      string
		block     uint64
		in, out   int
		wantLabel Correlation
	}{
		{"ABCDEFGH", 0x4142434445464748, 1, 0, CorrelationLow},
		{"TESTTEST", 0x5445535454455354, 0, 1, CorrelationLow},
		{"12345678", 0x3132333435363738, 1, 1, CorrelationHigh},
		{"HELLO", 0x48454C4C4F000000, 0, 0, CorrelationHigh},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := c.Linear(tc.block)
			if res.InputParity != tc.in || res.OutputParity != tc.out {
				t.Errorf("parities = (%d, %d), want (%d, %d)", res.InputParity, res.OutputParity, tc.in, tc.out)
			}
			if res.Correlation != tc.wantLabel {
				t.Errorf("Correlation = %v, want %v", res.Correlation, tc.wantLabel)
			}
		})
	}
}

func TestCorrelationString(t *testing.T) {
	if CorrelationHigh.String() != "High Correlation" {
		t.Errorf("CorrelationHigh.String() = %q", CorrelationHigh.String())
	}
	if CorrelationLow.String() != "Low Correlation" {
		t.Errorf("CorrelationLow.String() = %q", CorrelationLow.String())
	}
}

func TestAvalancheSweep(t *testing.T) {
	c := NewCipherFromKey(0x0123456789ABCDEF)

	res := c.AvalancheSweep(0x4142434445464748)
	if res.Min != 26 || res.Max != 46 {
		t.Errorf("Min, Max = %d, %d, want 26, 46", res.Min, res.Max)
	}
	if res.Mean != 32.171875 {
		t.Errorf("Mean = %v, want 32.171875", res.Mean)
	}
	if res.PerBit[0] != c.Avalanche(0x4142434445464748).BitsChanged {
		t.Errorf("PerBit[0] = %d disagrees with Avalanche", res.PerBit[0])
	}
	for i, n := range res.PerBit {
		if n < res.Min || n > res.Max {
			t.Errorf("PerBit[%d] = %d outside [%d, %d]", i, n, res.Min, res.Max)
		}
	}
}

func TestSetBits(t *testing.T) {
	testCases := []struct {
		v    uint64
		want []int
	}{
		{0, []int{}},
		{1, []int{0}},
		{0x8000000000000001, []int{0, 63}},
		{0b1011_0000, []int{4, 5, 7}},
	}
	for _, tc := range testCases {
		if got := setBits(tc.v); !slices.Equal(got, tc.want) {
			t.Errorf("setBits(%X) = %v, want %v", tc.v, got, tc.want)
		}
	}
}

func BenchmarkAvalancheSweep(b *testing.B) {
	c := NewCipherFromKey(0x0123456789ABCDEF)
	for i := 0; i < b.N; i++ {
		_ = c.AvalancheSweep(uint64(i))
	}
}
