package sain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBWTRoundTrip checks the round-trip law from spec.md §8: for any byte
// string, InverseBWT(BWT(data)) reproduces data exactly.
func TestBWTRoundTrip(t *testing.T) {
	tests := map[string][]byte{
		"banana":          []byte("banana"),
		"mississippi":     []byte("mississippi"),
		"single byte":     []byte("x"),
		"repeated":        []byte("aaaaaaaaaa"),
		"all byte values": allByteValues(),
		"binary-ish":      {0x00, 0xff, 0x00, 0xff, 0x7f, 0x01},
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			result := BWT(data)
			assert.Equal(t, len(data), len(result.Data))
			got := InverseBWT(result)
			assert.Equal(t, data, got)
		})
	}
}

func TestBWTRoundTrip_random(t *testing.T) {
	for _, length := range []int{0, 1, 2, 17, 256, 1030} {
		data := genRandText(length, 256)
		result := BWT(data)
		got := InverseBWT(result)
		// Compared as strings: for length 0 InverseBWT returns nil (see
		// TestBWTEmpty) while data is an empty, non-nil slice.
		assert.Equal(t, string(data), string(got), "length=%d", length)
	}
}

func TestBWTEmpty(t *testing.T) {
	result := BWT(nil)
	assert.Equal(t, BWTResult{}, result)
	assert.Nil(t, InverseBWT(result))
}

func allByteValues() []byte {
	out := make([]byte, 256)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}
