package sain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDNASequence_basic(t *testing.T) {
	seq := NewDNASequence("acgtACGT")
	assert.Equal(t, 8, seq.TotalLength())
	assert.Equal(t, 4, seq.AlphabetSize())
	assert.False(t, seq.HasSpecialRanges())

	for i, want := range []int{0, 1, 2, 3, 0, 1, 2, 3} {
		code, special := seq.CharAt(i)
		assert.False(t, special, "position %d", i)
		assert.Equal(t, want, code, "position %d", i)
	}
	assert.Equal(t, 2, seq.CharCount(0))
}

func TestNewDNASequence_specialRanges(t *testing.T) {
	seq := NewDNASequence("ACGNNNTTA")
	assert.True(t, seq.HasSpecialRanges())
	assert.Equal(t, []Range{{3, 6}}, seq.SpecialRanges())

	_, special := seq.CharAt(4)
	assert.True(t, special)
	_, special = seq.CharAt(0)
	assert.False(t, special)
}

func TestNewDNASequence_multipleSpecialRanges(t *testing.T) {
	seq := NewDNASequence("ANCNNT")
	assert.Equal(t, []Range{{1, 2}, {3, 5}}, seq.SpecialRanges())
}

func TestDNASequence_complement(t *testing.T) {
	seq := NewDNASequence("ACGT")
	assert.Equal(t, 3, seq.Complement(0)) // A <-> T
	assert.Equal(t, 2, seq.Complement(1)) // C <-> G
	assert.Equal(t, 1, seq.Complement(2))
	assert.Equal(t, 0, seq.Complement(3))
}

// TestSortSuffixesEncoded_dnaReadModes exercises all four ReadMode values
// against a DNASequence, checking only the permutation and intra-result
// order invariants (the reverse/complement orientations are not independently
// spec'd with a worked example, so there is no literal expected array to
// assert against here).
func TestSortSuffixesEncoded_dnaReadModes(t *testing.T) {
	seq := NewDNASequence("ACGTACGTNNACGT")
	for _, mode := range []ReadMode{Forward, Reverse, Complement, ReverseComplement} {
		got := SortSuffixesEncoded(seq, mode, Options{FinalCheck: true, IntermediateCheck: true})
		assert.Len(t, got, seq.TotalLength()+1)
		seen := make(map[int]bool, len(got))
		for _, p := range got {
			assert.False(t, seen[p], "duplicate position %d under mode %v", p, mode)
			seen[p] = true
		}
	}
}
