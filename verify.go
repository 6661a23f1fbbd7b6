// Copyright (c) 2026 kurtzlab
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sain

import "fmt"

// checkOrder asserts that suftab[start..end] is strictly increasing under
// suffix comparison, panicking with a diagnostic on the first violation.
// Grounded on gt_sain_checkorder; the C source's
// fprintf+exit(GT_EXIT_PROGRAMMING_ERROR) becomes a Go panic, per the
// ambient error-handling convention (programming errors fail fast).
func checkOrder(s *sainSeq, suftab []int, start, end int) {
	for idx := start + 1; idx <= end; idx++ {
		if compareSuffixes(s, suftab[idx-1], suftab[idx]) != -1 {
			panic(fmt.Sprintf(
				"sain: checkOrder: check interval [%d,%d] at idx=%d: suffix %d >= %d",
				start, end, idx, suftab[idx-1], suftab[idx]))
		}
	}
}

// Verifier is the external, user-replaceable final-check collaborator.
// spec.md treats the concrete final-check implementation as an external
// collaborator out of the engine's scope; this interface is the seam a
// caller plugs a heavier verifier into (e.g. one that exercises the
// Burrows-Wheeler relationship against an independent index).
type Verifier interface {
	// VerifySuffixArray checks that suftab (length src.TotalLength()+1) is
	// a valid suffix order for src, returning a non-nil error describing
	// the first violation found. The engine passes src as it reads it,
	// with the ReadMode already applied.
	VerifySuffixArray(src EncodedSequence, suftab []int) error
}

// defaultVerifier is a self-contained, dependency-free Verifier: it checks
// that suftab is a permutation of [0,n], that its non-special prefix is in
// strictly increasing suffix order by direct suffix comparison, that the
// special positions after it are ascending, and that the last entry is n.
// It does not compute a Burrows-Wheeler transform.
type defaultVerifier struct{}

func (defaultVerifier) VerifySuffixArray(src EncodedSequence, suftab []int) error {
	n := src.TotalLength()
	if len(suftab) != n+1 {
		return fmt.Errorf("sain: verify: suftab has length %d, want %d", len(suftab), n+1)
	}
	seen := make([]bool, n+1)
	for _, p := range suftab {
		if p < 0 || p > n {
			return fmt.Errorf("sain: verify: suftab entry %d out of range [0,%d]", p, n)
		}
		if seen[p] {
			return fmt.Errorf("sain: verify: suftab entry %d repeated", p)
		}
		seen[p] = true
	}
	nonspecial := n - countSpecials(src)
	for i := 1; i < nonspecial; i++ {
		if !lessOrEqualSuffix(src, suftab[i-1], suftab[i], n) {
			return fmt.Errorf("sain: verify: suffix order violated at idx=%d: %d >= %d",
				i, suftab[i-1], suftab[i])
		}
	}
	for i := nonspecial + 1; i < n; i++ {
		if suftab[i-1] >= suftab[i] {
			return fmt.Errorf("sain: verify: special positions not ascending at idx=%d: %d >= %d",
				i, suftab[i-1], suftab[i])
		}
	}
	if suftab[n] != n {
		return fmt.Errorf("sain: verify: suftab[%d] = %d, want %d", n, suftab[n], n)
	}
	return nil
}

// lessOrEqualSuffix compares two suffixes of an EncodedSequence directly
// (bypassing the sainSeq machinery), treating special codes as
// unique-maximal and the virtual position n as smaller than everything.
func lessOrEqualSuffix(src EncodedSequence, start1, start2, n int) bool {
	for {
		if start1 == n {
			return start2 != n
		}
		if start2 == n {
			return false
		}
		cc1, special1 := src.CharAt(start1)
		cc2, special2 := src.CharAt(start2)
		v1, v2 := cc1, cc2
		if special1 {
			v1 = n + (n - start1) + src.AlphabetSize()
		}
		if special2 {
			v2 = n + (n - start2) + src.AlphabetSize()
		}
		if v1 != v2 {
			return v1 < v2
		}
		start1++
		start2++
	}
}
