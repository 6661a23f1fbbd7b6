// Copyright (c) 2026 kurtzlab
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sain

// moveSStarToFront compacts every negative (tag-marked, "already derived")
// entry in suftab[0..nonspecialEntries) to the front, in order, stripping
// its complement. Used by the slow (no round-table) naming path. Grounded
// on gt_sain_moveSstar2front.
func moveSStarToFront(info *sainInfo, suftab []int) {
	readIdx := 0
	for suftab[readIdx] < 0 {
		suftab[readIdx] = ^suftab[readIdx]
		readIdx++
	}
	writeIdx := readIdx
	if readIdx < info.countSStar {
		readIdx++
		for {
			if suftab[readIdx] < 0 {
				position := ^suftab[readIdx]
				suftab[writeIdx] = position
				writeIdx++
				suftab[readIdx] = 0
				if writeIdx == info.countSStar {
					break
				}
			} else {
				suftab[readIdx] = 0
			}
			readIdx++
		}
	}
}

// simpleMoveSStarToFront is the round-table-driven counterpart of
// moveSStarToFront: it also counts, while compacting, how many entries
// carry a round-boundary +totalLength offset, which is the fast path's
// running name count. Grounded on gt_sain_simple_moveSstar2front.
func simpleMoveSStarToFront(info *sainInfo, suftab []int) int {
	n := info.seq.totalLength
	nameCount := 0
	readIdx := 0
	for suftab[readIdx] < 0 {
		position := ^suftab[readIdx]
		if position >= n {
			nameCount++
		}
		suftab[readIdx] = position
		readIdx++
	}
	writeIdx := readIdx
	if readIdx < info.countSStar {
		readIdx++
		for {
			if suftab[readIdx] < 0 {
				position := ^suftab[readIdx]
				if position >= n {
					nameCount++
				}
				suftab[writeIdx] = position
				writeIdx++
				suftab[readIdx] = 0
				if writeIdx == info.countSStar {
					break
				}
			} else {
				suftab[readIdx] = 0
			}
			readIdx++
		}
	}
	return nameCount
}

// simpleAssignSStarNames scatters names computed during induction into the
// upper half of suftab, scanning back-to-front and decrementing the
// running name on every round-boundary sighting. Grounded on
// gt_sain_simple_assignSstarnames.
func simpleAssignSStarNames(info *sainInfo, suftab []int, numberOfNames, nonspecialEntries int) {
	n := info.seq.totalLength
	secondHalf := suftab[info.countSStar:]
	if numberOfNames < info.countSStar {
		currentName := numberOfNames + 1
		for i := nonspecialEntries - 1; i >= 0; i-- {
			position := suftab[i]
			if position >= n {
				position -= n
				currentName--
			}
			if currentName <= numberOfNames {
				secondHalf[position/2] = currentName
			}
		}
	} else {
		for i := 0; i < nonspecialEntries; i++ {
			if suftab[i] >= n {
				suftab[i] -= n
			}
		}
	}
}

// compareSStarStrings lexicographically compares the two length-len
// S*-substrings starting at start1 and start2, treating a walk past the
// end of the sequence as strictly smaller than any symbol (the
// classification sentinel at totalLength is the smallest possible value;
// see scanClassify). Grounded on gt_sain_compare_Sstarstrings.
func compareSStarStrings(s *sainSeq, start1, start2, length int) int {
	end1 := start1 + length
	for start1 < end1 {
		if start1 == s.totalLength {
			return -1
		}
		if start2 == s.totalLength {
			return 1
		}
		cc1, cc2 := s.charAt(start1), s.charAt(start2)
		if cc1 < cc2 {
			return -1
		}
		if cc1 > cc2 {
			return 1
		}
		start1++
		start2++
	}
	return 0
}

// compareSuffixes lexicographically compares the two whole suffixes
// starting at start1 and start2 (used by the verifier), treating the
// past-the-end terminator as smaller than every symbol, consistent with
// lessOrEqualSuffix. Grounded on gt_sain_compare_suffixes.
func compareSuffixes(s *sainSeq, start1, start2 int) int {
	for {
		if start1 == s.totalLength {
			return -1
		}
		if start2 == s.totalLength {
			return 1
		}
		cc1, cc2 := s.charAt(start1), s.charAt(start2)
		if cc1 < cc2 {
			return -1
		}
		if cc1 > cc2 {
			return 1
		}
		start1++
		start2++
	}
}

// setUndefined blanks suftab[start..end] (inclusive), in forward or
// reverse order. Grounded on gt_sain_setundefined.
func setUndefined(forward bool, suftab []int, start, end int) {
	if forward {
		for i := start; i <= end; i++ {
			suftab[i] = 0
		}
	} else {
		for i := end; i >= start; i-- {
			suftab[i] = 0
		}
	}
}

// assignSStarNames is the slow-path naming pass: it walks the compacted,
// length-tagged S*-positions in sorted order, comparing consecutive
// substrings of equal length symbol-by-symbol, and writes a name per
// position into the upper half of suftab. Returns the number of distinct
// names assigned. Grounded on gt_sain_assignSstarnames.
func assignSStarNames(info *sainInfo, suftab []int) int {
	secondHalf := suftab[info.countSStar:]
	previousPos := suftab[0]
	previousLen := secondHalf[previousPos/2]
	currentName := 1
	secondHalf[previousPos/2] = currentName
	for i := 1; i < info.countSStar; i++ {
		position := suftab[i]
		currentLen := secondHalf[position/2]
		cmp := -1
		if previousLen == currentLen {
			cmp = compareSStarStrings(info.seq, previousPos, position, currentLen)
		}
		if cmp == -1 {
			currentName++
		}
		previousLen = currentLen
		secondHalf[position/2] = currentName
		previousPos = position
	}
	return currentName
}

// moveNamesToFront compacts the (possibly sparse, zero-undefined) name
// table in suftab[numberOfSuffixes..] down to a dense reduced sequence at
// suftab[numberOfSuffixes..2*numberOfSuffixes), dropping the +1 offset
// names were written with to distinguish them from undefined zeros.
// Grounded on gt_sain_movenames2front.
func moveNamesToFront(suftab []int, numberOfSuffixes, totalLength int) {
	maxRead := numberOfSuffixes + totalLength/2
	writeIdx := numberOfSuffixes
	for readIdx := numberOfSuffixes; readIdx <= maxRead; readIdx++ {
		position := suftab[readIdx]
		if position > 0 {
			suftab[writeIdx] = position - 1
			writeIdx++
		}
	}
}
