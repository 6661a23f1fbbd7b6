// Copyright (c) 2026 kurtzlab
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sain

import "math"

// scanClassify walks s backward, classifying each position as S-type or
// L-type (with an implicit, unique smallest sentinel beyond the last
// position, per spec.md §3). For every position i it calls onChar with
// that position's character; whenever i+1 is an S*-boundary (i is
// L-type, i+1 is S-type) it calls onSStar with the boundary position and
// its character, before onChar runs for i. Either callback may be nil.
func scanClassify(s *sainSeq, onChar func(i, cc int), onSStar func(pos, cc int)) {
	n := s.totalLength
	nextCC := math.MinInt
	nextIsS := false
	for i := n - 1; i >= 0; i-- {
		cc := s.charAt(i)
		curIsS := cc < nextCC || (cc == nextCC && nextIsS)
		if !curIsS && nextIsS && onSStar != nil {
			onSStar(i+1, nextCC)
		}
		if onChar != nil {
			onChar(i, cc)
		}
		nextIsS = curIsS
		nextCC = cc
	}
}

func forEachSStarBoundary(s *sainSeq, fn func(pos, cc int)) {
	scanClassify(s, nil, fn)
}

// sainInfo is the result of the S*-indexer: how many S*-positions exist
// (equivalently, how many S*-substrings there are to name).
type sainInfo struct {
	countSStar int
	seq        *sainSeq
}

// newSainInfo scans s for S*-positions, seeding each one into the tail of
// its bucket (via the write buffer when available) and, for sequences
// that track it, counting first-character occurrences among S*-positions.
// The seeded slot holds pos-1: in induceL1 and induceS1 a slot value v
// stands for suffix v+1 sorted there, and reading it induces suffix v.
func newSainInfo(s *sainSeq, suftab []int) *sainInfo {
	s.buckets.endBuckets()
	fillptr := s.buckets.fillptr
	wb := newWriteBuffer(suftab, fillptr, s.numChars)
	info := &sainInfo{seq: s}
	forEachSStarBoundary(s, func(pos, cc int) {
		info.countSStar++
		if s.sstarFirstCharCount != nil {
			s.sstarFirstCharCount[cc]++
		}
		if wb != nil {
			wb.update(cc, pos-1)
		} else {
			fillptr[cc]--
			suftab[fillptr[cc]] = pos - 1
		}
	})
	wb.flushAll()
	return info
}

// incrementFirstSStar pre-tags the lowest-index S* entry (the last one
// placed) of every bucket that holds one with a +totalLength round marker
// and resets the round table, readying it for induceL1/induceS1.
func incrementFirstSStar(s *sainSeq, suftab []int) {
	sum := 0
	fillptr := s.buckets.fillptr
	size := s.buckets.size
	for c := 0; c < s.numChars; c++ {
		sum += size[c]
		if fillptr[c] < sum {
			suftab[fillptr[c]] += s.totalLength
		}
		s.roundTable[c] = 0
		s.roundTable[c+s.numChars] = 0
	}
}

// assignSStarLength records, for every S*-position, the length of the
// S*-substring starting there into lentab[pos/2].
func assignSStarLength(s *sainSeq, lentab []int) {
	nextPos := s.totalLength
	forEachSStarBoundary(s, func(pos, cc int) {
		lentab[pos/2] = nextPos - (pos - 1)
		nextPos = pos
	})
}
