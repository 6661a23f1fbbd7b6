// Copyright (c) 2026 kurtzlab
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sain

import "fmt"

// determineSStarFirstCharDist rebuilds sstarFirstCharCount and bucket.size
// for an integer sequence directly from its symbols, used when the
// S*-substrings already turned out pairwise distinct (so no recursion, and
// no reduced sequence, ever existed to carry these counts forward).
// Grounded on gt_sain_determineSstarfirstchardist.
func determineSStarFirstCharDist(s *sainSeq) {
	forEachSStarBoundary(s, func(_, cc int) {
		s.sstarFirstCharCount[cc]++
	})
	for i := s.totalLength - 1; i >= 0; i-- {
		s.buckets.size[s.charAt(i)]++
	}
}

// expandOrderToOriginal turns the recursively-computed order of S*-suffix
// indices (stored in suftab[0..numberOfSuffixes)) back into original
// sequence positions, by rebuilding the ordered list of S*-positions (via
// another backward scan) into suftab[numberOfSuffixes..] and substituting
// each index. Grounded on gt_sain_expandorder2original.
func expandOrderToOriginal(s *sainSeq, numberOfSuffixes int, suftab []int) {
	sstarSuffixes := suftab[numberOfSuffixes:]
	writeIdx := numberOfSuffixes - 1

	var sstarFirstCharCount, bucketSize []int
	if s.kind == seqInt {
		sstarFirstCharCount = s.buckets.fillptr
		bucketSize = s.buckets.size
		for c := 0; c < s.numChars; c++ {
			sstarFirstCharCount[c] = 0
			bucketSize[c] = 0
		}
		s.sstarFirstCharCount = sstarFirstCharCount
	}

	scanClassify(s, func(i, cc int) {
		if bucketSize != nil {
			bucketSize[cc]++
		}
	}, func(pos, cc int) {
		if sstarFirstCharCount != nil {
			sstarFirstCharCount[cc]++
		}
		sstarSuffixes[writeIdx] = pos
		writeIdx--
	})

	for i := 0; i < numberOfSuffixes; i++ {
		suftab[i] = sstarSuffixes[suftab[i]]
	}
}

// insertSortedSStarSuffixes scatters the now-sorted S*-positions
// (suftab[0..readIdx]) into the tails of their buckets, shifting each
// symbol's run of S*-positions to the end of its bucket and blanking the
// undefined gap left for the rest of that bucket. Grounded on
// gt_sain_insertsortedSstarsuffixes.
func insertSortedSStarSuffixes(s *sainSeq, suftab []int, readIdx, nonspecialEntries int) {
	fillIdx := nonspecialEntries
	for cc := s.numChars - 1; ; cc-- {
		count := s.sstarFirstCharCount[cc]
		if count > 0 {
			putIdx := fillIdx - 1
			if readIdx < putIdx {
				for offset := 0; offset < count; offset++ {
					suftab[putIdx-offset] = suftab[readIdx-offset]
					suftab[readIdx-offset] = 0
				}
			}
		}
		fillIdx -= s.buckets.size[cc]
		if s.buckets.size[cc] > count {
			setUndefined(false, suftab, fillIdx, fillIdx+s.buckets.size[cc]-count-1)
		}
		readIdx -= count
		if cc == 0 {
			break
		}
	}
}

// fillTailSuffixes appends the special positions (in ascending,
// view-order) followed by the sentinel totalLength to suftabTail, giving
// the final suftab its full [0,totalLength] shape for an encoded sequence.
// Grounded on gt_sain_filltailsuffixes.
func fillTailSuffixes(suftabTail []int, e *encodedSeqView) {
	countSpecial := 0
	for _, r := range e.orderedSpecialRanges() {
		for i := r.Start; i < r.End; i++ {
			suftabTail[countSpecial] = i
			countSpecial++
		}
	}
	suftabTail[countSpecial] = e.n
}

// sortSuffixesRec is the recursive construction driver: seed S*
// positions, induce twice (naming pass), name the S*-substrings, recurse
// on the reduced sequence if names are not already unique, expand the
// recursive result back to original positions, scatter the sorted
// S*-suffixes into their buckets, induce twice more (final pass), and
// optionally verify. Grounded on gt_sain_rec_sortsuffixes.
func sortSuffixesRec(level int, s *sainSeq, suftab []int, firstUsable, nonspecialEntries, suftabEntries int, opts Options) {
	if opts.Verbose {
		fmt.Printf("level %d: sort sequence of length %d over %d symbols (%.2f)\n",
			level, s.totalLength, s.numChars, float64(s.numChars)/float64(s.totalLength))
	}
	opts.Timer.show("insert Sstar suffixes")
	info := newSainInfo(s, suftab)
	if opts.Verbose {
		showSainInfo(info)
	}

	if info.countSStar > 0 {
		var numberOfNames int

		if s.roundTable != nil {
			incrementFirstSStar(s, suftab)
		}
		s.buckets.startBuckets()
		opts.Timer.show("induce L suffixes")
		induceL1(info.seq, suftab, nonspecialEntries)
		s.buckets.endBuckets()
		opts.Timer.show("induce S suffixes")
		induceS1(info.seq, suftab, nonspecialEntries)

		if info.seq.roundTable == nil {
			opts.Timer.show("moverStar2front")
			moveSStarToFront(info, suftab)
			opts.Timer.show("assignSstarlength")
			assignSStarLength(info.seq, suftab[info.countSStar:])
			opts.Timer.show("assignSstarnames")
			numberOfNames = assignSStarNames(info, suftab)
		} else {
			opts.Timer.show("simple_moverStar2front")
			numberOfNames = simpleMoveSStarToFront(info, suftab)
			// Round table is only needed through the naming pass; drop the
			// reference regardless of ownership (Go's allocator reclaims
			// the owned case, and nothing downstream reads a borrowed one).
			info.seq.roundTable = nil
			simpleAssignSStarNames(info, suftab, numberOfNames, nonspecialEntries)
		}

		if numberOfNames < info.countSStar {
			subseq := suftab[info.countSStar:]

			opts.Timer.show("movenames2front")
			setUndefined(true, suftab, 0, info.countSStar-1)
			moveNamesToFront(suftab, info.countSStar, info.seq.totalLength)

			if level == 0 {
				firstUsable = 2 * info.countSStar
			}
			reduced := make([]int, info.countSStar)
			copy(reduced, subseq[:info.countSStar])
			sainSeqRec := newSainSeqFromArray(reduced, numberOfNames, suftab, firstUsable, suftabEntries)

			sortSuffixesRec(level+1, sainSeqRec, suftab, firstUsable, info.countSStar, suftabEntries, opts)

			opts.Timer.show("expandorder2original")
			expandOrderToOriginal(info.seq, info.countSStar, suftab)
		} else if s.kind == seqInt {
			s.sstarFirstCharCount = s.buckets.fillptr
			for c := 0; c < s.numChars; c++ {
				s.sstarFirstCharCount[c] = 0
				s.buckets.size[c] = 0
			}
			determineSStarFirstCharDist(s)
		}
	}

	if opts.IntermediateCheck && info.countSStar > 0 {
		checkOrder(s, suftab, 0, info.countSStar-1)
	}

	opts.Timer.show("insert sorted Sstar suffixes")
	if info.countSStar > 0 {
		insertSortedSStarSuffixes(info.seq, suftab, info.countSStar-1, nonspecialEntries)
	}

	s.buckets.startBuckets()
	opts.Timer.show("induce L suffixes")
	induceL2(info.seq, suftab, nonspecialEntries)
	s.buckets.endBuckets()
	opts.Timer.show("induce S suffixes")
	induceS2(info.seq, suftab, nonspecialEntries)

	if nonspecialEntries > 0 {
		if opts.IntermediateCheck {
			checkOrder(s, suftab, 0, nonspecialEntries-1)
		}
		if s.kind == seqEncoded {
			// Unlike gt_sain_encseq_sortsuffixes (whose suftab is a local,
			// discarded either way), this result is returned to the caller,
			// so the tail must always be materialized; only the expensive
			// verification pass is gated by FinalCheck.
			opts.Timer.show("fill tail suffixes")
			fillTailSuffixes(suftab[nonspecialEntries:], s.encView)
			if opts.FinalCheck {
				opts.Timer.show("check suffix order")
				verifier := opts.Verifier
				if verifier == nil {
					verifier = defaultVerifier{}
				}
				if err := verifier.VerifySuffixArray(s.encView, suftab); err != nil {
					panic("sain: final suffix-array verification failed: " + err.Error())
				}
			}
		}
	}
}
