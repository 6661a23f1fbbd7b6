// Copyright (c) 2026 kurtzlab
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sain

import "strings"

// nucleotideCodes maps the four canonical DNA bases to dense symbol codes.
// Any other byte (ambiguity codes such as N, or a record separator) is
// treated as a "special" character and folded into a special range.
var nucleotideCodes = map[byte]int{
	'A': 0,
	'C': 1,
	'G': 2,
	'T': 3,
}

// nucleotideComplement is the A<->T, C<->G complement over the dense codes.
var nucleotideComplement = [4]int{3, 2, 1, 0}

// DNASequence is a concrete EncodedSequence over the four-letter
// nucleotide alphabet {A,C,G,T}; any other byte (ambiguity codes like N,
// or a record separator such as '$') is a special character. Grounded in
// domain flavor on xiles84-dnatools, the only DNA-flavored repo in the
// retrieval pack; the S/L/S* mechanics it feeds are the engine's own.
type DNASequence struct {
	codes  []int8 // nucleotideCodes value, or -1 for special
	ranges []Range
	counts [4]int
}

// NewDNASequence builds a DNASequence from raw ASCII text (case
// insensitive). Any character outside {A,C,G,T} becomes a special
// position; runs of consecutive special positions are merged into a
// single Range.
func NewDNASequence(text string) *DNASequence {
	upper := strings.ToUpper(text)
	d := &DNASequence{codes: make([]int8, len(upper))}
	rangeStart := -1
	for i := 0; i < len(upper); i++ {
		code, ok := nucleotideCodes[upper[i]]
		if ok {
			d.codes[i] = int8(code)
			d.counts[code]++
			if rangeStart >= 0 {
				d.ranges = append(d.ranges, Range{rangeStart, i})
				rangeStart = -1
			}
		} else {
			d.codes[i] = -1
			if rangeStart < 0 {
				rangeStart = i
			}
		}
	}
	if rangeStart >= 0 {
		d.ranges = append(d.ranges, Range{rangeStart, len(upper)})
	}
	return d
}

func (d *DNASequence) TotalLength() int  { return len(d.codes) }
func (d *DNASequence) AlphabetSize() int { return 4 }

func (d *DNASequence) CharAt(position int) (code int, special bool) {
	c := d.codes[position]
	if c < 0 {
		return 0, true
	}
	return int(c), false
}

func (d *DNASequence) CharCount(code int) int { return d.counts[code] }

func (d *DNASequence) HasSpecialRanges() bool { return len(d.ranges) > 0 }

func (d *DNASequence) SpecialRanges() []Range { return d.ranges }

func (d *DNASequence) Complement(code int) int { return nucleotideComplement[code] }
