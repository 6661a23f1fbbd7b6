// Copyright (c) 2026 kurtzlab
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sain

// ReadMode selects how an encoded sequence's characters are presented to
// the engine: plus strand forward, plus strand reverse, minus strand
// forward (complement), or minus strand reverse (reverse complement).
type ReadMode int

const (
	Forward ReadMode = iota
	Reverse
	Complement
	ReverseComplement
)

// IsReverse reports whether positions are read back to front.
func (m ReadMode) IsReverse() bool { return m == Reverse || m == ReverseComplement }

// IsComplement reports whether symbols are complemented before use.
func (m ReadMode) IsComplement() bool { return m == Complement || m == ReverseComplement }

// Range is a half-open interval [Start, End) of sequence positions.
type Range struct {
	Start, End int
}

// EncodedSequence is the external data source for an encoded biological
// sequence. Positions are always queried in the sequence's own forward
// orientation; the engine applies ReadMode itself.
type EncodedSequence interface {
	// TotalLength returns the number of positions in the sequence.
	TotalLength() int
	// AlphabetSize returns the number of regular (non-special) symbols.
	AlphabetSize() int
	// CharAt returns the symbol code at position and whether it is a
	// "special" (unknown/separator) character.
	CharAt(position int) (code int, special bool)
	// CharCount returns the number of occurrences of code across the
	// whole sequence, used to seed bucket sizes without a full scan.
	CharCount(code int) int
	// HasSpecialRanges reports whether any position is special.
	HasSpecialRanges() bool
	// SpecialRanges returns the special-position ranges in ascending,
	// forward-orientation order.
	SpecialRanges() []Range
	// Complement returns the complementary symbol code for code.
	Complement(code int) int
}

// sequenceView is the uniform read-only character-access abstraction the
// engine operates on, regardless of which of the three concrete input
// representations backs it.
type sequenceView interface {
	length() int
	charAt(i int) int
}

// plainSequence is a view over raw bytes; its alphabet is always the full
// byte range.
type plainSequence struct {
	data []byte
}

func (s plainSequence) length() int     { return len(s.data) }
func (s plainSequence) charAt(i int) int { return int(s.data[i]) }

// intSequence is a view over a reduced alphabet of dense small integers,
// used only for the recursive reduction step.
type intSequence struct {
	values []int
}

func (s intSequence) length() int     { return len(s.values) }
func (s intSequence) charAt(i int) int { return s.values[i] }

// encodedSeqView wraps an EncodedSequence, applying ReadMode and the
// special-position synthetic-code convention.
type encodedSeqView struct {
	src  EncodedSequence
	mode ReadMode
	n    int
}

func newEncodedSeqView(src EncodedSequence, mode ReadMode) *encodedSeqView {
	return &encodedSeqView{src: src, mode: mode, n: src.TotalLength()}
}

func (e *encodedSeqView) length() int { return e.n }

func (e *encodedSeqView) underlying(i int) int {
	if e.mode.IsReverse() {
		return e.n - 1 - i
	}
	return i
}

func (e *encodedSeqView) charAt(i int) int {
	pos := e.underlying(i)
	code, special := e.src.CharAt(pos)
	if special {
		// Unique per position and, for any realistic alphabet, larger
		// than every regular symbol code. See DESIGN.md for why this
		// deviates from the unrecoverable GT_UNIQUEINT macro.
		return e.n + (e.n - i)
	}
	if e.mode.IsComplement() {
		return e.src.Complement(code)
	}
	return code
}

// orderedSpecialRanges returns this view's special ranges in ascending
// view-position order, transforming and reversing the underlying ranges
// when reading in reverse.
func (e *encodedSeqView) orderedSpecialRanges() []Range {
	if !e.src.HasSpecialRanges() {
		return nil
	}
	raw := e.src.SpecialRanges()
	if !e.mode.IsReverse() {
		return raw
	}
	out := make([]Range, len(raw))
	for i, r := range raw {
		out[len(raw)-1-i] = Range{e.n - r.End, e.n - r.Start}
	}
	return out
}

// The methods below make the view itself an EncodedSequence whose
// positions and symbols are those the engine reads under ReadMode; a code
// at or above AlphabetSize reports as special, as in the induce passes.
func (e *encodedSeqView) TotalLength() int        { return e.n }
func (e *encodedSeqView) AlphabetSize() int       { return e.src.AlphabetSize() }
func (e *encodedSeqView) HasSpecialRanges() bool  { return e.src.HasSpecialRanges() }
func (e *encodedSeqView) SpecialRanges() []Range  { return e.orderedSpecialRanges() }
func (e *encodedSeqView) Complement(code int) int { return e.src.Complement(code) }
func (e *encodedSeqView) CharCount(code int) int {
	if e.mode.IsComplement() {
		return e.src.CharCount(e.src.Complement(code))
	}
	return e.src.CharCount(code)
}
func (e *encodedSeqView) CharAt(position int) (int, bool) {
	c := e.charAt(position)
	return c, c >= e.src.AlphabetSize()
}

func countSpecials(src EncodedSequence) int {
	if !src.HasSpecialRanges() {
		return 0
	}
	n := 0
	for _, r := range src.SpecialRanges() {
		n += r.End - r.Start
	}
	return n
}

// seqKind distinguishes the three concrete sequence-view representations
// so the recursion driver can branch on encoded-only behavior (special
// ranges, tail filling) without a type switch at every call site.
type seqKind int

const (
	seqPlain seqKind = iota
	seqInt
	seqEncoded
)

// sainSeq is the per-recursion-level construction context: a sequence
// view, its alphabet size, bucket table, and (optionally) round table.
type sainSeq struct {
	kind        seqKind
	view        sequenceView
	encView     *encodedSeqView // non-nil only when kind == seqEncoded
	totalLength int
	numChars    int

	buckets *bucketTable

	roundTable      []int
	roundTableOwned bool
	currentRound    int

	sstarFirstCharCount []int
}

func (s *sainSeq) charAt(i int) int { return s.view.charAt(i) }

// useFastMethod decides whether the round-table ("fast path") S*-naming
// strategy is safe to use: it requires headroom in the integer range so
// that tagging a position with +totalLength twice cannot overflow, and is
// only worth the extra round-table memory for non-trivial inputs.
func useFastMethod(maxValue, length int) bool {
	const quarterMaxInt = int(^uint(0)>>1) / 4
	return maxValue < quarterMaxInt && length > 1024
}

func newSainSeqFromPlain(data []byte) *sainSeq {
	n := len(data)
	s := &sainSeq{
		kind:        seqPlain,
		view:        plainSequence{data},
		totalLength: n,
		numChars:    256,
	}
	s.buckets = &bucketTable{
		size: make([]int, 256), fillptr: make([]int, 256),
		sizeOwned: true, fillptrOwned: true,
	}
	if useFastMethod(n+1, n) {
		s.roundTable = make([]int, 512)
		s.roundTableOwned = true
	}
	s.sstarFirstCharCount = make([]int, 256)
	for _, b := range data {
		s.buckets.size[b]++
	}
	return s
}

func newSainSeqFromEncoded(src EncodedSequence, mode ReadMode) *sainSeq {
	view := newEncodedSeqView(src, mode)
	n := view.length()
	sigma := src.AlphabetSize()
	s := &sainSeq{
		kind:        seqEncoded,
		view:        view,
		encView:     view,
		totalLength: n,
		numChars:    sigma,
	}
	s.buckets = &bucketTable{
		size: make([]int, sigma), fillptr: make([]int, sigma),
		sizeOwned: true, fillptrOwned: true,
	}
	if useFastMethod(n+1, n) {
		s.roundTable = make([]int, 2*sigma)
		s.roundTableOwned = true
	}
	s.sstarFirstCharCount = make([]int, sigma)
	for c := 0; c < sigma; c++ {
		src := c
		if mode.IsComplement() {
			src = view.src.Complement(c)
		}
		s.buckets.size[c] = view.src.CharCount(src)
	}
	return s
}

// newSainSeqFromArray builds the construction context for a recursive
// call over a reduced, dense integer alphabet, reclaiming unused tail
// regions of suftab as auxiliary tables wherever there is enough room,
// falling back to freshly allocated slices otherwise.
func newSainSeqFromArray(values []int, numChars int, suftab []int, firstUsable, suftabEntries int) *sainSeq {
	s := &sainSeq{
		kind:        seqInt,
		view:        intSequence{values},
		totalLength: len(values),
		numChars:    numChars,
	}
	bt := &bucketTable{}
	if suftabEntries-firstUsable >= numChars {
		bt.size = suftab[suftabEntries-numChars : suftabEntries]
		bt.sizeOwned = false
	} else {
		bt.size = make([]int, numChars)
		bt.sizeOwned = true
	}
	if suftabEntries-firstUsable >= 2*numChars {
		bt.fillptr = suftab[suftabEntries-2*numChars : suftabEntries-numChars]
		bt.fillptrOwned = false
	} else {
		bt.fillptr = make([]int, numChars)
		bt.fillptrOwned = true
	}
	s.buckets = bt
	if useFastMethod(len(values)+1, len(values)) {
		if suftabEntries-firstUsable >= 4*numChars {
			s.roundTable = suftab[suftabEntries-4*numChars : suftabEntries-2*numChars]
			s.roundTableOwned = false
		} else {
			s.roundTable = make([]int, 2*numChars)
			s.roundTableOwned = true
		}
	}
	for c := range bt.size {
		bt.size[c] = 0
	}
	for _, v := range values {
		bt.size[v]++
	}
	return s
}
