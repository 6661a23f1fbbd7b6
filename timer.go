// Copyright (c) 2026 kurtzlab
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sain

import (
	"fmt"
	"io"
)

// Timer reports progress at the labeled checkpoints the recursion driver
// passes through ("insert Sstar suffixes", "induce L suffixes", ...). It
// only observes; it never schedules or cancels work. Grounded on
// GT_SAIN_SHOWTIMER / gt_timer_show_progress — the checkpoint-reporting
// idiom, translated to an injected io.Writer since nothing in the
// retrieval pack supplies a structured-logging library.
type Timer struct {
	w     io.Writer
	label string
}

// NewTimer returns a Timer that writes one line per checkpoint to w.
func NewTimer(w io.Writer) *Timer {
	return &Timer{w: w}
}

// show reports that desc has just been entered. A nil *Timer is a valid,
// silent no-op receiver, so callers never need to guard on whether a
// Timer was configured.
func (t *Timer) show(desc string) {
	if t == nil || t.w == nil {
		return
	}
	fmt.Fprintf(t.w, "%s\n", desc)
	t.label = desc
}
