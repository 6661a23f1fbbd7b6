// Copyright (c) 2026 kurtzlab
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sain

// bucketTable tracks, per alphabet symbol, the bucket size and a fill
// cursor used while scattering suffixes into suftab during induced
// sorting. size and fillptr may each independently be either a freshly
// allocated slice or a borrowed slice of the caller's suftab; the Owned
// flags record which. No code in the package reads them.
type bucketTable struct {
	size    []int
	fillptr []int

	sizeOwned    bool
	fillptrOwned bool
}

// startBuckets sets fillptr[c] to the index of the first slot of bucket c,
// turning fillptr into a set of ascending write cursors.
func (b *bucketTable) startBuckets() {
	sum := 0
	for c, n := range b.size {
		b.fillptr[c] = sum
		sum += n
	}
}

// endBuckets sets fillptr[c] to one past the last slot of bucket c,
// turning fillptr into a set of descending write cursors.
func (b *bucketTable) endBuckets() {
	sum := 0
	for c, n := range b.size {
		sum += n
		b.fillptr[c] = sum
	}
}
