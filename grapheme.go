package rope

import "github.com/rivo/uniseg"

// countGraphemes counts extended grapheme clusters in b, the only place
// besides byteOffsetForGrapheme/nthGraphemeRange that consults the
// segmentation collaborator. b is assumed to be well-formed UTF-8; the
// collaborator's behavior on malformed input is unspecified but
// memory-safe, per the contract leaves are built under.
func countGraphemes(b []byte) int {
	count := 0
	gr := uniseg.NewGraphemes(string(b))
	for gr.Next() {
		count++
	}
	return count
}

// nthGraphemeRange returns the byte range [start, end) of the i-th
// grapheme cluster in b. Callers must have already checked i against the
// leaf's grapheme count.
func nthGraphemeRange(b []byte, i uint64) (start, end int) {
	gr := uniseg.NewGraphemes(string(b))
	var idx uint64
	for gr.Next() {
		if idx == i {
			s, e := gr.Positions()
			return s, e
		}
		idx++
	}
	return len(b), len(b)
}

// byteOffsetForGrapheme returns the byte offset of the i-th grapheme
// boundary in b: the start of cluster i, or len(b) if i is at or past the
// leaf's cluster count. This is the boundary lookup split() uses to slice
// a leaf on a grapheme-cluster boundary.
func byteOffsetForGrapheme(b []byte, i uint64) int {
	if i == 0 {
		return 0
	}

	gr := uniseg.NewGraphemes(string(b))
	var idx uint64
	for gr.Next() {
		if idx == i {
			s, _ := gr.Positions()
			return s
		}
		idx++
	}
	return len(b)
}
