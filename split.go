package rope

import "github.com/samber/lo"

// splitNode returns (L, R) such that the in-order leaf concatenation of L
// and R equals, respectively, the first i and the remaining units of the
// logical text under n, in the active index space. i is clamped to
// [0, size(n)] so out-of-range splits silently produce an empty suffix or
// prefix rather than failing.
func splitNode(n *node, i uint64, unicodeMode bool) (*node, *node) {
	total := size(n, unicodeMode)
	if i == 0 {
		return emptyLeaf, n
	}
	if i >= total {
		return n, emptyLeaf
	}

	if n.isLeaf() {
		return splitLeaf(n, i, unicodeMode)
	}

	w := weight(n, unicodeMode)
	switch {
	case i < w:
		l, r := splitNode(n.left, i, unicodeMode)
		return l, newBranch(r, n.right)
	case i > w:
		l, r := splitNode(n.right, i-w, unicodeMode)
		return newBranch(n.left, l), r
	default:
		return n.left, n.right
	}
}

// splitLeaf slices a leaf's buffer at index i in the active index space. In
// Unicode mode the byte offset is the start of the i-th grapheme cluster,
// so the boundary always falls between two clusters; in byte mode the byte
// offset is i itself.
func splitLeaf(n *node, i uint64, unicodeMode bool) (*node, *node) {
	if len(n.buf) == 0 {
		return emptyLeaf, emptyLeaf
	}

	leafLen := size(n, unicodeMode)
	i = lo.Ternary(i > leafLen, leafLen, i)

	var offset int
	if unicodeMode {
		offset = byteOffsetForGrapheme(n.buf, i)
	} else {
		offset = int(i)
	}

	return newLeaf(n.buf[:offset], unicodeMode), newLeaf(n.buf[offset:], unicodeMode)
}
