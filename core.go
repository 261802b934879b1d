package rope

// core holds the single mutable root reference behind both Rope and
// UnicodeRope, plus the mode that governs index translation. Every
// mutating method rebinds root to a freshly computed node produced by the
// pure split/concat algebra; it never edits an existing node's fields.
type core struct {
	root        *node
	unicodeMode bool
}

func newCore(unicodeMode bool) core {
	return core{root: emptyLeaf, unicodeMode: unicodeMode}
}

func (c *core) activeSize() uint64 {
	return size(c.root, c.unicodeMode)
}

func (c *core) byteSize() uint64 {
	return c.root.byteLen
}

func (c *core) append(content []byte) {
	c.root = concatNodes(c.root, newLeaf(content, c.unicodeMode))
}

func (c *core) prepend(content []byte) {
	c.root = concatNodes(newLeaf(content, c.unicodeMode), c.root)
}

func (c *core) clear() {
	c.root = emptyLeaf
}

// insert dispatches three ways: prepend at 0, append at the end,
// split-and-splice in the middle, and a false return only when pos is
// strictly past the end.
func (c *core) insert(pos uint64, content []byte) bool {
	switch sz := c.activeSize(); {
	case pos == 0:
		c.prepend(content)
		return true
	case pos == sz:
		c.append(content)
		return true
	case pos > sz:
		return false
	default:
		l, r := splitNode(c.root, pos, c.unicodeMode)
		c.root = concatNodes(concatNodes(l, newLeaf(content, c.unicodeMode)), r)
		return true
	}
}

// erase reports false only when n == 0; an out-of-range pos or pos+n is
// silently clamped by split, not treated as failure.
func (c *core) erase(pos, n uint64) bool {
	if n == 0 {
		return false
	}

	l, midR := splitNode(c.root, pos, c.unicodeMode)
	_, r := splitNode(midR, n, c.unicodeMode)
	c.root = concatNodes(l, r)
	return true
}

// substringRange serializes the subtree spanning [from, from+n) in the
// active index space. n may be omitted by passing withLen=false, meaning
// "to the end."
func (c *core) substringRange(from uint64, n uint64, withLen bool) string {
	_, tail := splitNode(c.root, from, c.unicodeMode)
	if !withLen {
		return toString(tail)
	}
	mid, _ := splitNode(tail, n, c.unicodeMode)
	return toString(mid)
}

func (c *core) String() string {
	return toString(c.root)
}

func (c *core) isBalanced() bool {
	return isBalancedNode(c.root)
}

func (c *core) rebalance() {
	c.root = rebalanceNode(c.root)
}

// toString serializes n by in-order traversal of its leaves, iteratively
// per collectLeaves.
func toString(n *node) string {
	leaves := collectLeaves(n)
	total := 0
	for _, l := range leaves {
		total += len(l.buf)
	}

	buf := make([]byte, 0, total)
	for _, l := range leaves {
		buf = append(buf, l.buf...)
	}
	return string(buf)
}
