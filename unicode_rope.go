package rope

// UnicodeRope is a grapheme-cluster-indexed persistent rope: Insert,
// Erase, Substring, and At operate on extended grapheme clusters (a
// user-perceived character) rather than bytes, using
// github.com/rivo/uniseg for segmentation. Size remains in bytes; only
// CharCount and the position arguments to Insert/Erase/Substring/At use
// the grapheme-cluster index space.
//
// Like Rope, UnicodeRope is a value: copying it is O(1) and shares
// internal nodes until one of the copies is mutated.
type UnicodeRope struct {
	c core
}

// NewUnicode returns an empty UnicodeRope.
func NewUnicode() UnicodeRope {
	return UnicodeRope{c: newCore(true)}
}

// Append adds content to the end of the rope. content must be well-formed
// UTF-8; callers that violate this get unspecified but memory-safe
// behavior, per the leaf construction contract.
func (u *UnicodeRope) Append(content []byte) {
	u.c.append(content)
}

// Prepend adds content to the beginning of the rope.
func (u *UnicodeRope) Prepend(content []byte) {
	u.c.prepend(content)
}

// Clear discards the rope's content, leaving it logically empty.
func (u *UnicodeRope) Clear() {
	u.c.clear()
}

// Insert splices content in at grapheme-cluster position pos. It returns
// false, leaving the rope unchanged, iff pos is negative or past the rope's
// grapheme count.
func (u *UnicodeRope) Insert(pos int, content []byte) bool {
	if pos < 0 {
		return false
	}
	return u.c.insert(uint64(pos), content)
}

// Erase removes n grapheme clusters starting at cluster position pos. It
// returns false, leaving the rope unchanged, iff n == 0 (or either
// argument is negative). An out-of-range pos or pos+n is silently clamped
// rather than treated as failure.
func (u *UnicodeRope) Erase(pos, n int) bool {
	if pos < 0 || n < 0 {
		return false
	}
	return u.c.erase(uint64(pos), uint64(n))
}

// Substring returns the grapheme clusters from cluster position from to
// the end of the rope, as a string. from is clamped to the rope's
// CharCount.
func (u *UnicodeRope) Substring(from int) string {
	if from < 0 {
		from = 0
	}
	return u.c.substringRange(uint64(from), 0, false)
}

// SubstringN returns n grapheme clusters starting at cluster position
// from, as a string. from and n are clamped to the rope's CharCount.
func (u *UnicodeRope) SubstringN(from, n int) string {
	if from < 0 {
		from = 0
	}
	if n < 0 {
		n = 0
	}
	return u.c.substringRange(uint64(from), uint64(n), true)
}

// String serializes the rope's full content.
func (u *UnicodeRope) String() string {
	return u.c.String()
}

// Size returns the rope's length in bytes (not grapheme clusters).
func (u *UnicodeRope) Size() int {
	return int(u.c.byteSize())
}

// CharCount returns the rope's length in grapheme clusters.
func (u *UnicodeRope) CharCount() int {
	return int(u.c.activeSize())
}

// At returns the grapheme cluster at position i — possibly multi-byte,
// possibly spanning multiple Unicode scalar values — or the empty string
// if i is out of range.
func (u *UnicodeRope) At(i int) string {
	if i < 0 {
		return ""
	}
	_, s, ok := at(u.c.root, uint64(i), true)
	if !ok {
		return ""
	}
	return string(s)
}

// IsBalanced reports whether the rope satisfies the loose balance
// criterion: the depths of the root's two children differ by at most 2.
func (u *UnicodeRope) IsBalanced() bool {
	return u.c.isBalanced()
}

// Rebalance rebuilds the rope into a balanced tree. It is idempotent and
// never triggered automatically by mutation.
func (u *UnicodeRope) Rebalance() {
	u.c.rebalance()
}
