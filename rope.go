package rope

// Rope is a byte-indexed persistent rope. Copying a Rope by value is O(1)
// and yields an independent logical string that shares internal nodes with
// the original until one of the two is mutated.
//
// A Rope is not safe for concurrent mutation by multiple goroutines, but
// distinct Ropes that share subtrees may be read concurrently.
type Rope struct {
	c core
}

// New returns an empty Rope.
func New() Rope {
	return Rope{c: newCore(false)}
}

// Append adds content to the end of the rope. Empty content is admissible
// and does not change the observable text.
func (r *Rope) Append(content []byte) {
	r.c.append(content)
}

// Prepend adds content to the beginning of the rope.
func (r *Rope) Prepend(content []byte) {
	r.c.prepend(content)
}

// Clear discards the rope's content, leaving it logically empty.
func (r *Rope) Clear() {
	r.c.clear()
}

// Insert splices content in at byte position pos. It returns false, leaving
// the rope unchanged, iff pos is negative or past the end of the rope.
func (r *Rope) Insert(pos int, content []byte) bool {
	if pos < 0 {
		return false
	}
	return r.c.insert(uint64(pos), content)
}

// Erase removes n bytes starting at byte position pos. It returns false,
// leaving the rope unchanged, iff n == 0 (or either argument is negative).
// An out-of-range pos or pos+n is silently clamped rather than treated as
// failure.
func (r *Rope) Erase(pos, n int) bool {
	if pos < 0 || n < 0 {
		return false
	}
	return r.c.erase(uint64(pos), uint64(n))
}

// Substring returns the bytes from byte position from to the end of the
// rope, as a string. from is clamped to the rope's size.
func (r *Rope) Substring(from int) string {
	if from < 0 {
		from = 0
	}
	return r.c.substringRange(uint64(from), 0, false)
}

// SubstringN returns n bytes starting at byte position from, as a string.
// from and n are clamped to the rope's size.
func (r *Rope) SubstringN(from, n int) string {
	if from < 0 {
		from = 0
	}
	if n < 0 {
		n = 0
	}
	return r.c.substringRange(uint64(from), uint64(n), true)
}

// String serializes the rope's full content.
func (r *Rope) String() string {
	return r.c.String()
}

// Size returns the rope's length in bytes.
func (r *Rope) Size() int {
	return int(r.c.byteSize())
}

// At returns the byte at position i, or the zero byte if i is out of
// range.
func (r *Rope) At(i int) byte {
	if i < 0 {
		return 0
	}
	b, _, _ := at(r.c.root, uint64(i), false)
	return b
}

// IsBalanced reports whether the rope satisfies the loose balance
// criterion: the depths of the root's two children differ by at most 2.
func (r *Rope) IsBalanced() bool {
	return r.c.isBalanced()
}

// Rebalance rebuilds the rope into a balanced tree. It is idempotent: a
// call on an already-balanced rope leaves its root unchanged. Rebalance is
// never triggered automatically by mutation.
func (r *Rope) Rebalance() {
	r.c.rebalance()
}
