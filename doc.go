// Package rope implements a persistent rope: an immutable-node binary tree
// representing a mutable logical string. Concatenation, splitting,
// insertion, and deletion are sub-linear in the size of the text because no
// operation copies a whole buffer — mutation splits and re-concatenates
// shared, immutable subtrees and rebinds the handle's root.
//
// Two handle types are exported. Rope indexes and returns bytes. UnicodeRope
// indexes by extended grapheme cluster (a user-perceived character) using
// github.com/rivo/uniseg, and returns grapheme-cluster substrings from At.
// Both share the same underlying tree algebra; only leaf construction and
// index translation differ between the two.
//
// A handle is a value: copying it is O(1) and yields an independent logical
// string that shares internal nodes with the original until one of the two
// is mutated. Nodes are never modified after construction, so concurrent
// reads of distinct handles that happen to share subtrees are safe; mutating
// a single handle from multiple goroutines is not.
package rope
