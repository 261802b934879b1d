package rope

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func buildNode(s string, unicodeMode bool) *node {
	return newLeaf([]byte(s), unicodeMode)
}

func TestSplit_AtZeroReturnsWholeAsRight(t *testing.T) {
	n := buildNode("hello", false)
	l, r := splitNode(n, 0, false)
	require.Same(t, emptyLeaf, l)
	require.Equal(t, "hello", toString(r))
}

func TestSplit_AtOrPastEndReturnsWholeAsLeft(t *testing.T) {
	n := buildNode("hello", false)
	l, r := splitNode(n, 5, false)
	require.Equal(t, "hello", toString(l))
	require.Same(t, emptyLeaf, r)

	l, r = splitNode(n, 100, false)
	require.Equal(t, "hello", toString(l))
	require.Same(t, emptyLeaf, r)
}

func TestSplit_MidLeaf(t *testing.T) {
	n := buildNode("hello", false)
	l, r := splitNode(n, 2, false)
	require.Equal(t, "he", toString(l))
	require.Equal(t, "llo", toString(r))
}

func TestSplit_BranchRecursion(t *testing.T) {
	n := concatNodes(buildNode("hello, ", false), buildNode("world", false))
	for i := uint64(0); i <= 12; i++ {
		l, r := splitNode(n, i, false)
		require.Equal(t, "hello, world"[:i], toString(l))
		require.Equal(t, "hello, world"[i:], toString(r))
	}
}

func TestSplit_ExactlyOnWeightTakesFastPath(t *testing.T) {
	left := buildNode("hello, ", false)
	right := buildNode("world", false)
	n := concatNodes(left, right)
	l, r := splitNode(n, weight(n, false), false)
	require.Same(t, left, l)
	require.Same(t, right, r)
}

// Splitting a node anywhere and concatenating the two halves back together
// must reproduce the original text exactly.
func TestSplit_ConcatInverseProperty(t *testing.T) {
	f := func(prefix, suffix string) bool {
		whole := prefix + suffix
		n := buildNode(whole, false)
		l, r := splitNode(n, uint64(len(prefix)), false)
		return toString(concatNodes(l, r)) == whole
	}
	require.NoError(t, quick.Check(f, nil))
}
