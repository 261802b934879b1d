package rope

import "github.com/samber/lo"

// collectLeaves walks n in order and returns its non-empty leaves. The
// walk is iterative — an explicit worklist stack, pushing right before
// left so the pop order is in-order — so it allocates no node objects and
// does not recurse per branch. Empty leaves (a degenerate but legal split
// byproduct) are filtered out so rebalance never propagates them.
func collectLeaves(n *node) []*node {
	var all []*node
	stack := []*node{n}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.isLeaf() {
			all = append(all, cur)
			continue
		}

		stack = append(stack, cur.right, cur.left)
	}

	return lo.Filter(all, func(l *node, _ int) bool {
		return l.byteLen > 0
	})
}

// mergeLeaves rebuilds a balanced tree over leaves[start:end] by recursive
// midpoint merge.
func mergeLeaves(leaves []*node, start, end int) *node {
	switch n := end - start; {
	case n == 1:
		return leaves[start]
	case n == 2:
		return concatNodes(leaves[start], leaves[start+1])
	default:
		mid := start + n/2
		return concatNodes(mergeLeaves(leaves, start, mid), mergeLeaves(leaves, mid, end))
	}
}

// rebalanceNode rebuilds n into a balanced tree, or returns n unchanged if
// it is already balanced (rebalance is idempotent on a balanced tree).
// Empty leaves are filtered out of the collected leaf set so rebalance
// never propagates them.
func rebalanceNode(n *node) *node {
	if isBalancedNode(n) {
		return n
	}

	leaves := collectLeaves(n)
	if len(leaves) == 0 {
		return emptyLeaf
	}
	return mergeLeaves(leaves, 0, len(leaves))
}
