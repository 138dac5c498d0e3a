package ast

// WalkFunc is called by Walk for every node. parents holds the ancestors of
// node, outermost first. indices[i] is the position, among the children of
// parents[i], of the next node down the chain, so indices[len(indices)-1]
// is the position of node itself. Returning false skips node's children.
type WalkFunc func(node Node, parents []Node, indices []int) bool

// Walk traverses the tree rooted at root depth-first in source order.
// The slices passed to fn are reused between calls.
func Walk(root Node, fn WalkFunc) {
	if isNil(root) {
		return
	}
	w := walker{fn: fn}
	w.walk(root)
}

type walker struct {
	fn      WalkFunc
	parents []Node
	indices []int
}

func (w *walker) walk(node Node) {
	if !w.fn(node, w.parents, w.indices) {
		return
	}
	w.parents = append(w.parents, node)
	for i, child := range node.Children() {
		w.indices = append(w.indices, i)
		w.walk(child)
		w.indices = w.indices[:len(w.indices)-1]
	}
	w.parents = w.parents[:len(w.parents)-1]
}

// Inspect traverses the tree like Walk without the ancestor bookkeeping.
func Inspect(root Node, fn func(Node) bool) {
	Walk(root, func(node Node, _ []Node, _ []int) bool { return fn(node) })
}
