package syntax

// Child is a named child together with its index among its siblings.
type Child struct {
	Node  *Node
	Index int
}

// NextChild returns the first child at index i or later that is not a
// comment.
func NextChild(n *Node, i int) (Child, bool) {
	if n == nil {
		return Child{}, false
	}
	for ; i < len(n.Children); i++ {
		if c := n.Children[i]; c != nil && c.Type != TypeComment {
			return Child{Node: c, Index: i}, true
		}
	}
	return Child{}, false
}

// TargetChild returns the first child at index i or later carrying tag typ.
func TargetChild(n *Node, typ string, i int) (Child, bool) {
	if n == nil {
		return Child{}, false
	}
	for ; i < len(n.Children); i++ {
		if c := n.Children[i]; c != nil && c.Type == typ {
			return Child{Node: c, Index: i}, true
		}
	}
	return Child{}, false
}

// SignificantChildren returns the children of n that are not comments, in
// order.
func SignificantChildren(n *Node) []*Node {
	if n == nil {
		return nil
	}
	out := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c != nil && c.Type != TypeComment {
			out = append(out, c)
		}
	}
	return out
}
