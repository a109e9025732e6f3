package declutter

// SelectTop returns the node of the tree with the highest score.
// Nodes are compared in pre-order and only a strictly greater score
// replaces the current best, so the root wins a total tie.
func SelectTop(root *Mirror) *Mirror {
	top := root
	stack := []*Mirror{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Score > top.Score {
			top = n
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return top
}
