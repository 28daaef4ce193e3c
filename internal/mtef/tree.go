package mtef

// isSwapEmbellishment reports whether an embellishment's arrival swaps the
// parent's last two children, putting the embellishment before the
// character it decorates. This applies to single-dot, hat, and overbar
// decorations; v3 and v5 use different raw codes for the same three (see
// embellish.go), so the check is version-aware.
func isSwapEmbellishment(version uint8, t EmbellType) bool {
	if version == 3 {
		return t == embV3Dot || t == embV3Hat || t == embV3OBar
	}
	return t == embV5Dot1 || t == embV5Hat || t == embV5OBar
}

// buildTree folds a flat record list into a rooted tree using the stack
// discipline from the record decoder's output: LINE/TMPL/PILE/MATRIX/
// EMBELL open a container that a later END closes, CHAR appends as a
// leaf, and a null LINE appends without opening anything.
func buildTree(nodes []*Node, version uint8) *Node {
	root := &Node{Kind: KindLine, Line: &LinePayload{}}
	stack := []*Node{root}

	top := func() *Node { return stack[len(stack)-1] }
	push := func(n *Node) { stack = append(stack, n) }
	pop := func() {
		if len(stack) > 1 {
			stack = stack[:len(stack)-1]
		}
	}

	for _, n := range nodes {
		switch n.Kind {
		case KindEnd:
			pop()
			continue
		case KindEmbell:
			parent := top()
			parent.Children = append(parent.Children, n)
			if n.Embell != nil && isSwapEmbellishment(version, n.Embell.Type) {
				if c := len(parent.Children); c >= 2 {
					parent.Children[c-2], parent.Children[c-1] = parent.Children[c-1], parent.Children[c-2]
				}
			}
			push(n)
			continue
		default:
			parent := top()
			parent.Children = append(parent.Children, n)
			if n.opensContainer() {
				push(n)
			}
		}
	}
	return root
}
