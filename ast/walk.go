package ast

// Walk traverses the tree rooted at node in source order, calling fn for
// each node before its children. When fn returns false the node's children
// are skipped.
func Walk(node Rule, fn func(Rule) bool) {
	if node == nil || !fn(node) {
		return
	}
	switch n := node.(type) {
	case *Stylesheet:
		for _, r := range n.Rules {
			Walk(r, fn)
		}
	case *AtRule:
		if n.Rulelist != nil {
			Walk(n.Rulelist, fn)
		}
	case *Rulelist:
		for _, r := range n.Rules {
			Walk(r, fn)
		}
	case *Ruleset:
		if n.Rulelist != nil {
			Walk(n.Rulelist, fn)
		}
	case *Declaration:
		if n.Value != nil {
			Walk(n.Value, fn)
		}
	}
}
