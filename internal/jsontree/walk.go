package jsontree

import "iter"

// Pattern describes where record lists live inside a document.
//
// An object node matches when it has an array under Field and, if Within is
// set, the node is itself the value of a member named Within. From a match
// the walk follows Descend: for every object element of the current list it
// looks up the next list field, and the object elements at the end of the
// chain are yielded.
type Pattern struct {
	Within  string
	Field   string
	Descend []string
}

func (p Pattern) matches(key string, n *Node) bool {
	if p.Field == "" {
		return false
	}
	if p.Within != "" && key != p.Within {
		return false
	}
	_, ok := n.List(p.Field)
	return ok
}

// Walk returns the candidate objects matched by p in depth-first pre-order.
// The sequence is lazy and may be ranged over repeatedly; each range walks
// the tree again.
func Walk(root *Node, p Pattern) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		walk(root, "", p, yield)
	}
}

func walk(n *Node, key string, p Pattern, yield func(*Node) bool) bool {
	if n == nil {
		return true
	}
	switch n.Kind {
	case KindObject:
		if p.matches(key, n) {
			items, _ := n.List(p.Field)
			if !descend(items, p.Descend, yield) {
				return false
			}
		}
		for _, m := range n.Members {
			if !walk(m.Value, m.Key, p, yield) {
				return false
			}
		}
	case KindArray:
		for _, item := range n.Items {
			if !walk(item, "", p, yield) {
				return false
			}
		}
	}
	return true
}

func descend(items []*Node, chain []string, yield func(*Node) bool) bool {
	for _, item := range items {
		if item == nil || item.Kind != KindObject {
			continue
		}
		if len(chain) == 0 {
			if !yield(item) {
				return false
			}
			continue
		}
		next, ok := item.List(chain[0])
		if !ok {
			continue
		}
		if !descend(next, chain[1:], yield) {
			return false
		}
	}
	return true
}
