package obtree

// fillChild rebalances x.children[i], which is assumed to hold exactly
// t-1 objects, before the tree descends into it. It tries to borrow an
// object from the left sibling, then from the right sibling, and only
// merges with a sibling if neither has anything to spare.
func fillChild[T, K any](x *node[T, K], i int) {
	switch {
	case i > 0 && x.children[i-1].size() >= x.t:
		borrowFromLeft(x, i)
	case i < x.size() && x.children[i+1].size() >= x.t:
		borrowFromRight(x, i)
	case i < x.size():
		mergeChildren(x, i)
	default:
		mergeChildren(x, i-1)
	}
}

// borrowFromLeft moves x.children[i-1]'s rightmost object up into
// x.objects[i-1], and the separator that used to sit there down into
// x.children[i]'s first slot, along with the left sibling's rightmost
// child reference if the nodes are internal.
func borrowFromLeft[T, K any](x *node[T, K], i int) {
	left := x.children[i-1]
	child := x.children[i]

	child.insertObjectAt(0, x.objects[i-1])
	if !child.leaf {
		moved := left.removeChildAt(len(left.children) - 1)
		child.insertChildAt(0, moved)
	}
	x.objects[i-1] = left.removeObjectAt(len(left.objects) - 1)
}

// borrowFromRight is the mirror image of borrowFromLeft: the right
// sibling's leftmost object and (if internal) leftmost child reference
// move into x.children[i], and the separator at x.objects[i] is replaced
// by the right sibling's former leftmost object.
func borrowFromRight[T, K any](x *node[T, K], i int) {
	right := x.children[i+1]
	child := x.children[i]

	child.objects = append(child.objects, x.objects[i])
	if !child.leaf {
		moved := right.removeChildAt(0)
		child.children = append(child.children, moved)
	}
	x.objects[i] = right.removeObjectAt(0)
}

// mergeChildren absorbs x.children[i+1] into x.children[i], pulling
// x.objects[i] down as the middle key, then removes the now-empty slots
// from x. The right-hand sibling's storage is dropped; the merged node
// ends with exactly 2t-1 objects, since both children are assumed
// minimal (t-1 objects) and one separator is pulled down between them.
func mergeChildren[T, K any](x *node[T, K], i int) {
	left := x.children[i]
	right := x.children[i+1]

	left.objects = append(left.objects, x.objects[i])
	left.objects = append(left.objects, right.objects...)
	if !left.leaf {
		left.children = append(left.children, right.children...)
	}

	x.removeObjectAt(i)
	x.removeChildAt(i + 1)
}
