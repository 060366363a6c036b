package obtree

// predecessor returns a pointer to the rightmost object in the subtree
// rooted at n: the in-order predecessor of any key threaded through n's
// parent.
func predecessor[T, K any](n *node[T, K]) *T {
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	return &n.objects[len(n.objects)-1]
}

// successor is the mirror of predecessor: the leftmost object in the
// subtree rooted at n.
func successor[T, K any](n *node[T, K]) *T {
	for !n.leaf {
		n = n.children[0]
	}
	return &n.objects[0]
}

// retainedCallbacks forwards every callback to the wrapped Callbacks except
// OnDelete, which it drops. deleteKey uses it to remove the lower copy of a
// predecessor or successor that has just been moved up into an internal
// node: that object is still in the tree, so it is not deleted there.
type retainedCallbacks[T, K any] struct {
	Callbacks[T, K]
}

func (retainedCallbacks[T, K]) OnDelete(*T) {}

// deleteKey removes the object matching key from the subtree rooted at x,
// maintaining the invariant that any child the algorithm descends into
// already has at least t objects by the time it is entered. It reports
// whether an object was actually removed.
func deleteKey[T, K any](cb Callbacks[T, K], x *node[T, K], key *K) bool {
	i, found := x.findIndex(cb, key)

	if found {
		if x.leaf {
			obj := x.removeObjectAt(i)
			cb.OnDelete(&obj)
			return true
		}

		left := x.children[i]
		right := x.children[i+1]
		switch {
		case left.size() >= x.t:
			pred := *predecessor(left)
			cb.OnDelete(&x.objects[i])
			x.objects[i] = pred
			predKey := cb.ExtractKey(&pred)
			deleteKey[T, K](retainedCallbacks[T, K]{cb}, left, &predKey)
		case right.size() >= x.t:
			succ := *successor(right)
			cb.OnDelete(&x.objects[i])
			x.objects[i] = succ
			succKey := cb.ExtractKey(&succ)
			deleteKey[T, K](retainedCallbacks[T, K]{cb}, right, &succKey)
		default:
			mergeChildren(x, i)
			deleteKey(cb, left, key)
		}
		return true
	}

	if x.leaf {
		return false
	}

	wasLast := i == x.size()
	if x.children[i].size() < x.t {
		fillChild(x, i)
		// The rightmost child disappears when fillChild falls back to
		// merging it into its left sibling; re-target the descent one
		// slot left when that happened.
		if wasLast && i > x.size() {
			i--
		}
	}
	return deleteKey(cb, x.children[i], key)
}
