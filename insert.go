package obtree

// insertNonFull places obj into the subtree rooted at x, which is assumed
// not to be full. Descent pre-emptively splits any full child before
// entering it, so recursion never hits a full node.
func insertNonFull[T, K any](cb Callbacks[T, K], x *node[T, K], obj T) {
	i := len(x.objects) - 1

	if x.leaf {
		for i >= 0 && cb.CompareObjects(&obj, &x.objects[i]) < 0 {
			i--
		}
		x.insertObjectAt(i+1, obj)
		return
	}

	for i >= 0 && cb.CompareObjects(&obj, &x.objects[i]) < 0 {
		i--
	}
	i++

	if x.children[i].isFull() {
		splitChild(x, i)
		if cb.CompareObjects(&obj, &x.objects[i]) > 0 {
			i++
		}
	}
	insertNonFull(cb, x.children[i], obj)
}
