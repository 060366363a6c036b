package obtree

// node is the tree's single node entity: it carries an object array of
// capacity 2t-1 and, unless it is a leaf, a child-reference array of
// capacity 2t. Both arrays are pre-reserved at creation time and never
// grown past that capacity — Go has no way to express a compile-time array
// sized by a runtime-chosen t, so a capacity-hinted slice stands in for it.
type node[T, K any] struct {
	t        int
	leaf     bool
	objects  []T
	children []*node[T, K]
}

func newNode[T, K any](t int, leaf bool) *node[T, K] {
	n := &node[T, K]{
		t:       t,
		leaf:    leaf,
		objects: make([]T, 0, 2*t-1),
	}
	if !leaf {
		n.children = make([]*node[T, K], 0, 2*t)
	}
	return n
}

func (n *node[T, K]) size() int {
	return len(n.objects)
}

func (n *node[T, K]) isFull() bool {
	return len(n.objects) == 2*n.t-1
}

// findIndex returns the smallest index i in [0, n) such that
// cb.CompareKey(key, &n.objects[i]) <= 0, plus whether that index is an
// exact match. If no such index exists, it returns len(n.objects), false.
// This is the canonical "find first >=" used by both search and delete
// descent, implemented as a binary search since CompareKey is assumed
// total and consistent across the node's objects.
func (n *node[T, K]) findIndex(cb Callbacks[T, K], key *K) (int, bool) {
	lo, hi := 0, len(n.objects)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cb.CompareKey(key, &n.objects[mid]) <= 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	if lo < len(n.objects) && cb.CompareKey(key, &n.objects[lo]) == 0 {
		return lo, true
	}
	return lo, false
}

// insertObjectAt inserts obj at position i, shifting objects[i:] right.
func (n *node[T, K]) insertObjectAt(i int, obj T) {
	var zero T
	n.objects = append(n.objects, zero)
	copy(n.objects[i+1:], n.objects[i:])
	n.objects[i] = obj
}

// removeObjectAt removes and returns the object at position i, shifting
// objects[i+1:] left.
func (n *node[T, K]) removeObjectAt(i int) T {
	obj := n.objects[i]
	copy(n.objects[i:], n.objects[i+1:])
	n.objects = n.objects[:len(n.objects)-1]
	return obj
}

// insertChildAt inserts child at position i, shifting children[i:] right.
func (n *node[T, K]) insertChildAt(i int, child *node[T, K]) {
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
}

// removeChildAt removes and returns the child reference at position i,
// shifting children[i+1:] left.
func (n *node[T, K]) removeChildAt(i int) *node[T, K] {
	child := n.children[i]
	copy(n.children[i:], n.children[i+1:])
	n.children = n.children[:len(n.children)-1]
	return child
}

// destroy recursively destroys n: children first (in order), then the
// object-delete callback on every locally-held object in array order, so
// the callback always sees a consistent subtree above the object it is
// tearing down.
func (n *node[T, K]) destroy(cb Callbacks[T, K]) {
	if !n.leaf {
		for _, c := range n.children {
			c.destroy(cb)
		}
	}
	for i := range n.objects {
		cb.OnDelete(&n.objects[i])
	}
	n.objects = nil
	n.children = nil
}
