package obtree

import "github.com/fantom-hq/obtree/internal/assert"

// Tree is the public handle over an in-memory B-tree of opaque objects of
// type T keyed by K. The zero value is an uninitialized handle; call Init
// before any other operation.
type Tree[T, K any] struct {
	t           int
	cb          Callbacks[T, K]
	root        *node[T, K]
	count       int
	initialized bool
	terminated  bool
	freed       bool
	inOperation bool
}

// New allocates an uninitialized tree handle. Call Init before any other
// operation.
func New[T, K any]() *Tree[T, K] {
	return &Tree[T, K]{}
}

// Init configures the handle with the given minimum degree and callbacks.
// The root starts absent. Init may be called only once per handle.
func (tr *Tree[T, K]) Init(cfg Config[T, K]) error {
	if tr.initialized {
		panic(ConstError("obtree: tree is already initialized"))
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	tr.t = cfg.Degree
	tr.cb = cfg.Callbacks
	tr.initialized = true
	return nil
}

// enter marks the tree as being inside a public operation and panics if
// the handle is not in a state that permits one. Re-entrancy — a callback
// invoking another operation on the same tree while already inside one —
// is only checked in debug builds, per this package's callback contract.
func (tr *Tree[T, K]) enter() {
	if !tr.initialized {
		panic(ErrNotInitialized)
	}
	if tr.terminated {
		panic(ErrAlreadyTerminated)
	}
	if tr.freed {
		panic(ErrAlreadyFreed)
	}
	assert.Check(func() error {
		if tr.inOperation {
			return ErrReentrantCall
		}
		return nil
	})
	tr.inOperation = true
}

// leave closes out a public operation and, in debug builds, re-validates
// every structural invariant before returning control to the caller.
func (tr *Tree[T, K]) leave() {
	tr.inOperation = false
	assert.Check(tr.CheckInvariants)
}

// Insert inserts a copy of obj. Duplicate-key behavior is defined
// entirely by Callbacks.CompareObjects; the tree performs no duplicate
// detection of its own.
func (tr *Tree[T, K]) Insert(obj T) {
	tr.enter()
	defer tr.leave()

	if tr.root == nil {
		tr.root = newNode[T, K](tr.t, true)
		tr.root.objects = append(tr.root.objects, obj)
		tr.count++
		return
	}

	if tr.root.isFull() {
		s := newNode[T, K](tr.t, false)
		s.children = append(s.children, tr.root)
		splitChild(s, 0)
		tr.root = s
	}
	insertNonFull(tr.cb, tr.root, obj)
	tr.count++
}

// Search returns a copy of the object whose key equals key, and whether
// one was found. A missing key is not an error.
func (tr *Tree[T, K]) Search(key K) (T, bool) {
	tr.enter()
	defer tr.leave()

	var zero T
	if tr.root == nil {
		return zero, false
	}
	if p := search(tr.cb, tr.root, &key); p != nil {
		return *p, true
	}
	return zero, false
}

// Remove deletes the first object whose key equals key, invoking
// Callbacks.OnDelete on it, and reports whether anything was removed.
// Removing an absent key is a no-op, not an error.
func (tr *Tree[T, K]) Remove(key K) bool {
	tr.enter()
	defer tr.leave()

	if tr.root == nil {
		return false
	}

	removed := deleteKey(tr.cb, tr.root, &key)
	if removed {
		tr.count--
	}

	if tr.root.size() == 0 {
		if tr.root.leaf {
			tr.root = nil
		} else {
			tr.root = tr.root.children[0]
		}
	}
	return removed
}

// Walk visits every stored object in ascending order.
func (tr *Tree[T, K]) Walk(visit func(T)) {
	tr.enter()
	defer tr.leave()

	if tr.root == nil {
		return
	}
	walk(tr.root, func(p *T) { visit(*p) })
}

// Len returns the number of objects currently stored.
func (tr *Tree[T, K]) Len() int {
	return tr.count
}

// Height returns the number of levels from the root to a leaf, inclusive,
// or 0 for an empty tree.
func (tr *Tree[T, K]) Height() int {
	if tr.root == nil {
		return 0
	}
	h := 1
	n := tr.root
	for !n.leaf {
		h++
		n = n.children[0]
	}
	return h
}

// Terminate destroys every node, invoking Callbacks.OnDelete on every
// remaining object exactly once, and leaves the tree empty. Terminate may
// be called only once per handle; call Free afterward to release the
// handle itself.
func (tr *Tree[T, K]) Terminate() {
	tr.enter()
	defer func() {
		tr.inOperation = false
	}()

	if tr.root != nil {
		tr.root.destroy(tr.cb)
		tr.root = nil
	}
	tr.count = 0
	tr.terminated = true
}

// Free releases the handle. It must follow Terminate; any operation on a
// freed handle panics.
func (tr *Tree[T, K]) Free() {
	if !tr.initialized {
		panic(ErrNotInitialized)
	}
	if tr.freed {
		panic(ErrAlreadyFreed)
	}
	if tr.inOperation {
		panic(ErrReentrantCall)
	}
	tr.cb = nil
	tr.freed = true
}

// CheckInvariants walks the tree verifying occupancy, ascending object
// order, and uniform leaf depth. It is not on the happy path of any
// public operation (aside from the debug-build re-validation in leave);
// it is exported so tests, and callers building their own invariant
// checks, can assert tree health directly.
func (tr *Tree[T, K]) CheckInvariants() error {
	if tr.root == nil {
		return nil
	}

	leafDepth := -1
	var visit func(n *node[T, K], depth int, isRoot bool) error
	visit = func(n *node[T, K], depth int, isRoot bool) error {
		size := n.size()
		if isRoot {
			if size > 2*tr.t-1 {
				return ConstError("obtree: root exceeds maximum occupancy")
			}
		} else if size < tr.t-1 || size > 2*tr.t-1 {
			return ConstError("obtree: node violates occupancy invariant")
		}

		for i := 1; i < len(n.objects); i++ {
			if tr.cb.CompareObjects(&n.objects[i-1], &n.objects[i]) >= 0 {
				return ConstError("obtree: objects out of ascending order")
			}
		}

		if n.leaf {
			if leafDepth == -1 {
				leafDepth = depth
			} else if leafDepth != depth {
				return ConstError("obtree: leaves at unequal depth")
			}
			return nil
		}

		if len(n.children) != size+1 {
			return ConstError("obtree: child count does not match object count")
		}
		for _, c := range n.children {
			if err := visit(c, depth+1, false); err != nil {
				return err
			}
		}
		return nil
	}

	return visit(tr.root, 0, true)
}
