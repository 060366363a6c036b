package obtree

// intCallbacks is the simplest possible Callbacks[int, int]: objects are
// their own key, ordered numerically: a single-field integer comparator
// (compare a value to another value of the same type, nothing more).
type intCallbacks struct {
	deletes *[]int // when non-nil, OnDelete appends the deleted value here
}

func (intCallbacks) CompareObjects(a, b *int) int {
	switch {
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}

func (intCallbacks) CompareKey(key, obj *int) int {
	switch {
	case *key < *obj:
		return -1
	case *key > *obj:
		return 1
	default:
		return 0
	}
}

func (intCallbacks) ExtractKey(obj *int) int {
	return *obj
}

func (c intCallbacks) OnDelete(obj *int) {
	if c.deletes != nil {
		*c.deletes = append(*c.deletes, *obj)
	}
}

func newIntTree(t int) *Tree[int, int] {
	tr := New[int, int]()
	if err := tr.Init(Config[int, int]{Degree: t, Callbacks: intCallbacks{}}); err != nil {
		panic(err)
	}
	return tr
}
