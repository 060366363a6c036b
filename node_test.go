package obtree

import "testing"

func TestNewNodeCapacity(t *testing.T) {
	n := newNode[int, int](3, true)
	if cap(n.objects) != 2*3-1 {
		t.Fatalf("objects capacity = %d, want %d", cap(n.objects), 2*3-1)
	}
	if n.children != nil {
		t.Fatalf("leaf node should have nil children slice")
	}

	inner := newNode[int, int](3, false)
	if cap(inner.children) != 2*3 {
		t.Fatalf("children capacity = %d, want %d", cap(inner.children), 2*3)
	}
}

func TestNodeFindIndex(t *testing.T) {
	cb := intCallbacks{}
	n := newNode[int, int](3, true)
	n.objects = append(n.objects, 10, 20, 30)

	cases := []struct {
		key       int
		wantIndex int
		wantFound bool
	}{
		{5, 0, false},
		{10, 0, true},
		{15, 1, false},
		{20, 1, true},
		{30, 2, true},
		{35, 3, false},
	}
	for _, c := range cases {
		idx, found := n.findIndex(cb, &c.key)
		if idx != c.wantIndex || found != c.wantFound {
			t.Errorf("findIndex(%d) = (%d, %v), want (%d, %v)", c.key, idx, found, c.wantIndex, c.wantFound)
		}
	}
}

func TestNodeInsertRemoveObjectAt(t *testing.T) {
	n := newNode[int, int](4, true)
	n.objects = append(n.objects, 1, 2, 4)
	n.insertObjectAt(2, 3)
	want := []int{1, 2, 3, 4}
	for i, v := range want {
		if n.objects[i] != v {
			t.Fatalf("objects = %v, want %v", n.objects, want)
		}
	}

	got := n.removeObjectAt(0)
	if got != 1 {
		t.Fatalf("removeObjectAt(0) = %d, want 1", got)
	}
	want = []int{2, 3, 4}
	if len(n.objects) != len(want) {
		t.Fatalf("objects = %v, want %v", n.objects, want)
	}
	for i, v := range want {
		if n.objects[i] != v {
			t.Fatalf("objects = %v, want %v", n.objects, want)
		}
	}
}

func TestNodeInsertRemoveChildAt(t *testing.T) {
	n := newNode[int, int](4, false)
	c0, c1, c2 := newNode[int, int](4, true), newNode[int, int](4, true), newNode[int, int](4, true)
	n.children = append(n.children, c0, c2)
	n.insertChildAt(1, c1)
	if n.children[0] != c0 || n.children[1] != c1 || n.children[2] != c2 {
		t.Fatalf("unexpected children order after insertChildAt")
	}

	removed := n.removeChildAt(1)
	if removed != c1 {
		t.Fatalf("removeChildAt(1) returned wrong child")
	}
	if len(n.children) != 2 || n.children[0] != c0 || n.children[1] != c2 {
		t.Fatalf("unexpected children after removeChildAt: %v", n.children)
	}
}

func TestNodeDestroyOrderAndCoverage(t *testing.T) {
	var deleted []int
	cb := intCallbacks{deletes: &deleted}

	leafLeft := newNode[int, int](2, true)
	leafLeft.objects = append(leafLeft.objects, 1)
	leafRight := newNode[int, int](2, true)
	leafRight.objects = append(leafRight.objects, 3, 4)

	root := newNode[int, int](2, false)
	root.objects = append(root.objects, 2)
	root.children = append(root.children, leafLeft, leafRight)

	root.destroy(cb)

	want := []int{1, 3, 4, 2}
	if len(deleted) != len(want) {
		t.Fatalf("deleted = %v, want %v", deleted, want)
	}
	for i, v := range want {
		if deleted[i] != v {
			t.Fatalf("deleted = %v, want %v", deleted, want)
		}
	}
}
