package obtree

// Callbacks bundles the four application-supplied hooks the tree needs to
// order, extract keys from, and tear down the opaque objects it stores.
// An implementation must be deterministic and consistent: for any two
// objects a, b that could coexist in the tree, CompareObjects(a, b) and
// CompareKey(ExtractKey(a), b) must agree in sign. Violating this breaks
// every invariant the tree maintains and is treated as a programmer error
// the tree makes no attempt to detect.
type Callbacks[T, K any] interface {
	// CompareObjects returns a negative, zero, or positive value,
	// establishing the tree's total order over objects.
	CompareObjects(a, b *T) int

	// CompareKey compares a key to an object's key, using the same
	// sign convention as CompareObjects. Used for search and delete
	// descent.
	CompareKey(key *K, obj *T) int

	// ExtractKey returns the key embedded in obj.
	ExtractKey(obj *T) K

	// OnDelete is invoked exactly once per object immediately before
	// that object is removed from the tree, whether by Remove,
	// replacement during an internal-node delete, or Terminate.
	OnDelete(obj *T)
}

// Config carries the parameters fixed at Init and never changed afterward.
type Config[T, K any] struct {
	// Degree is the tree's minimum degree t. Node capacities derive
	// from it: 2t-1 objects and 2t children.
	Degree int

	// Callbacks supplies the object order, key order, key extraction
	// and teardown hook. Must not be nil.
	Callbacks Callbacks[T, K]
}

// Validate reports whether cfg can be used to initialize a Tree. It is the
// one place this package performs a contract check despite the tree's
// general "undefined behavior on misuse" policy, because rejecting a bad
// configuration at Init time is cheap and catches the mistake before any
// node is ever allocated.
func (cfg Config[T, K]) Validate() error {
	if cfg.Degree < 2 {
		return ErrInvalidDegree
	}
	if cfg.Callbacks == nil {
		return ErrMissingCallbacks
	}
	return nil
}
