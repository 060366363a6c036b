// Package obtree implements an in-memory, ordered, multi-way B-tree that
// stores fixed-shape application objects keyed by an application-supplied
// key function.
//
// The tree is configured with a minimum degree t (t >= 2), which bounds the
// occupancy of every non-root node to between t-1 and 2t-1 objects, and a
// Callbacks implementation supplying the object order, the key order, key
// extraction, and object teardown. The tree owns every node it allocates;
// applications interact with it exclusively through Insert, Search, Remove,
// Walk, Terminate and Free.
//
// The tree is not safe for concurrent use: all operations assume exclusive
// access for their duration, and callbacks must not re-enter the tree on
// which they were invoked.
package obtree
