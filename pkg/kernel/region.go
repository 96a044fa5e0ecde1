// Package kernel implements the propagation-and-search core: the
// computation space, its propagator scheduling loop, copy-based cloning,
// and the variable/view/propagator/brancher object model that sits on top
// of a per-space region.
package kernel

// Region is a per-space bump-styled arena. Go has no manual memory arena
// primitive, so Region hands out backing storage for variable
// implementations, propagators, advisors and branchers at clone time, and
// for propagator scratch buffers during Propagate, tracking allocation
// counters that search.Statistics samples per node. "Freed in bulk when the
// space is destroyed" becomes "becomes unreachable to the GC when the
// owning Space is dropped" — there is no explicit Free.
type Region struct {
	blocks int
	elems  int
}

// NewRegion creates an empty region for a freshly constructed space.
func NewRegion() *Region {
	return &Region{}
}

// Alloc returns a contiguous block of n zero-valued T, charged to the
// region's allocation statistics.
func Alloc[T any](r *Region, n int) []T {
	r.blocks++
	r.elems += n
	return make([]T, n)
}

// Blocks reports the number of Alloc calls charged to this region.
func (r *Region) Blocks() int { return r.blocks }

// Elems reports the total element count allocated through this region.
func (r *Region) Elems() int { return r.elems }

// Clone returns a fresh, empty region for a space clone. The caller
// (Space.CloneBase) is responsible for copying live objects into it; the
// source region and its space are left untouched.
func (r *Region) Clone() *Region {
	return NewRegion()
}
