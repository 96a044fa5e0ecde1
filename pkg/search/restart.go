package search

// Restart wraps a DFS engine to drive restart-based optimisation. It owns
// rootSpace — a clone of the initial space, kept as the reset point — and
// best — the most recently found solution. Each restart re-searches from a
// fresh clone of rootSpace, constrained to be strictly better than best:
// the constrain happens against the stored root, never against the last
// failed search tree, so every restart explores the whole remaining space
// under a progressively tighter bound.
type Restart struct {
	rootSpace SpaceImpl

	best SpaceImpl

	opts Options
	dfs  *DFS

	stats Statistics
}

// NewRestart starts a restart engine rooted at root. root should implement
// Constrainable so successive bests can tighten the objective; a root that
// does not is usable but every restart after the first solution behaves
// like an unconstrained re-search.
func NewRestart(root SpaceImpl, opts Options) *Restart {
	dfs := NewDFS(root, opts) // drives root to the fixpoint Copy requires
	return &Restart{
		rootSpace: root.Copy(true),
		opts:      opts,
		dfs:       dfs,
	}
}

// Stats returns a snapshot of the engine's cumulative counters, including
// completed restarts.
func (r *Restart) Stats() Statistics { return r.stats }

// Next runs (or resumes) a DFS search over the current restart generation.
// On finding a solution, it is stored as the new best, the DFS is reset to
// search from a fresh copy of root constrained against that best, and the
// solution is returned. Once a generation's DFS exhausts without finding a
// solution, the previous best (if any) was optimal and Next returns
// (nil, stats, false) permanently — the caller should not call Next again.
func (r *Restart) Next() (SpaceImpl, Statistics, bool) {
	sol, dstats, ok := r.dfs.Next()
	r.stats.Propagations += dstats.Propagations
	r.stats.Nodes += dstats.Nodes
	r.stats.Failures += dstats.Failures
	r.stats.RegionBlocks = dstats.RegionBlocks
	r.stats.RegionElems = dstats.RegionElems
	if dstats.Depth > r.stats.Depth {
		r.stats.Depth = dstats.Depth
	}
	if !ok {
		return nil, r.stats, false
	}

	r.best = sol
	r.stats.Restarts++

	fresh := r.rootSpace.Copy(true)
	if c, isC := fresh.(Constrainable); isC {
		c.Constrain(r.best)
	}
	r.dfs = NewDFS(fresh, r.opts)

	return r.best.Copy(true), r.stats, true
}
