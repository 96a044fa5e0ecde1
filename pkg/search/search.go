// Package search implements tree-walking search engines over
// pkg/kernel.Space: a plain depth-first engine driven by copy-and-commit,
// and a restart engine that tightens an objective bound between restarts.
package search

import "github.com/bharathkarthikeyan/gecode/pkg/kernel"

// SpaceImpl is the interface the search engines drive. A concrete model
// embeds *kernel.Space, which already supplies
// Status, Choice, Commit and Failed by promotion; it need only implement
// Copy, since only the model knows how to duplicate its own typed
// variable/view fields alongside the embedded kernel state.
type SpaceImpl interface {
	Status() kernel.SpaceStatus
	Choice() (kernel.Choice, bool)
	Commit(c kernel.Choice, alt int) kernel.ModEvent
	Copy(share bool) SpaceImpl
	Failed() bool
}

// Constrainable is implemented by a model that supports restart-based
// optimisation. Semantics — what "better" means — are entirely up to the
// model.
type Constrainable interface {
	// Constrain tightens the receiver's objective relative to best's
	// solution. Called on a fresh clone of the search root before each
	// restart.
	Constrain(best SpaceImpl)
}

// Options configures a search engine.
type Options struct {
	// NodeLimit stops the search once this many nodes have been visited
	// (0 = unlimited).
	NodeLimit int
	// FailLimit stops the search once this many failures have been
	// observed (0 = unlimited).
	FailLimit int
	// CloneRate controls how often the DFS stack keeps a full clone at a
	// branch node versus a lightweight choice-path descriptor that is
	// replayed on demand when backtracking that far. 1 (the default)
	// clones at every branch node, trading memory for simplicity; higher
	// values trade a little recomputation time for a shallower clone
	// footprint, the Go analogue of Gecode's adaptive recomputation
	// distance.
	CloneRate int
	// StopCondition, if set, is polled once per node and stops the
	// search as soon as it returns true.
	StopCondition func() bool
}

func (o Options) cloneRate() int {
	if o.CloneRate < 1 {
		return 1
	}
	return o.CloneRate
}

// Statistics are the engine's running counters: propagations, failures,
// nodes, depth. Restarts is zero for a plain DFS and counts completed
// restarts for a Restart engine. Statistics is returned as a value snapshot
// from every Next() call so callers can observe progress without a
// separate accessor.
type Statistics struct {
	Propagations int
	Failures     int
	Nodes        int
	Depth        int
	Restarts     int
	// RegionBlocks and RegionElems are the current space's arena allocation
	// counters (kernel.Region.Blocks/Elems), sampled at the node that
	// produced this snapshot.
	RegionBlocks int
	RegionElems  int
}
