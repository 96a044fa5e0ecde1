package search

import "github.com/bharathkarthikeyan/gecode/pkg/kernel"

// frame is one level of the DFS work stack: a choice with
// k alternatives, the next untried alternative, and — unless CloneRate
// skipped it — a clone of the space as it stood immediately before this
// frame's choice was committed.
type frame struct {
	space   SpaceImpl // nil if this depth was skipped for cloning; see recompute
	choice  kernel.Choice
	nextAlt int
}

// DFS is a depth-first search engine over spaces reached by copy-and-
// commit. Each call to Next() advances the tree walk and
// returns the next solution, or ok=false once the tree is exhausted or a
// configured limit is hit.
type DFS struct {
	root  SpaceImpl // pristine clone of the initial space, for recomputation
	cur   SpaceImpl
	stack []frame

	opts  Options
	stats Statistics

	solutionPending bool
}

// NewDFS starts a depth-first search rooted at root. root is first driven
// to a fixpoint with Status() (a space can only be cloned at a fixpoint)
// and then cloned; every commit happens on those clones, so beyond that
// propagation the caller's space is left untouched and may be reused
// (e.g. by a Restart engine).
func NewDFS(root SpaceImpl, opts Options) *DFS {
	root.Status()
	return &DFS{
		root: root.Copy(true),
		cur:  root.Copy(true),
		opts: opts,
	}
}

// Stats returns a snapshot of the engine's current counters.
func (d *DFS) Stats() Statistics { return d.stats }

// Next advances the search and returns the next solution space (a clone
// independent of the engine's internal state), the engine's statistics at
// the moment the solution was found, and true — or (nil, stats, false)
// once the tree is exhausted or a limit stops the search.
func (d *DFS) Next() (SpaceImpl, Statistics, bool) {
	if d.solutionPending {
		d.solutionPending = false
		if !d.pop() {
			return nil, d.stats, false
		}
	}

	for {
		if d.limitHit() {
			return nil, d.stats, false
		}
		if d.cur == nil {
			if !d.pop() {
				return nil, d.stats, false
			}
			continue
		}

		before := propagationCountOf(d.cur)
		st := d.cur.Status()
		d.stats.Nodes++
		d.stats.Propagations += propagationCountOf(d.cur) - before
		d.stats.RegionBlocks, d.stats.RegionElems = regionStatsOf(d.cur)

		switch st {
		case kernel.SsFailed:
			d.stats.Failures++
			d.cur = nil
		case kernel.SsSolved:
			sol := d.cur
			d.cur = nil
			d.solutionPending = true
			return sol, d.stats, true
		case kernel.SsBranch:
			c, ok := d.cur.Choice()
			if !ok {
				d.cur = nil
				continue
			}
			depth := len(d.stack)
			var stored SpaceImpl
			if depth%d.opts.cloneRate() == 0 {
				stored = d.cur.Copy(true)
			}
			d.stack = append(d.stack, frame{space: stored, choice: c, nextAlt: 1})
			d.stats.Depth = len(d.stack)
			d.cur.Commit(c, 0)
		}
	}
}

// propagationCountOf reads the kernel propagation counter off a SpaceImpl
// that embeds *kernel.Space, if it exposes one; models that don't embed
// kernel.Space directly simply contribute zero.
func propagationCountOf(s SpaceImpl) int {
	type counter interface{ PropagationCount() int }
	if c, ok := s.(counter); ok {
		return c.PropagationCount()
	}
	return 0
}

// regionStatsOf reads the kernel arena counters off a SpaceImpl that embeds
// *kernel.Space, the same optional-interface pattern propagationCountOf
// uses; models that don't embed kernel.Space contribute zero.
func regionStatsOf(s SpaceImpl) (blocks, elems int) {
	type regioner interface{ Region() *kernel.Region }
	if r, ok := s.(regioner); ok {
		reg := r.Region()
		return reg.Blocks(), reg.Elems()
	}
	return 0, 0
}

// pop implements the backtracking rule: scan the stack from
// the deepest frame toward the root; the first frame with an untried
// alternative is replayed (recomputing its pre-commit space if CloneRate
// skipped storing a clone at that depth), committed, and becomes the new
// current space. Frames found fully exhausted along the way are
// discarded. Returns false once the whole stack is exhausted.
func (d *DFS) pop() bool {
	for i := len(d.stack) - 1; i >= 0; i-- {
		top := d.stack[i]
		if top.nextAlt >= top.choice.Alternatives {
			continue
		}
		alt := top.nextAlt
		var clone SpaceImpl
		if top.space != nil {
			clone = top.space.Copy(true)
		} else {
			// recompute already returns a fresh space of its own.
			clone = d.recompute(i)
		}
		clone.Commit(top.choice, alt)

		// The frame stays on the stack even after its last alternative,
		// so recompute can still replay it for deeper frames; the loop
		// above skips it once it is exhausted.
		top.nextAlt++
		d.stack[i] = top
		d.stack = d.stack[:i+1]
		d.cur = clone
		return true
	}
	d.stack = nil
	d.cur = nil
	return false
}

// recompute rebuilds the space as it stood immediately before frame i's
// choice was committed, by cloning the nearest shallower frame that did
// store a clone (or the search root) and replaying, for that frame and
// every frame between it and frame i, the alternative currently in force
// at that depth. The returned space has not been run to a fixpoint.
func (d *DFS) recompute(i int) SpaceImpl {
	j := i - 1
	for j >= 0 && d.stack[j].space == nil {
		j--
	}
	var base SpaceImpl
	start := j
	if j < 0 {
		base = d.root.Copy(true)
		start = 0
	} else {
		base = d.stack[j].space.Copy(true)
	}
	for k := start; k < i; k++ {
		// The alternative currently in force at depth k is always
		// nextAlt-1: nextAlt is bumped immediately after the commit that
		// put this frame on the active path, whether that commit came
		// from the original descent (alt 0, nextAlt 0->1) or from a later
		// backtrack into this same frame (alt a, nextAlt a->a+1).
		base.Commit(d.stack[k].choice, d.stack[k].nextAlt-1)
	}
	return base
}

func (d *DFS) limitHit() bool {
	if d.opts.NodeLimit > 0 && d.stats.Nodes >= d.opts.NodeLimit {
		return true
	}
	if d.opts.FailLimit > 0 && d.stats.Failures >= d.opts.FailLimit {
		return true
	}
	if d.opts.StopCondition != nil && d.opts.StopCondition() {
		return true
	}
	return false
}
