package kernel

import "github.com/google/uuid"

// SpaceStatus is the outcome of driving a Space to fixpoint.
type SpaceStatus int

const (
	SsFailed SpaceStatus = iota
	SsSolved
	SsBranch
)

func (s SpaceStatus) String() string {
	switch s {
	case SsFailed:
		return "SS_FAILED"
	case SsSolved:
		return "SS_SOLVED"
	case SsBranch:
		return "SS_BRANCH"
	default:
		return "SS_UNKNOWN"
	}
}

// IntVar is a handle to an integer variable implementation: just an index
// into the owning Space's vars slice. Because it carries no pointer, it
// survives Space.CloneBase by plain value-copy — see view.go's doc comment.
type IntVar struct{ idx int }

// Idx exposes the underlying slice index, e.g. for building a View over it.
func (v IntVar) Idx() int { return v.idx }

type propEntry struct {
	p        Propagator
	queued   bool
	med      ModEvent
	subsumed bool
}

type advisorEntry struct {
	a       Advisor
	propIdx int
}

// Space is the transactional container of variables, propagators and
// branchers. A concrete model embeds *Space and adds its
// own typed variable/view fields; see search.SpaceImpl for the interface
// the search engines drive.
type Space struct {
	RunID  uuid.UUID
	SpaceID uuid.UUID

	region *Region

	vars []*IntVarImp

	props    []*propEntry
	advisors []*advisorEntry
	queues   [numCostClasses][]int

	branchers []Brancher

	failed    bool
	propCount int
}

// PropagationCount reports how many times Propagate has been called on a
// propagator owned by this space (not by any ancestor it was cloned from;
// every clone starts its own counter at zero), for search.Statistics.
func (h *Space) PropagationCount() int { return h.propCount }

// NewSpace creates an empty space with a fresh run id, for use as a search
// root. Clones of this space (and clones of clones) keep the same RunID
// but get a fresh SpaceID, so engine statistics and logs can correlate an
// entire search to one run.
func NewSpace() *Space {
	return &Space{
		RunID:   uuid.New(),
		SpaceID: uuid.New(),
		region:  NewRegion(),
	}
}

// Region returns the space's arena, e.g. for statistics reporting.
func (h *Space) Region() *Region { return h.region }

// Failed reports whether the space has reached ME_FAILED/SS_FAILED.
func (h *Space) Failed() bool { return h.failed }

// Fail marks the space failed directly; used by propagators/branchers
// that detect an impossibility outside of a view mutation (e.g. an
// argument-level contradiction discovered before any domain is touched).
func (h *Space) Fail() { h.failed = true }

// NumVars reports the number of variable implementations live in the
// space, for statistics and iteration by index.
func (h *Space) NumVars() int { return len(h.vars) }

// NewIntVar creates an integer variable with domain [min, max] directly in
// this space's region.
func (h *Space) NewIntVar(min, max int, name string) IntVar {
	slot := Alloc[*IntVarImp](h.region, 1)
	slot[0] = NewIntVarImp(min, max, name)
	h.vars = append(h.vars, slot[0])
	return IntVar{idx: len(h.vars) - 1}
}

// NewIntVarValues creates an integer variable over an explicit value set.
func (h *Space) NewIntVarValues(vals []int, name string) IntVar {
	slot := Alloc[*IntVarImp](h.region, 1)
	slot[0] = NewIntVarImpValues(vals, name)
	h.vars = append(h.vars, slot[0])
	return IntVar{idx: len(h.vars) - 1}
}

// NewBoolVar creates a 0/1 integer variable for use as a BoolView.
func (h *Space) NewBoolVar(name string) IntVar {
	return h.NewIntVar(0, 1, name)
}

// --- low-level int* operations, called by View implementations ---

func (h *Space) intMin(idx int) int       { return h.vars[idx].Min() }
func (h *Space) intMax(idx int) int       { return h.vars[idx].Max() }
func (h *Space) intMed(idx int) int       { return h.vars[idx].Med() }
func (h *Space) intSize(idx int) int      { return h.vars[idx].Size() }
func (h *Space) intWidth(idx int) int     { return h.vars[idx].Width() }
func (h *Space) intRegretMin(idx int) int { return h.vars[idx].RegretMin() }
func (h *Space) intRegretMax(idx int) int { return h.vars[idx].RegretMax() }
func (h *Space) intAssigned(idx int) bool { return h.vars[idx].Assigned() }
func (h *Space) intIn(idx, n int) bool    { return h.vars[idx].In(n) }
func (h *Space) intVal(idx int) int       { return h.vars[idx].Val() }

func (h *Space) intLq(idx, n int) ModEvent {
	imp := h.vars[idx]
	nd, ev := imp.dom.Lq(n)
	return h.apply(idx, imp.dom, nd, ev)
}

func (h *Space) intGq(idx, n int) ModEvent {
	imp := h.vars[idx]
	nd, ev := imp.dom.Gq(n)
	return h.apply(idx, imp.dom, nd, ev)
}

func (h *Space) intNq(idx, n int) ModEvent {
	imp := h.vars[idx]
	nd, ev := imp.dom.Nq(n)
	return h.apply(idx, imp.dom, nd, ev)
}

func (h *Space) intEq(idx, n int) ModEvent {
	imp := h.vars[idx]
	nd, ev := imp.dom.Eq(n)
	return h.apply(idx, imp.dom, nd, ev)
}

// IntInterR intersects variable idx's domain with rs.
func (h *Space) IntInterR(idx int, rs []Range) ModEvent {
	imp := h.vars[idx]
	nd, ev := imp.dom.InterR(rs)
	return h.apply(idx, imp.dom, nd, ev)
}

// IntMinusR removes rs from variable idx's domain.
func (h *Space) IntMinusR(idx int, rs []Range) ModEvent {
	imp := h.vars[idx]
	nd, ev := imp.dom.MinusR(rs)
	return h.apply(idx, imp.dom, nd, ev)
}

// IntNarrowR replaces variable idx's domain with rs, asserted to already
// be a subset.
func (h *Space) IntNarrowR(idx int, rs []Range) ModEvent {
	imp := h.vars[idx]
	nd, ev := imp.dom.NarrowR(rs)
	return h.apply(idx, imp.dom, nd, ev)
}

// IntInterV intersects variable idx's domain with an explicit value set.
func (h *Space) IntInterV(idx int, vals []int) ModEvent {
	imp := h.vars[idx]
	nd, ev := imp.dom.InterV(vals)
	return h.apply(idx, imp.dom, nd, ev)
}

// IntMinusV removes an explicit value set from variable idx's domain.
func (h *Space) IntMinusV(idx int, vals []int) ModEvent {
	imp := h.vars[idx]
	nd, ev := imp.dom.MinusV(vals)
	return h.apply(idx, imp.dom, nd, ev)
}

// IntNarrowV replaces variable idx's domain with an explicit value set,
// asserted to already be a subset.
func (h *Space) IntNarrowV(idx int, vals []int) ModEvent {
	imp := h.vars[idx]
	nd, ev := imp.dom.NarrowV(vals)
	return h.apply(idx, imp.dom, nd, ev)
}

// apply installs a newly computed domain, fails the space on ME_FAILED,
// and otherwise runs advisors then schedules subscribed propagators.
func (h *Space) apply(idx int, oldD, newD Domain, ev ModEvent) ModEvent {
	if h.failed || ev == MeNone {
		return ev
	}
	imp := h.vars[idx]
	imp.dom = newD
	if ev == MeFailed {
		h.failed = true
		return MeFailed
	}

	delta := Delta{
		Event:    ev,
		MinMoved: oldD.Min() != newD.Min(),
		MaxMoved: oldD.Max() != newD.Max(),
		Any:      ev == MeDom,
		OldMin:   oldD.Min(),
		OldMax:   oldD.Max(),
	}

	for _, advIdx := range imp.advisors {
		ae := h.advisors[advIdx]
		switch ae.a.Advise(h, delta) {
		case EsFailed:
			h.failed = true
			return MeFailed
		case EsNofix:
			h.enqueue(ae.propIdx, ev)
		case EsFix:
			// no-op
		}
	}

	for _, sub := range imp.subs {
		if EventMatches(ev, sub.PC) {
			h.enqueue(sub.PropID, ev)
		}
	}
	return ev
}

func (h *Space) enqueue(propIdx int, ev ModEvent) {
	pe := h.props[propIdx]
	if pe.subsumed {
		return
	}
	pe.med = Join(pe.med, ev)
	if pe.queued {
		return
	}
	pe.queued = true
	qc := pe.p.Cost(h, pe.med)
	h.queues[qc] = append(h.queues[qc], propIdx)
}

// PostPropagator attaches p to the space and returns its index, for use
// by a collaborator library's post_X routine.
func (h *Space) PostPropagator(p Propagator) int {
	h.props = append(h.props, &propEntry{p: p})
	return len(h.props) - 1
}

// Subscribe records that propagator propIdx should be woken whenever view
// v raises an event matching pc. Constant views (VarIdx() == -1) have
// nothing to subscribe to.
func (h *Space) Subscribe(propIdx int, v View, pc PropCond) {
	vi := v.VarIdx()
	if vi < 0 {
		return
	}
	imp := h.vars[vi]
	imp.subs = append(imp.subs, subscription{PropID: propIdx, PC: pc})
}

// PostAdvisor attaches advisor a to propagator propIdx, woken by changes on
// view v, and returns the advisor's index.
func (h *Space) PostAdvisor(a Advisor, propIdx int, v View) int {
	idx := len(h.advisors)
	h.advisors = append(h.advisors, &advisorEntry{a: a, propIdx: propIdx})
	if vi := v.VarIdx(); vi >= 0 {
		h.vars[vi].advisors = append(h.vars[vi].advisors, idx)
	}
	return idx
}

// ScheduleInitial forces propIdx to run at least once, so posting a
// propagator always gives it a first chance to prune or fail immediately,
// matching Gecode's post-time propagation.
func (h *Space) ScheduleInitial(propIdx int) {
	h.enqueue(propIdx, MeDom)
}

// Status runs the propagation loop to a fixpoint and reports the
// resulting SpaceStatus. It is idempotent: calling it
// again once reached is a no-op, because a fixpoint space has every queue
// empty.
func (h *Space) Status() SpaceStatus {
	if h.failed {
		return SsFailed
	}
	for {
		idx, ok := h.popLowest()
		if !ok {
			break
		}
		pe := h.props[idx]
		pe.queued = false
		med := pe.med
		pe.med = MeNone

		st := pe.p.Propagate(h, med)
		h.propCount++
		if h.failed || st == EsFailed {
			h.failed = true
			return SsFailed
		}
		switch st {
		case EsSubsumed:
			pe.subsumed = true
		case EsOk, EsNofix, EsNofixForce:
			// EsOk carries the same "more work may remain" meaning as
			// EsNofix here: re-queue so the propagator gets another run.
			h.enqueue(idx, MeDom)
		case EsFix:
			// leave dequeued until new matching events arrive.
		}
	}
	if h.failed {
		return SsFailed
	}
	for _, b := range h.branchers {
		if b.Status(h) {
			return SsBranch
		}
	}
	return SsSolved
}

func (h *Space) popLowest() (int, bool) {
	for c := 0; c < int(numCostClasses); c++ {
		q := h.queues[c]
		for len(q) > 0 {
			idx := q[0]
			q = q[1:]
			h.queues[c] = q
			if h.props[idx].subsumed {
				h.props[idx].queued = false
				continue
			}
			return idx, true
		}
	}
	return 0, false
}

// AddBrancher attaches a brancher to the space. Branchers are consulted in
// the order they are added.
func (h *Space) AddBrancher(b Brancher) {
	h.branchers = append(h.branchers, b)
}

// Choice asks the first live brancher for a decision. Undefined unless
// Status() == SS_BRANCH.
func (h *Space) Choice() (Choice, bool) {
	for i, b := range h.branchers {
		if b.Status(h) {
			c := b.Choice(h)
			c.BrancherIdx = i
			return c, true
		}
	}
	return Choice{}, false
}

// Commit applies alternative alt of choice c to the space.
func (h *Space) Commit(c Choice, alt int) ModEvent {
	b := h.branchers[c.BrancherIdx]
	ev := b.Commit(h, c, alt)
	if ev == MeFailed {
		h.failed = true
	}
	return ev
}

// CloneBase produces an independent copy of the kernel-level state:
// region, variables, propagators, advisors and branchers. share permits
// (without requiring) propagators and branchers to reference-share
// immutable auxiliary state; mutable auxiliary state must always be
// duplicated regardless of share. A model type embedding *Space should
// call CloneBase and then
// plain value-copy its own IntVar/View fields — see pkg/kernel's package
// doc and search.SpaceImpl.
//
// CloneBase panics with a MisuseError if called before the space has
// reached a fixpoint (Status() has not yet emptied every queue): clone
// must be called on a fixpoint space, relaxed to also allow cloning an
// already-failed space, which is
// harmless and occasionally convenient for snapshotting a dead branch.
func (h *Space) CloneBase(share bool) *Space {
	if !h.failed {
		for _, pe := range h.props {
			if pe.queued {
				panic(Misuse("Space.CloneBase", "clone() called before status() reached a fixpoint"))
			}
		}
	}

	nh := &Space{
		RunID:   h.RunID,
		SpaceID: uuid.New(),
		region:  h.region.Clone(),
		failed:  h.failed,
	}

	nh.vars = Alloc[*IntVarImp](nh.region, len(h.vars))
	for i, v := range h.vars {
		nh.vars[i] = v.clone()
	}

	nh.props = Alloc[*propEntry](nh.region, len(h.props))
	for i, pe := range h.props {
		var np Propagator
		if pe.p != nil {
			np = pe.p.Copy(nh, share)
		}
		nh.props[i] = &propEntry{p: np, subsumed: pe.subsumed}
	}

	nh.advisors = Alloc[*advisorEntry](nh.region, len(h.advisors))
	for i, ae := range h.advisors {
		nh.advisors[i] = &advisorEntry{a: ae.a.Copy(nh, share), propIdx: ae.propIdx}
	}

	nh.branchers = Alloc[Brancher](nh.region, len(h.branchers))
	for i, b := range h.branchers {
		nh.branchers[i] = b.Copy(nh, share)
	}

	return nh
}

// Assignment extracts every variable's value as a slice indexed by
// variable index, for use once Status() == SS_SOLVED. Panics via MisuseError (from
// IntVarImp.Val) if any variable is unassigned.
func (h *Space) Assignment() []int {
	out := make([]int, len(h.vars))
	for i, v := range h.vars {
		out[i] = v.Val()
	}
	return out
}
