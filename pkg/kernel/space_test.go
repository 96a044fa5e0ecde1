package kernel

import "testing"

// leConst is a minimal test propagator: view <= bound, used to exercise
// the scheduler, subsumption and cloning without depending on
// pkg/fdconstraints (kept as a separate demonstration collaborator; see
// its own tests for the full scenario coverage).
type leConst struct {
	v     IntVarView
	bound int
	runs  int
}

func (p *leConst) Name() string { return "leConst" }
func (p *leConst) Cost(h *Space, med ModEvent) CostClass { return CostUnary }
func (p *leConst) Copy(h *Space, share bool) Propagator {
	return &leConst{v: p.v.Update(h, share).(IntVarView), bound: p.bound}
}
func (p *leConst) Propagate(h *Space, med ModEvent) ExecStatus {
	p.runs++
	if p.v.Lq(h, p.bound).Failed() {
		return EsFailed
	}
	if p.v.Max(h) <= p.bound {
		return EsSubsumed
	}
	return EsFix
}

func postLeConst(h *Space, v IntVar, bound int) *leConst {
	p := &leConst{v: NewIntView(v), bound: bound}
	idx := h.PostPropagator(p)
	h.Subscribe(idx, p.v, PcBnd)
	h.ScheduleInitial(idx)
	return p
}

func TestStatusRunsPropagatorToFixpoint(t *testing.T) {
	h := NewSpace()
	v := h.NewIntVar(0, 10, "v")
	postLeConst(h, v, 4)

	if st := h.Status(); st != SsSolved {
		t.Fatalf("Status() = %v, want SsSolved", st)
	}
	if got := NewIntView(v).Max(h); got != 4 {
		t.Fatalf("v.Max() = %d, want 4", got)
	}
}

func TestStatusFailsOnEmptyDomain(t *testing.T) {
	h := NewSpace()
	v := h.NewIntVar(5, 10, "v")
	postLeConst(h, v, 2)

	if st := h.Status(); st != SsFailed {
		t.Fatalf("Status() = %v, want SsFailed", st)
	}
	if !h.Failed() {
		t.Fatal("Failed() = false after SS_FAILED")
	}
}

func TestStatusIsIdempotent(t *testing.T) {
	h := NewSpace()
	v := h.NewIntVar(0, 10, "v")
	p := postLeConst(h, v, 4)

	h.Status()
	runsAfterFirst := p.runs
	if st := h.Status(); st != SsSolved {
		t.Fatalf("second Status() = %v, want SsSolved", st)
	}
	if p.runs != runsAfterFirst {
		t.Fatalf("propagator ran again on idempotent Status(): %d -> %d", runsAfterFirst, p.runs)
	}
}

func TestSubsumedPropagatorNeverReschedules(t *testing.T) {
	h := NewSpace()
	v := h.NewIntVar(0, 3, "v") // already within bound
	p := postLeConst(h, v, 4)
	h.Status()
	if p.runs != 1 {
		t.Fatalf("runs = %d, want 1 (subsumed immediately)", p.runs)
	}

	// Further mutation must not reschedule a subsumed propagator.
	h.intNq(v.idx, 1)
	h.Status()
	if p.runs != 1 {
		t.Fatalf("runs = %d after further mutation, want still 1 (subsumed)", p.runs)
	}
}

func TestCloneIndependence(t *testing.T) {
	h := NewSpace()
	v := h.NewIntVar(0, 10, "v")
	postLeConst(h, v, 4)
	h.Status()

	c := h.CloneBase(true)
	c.intEq(0, 2)
	c.Status()

	if got := NewIntView(v).Max(h); got != 4 {
		t.Fatalf("original space mutated by clone: v.Max() = %d, want 4", got)
	}
	if got := c.intMax(0); got != 2 {
		t.Fatalf("clone not mutated as expected: v.Max() = %d, want 2", got)
	}
}

func TestCloneIndependenceFromSubsumedPropagatorsCount(t *testing.T) {
	h := NewSpace()
	v := h.NewIntVar(0, 10, "v")
	postLeConst(h, v, 4)
	h.Status()

	c1 := h.CloneBase(true)
	c2 := h.CloneBase(true)
	if len(c1.props) != len(c2.props) {
		t.Fatalf("two independent clones disagree on propagator count: %d vs %d", len(c1.props), len(c2.props))
	}
}

func TestAdvisorRequeuesPropagatorOnAccept(t *testing.T) {
	h := NewSpace()
	v := h.NewIntVar(0, 10, "v")
	w := h.NewIntVar(0, 10, "w")
	// Posted without ScheduleInitial, so only the advisor can queue it.
	idx := h.PostPropagator(&leConst{v: NewIntView(w), bound: 100})
	called := false
	h.PostAdvisor(advisorFunc(func(home *Space, d Delta) ExecStatus {
		called = true
		return EsNofix
	}), idx, NewIntView(v))

	h.intLq(v.idx, 5)
	if !called {
		t.Fatal("advisor was not invoked on subscribed view mutation")
	}
	if !h.props[idx].queued {
		t.Fatal("advisor returned EsNofix but its propagator was not queued")
	}
}

// advisorFunc adapts a plain function to the Advisor interface for tests.
type advisorFunc func(home *Space, d Delta) ExecStatus

func (f advisorFunc) Advise(home *Space, d Delta) ExecStatus { return f(home, d) }
func (f advisorFunc) Copy(home *Space, share bool) Advisor    { return f }

func TestNewIntVarChargesRegion(t *testing.T) {
	h := NewSpace()
	h.NewIntVar(0, 10, "a")
	h.NewIntVar(0, 10, "b")
	if got := h.Region().Blocks(); got != 2 {
		t.Fatalf("Region().Blocks() = %d, want 2 (one per NewIntVar call)", got)
	}
	if got := h.Region().Elems(); got != 2 {
		t.Fatalf("Region().Elems() = %d, want 2", got)
	}
}

func TestCloneBaseChargesFreshRegion(t *testing.T) {
	h := NewSpace()
	v := h.NewIntVar(0, 10, "v")
	postLeConst(h, v, 4)
	h.Status()

	c := h.CloneBase(true)
	// Original's region is untouched; the clone gets its own counters from
	// re-allocating its vars/props/advisors/branchers slices.
	if got := h.Region().Blocks(); got != 1 {
		t.Fatalf("original Region().Blocks() = %d, want 1 (unaffected by clone)", got)
	}
	if got := c.Region().Blocks(); got == 0 {
		t.Fatal("clone Region().Blocks() = 0, want > 0 (vars/props reallocated)")
	}
}

// esOkProp reports EsOk on its first run (more work pending) and EsFix
// once it has nothing left to do, to exercise Status()'s scheduling of
// EsOk the same way it schedules EsNofix.
type esOkProp struct {
	v    IntVarView
	runs int
}

func (p *esOkProp) Name() string                          { return "esOkProp" }
func (p *esOkProp) Cost(h *Space, med ModEvent) CostClass { return CostUnary }
func (p *esOkProp) Copy(h *Space, share bool) Propagator {
	return &esOkProp{v: p.v.Update(h, share).(IntVarView), runs: p.runs}
}
func (p *esOkProp) Propagate(h *Space, med ModEvent) ExecStatus {
	p.runs++
	if p.runs == 1 {
		return EsOk
	}
	return EsFix
}

func TestEsOkIsRescheduledLikeEsNofix(t *testing.T) {
	h := NewSpace()
	v := h.NewIntVar(0, 10, "v")
	p := &esOkProp{v: NewIntView(v)}
	idx := h.PostPropagator(p)
	h.Subscribe(idx, p.v, PcBnd)
	h.ScheduleInitial(idx)

	h.Status()
	if p.runs != 2 {
		t.Fatalf("runs = %d, want 2 (EsOk must re-queue the propagator once more, same as EsNofix)", p.runs)
	}
}
