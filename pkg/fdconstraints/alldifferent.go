package fdconstraints

import (
	"sort"

	"github.com/bharathkarthikeyan/gecode/pkg/kernel"
)

// allDifferent enforces pairwise distinctness over a set of views. It is
// deliberately not a full Régin-style all-different filter (that belongs to
// a real constraint library): propagation is forward-checking (an assigned
// view's value is removed from every other view) plus a pigeonhole bound
// check, and subsumption is a naive clique check — all views
// assigned-and-distinct, or their ranges already pairwise disjoint so no
// future narrowing could violate the constraint.
type allDifferent struct {
	views []kernel.View
}

// PostAllDifferent posts pairwise distinctness over views.
func PostAllDifferent(h *kernel.Space, views []kernel.View) {
	p := &allDifferent{views: append([]kernel.View(nil), views...)}
	idx := h.PostPropagator(p)
	for _, v := range p.views {
		h.Subscribe(idx, v, kernel.PcVal)
	}
	h.ScheduleInitial(idx)
}

func (p *allDifferent) Name() string { return "AllDifferent" }

func (p *allDifferent) Cost(h *kernel.Space, med kernel.ModEvent) kernel.CostClass {
	if len(p.views) <= 3 {
		return kernel.CostTernary
	}
	return kernel.CostQuadratic
}

func (p *allDifferent) Copy(h *kernel.Space, share bool) kernel.Propagator {
	vs := make([]kernel.View, len(p.views))
	for i, v := range p.views {
		vs[i] = v.Update(h, share)
	}
	return &allDifferent{views: vs}
}

func (p *allDifferent) Propagate(h *kernel.Space, med kernel.ModEvent) kernel.ExecStatus {
	n := len(p.views)

	for i, vi := range p.views {
		if !vi.Assigned(h) {
			continue
		}
		val := vi.Val(h)
		for j, vj := range p.views {
			if i == j || vj.Assigned(h) {
				continue
			}
			if vj.Nq(h, val).Failed() {
				return kernel.EsFailed
			}
		}
	}

	allAssigned := true
	lo, hi := p.views[0].Min(h), p.views[0].Max(h)
	for i, vi := range p.views {
		if !vi.Assigned(h) {
			allAssigned = false
		}
		if vi.Min(h) < lo {
			lo = vi.Min(h)
		}
		if vi.Max(h) > hi {
			hi = vi.Max(h)
		}
		for j := i + 1; j < n; j++ {
			vj := p.views[j]
			if vi.Assigned(h) && vj.Assigned(h) && vi.Val(h) == vj.Val(h) {
				return kernel.EsFailed
			}
		}
	}
	if hi-lo+1 < n {
		return kernel.EsFailed
	}

	if allAssigned || pairwiseRangeDisjoint(h, p.views) {
		return kernel.EsSubsumed
	}
	return kernel.EsFix
}

// pairwiseRangeDisjoint reports whether every view's [Min,Max] interval is
// disjoint from every other's — a sufficient (not necessary) condition for
// all-different to hold regardless of any future narrowing.
func pairwiseRangeDisjoint(h *kernel.Space, views []kernel.View) bool {
	type span struct{ lo, hi int }
	spans := make([]span, len(views))
	for i, v := range views {
		spans[i] = span{v.Min(h), v.Max(h)}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })
	for i := 1; i < len(spans); i++ {
		if spans[i].lo <= spans[i-1].hi {
			return false
		}
	}
	return true
}
