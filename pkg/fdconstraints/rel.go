package fdconstraints

import "github.com/bharathkarthikeyan/gecode/pkg/kernel"

// RelOp names the binary relation a Rel propagator enforces between two
// views.
type RelOp int

const (
	RelEq RelOp = iota
	RelNq
	RelLq
	RelLe
	RelGq
	RelGr
)

func (op RelOp) String() string {
	switch op {
	case RelEq:
		return "="
	case RelNq:
		return "!="
	case RelLq:
		return "<="
	case RelLe:
		return "<"
	case RelGq:
		return ">="
	case RelGr:
		return ">"
	default:
		return "?"
	}
}

// rel enforces x op y for one of the six relational operators,
// bounds-consistently.
type rel struct {
	x, y kernel.View
	op   RelOp
}

// PostRel posts x op y.
func PostRel(h *kernel.Space, x kernel.View, op RelOp, y kernel.View) {
	p := &rel{x: x, y: y, op: op}
	idx := h.PostPropagator(p)
	h.Subscribe(idx, x, kernel.PcBnd)
	h.Subscribe(idx, y, kernel.PcBnd)
	h.ScheduleInitial(idx)
}

func (p *rel) Name() string { return "Rel[" + p.op.String() + "]" }

func (p *rel) Cost(h *kernel.Space, med kernel.ModEvent) kernel.CostClass { return kernel.CostBinary }

func (p *rel) Copy(h *kernel.Space, share bool) kernel.Propagator {
	return &rel{x: p.x.Update(h, share), y: p.y.Update(h, share), op: p.op}
}

func (p *rel) Propagate(h *kernel.Space, med kernel.ModEvent) kernel.ExecStatus {
	switch p.op {
	case RelLq:
		return p.propagateLq(h, 0)
	case RelLe:
		return p.propagateLq(h, 1)
	case RelGq:
		return p.propagateGq(h, 0)
	case RelGr:
		return p.propagateGq(h, 1)
	case RelEq:
		return p.propagateEq(h)
	case RelNq:
		return p.propagateNq(h)
	default:
		panic(kernel.Misusef("Rel.Propagate", "unknown RelOp %d", p.op))
	}
}

// propagateLq enforces x <= y (strict=0) or x < y (strict=1, i.e. x <= y-1).
func (p *rel) propagateLq(h *kernel.Space, strict int) kernel.ExecStatus {
	if kernel.Join(p.x.Lq(h, p.y.Max(h)-strict), p.y.Gq(h, p.x.Min(h)+strict)).Failed() {
		return kernel.EsFailed
	}
	if p.x.Max(h) <= p.y.Min(h)-strict {
		return kernel.EsSubsumed
	}
	return kernel.EsFix
}

// propagateGq enforces x >= y (strict=0) or x > y (strict=1).
func (p *rel) propagateGq(h *kernel.Space, strict int) kernel.ExecStatus {
	if kernel.Join(p.x.Gq(h, p.y.Min(h)+strict), p.y.Lq(h, p.x.Max(h)-strict)).Failed() {
		return kernel.EsFailed
	}
	if p.x.Min(h) >= p.y.Max(h)+strict {
		return kernel.EsSubsumed
	}
	return kernel.EsFix
}

func (p *rel) propagateEq(h *kernel.Space) kernel.ExecStatus {
	ev := kernel.Join(
		kernel.Join(p.x.Lq(h, p.y.Max(h)), p.x.Gq(h, p.y.Min(h))),
		kernel.Join(p.y.Lq(h, p.x.Max(h)), p.y.Gq(h, p.x.Min(h))),
	)
	if ev.Failed() {
		return kernel.EsFailed
	}
	if p.x.Assigned(h) && p.y.Assigned(h) {
		if p.x.Val(h) != p.y.Val(h) {
			return kernel.EsFailed
		}
		return kernel.EsSubsumed
	}
	return kernel.EsFix
}

func (p *rel) propagateNq(h *kernel.Space) kernel.ExecStatus {
	if p.x.Assigned(h) {
		if p.y.Nq(h, p.x.Val(h)).Failed() {
			return kernel.EsFailed
		}
	} else if p.y.Assigned(h) {
		if p.x.Nq(h, p.y.Val(h)).Failed() {
			return kernel.EsFailed
		}
	}
	if p.x.Max(h) < p.y.Min(h) || p.y.Max(h) < p.x.Min(h) {
		return kernel.EsSubsumed
	}
	if p.x.Assigned(h) && p.y.Assigned(h) {
		if p.x.Val(h) == p.y.Val(h) {
			return kernel.EsFailed
		}
		return kernel.EsSubsumed
	}
	return kernel.EsFix
}
