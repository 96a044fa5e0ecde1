package fdconstraints

import "github.com/bharathkarthikeyan/gecode/pkg/kernel"

// linear enforces loC <= sum(coeff_i * view_i) <= hiC, bounds-consistently:
// each view's bound is tightened to whatever the other views' current
// bounds still permit. PostLinearEq, PostLinearLe and PostLinearGe are thin
// wrappers that pick loC/hiC for equality, <= and >= respectively.
type linear struct {
	coeffs []int
	views  []kernel.View
	loC    int
	hiC    int
	name   string
}

const (
	linMinInt = -(1 << 62)
	linMaxInt = (1 << 62) - 1
)

func newLinear(name string, coeffs []int, views []kernel.View, loC, hiC int) *linear {
	if len(coeffs) != len(views) {
		panic(kernel.Misusef(name, "coeffs/views length mismatch: %d vs %d", len(coeffs), len(views)))
	}
	cp := make([]int, len(coeffs))
	copy(cp, coeffs)
	vs := make([]kernel.View, len(views))
	copy(vs, views)
	return &linear{coeffs: cp, views: vs, loC: loC, hiC: hiC, name: name}
}

func post(h *kernel.Space, p *linear) {
	idx := h.PostPropagator(p)
	for _, v := range p.views {
		h.Subscribe(idx, v, kernel.PcBnd)
	}
	h.ScheduleInitial(idx)
}

// PostLinearEq posts sum(coeffs[i]*views[i]) == c.
func PostLinearEq(h *kernel.Space, coeffs []int, views []kernel.View, c int) {
	post(h, newLinear("LinearEq", coeffs, views, c, c))
}

// PostLinearLe posts sum(coeffs[i]*views[i]) <= c.
func PostLinearLe(h *kernel.Space, coeffs []int, views []kernel.View, c int) {
	post(h, newLinear("LinearLe", coeffs, views, linMinInt, c))
}

// PostLinearGe posts sum(coeffs[i]*views[i]) >= c.
func PostLinearGe(h *kernel.Space, coeffs []int, views []kernel.View, c int) {
	post(h, newLinear("LinearGe", coeffs, views, c, linMaxInt))
}

func (p *linear) Name() string { return p.name }

func (p *linear) Cost(h *kernel.Space, med kernel.ModEvent) kernel.CostClass {
	switch {
	case len(p.views) <= 2:
		return kernel.CostBinary
	case len(p.views) == 3:
		return kernel.CostTernary
	default:
		return kernel.CostLinear
	}
}

func (p *linear) Copy(h *kernel.Space, share bool) kernel.Propagator {
	views := make([]kernel.View, len(p.views))
	for i, v := range p.views {
		views[i] = v.Update(h, share)
	}
	return &linear{coeffs: append([]int(nil), p.coeffs...), views: views, loC: p.loC, hiC: p.hiC, name: p.name}
}

// Propagate recomputes, from each view's current bounds, the tightest
// interval sum(coeff_i*view_i) can still occupy, fails if that interval
// cannot meet [loC, hiC], and otherwise tightens each view to the range
// the others' bounds still leave room for.
func (p *linear) Propagate(h *kernel.Space, med kernel.ModEvent) kernel.ExecStatus {
	n := len(p.views)
	cLo := kernel.Alloc[int](h.Region(), n)
	cHi := kernel.Alloc[int](h.Region(), n)
	lo, hi := 0, 0
	allAssigned := true
	for i, v := range p.views {
		mn, mx := v.Min(h), v.Max(h)
		if !v.Assigned(h) {
			allAssigned = false
		}
		if p.coeffs[i] >= 0 {
			cLo[i], cHi[i] = p.coeffs[i]*mn, p.coeffs[i]*mx
		} else {
			cLo[i], cHi[i] = p.coeffs[i]*mx, p.coeffs[i]*mn
		}
		lo += cLo[i]
		hi += cHi[i]
	}
	if lo > p.hiC || hi < p.loC {
		return kernel.EsFailed
	}

	for i, v := range p.views {
		c := p.coeffs[i]
		if c == 0 {
			continue
		}
		restLo := lo - cLo[i]
		restHi := hi - cHi[i]
		newLo := maxI(cLo[i], p.loC-restHi)
		newHi := minI(cHi[i], p.hiC-restLo)
		if newLo > newHi {
			return kernel.EsFailed
		}

		var xLo, xHi int
		if c > 0 {
			xLo, xHi = ceilDiv(newLo, c), floorDiv(newHi, c)
		} else {
			xLo, xHi = ceilDiv(newHi, c), floorDiv(newLo, c)
		}
		ev := kernel.Join(v.Gq(h, xLo), v.Lq(h, xHi))
		if ev.Failed() {
			return kernel.EsFailed
		}
	}

	if allAssigned {
		return kernel.EsSubsumed
	}
	return kernel.EsFix
}

func maxI(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minI(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// floorDiv and ceilDiv are floor/ceiling integer division for any nonzero
// divisor sign, needed because linear terms may carry negative
// coefficients (e.g. x - y <= 0).
func floorDiv(n, d int) int {
	q := n / d
	if n%d != 0 && (n < 0) != (d < 0) {
		q--
	}
	return q
}

func ceilDiv(n, d int) int {
	q := n / d
	if n%d != 0 && (n < 0) == (d < 0) {
		q++
	}
	return q
}
