package fdconstraints_test

import (
	"testing"

	"github.com/bharathkarthikeyan/gecode/pkg/fdconstraints"
	"github.com/bharathkarthikeyan/gecode/pkg/kernel"
)

func TestLinearEqTightensBothBounds(t *testing.T) {
	h := kernel.NewSpace()
	x := h.NewIntVar(0, 3, "x")
	y := h.NewIntVar(0, 3, "y")
	xv, yv := kernel.NewIntView(x), kernel.NewIntView(y)
	fdconstraints.PostLinearEq(h, []int{1, 1}, []kernel.View{xv, yv}, 4)
	fdconstraints.PostValBrancher(h, []kernel.View{xv, yv})

	st := h.Status()
	if st != kernel.SsBranch {
		t.Fatalf("Status() = %v, want SsBranch", st)
	}
	if xv.Min(h) != 1 || xv.Max(h) != 3 {
		t.Fatalf("x = [%d,%d], want [1,3]", xv.Min(h), xv.Max(h))
	}
	if yv.Min(h) != 1 || yv.Max(h) != 3 {
		t.Fatalf("y = [%d,%d], want [1,3]", yv.Min(h), yv.Max(h))
	}
}

func TestLinearEqFailsWhenUnreachable(t *testing.T) {
	h := kernel.NewSpace()
	x := h.NewIntVar(0, 1, "x")
	y := h.NewIntVar(0, 1, "y")
	xv, yv := kernel.NewIntView(x), kernel.NewIntView(y)
	fdconstraints.PostLinearEq(h, []int{1, 1}, []kernel.View{xv, yv}, 10)

	if st := h.Status(); st != kernel.SsFailed {
		t.Fatalf("Status() = %v, want SsFailed", st)
	}
}

func TestLinearWithNegativeCoefficient(t *testing.T) {
	h := kernel.NewSpace()
	x := h.NewIntVar(0, 5, "x")
	y := h.NewIntVar(0, 5, "y")
	xv, yv := kernel.NewIntView(x), kernel.NewIntView(y)
	// x - y == 2: bounds-consistent narrowing gives x in [2,5], y in [0,3].
	fdconstraints.PostLinearEq(h, []int{1, -1}, []kernel.View{xv, yv}, 2)
	fdconstraints.PostValBrancher(h, []kernel.View{xv, yv})

	if st := h.Status(); st != kernel.SsBranch {
		t.Fatalf("Status() = %v, want SsBranch", st)
	}
	if xv.Min(h) != 2 || xv.Max(h) != 5 {
		t.Fatalf("x = [%d,%d], want [2,5]", xv.Min(h), xv.Max(h))
	}
	if yv.Min(h) != 0 || yv.Max(h) != 3 {
		t.Fatalf("y = [%d,%d], want [0,3]", yv.Min(h), yv.Max(h))
	}
}

func TestLinearGeLowerBound(t *testing.T) {
	h := kernel.NewSpace()
	x := h.NewIntVar(0, 5, "x")
	y := h.NewIntVar(0, 5, "y")
	xv, yv := kernel.NewIntView(x), kernel.NewIntView(y)
	fdconstraints.PostLinearGe(h, []int{1, 1}, []kernel.View{xv, yv}, 8)

	h.Status()
	if xv.Min(h) != 3 {
		t.Fatalf("x.Min() = %d, want 3 (since y caps at 5)", xv.Min(h))
	}
	if yv.Min(h) != 3 {
		t.Fatalf("y.Min() = %d, want 3", yv.Min(h))
	}
}
