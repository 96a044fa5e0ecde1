package fdconstraints_test

import (
	"testing"

	"github.com/bharathkarthikeyan/gecode/pkg/fdconstraints"
	"github.com/bharathkarthikeyan/gecode/pkg/kernel"
)

func TestRelLqNarrowsBothSides(t *testing.T) {
	h := kernel.NewSpace()
	x := h.NewIntVar(0, 10, "x")
	y := h.NewIntVar(5, 8, "y")
	xv, yv := kernel.NewIntView(x), kernel.NewIntView(y)
	fdconstraints.PostRel(h, xv, fdconstraints.RelLq, yv)

	h.Status()
	if xv.Max(h) != 8 {
		t.Fatalf("x.Max() = %d, want 8", xv.Max(h))
	}
	if yv.Min(h) != 5 {
		t.Fatalf("y.Min() = %d, want unchanged at 5", yv.Min(h))
	}
}

func TestRelEqAssignsBothWhenOneIsFixed(t *testing.T) {
	h := kernel.NewSpace()
	x := h.NewIntVar(0, 10, "x")
	y := h.NewIntVar(0, 10, "y")
	xv, yv := kernel.NewIntView(x), kernel.NewIntView(y)
	xv.Eq(h, 3)
	fdconstraints.PostRel(h, xv, fdconstraints.RelEq, yv)

	if st := h.Status(); st != kernel.SsSolved {
		t.Fatalf("Status() = %v, want SsSolved", st)
	}
	if yv.Val(h) != 3 {
		t.Fatalf("y = %d, want 3", yv.Val(h))
	}
}

func TestRelNqFailsWhenBothFixedEqual(t *testing.T) {
	h := kernel.NewSpace()
	x := h.NewIntVar(0, 10, "x")
	y := h.NewIntVar(0, 10, "y")
	xv, yv := kernel.NewIntView(x), kernel.NewIntView(y)
	xv.Eq(h, 4)
	yv.Eq(h, 4)
	fdconstraints.PostRel(h, xv, fdconstraints.RelNq, yv)

	if st := h.Status(); st != kernel.SsFailed {
		t.Fatalf("Status() = %v, want SsFailed", st)
	}
}

func TestRelOpString(t *testing.T) {
	cases := map[fdconstraints.RelOp]string{
		fdconstraints.RelEq: "=",
		fdconstraints.RelNq: "!=",
		fdconstraints.RelLq: "<=",
		fdconstraints.RelLe: "<",
		fdconstraints.RelGq: ">=",
		fdconstraints.RelGr: ">",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", op, got, want)
		}
	}
}
