package kernel

// View is the uniform, stateless mutation contract propagators use.
// Every domain kind is wrapped by a View; IntVarView is the identity
// wrapper, the others compose a transform (negation, offset, scale,
// constant, Boolean) with zero additional domain storage — they hold only
// the wrapped variable's index plus, where needed, one or two immutable
// ints.
//
// Because variable handles are slice indices rather than Go pointers (see
// IntVarImp), a View's "rebind to the cloned implementation" contract
// needs no pointer surgery: the same index into a new Space's vars slice
// already refers to the cloned implementation. Update is kept in the
// interface for views that might one day carry out-of-band state, but for
// every view below it is the identity function.
type View interface {
	VarIdx() int

	Min(home *Space) int
	Max(home *Space) int
	Med(home *Space) int
	Size(home *Space) int
	Width(home *Space) int
	RegretMin(home *Space) int
	RegretMax(home *Space) int
	Assigned(home *Space) bool
	In(home *Space, n int) bool
	Val(home *Space) int

	Lq(home *Space, n int) ModEvent
	Gq(home *Space, n int) ModEvent
	Le(home *Space, n int) ModEvent
	Gr(home *Space, n int) ModEvent
	Nq(home *Space, n int) ModEvent
	Eq(home *Space, n int) ModEvent

	// Update rebinds the view to the given (possibly cloned) home.
	Update(home *Space, share bool) View

	// Modevent, DeltaMin, DeltaMax and DeltaAny decode a Delta produced
	// for this view's underlying variable without requiring a reference
	// to the domain's previous state.
	Modevent(d Delta) ModEvent
	DeltaMin(d Delta) int
	DeltaMax(d Delta) int
	DeltaAny(d Delta) bool
}

// IntVarView is the identity view over an IntVarImp.
type IntVarView struct{ idx int }

// NewIntView wraps variable v as an identity view.
func NewIntView(v IntVar) IntVarView { return IntVarView{idx: v.idx} }

func (v IntVarView) VarIdx() int { return v.idx }

func (v IntVarView) Min(h *Space) int       { return h.intMin(v.idx) }
func (v IntVarView) Max(h *Space) int       { return h.intMax(v.idx) }
func (v IntVarView) Med(h *Space) int       { return h.intMed(v.idx) }
func (v IntVarView) Size(h *Space) int      { return h.intSize(v.idx) }
func (v IntVarView) Width(h *Space) int     { return h.intWidth(v.idx) }
func (v IntVarView) RegretMin(h *Space) int { return h.intRegretMin(v.idx) }
func (v IntVarView) RegretMax(h *Space) int { return h.intRegretMax(v.idx) }
func (v IntVarView) Assigned(h *Space) bool { return h.intAssigned(v.idx) }
func (v IntVarView) In(h *Space, n int) bool { return h.intIn(v.idx, n) }
func (v IntVarView) Val(h *Space) int       { return h.intVal(v.idx) }

func (v IntVarView) Lq(h *Space, n int) ModEvent { return h.intLq(v.idx, n) }
func (v IntVarView) Gq(h *Space, n int) ModEvent { return h.intGq(v.idx, n) }
func (v IntVarView) Le(h *Space, n int) ModEvent { return h.intLq(v.idx, n-1) }
func (v IntVarView) Gr(h *Space, n int) ModEvent { return h.intGq(v.idx, n+1) }
func (v IntVarView) Nq(h *Space, n int) ModEvent { return h.intNq(v.idx, n) }
func (v IntVarView) Eq(h *Space, n int) ModEvent { return h.intEq(v.idx, n) }

func (v IntVarView) Update(h *Space, share bool) View { return v }

func (v IntVarView) Modevent(d Delta) ModEvent { return d.Event }
func (v IntVarView) DeltaMin(d Delta) int      { return d.OldMin }
func (v IntVarView) DeltaMax(d Delta) int      { return d.OldMax }
func (v IntVarView) DeltaAny(d Delta) bool     { return d.Any }

// MinusView presents {-val : val in x}. It swaps Lq/Gq (and Le/Gr) since
// negating reverses order.
type MinusView struct{ idx int }

// NewMinusView builds the negation view of v.
func NewMinusView(v IntVar) MinusView { return MinusView{idx: v.idx} }

func (v MinusView) VarIdx() int { return v.idx }

func (v MinusView) Min(h *Space) int       { return -h.intMax(v.idx) }
func (v MinusView) Max(h *Space) int       { return -h.intMin(v.idx) }
func (v MinusView) Med(h *Space) int       { return -h.intMed(v.idx) }
func (v MinusView) Size(h *Space) int      { return h.intSize(v.idx) }
func (v MinusView) Width(h *Space) int     { return h.intWidth(v.idx) }
func (v MinusView) RegretMin(h *Space) int { return h.intRegretMax(v.idx) }
func (v MinusView) RegretMax(h *Space) int { return h.intRegretMin(v.idx) }
func (v MinusView) Assigned(h *Space) bool { return h.intAssigned(v.idx) }
func (v MinusView) In(h *Space, n int) bool { return h.intIn(v.idx, -n) }
func (v MinusView) Val(h *Space) int       { return -h.intVal(v.idx) }

func (v MinusView) Lq(h *Space, n int) ModEvent { return h.intGq(v.idx, -n) }
func (v MinusView) Gq(h *Space, n int) ModEvent { return h.intLq(v.idx, -n) }
func (v MinusView) Le(h *Space, n int) ModEvent { return h.intGq(v.idx, -n+1) }
func (v MinusView) Gr(h *Space, n int) ModEvent { return h.intLq(v.idx, -n-1) }
func (v MinusView) Nq(h *Space, n int) ModEvent { return h.intNq(v.idx, -n) }
func (v MinusView) Eq(h *Space, n int) ModEvent { return h.intEq(v.idx, -n) }

func (v MinusView) Update(h *Space, share bool) View { return v }

func (v MinusView) Modevent(d Delta) ModEvent { return d.Event }
func (v MinusView) DeltaMin(d Delta) int      { return -d.OldMax }
func (v MinusView) DeltaMax(d Delta) int      { return -d.OldMin }
func (v MinusView) DeltaAny(d Delta) bool     { return d.Any }

// OffsetView presents {val + off : val in x}.
type OffsetView struct {
	idx int
	off int
}

// NewOffsetView builds an offset view of v by off.
func NewOffsetView(v IntVar, off int) OffsetView { return OffsetView{idx: v.idx, off: off} }

func (v OffsetView) VarIdx() int { return v.idx }

func (v OffsetView) Min(h *Space) int       { return h.intMin(v.idx) + v.off }
func (v OffsetView) Max(h *Space) int       { return h.intMax(v.idx) + v.off }
func (v OffsetView) Med(h *Space) int       { return h.intMed(v.idx) + v.off }
func (v OffsetView) Size(h *Space) int      { return h.intSize(v.idx) }
func (v OffsetView) Width(h *Space) int     { return h.intWidth(v.idx) }
func (v OffsetView) RegretMin(h *Space) int { return h.intRegretMin(v.idx) }
func (v OffsetView) RegretMax(h *Space) int { return h.intRegretMax(v.idx) }
func (v OffsetView) Assigned(h *Space) bool { return h.intAssigned(v.idx) }
func (v OffsetView) In(h *Space, n int) bool { return h.intIn(v.idx, n-v.off) }
func (v OffsetView) Val(h *Space) int       { return h.intVal(v.idx) + v.off }

func (v OffsetView) Lq(h *Space, n int) ModEvent { return h.intLq(v.idx, n-v.off) }
func (v OffsetView) Gq(h *Space, n int) ModEvent { return h.intGq(v.idx, n-v.off) }
func (v OffsetView) Le(h *Space, n int) ModEvent { return h.intLq(v.idx, n-v.off-1) }
func (v OffsetView) Gr(h *Space, n int) ModEvent { return h.intGq(v.idx, n-v.off+1) }
func (v OffsetView) Nq(h *Space, n int) ModEvent { return h.intNq(v.idx, n-v.off) }
func (v OffsetView) Eq(h *Space, n int) ModEvent { return h.intEq(v.idx, n-v.off) }

func (v OffsetView) Update(h *Space, share bool) View { return v }

func (v OffsetView) Modevent(d Delta) ModEvent { return d.Event }
func (v OffsetView) DeltaMin(d Delta) int      { return d.OldMin + v.off }
func (v OffsetView) DeltaMax(d Delta) int      { return d.OldMax + v.off }
func (v OffsetView) DeltaAny(d Delta) bool     { return d.Any }

// ScaleView presents {a*val : val in x} for a positive integer scale
// factor a. Values that are not multiples of a are never admissible, so
// bound updates round toward the interior of the scaled domain.
type ScaleView struct {
	idx int
	a   int
}

// NewScaleView builds a scale-by-a view of v. a must be a positive
// integer; a non-positive scale is programmer error.
func NewScaleView(v IntVar, a int) ScaleView {
	if a <= 0 {
		panic(Misusef("NewScaleView", "scale factor must be positive, got %d", a))
	}
	return ScaleView{idx: v.idx, a: a}
}

func (v ScaleView) VarIdx() int { return v.idx }

func (v ScaleView) Min(h *Space) int       { return h.intMin(v.idx) * v.a }
func (v ScaleView) Max(h *Space) int       { return h.intMax(v.idx) * v.a }
func (v ScaleView) Med(h *Space) int       { return h.intMed(v.idx) * v.a }
func (v ScaleView) Size(h *Space) int      { return h.intSize(v.idx) }
func (v ScaleView) Width(h *Space) int     { return h.intWidth(v.idx) * v.a }
func (v ScaleView) RegretMin(h *Space) int { return h.intRegretMin(v.idx) * v.a }
func (v ScaleView) RegretMax(h *Space) int { return h.intRegretMax(v.idx) * v.a }
func (v ScaleView) Assigned(h *Space) bool { return h.intAssigned(v.idx) }
func (v ScaleView) In(h *Space, n int) bool {
	if n%v.a != 0 {
		return false
	}
	return h.intIn(v.idx, n/v.a)
}
func (v ScaleView) Val(h *Space) int { return h.intVal(v.idx) * v.a }

func (v ScaleView) Lq(h *Space, n int) ModEvent { return h.intLq(v.idx, floorDiv(n, v.a)) }
func (v ScaleView) Gq(h *Space, n int) ModEvent { return h.intGq(v.idx, ceilDiv(n, v.a)) }
func (v ScaleView) Le(h *Space, n int) ModEvent { return v.Lq(h, n-1) }
func (v ScaleView) Gr(h *Space, n int) ModEvent { return v.Gq(h, n+1) }
func (v ScaleView) Nq(h *Space, n int) ModEvent {
	if n%v.a != 0 {
		return MeNone
	}
	return h.intNq(v.idx, n/v.a)
}
func (v ScaleView) Eq(h *Space, n int) ModEvent {
	if n%v.a != 0 {
		return h.intEq(v.idx, minInt) // force failure: no value of x scales to n
	}
	return h.intEq(v.idx, n/v.a)
}

func (v ScaleView) Update(h *Space, share bool) View { return v }

func (v ScaleView) Modevent(d Delta) ModEvent { return d.Event }
func (v ScaleView) DeltaMin(d Delta) int      { return d.OldMin * v.a }
func (v ScaleView) DeltaMax(d Delta) int      { return d.OldMax * v.a }
func (v ScaleView) DeltaAny(d Delta) bool     { return d.Any }

func floorDiv(n, a int) int {
	if n >= 0 || n%a == 0 {
		return n / a
	}
	return n/a - 1
}

func ceilDiv(n, a int) int {
	if n <= 0 || n%a == 0 {
		return n / a
	}
	return n/a + 1
}

// ConstIntView presents a fixed, immutable singleton domain {c}. It
// subscribes to nothing and every mutator is a no-op that returns MeNone
// when already consistent, MeFailed if c violates the requested tightening.
type ConstIntView struct{ c int }

// NewConstIntView builds a constant view equal to c. It is not backed by
// any IntVarImp, so VarIdx returns -1; propagators must not subscribe to
// it (there is nothing to subscribe to — a constant never changes).
func NewConstIntView(c int) ConstIntView { return ConstIntView{c: c} }

func (v ConstIntView) VarIdx() int { return -1 }

func (v ConstIntView) Min(h *Space) int       { return v.c }
func (v ConstIntView) Max(h *Space) int       { return v.c }
func (v ConstIntView) Med(h *Space) int       { return v.c }
func (v ConstIntView) Size(h *Space) int      { return 1 }
func (v ConstIntView) Width(h *Space) int     { return 1 }
func (v ConstIntView) RegretMin(h *Space) int { return 0 }
func (v ConstIntView) RegretMax(h *Space) int { return 0 }
func (v ConstIntView) Assigned(h *Space) bool { return true }
func (v ConstIntView) In(h *Space, n int) bool { return n == v.c }
func (v ConstIntView) Val(h *Space) int       { return v.c }

func (v ConstIntView) Lq(h *Space, n int) ModEvent {
	if v.c <= n {
		return MeNone
	}
	return MeFailed
}
func (v ConstIntView) Gq(h *Space, n int) ModEvent {
	if v.c >= n {
		return MeNone
	}
	return MeFailed
}
func (v ConstIntView) Le(h *Space, n int) ModEvent { return v.Lq(h, n-1) }
func (v ConstIntView) Gr(h *Space, n int) ModEvent { return v.Gq(h, n+1) }
func (v ConstIntView) Nq(h *Space, n int) ModEvent {
	if v.c != n {
		return MeNone
	}
	return MeFailed
}
func (v ConstIntView) Eq(h *Space, n int) ModEvent {
	if v.c == n {
		return MeNone
	}
	return MeFailed
}

func (v ConstIntView) Update(h *Space, share bool) View { return v }

func (v ConstIntView) Modevent(d Delta) ModEvent { return MeNone }
func (v ConstIntView) DeltaMin(d Delta) int      { return v.c }
func (v ConstIntView) DeltaMax(d Delta) int      { return v.c }
func (v ConstIntView) DeltaAny(d Delta) bool     { return false }

// BoolView treats a 0/1 IntVarImp as a Boolean: True()/False()/IsTrue()/
// IsFalse() sugar over Eq(1)/Eq(0)/Assigned+Val. It embeds IntVarView so it gets the full
// integer view surface for free — a Boolean is modelled as a 0/1 integer
// variable rather than a distinct domain kind.
type BoolView struct{ IntVarView }

// NewBoolView wraps v (which must have domain {0,1} or a subset) as a
// Boolean view.
func NewBoolView(v IntVar) BoolView { return BoolView{IntVarView{idx: v.idx}} }

// True forces the Boolean to 1.
func (v BoolView) True(h *Space) ModEvent { return v.Eq(h, 1) }

// False forces the Boolean to 0.
func (v BoolView) False(h *Space) ModEvent { return v.Eq(h, 0) }

// IsTrue reports whether the Boolean is assigned 1.
func (v BoolView) IsTrue(h *Space) bool { return v.Assigned(h) && v.Val(h) == 1 }

// IsFalse reports whether the Boolean is assigned 0.
func (v BoolView) IsFalse(h *Space) bool { return v.Assigned(h) && v.Val(h) == 0 }

func (v BoolView) Update(h *Space, share bool) View { return v }
