package kernel

// subscription records that propagator PropID wants to be woken whenever a
// mutation on the owning IntVarImp raises an event matching PC.
type subscription struct {
	PropID int
	PC     PropCond
}

// IntVarImp is an integer variable implementation: domain storage plus its
// propagator-dependency and advisor lists. It lives in its owning Space's
// vars slice; variable handles (IntVar, and derived Views) refer to it by
// slice index rather than by Go pointer, so that Space.CloneBase can produce
// an independent copy by cloning each slice entry in place — no
// pointer-remapping table is needed for variables (propagators that embed
// auxiliary mutable state deep-copy it in Propagator.Copy; see
// propagator.go).
type IntVarImp struct {
	dom       Domain
	name      string
	subs      []subscription
	advisors  []int // advisor IDs subscribed to this variable
}

// NewIntVarImp creates a variable implementation over [min, max].
func NewIntVarImp(min, max int, name string) *IntVarImp {
	return &IntVarImp{dom: NewDomainRange(min, max), name: name}
}

// NewIntVarImpValues creates a variable implementation over an explicit
// value set.
func NewIntVarImpValues(vals []int, name string) *IntVarImp {
	return &IntVarImp{dom: NewDomainValues(vals), name: name}
}

func (v *IntVarImp) clone() *IntVarImp {
	subs := append([]subscription(nil), v.subs...)
	advs := append([]int(nil), v.advisors...)
	return &IntVarImp{dom: v.dom, name: v.name, subs: subs, advisors: advs}
}

// Min, Max, Med, Size, Width, RegretMin, RegretMax, In mirror Domain's read
// accessors directly.
func (v *IntVarImp) Min() int          { return v.dom.Min() }
func (v *IntVarImp) Max() int          { return v.dom.Max() }
func (v *IntVarImp) Med() int          { return v.dom.Med() }
func (v *IntVarImp) Size() int         { return v.dom.Size() }
func (v *IntVarImp) Width() int        { return v.dom.Width() }
func (v *IntVarImp) RegretMin() int    { return v.dom.RegretMin() }
func (v *IntVarImp) RegretMax() int    { return v.dom.RegretMax() }
func (v *IntVarImp) Range() bool       { return v.dom.RangeOnly() }
func (v *IntVarImp) Assigned() bool    { return v.dom.Assigned() }
func (v *IntVarImp) In(n int) bool     { return v.dom.In(n) }
func (v *IntVarImp) Domain() Domain    { return v.dom }

// Val returns the assigned value. Reading an unassigned variable is
// programmer error and panics via MisuseError; callers that want a
// non-panicking check should use Assigned()/Domain().Val() first.
func (v *IntVarImp) Val() int {
	val, ok := v.dom.Val()
	if !ok {
		panic(Misusef("IntVarImp.Val", "variable %q is not assigned (size=%d)", v.name, v.Size()))
	}
	return val
}

func (v *IntVarImp) Name() string {
	if v.name == "" {
		return "_"
	}
	return v.name
}
