package kernel

import "sort"

// Range is an inclusive integer interval, used by the bulk range-iterator
// operations NarrowR / InterR / MinusR.
type Range struct {
	Lo, Hi int
}

// Domain is a finite set of admissible integer values, stored as a sorted,
// disjoint, non-adjacent list of Ranges: a bounded interval plus an
// optional hole list, where the holes are exactly the gaps between
// consecutive ranges. Domain is a value type; every
// mutator returns a new Domain rather than mutating in place, so
// IntVarImp (which does hold mutable state) controls exactly when the
// visible domain changes and what event that change produces.
type Domain struct {
	ranges []Range
}

// NewDomainRange builds the domain {min, min+1, ..., max}.
func NewDomainRange(min, max int) Domain {
	if max < min {
		return Domain{}
	}
	return Domain{ranges: []Range{{min, max}}}
}

// NewDomainRanges builds a domain from an arbitrary, possibly unsorted and
// overlapping, set of ranges.
func NewDomainRanges(rs []Range) Domain {
	return Domain{ranges: normalize(rs)}
}

// NewDomainValues builds a domain from an explicit value set.
func NewDomainValues(vals []int) Domain {
	rs := make([]Range, len(vals))
	for i, v := range vals {
		rs[i] = Range{v, v}
	}
	return Domain{ranges: normalize(rs)}
}

func normalize(rs []Range) []Range {
	if len(rs) == 0 {
		return nil
	}
	cp := make([]Range, len(rs))
	copy(cp, rs)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Lo < cp[j].Lo })
	out := cp[:1]
	for _, r := range cp[1:] {
		last := &out[len(out)-1]
		if r.Lo <= last.Hi+1 {
			if r.Hi > last.Hi {
				last.Hi = r.Hi
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

// Empty reports whether the domain has no admissible values (ME_FAILED
// territory; Domain itself never signals failure, IntVarImp does).
func (d Domain) Empty() bool { return len(d.ranges) == 0 }

// Min returns the smallest admissible value. Undefined on an empty domain.
func (d Domain) Min() int { return d.ranges[0].Lo }

// Max returns the largest admissible value. Undefined on an empty domain.
func (d Domain) Max() int { return d.ranges[len(d.ranges)-1].Hi }

// Width returns max-min+1, i.e. the span including any holes.
func (d Domain) Width() int {
	if d.Empty() {
		return 0
	}
	return d.Max() - d.Min() + 1
}

// Size returns the number of admissible values.
func (d Domain) Size() int {
	n := 0
	for _, r := range d.ranges {
		n += r.Hi - r.Lo + 1
	}
	return n
}

// RangeOnly reports whether the domain is a single contiguous interval.
func (d Domain) RangeOnly() bool { return len(d.ranges) <= 1 }

// Assigned reports whether the domain is a singleton.
func (d Domain) Assigned() bool { return d.Size() == 1 }

// Val returns the single admissible value and true, or (0, false) if the
// domain is not a singleton. Callers that need a panic-on-misuse check
// instead should use IntVarImp.Val.
func (d Domain) Val() (int, bool) {
	if d.Assigned() {
		return d.Min(), true
	}
	return 0, false
}

// Med returns a value present in the domain closest to the arithmetic
// median of min and max, rounding toward the range containing it.
func (d Domain) Med() int {
	target := (d.Min() + d.Max()) / 2
	if d.In(target) {
		return target
	}
	// find the range straddling target's neighbourhood: the closest
	// admissible value above or below.
	best, bestDist := d.Min(), abs(d.Min()-target)
	for _, r := range d.ranges {
		for _, v := range []int{r.Lo, r.Hi} {
			if dist := abs(v - target); dist < bestDist {
				best, bestDist = v, dist
			}
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// In reports whether v is admissible.
func (d Domain) In(v int) bool {
	for _, r := range d.ranges {
		if v < r.Lo {
			return false
		}
		if v <= r.Hi {
			return true
		}
	}
	return false
}

// RegretMin returns the distance from Min() to the next admissible value
// above it (0 if the domain is a singleton).
func (d Domain) RegretMin() int {
	if d.Assigned() || d.Empty() {
		return 0
	}
	first := d.ranges[0]
	if first.Hi > first.Lo {
		return 1
	}
	return d.ranges[1].Lo - first.Lo
}

// RegretMax returns the distance from Max() to the previous admissible
// value below it (0 if the domain is a singleton).
func (d Domain) RegretMax() int {
	if d.Assigned() || d.Empty() {
		return 0
	}
	last := d.ranges[len(d.ranges)-1]
	if last.Hi > last.Lo {
		return 1
	}
	prev := d.ranges[len(d.ranges)-2]
	return last.Hi - prev.Hi
}

// Ranges returns the domain's underlying range list. The returned slice
// must not be mutated by the caller.
func (d Domain) Ranges() []Range { return d.ranges }

// eventFor classifies the transition from an old domain to a new,
// necessarily-narrower-or-equal domain: the reported event is always at
// least as strong as the strongest individual change effected.
func eventFor(oldD, newD Domain) ModEvent {
	if newD.Empty() {
		return MeFailed
	}
	if newD.Size() == oldD.Size() {
		return MeNone
	}
	if newD.Assigned() {
		return MeVal
	}
	if newD.Min() != oldD.Min() || newD.Max() != oldD.Max() {
		return MeBnd
	}
	return MeDom
}

// Lq tightens the domain to values <= n.
func (d Domain) Lq(n int) (Domain, ModEvent) {
	return d.InterR([]Range{{minInt, n}})
}

// Gq tightens the domain to values >= n.
func (d Domain) Gq(n int) (Domain, ModEvent) {
	return d.InterR([]Range{{n, maxInt}})
}

// Le tightens the domain to values < n (sugar over Lq(n-1)).
func (d Domain) Le(n int) (Domain, ModEvent) { return d.Lq(n - 1) }

// Gr tightens the domain to values > n (sugar over Gq(n+1)).
func (d Domain) Gr(n int) (Domain, ModEvent) { return d.Gq(n + 1) }

// Nq removes the single value n.
func (d Domain) Nq(n int) (Domain, ModEvent) {
	return d.MinusR([]Range{{n, n}})
}

// Eq forces assignment to n.
func (d Domain) Eq(n int) (Domain, ModEvent) {
	return d.InterR([]Range{{n, n}})
}

// InterR intersects the domain with the given ranges (set intersection).
func (d Domain) InterR(rs []Range) (Domain, ModEvent) {
	norm := normalize(rs)
	var out []Range
	i, j := 0, 0
	for i < len(d.ranges) && j < len(norm) {
		a, b := d.ranges[i], norm[j]
		lo := maxOf(a.Lo, b.Lo)
		hi := minOf(a.Hi, b.Hi)
		if lo <= hi {
			out = append(out, Range{lo, hi})
		}
		if a.Hi < b.Hi {
			i++
		} else {
			j++
		}
	}
	nd := Domain{ranges: out}
	return nd, eventFor(d, nd)
}

// MinusR removes the given ranges from the domain (set difference).
func (d Domain) MinusR(rs []Range) (Domain, ModEvent) {
	norm := normalize(rs)
	out := append([]Range(nil), d.ranges...)
	for _, rm := range norm {
		var next []Range
		for _, r := range out {
			if rm.Hi < r.Lo || rm.Lo > r.Hi {
				next = append(next, r)
				continue
			}
			if rm.Lo > r.Lo {
				next = append(next, Range{r.Lo, rm.Lo - 1})
			}
			if rm.Hi < r.Hi {
				next = append(next, Range{rm.Hi + 1, r.Hi})
			}
		}
		out = next
	}
	nd := Domain{ranges: out}
	return nd, eventFor(d, nd)
}

// NarrowR replaces the domain with exactly the given ranges, which the
// caller asserts are already a subset of the current domain. Implemented
// as an intersection so an incorrect caller still gets a sound (if
// possibly confusingly-eventful) result rather than domain corruption.
func (d Domain) NarrowR(rs []Range) (Domain, ModEvent) {
	return d.InterR(rs)
}

// InterV intersects the domain with an explicit value set.
func (d Domain) InterV(vals []int) (Domain, ModEvent) {
	return d.InterR(valsToRanges(vals))
}

// MinusV removes an explicit value set from the domain.
func (d Domain) MinusV(vals []int) (Domain, ModEvent) {
	return d.MinusR(valsToRanges(vals))
}

// NarrowV replaces the domain with exactly the given value set, asserted
// to already be a subset of the current domain.
func (d Domain) NarrowV(vals []int) (Domain, ModEvent) {
	return d.InterV(vals)
}

func valsToRanges(vals []int) []Range {
	rs := make([]Range, len(vals))
	for i, v := range vals {
		rs[i] = Range{v, v}
	}
	return rs
}

func maxOf(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minOf(a, b int) int {
	if a < b {
		return a
	}
	return b
}

const (
	minInt = -(1 << 62)
	maxInt = (1 << 62) - 1
)
