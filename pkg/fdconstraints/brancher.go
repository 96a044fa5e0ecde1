package fdconstraints

import "github.com/bharathkarthikeyan/gecode/pkg/kernel"

// valBrancher picks the first unassigned view, in the order given at post
// time, and offers a binary choice: equal to the view's current minimum,
// or not. This is the value-enumeration branching a Gecode model gets from
// int::branch with INT_VAL_MIN.
type valBrancher struct {
	views []kernel.View
}

// PostValBrancher attaches an in-order, smallest-value-first brancher over
// views to the space.
func PostValBrancher(h *kernel.Space, views []kernel.View) {
	h.AddBrancher(&valBrancher{views: append([]kernel.View(nil), views...)})
}

type valChoiceData struct {
	viewIdx int
	val     int
}

func (b *valBrancher) Status(h *kernel.Space) bool {
	for _, v := range b.views {
		if !v.Assigned(h) {
			return true
		}
	}
	return false
}

func (b *valBrancher) Choice(h *kernel.Space) kernel.Choice {
	for i, v := range b.views {
		if !v.Assigned(h) {
			return kernel.Choice{Alternatives: 2, Data: valChoiceData{viewIdx: i, val: v.Min(h)}}
		}
	}
	panic(kernel.Misuse("valBrancher.Choice", "called with every view already assigned"))
}

// Commit applies alt 0 (view := val) or alt 1 (view != val).
func (b *valBrancher) Commit(h *kernel.Space, c kernel.Choice, alt int) kernel.ModEvent {
	d := c.Data.(valChoiceData)
	v := b.views[d.viewIdx]
	if alt == 0 {
		return v.Eq(h, d.val)
	}
	return v.Nq(h, d.val)
}

func (b *valBrancher) Copy(h *kernel.Space, share bool) kernel.Brancher {
	vs := make([]kernel.View, len(b.views))
	for i, v := range b.views {
		vs[i] = v.Update(h, share)
	}
	return &valBrancher{views: vs}
}
