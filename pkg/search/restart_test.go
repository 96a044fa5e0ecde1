package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bharathkarthikeyan/gecode/pkg/fdconstraints"
	"github.com/bharathkarthikeyan/gecode/pkg/kernel"
	"github.com/bharathkarthikeyan/gecode/pkg/search"
)

// maxFirstBrancher is a test-only brancher that branches on the largest
// remaining value first (the opposite of fdconstraints' valBrancher), so a
// minimisation search finds a suboptimal solution before an optimal one —
// exercising Restart's successive-tightening loop across more than one
// generation.
type maxFirstBrancher struct {
	views []kernel.View
}

type maxFirstChoiceData struct {
	viewIdx int
	val     int
}

func (b *maxFirstBrancher) Status(h *kernel.Space) bool {
	for _, v := range b.views {
		if !v.Assigned(h) {
			return true
		}
	}
	return false
}

func (b *maxFirstBrancher) Choice(h *kernel.Space) kernel.Choice {
	for i, v := range b.views {
		if !v.Assigned(h) {
			return kernel.Choice{Alternatives: 2, Data: maxFirstChoiceData{viewIdx: i, val: v.Max(h)}}
		}
	}
	panic(kernel.Misuse("maxFirstBrancher.Choice", "called with every view already assigned"))
}

func (b *maxFirstBrancher) Commit(h *kernel.Space, c kernel.Choice, alt int) kernel.ModEvent {
	d := c.Data.(maxFirstChoiceData)
	v := b.views[d.viewIdx]
	if alt == 0 {
		return v.Eq(h, d.val)
	}
	return v.Nq(h, d.val)
}

func (b *maxFirstBrancher) Copy(h *kernel.Space, share bool) kernel.Brancher {
	vs := make([]kernel.View, len(b.views))
	for i, v := range b.views {
		vs[i] = v.Update(h, share)
	}
	return &maxFirstBrancher{views: vs}
}

// sumModel minimises x+y subject to x+y >= 3, x,y in [0,3].
type sumModel struct {
	*kernel.Space
	x, y kernel.IntVar
}

func newSumModel() *sumModel {
	h := kernel.NewSpace()
	x := h.NewIntVar(0, 3, "x")
	y := h.NewIntVar(0, 3, "y")
	xv, yv := kernel.NewIntView(x), kernel.NewIntView(y)
	fdconstraints.PostLinearGe(h, []int{1, 1}, []kernel.View{xv, yv}, 3)
	h.AddBrancher(&maxFirstBrancher{views: []kernel.View{xv, yv}})
	return &sumModel{Space: h, x: x, y: y}
}

func (m *sumModel) Copy(share bool) search.SpaceImpl {
	return &sumModel{Space: m.Space.CloneBase(share), x: m.x, y: m.y}
}

func (m *sumModel) sum() int {
	return kernel.NewIntView(m.x).Val(m.Space) + kernel.NewIntView(m.y).Val(m.Space)
}

func (m *sumModel) Constrain(best search.SpaceImpl) {
	b := best.(*sumModel)
	xv, yv := kernel.NewIntView(m.x), kernel.NewIntView(m.y)
	fdconstraints.PostLinearLe(m.Space, []int{1, 1}, []kernel.View{xv, yv}, b.sum()-1)
}

func TestRestartTightensUntilOptimal(t *testing.T) {
	engine := search.NewRestart(newSumModel(), search.Options{})

	var sums []int
	for {
		sol, stats, ok := engine.Next()
		if !ok {
			require.Equal(t, len(sums), stats.Restarts)
			break
		}
		sums = append(sums, sol.(*sumModel).sum())
	}

	require.NotEmpty(t, sums)
	require.Equal(t, 3, sums[len(sums)-1], "final best must satisfy the x+y>=3 lower bound exactly")
	for i := 1; i < len(sums); i++ {
		require.Less(t, sums[i], sums[i-1], "each restart's best must strictly improve on the last")
	}
}
