// Package demo bundles the small constraint models cmd/gecode's
// subcommands drive: n-queens, send-more-money, and magic-square. Each
// model embeds *kernel.Space and implements search.SpaceImpl so either
// search.DFS or search.Restart can walk it directly.
package demo

import (
	"fmt"

	"github.com/bharathkarthikeyan/gecode/pkg/fdconstraints"
	"github.com/bharathkarthikeyan/gecode/pkg/kernel"
	"github.com/bharathkarthikeyan/gecode/pkg/search"
)

// Queens is the n-queens model: one variable per row holding the queen's
// column, all-different on columns and on both diagonals.
type Queens struct {
	*kernel.Space
	Cols []kernel.IntVar
}

// NewQueens builds an n-queens model for an n x n board.
func NewQueens(n int) *Queens {
	h := kernel.NewSpace()
	cols := make([]kernel.IntVar, n)
	colViews := make([]kernel.View, n)
	upViews := make([]kernel.View, n)
	downViews := make([]kernel.View, n)
	for i := 0; i < n; i++ {
		cols[i] = h.NewIntVar(0, n-1, fmt.Sprintf("q%d", i))
		colViews[i] = kernel.NewIntView(cols[i])
		upViews[i] = kernel.NewOffsetView(cols[i], i)
		downViews[i] = kernel.NewOffsetView(cols[i], -i)
	}
	fdconstraints.PostAllDifferent(h, colViews)
	fdconstraints.PostAllDifferent(h, upViews)
	fdconstraints.PostAllDifferent(h, downViews)
	fdconstraints.PostValBrancher(h, colViews)
	return &Queens{Space: h, Cols: cols}
}

// Copy duplicates the model for search, per search.SpaceImpl.
func (q *Queens) Copy(share bool) search.SpaceImpl {
	return &Queens{Space: q.Space.CloneBase(share), Cols: q.Cols}
}

// Board returns the solved model's queen column for each row, indexed by
// row.
func (q *Queens) Board() []int {
	cols := make([]int, len(q.Cols))
	for i, c := range q.Cols {
		cols[i] = kernel.NewIntView(c).Val(q.Space)
	}
	return cols
}
