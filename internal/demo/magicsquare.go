package demo

import (
	"fmt"

	"github.com/bharathkarthikeyan/gecode/pkg/fdconstraints"
	"github.com/bharathkarthikeyan/gecode/pkg/kernel"
	"github.com/bharathkarthikeyan/gecode/pkg/search"
)

// MagicSquare is an n x n grid of distinct values 1..n^2 whose every row,
// column and both diagonals sum to the magic constant n*(n^2+1)/2.
type MagicSquare struct {
	*kernel.Space
	N     int
	Cells []kernel.IntVar // row-major
}

// NewMagicSquare builds an n x n magic square model.
func NewMagicSquare(n int) *MagicSquare {
	h := kernel.NewSpace()
	cells := make([]kernel.IntVar, n*n)
	views := make([]kernel.View, n*n)
	for i := range cells {
		cells[i] = h.NewIntVar(1, n*n, fmt.Sprintf("c%d", i))
		views[i] = kernel.NewIntView(cells[i])
	}
	fdconstraints.PostAllDifferent(h, views)

	magic := n * (n*n + 1) / 2
	ones := make([]int, n)
	for i := range ones {
		ones[i] = 1
	}
	for r := 0; r < n; r++ {
		row := make([]kernel.View, n)
		for c := 0; c < n; c++ {
			row[c] = views[r*n+c]
		}
		fdconstraints.PostLinearEq(h, ones, row, magic)
	}
	for c := 0; c < n; c++ {
		col := make([]kernel.View, n)
		for r := 0; r < n; r++ {
			col[r] = views[r*n+c]
		}
		fdconstraints.PostLinearEq(h, ones, col, magic)
	}
	diag1 := make([]kernel.View, n)
	diag2 := make([]kernel.View, n)
	for i := 0; i < n; i++ {
		diag1[i] = views[i*n+i]
		diag2[i] = views[i*n+(n-1-i)]
	}
	fdconstraints.PostLinearEq(h, ones, diag1, magic)
	fdconstraints.PostLinearEq(h, ones, diag2, magic)

	fdconstraints.PostValBrancher(h, views)
	return &MagicSquare{Space: h, N: n, Cells: cells}
}

// Copy duplicates the model for search, per search.SpaceImpl.
func (m *MagicSquare) Copy(share bool) search.SpaceImpl {
	return &MagicSquare{Space: m.Space.CloneBase(share), N: m.N, Cells: m.Cells}
}

// Grid renders the solved model as an n x n slice of slices.
func (m *MagicSquare) Grid() [][]int {
	out := make([][]int, m.N)
	for r := 0; r < m.N; r++ {
		row := make([]int, m.N)
		for c := 0; c < m.N; c++ {
			row[c] = kernel.NewIntView(m.Cells[r*m.N+c]).Val(m.Space)
		}
		out[r] = row
	}
	return out
}
