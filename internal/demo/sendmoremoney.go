package demo

import (
	"github.com/bharathkarthikeyan/gecode/pkg/fdconstraints"
	"github.com/bharathkarthikeyan/gecode/pkg/kernel"
	"github.com/bharathkarthikeyan/gecode/pkg/search"
)

// sendMoreMoneyLetters is the fixed letter order SendMoreMoney's variables
// and linear-equation coefficients are built from.
var sendMoreMoneyLetters = []string{"S", "E", "N", "D", "M", "O", "R", "Y"}

// sendMoreMoneyCoeffs are each letter's signed weight in SEND+MORE-MONEY=0,
// derived from the columnar addition (see doc comment on NewSendMoreMoney).
var sendMoreMoneyCoeffs = []int{1000, 91, -90, 1, -9000, -900, 10, -1}

// SendMoreMoney is the classic cryptarithmetic puzzle: assign a distinct
// digit 0-9 to each of S E N D M O R Y so that SEND + MORE = MONEY, with
// no leading digit zero.
type SendMoreMoney struct {
	*kernel.Space
	Letters []kernel.IntVar // indexed per sendMoreMoneyLetters
}

// NewSendMoreMoney builds the model. The equation SEND + MORE = MONEY
// expands, column by column, to the single linear equation
// 1000S + 91E - 90N + D - 9000M - 900O + 10R - Y = 0.
func NewSendMoreMoney() *SendMoreMoney {
	h := kernel.NewSpace()
	vars := make([]kernel.IntVar, len(sendMoreMoneyLetters))
	views := make([]kernel.View, len(sendMoreMoneyLetters))
	for i, name := range sendMoreMoneyLetters {
		vars[i] = h.NewIntVar(0, 9, name)
		views[i] = kernel.NewIntView(vars[i])
	}
	views[0].Nq(h, 0) // S, leading digit of SEND
	views[4].Nq(h, 0) // M, leading digit of MORE/MONEY

	fdconstraints.PostAllDifferent(h, views)
	fdconstraints.PostLinearEq(h, sendMoreMoneyCoeffs, views, 0)
	fdconstraints.PostValBrancher(h, views)

	return &SendMoreMoney{Space: h, Letters: vars}
}

// Copy duplicates the model for search, per search.SpaceImpl.
func (m *SendMoreMoney) Copy(share bool) search.SpaceImpl {
	return &SendMoreMoney{Space: m.Space.CloneBase(share), Letters: m.Letters}
}

// Digits returns the solved letter->digit assignment as a map keyed by
// the letters in sendMoreMoneyLetters.
func (m *SendMoreMoney) Digits() map[string]int {
	out := make(map[string]int, len(m.Letters))
	for i, v := range m.Letters {
		out[sendMoreMoneyLetters[i]] = kernel.NewIntView(v).Val(m.Space)
	}
	return out
}
