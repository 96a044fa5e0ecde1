package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bharathkarthikeyan/gecode/internal/demo"
	"github.com/bharathkarthikeyan/gecode/pkg/search"
)

var (
	nodeLimit int
	failLimit int
	cloneRate int
	solCount  int

	rootCmd = &cobra.Command{
		Use:   "gecode",
		Short: "Drive the finite-domain propagation core's bundled demonstration models",
	}

	queensN int
	queensCmd = &cobra.Command{
		Use:   "queens",
		Short: "Solve the n-queens problem",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDFS(fmt.Sprintf("%d-queens", queensN), demo.NewQueens(queensN), func(s search.SpaceImpl) string {
				q := s.(*demo.Queens)
				return fmt.Sprintf("%v", q.Board())
			})
		},
	}

	sendMoreMoneyCmd = &cobra.Command{
		Use:   "send-more-money",
		Short: "Solve the SEND + MORE = MONEY cryptarithm",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDFS("send-more-money", demo.NewSendMoreMoney(), func(s search.SpaceImpl) string {
				return fmt.Sprintf("%v", s.(*demo.SendMoreMoney).Digits())
			})
		},
	}

	magicSquareN int
	magicSquareCmd = &cobra.Command{
		Use:   "magic-square",
		Short: "Solve an n x n magic square",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDFS(fmt.Sprintf("%d x %d magic square", magicSquareN, magicSquareN), demo.NewMagicSquare(magicSquareN), func(s search.SpaceImpl) string {
				return fmt.Sprintf("%v", s.(*demo.MagicSquare).Grid())
			})
		},
	}
)

func init() {
	rootCmd.PersistentFlags().IntVar(&nodeLimit, "node-limit", 0, "stop after this many search nodes (0 = unlimited)")
	rootCmd.PersistentFlags().IntVar(&failLimit, "fail-limit", 0, "stop after this many failed nodes (0 = unlimited)")
	rootCmd.PersistentFlags().IntVar(&cloneRate, "clone-rate", 1, "clone a full space every N branch nodes")
	rootCmd.PersistentFlags().IntVar(&solCount, "solutions", 1, "number of solutions to print (0 = all)")

	queensCmd.Flags().IntVar(&queensN, "n", 8, "board size")
	magicSquareCmd.Flags().IntVar(&magicSquareN, "n", 4, "square size")

	rootCmd.AddCommand(queensCmd, sendMoreMoneyCmd, magicSquareCmd)
}

func engineOptions() search.Options {
	return search.Options{NodeLimit: nodeLimit, FailLimit: failLimit, CloneRate: cloneRate}
}

// runDFS drives root with a DFS engine, printing up to solCount solutions
// (all of them if solCount <= 0) using render to format each one, then the
// final engine statistics.
func runDFS(label string, root search.SpaceImpl, render func(search.SpaceImpl) string) error {
	engine := search.NewDFS(root, engineOptions())
	fmt.Printf("solving %s\n", label)

	found := 0
	var stats search.Statistics
	for solCount <= 0 || found < solCount {
		sol, s, ok := engine.Next()
		stats = s
		if !ok {
			break
		}
		found++
		fmt.Printf("solution %d: %s\n", found, render(sol))
	}
	fmt.Printf("stats: nodes=%d failures=%d propagations=%d depth=%d\n",
		stats.Nodes, stats.Failures, stats.Propagations, stats.Depth)
	if found == 0 {
		fmt.Println("no solution found")
	}
	return nil
}
