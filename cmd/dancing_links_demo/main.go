package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/arithfn/sudoku-dlx/internal/grid"
	"github.com/arithfn/sudoku-dlx/internal/solver"
)

func main() {
	fmt.Println("Dancing Links Algorithm Demonstration")
	fmt.Println("=====================================")

	testCases := []struct {
		name   string
		puzzle [][]int
	}{
		{
			name: "9x9 Easy Puzzle",
			puzzle: [][]int{
				{5, 3, 0, 0, 7, 0, 0, 0, 0},
				{6, 0, 0, 1, 9, 5, 0, 0, 0},
				{0, 9, 8, 0, 0, 0, 0, 6, 0},
				{8, 0, 0, 0, 6, 0, 0, 0, 3},
				{4, 0, 0, 8, 0, 3, 0, 0, 1},
				{7, 0, 0, 0, 2, 0, 0, 0, 6},
				{0, 6, 0, 0, 0, 0, 2, 8, 0},
				{0, 0, 0, 4, 1, 9, 0, 0, 5},
				{0, 0, 0, 0, 8, 0, 0, 7, 9},
			},
		},
		{
			name: "9x9 Hard Puzzle",
			puzzle: [][]int{
				{0, 0, 0, 0, 0, 0, 0, 1, 0},
				{4, 0, 0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 6, 0, 2},
				{0, 0, 0, 0, 0, 3, 0, 7, 0},
				{5, 0, 0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 2, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0, 0, 0},
			},
		},
		{
			name:   "16x16 Puzzle",
			puzzle: bandShiftPuzzle(16, 4),
		},
	}

	for i, tc := range testCases {
		fmt.Printf("\n%s %d: %s\n", color.HiBlueString("Test Case"), i+1, color.HiYellowString(tc.name))
		fmt.Println(color.HiBlueString("Original Puzzle:"))

		g, err := grid.New(tc.puzzle)
		if err != nil {
			color.HiRed("invalid puzzle: %v", err)
			continue
		}
		g.Print(nil)

		fmt.Println(color.HiGreenString("\nSolving with Dancing Links Algorithm..."))

		s, err := solver.New(tc.puzzle)
		if err != nil {
			color.HiRed("could not build solver: %v", err)
			continue
		}
		solved, stats := s.SolveWithStats()

		if solved {
			fmt.Printf("%s (%s, %d nodes visited, %d backtracks)\n",
				color.HiGreenString("✓ Solved successfully!"), stats.TimeElapsed, stats.NodesVisited, stats.BacktrackCount)
			fmt.Println(color.HiBlueString("Solution:"))
			solution, _ := s.Solution()
			solved, err := grid.New(solution)
			if err != nil {
				color.HiRed("%v", err)
				continue
			}
			solved.Print(g.Cells())

			if err := solved.Validate(); err == nil {
				fmt.Println(color.HiGreenString("✓ Solution verified as correct!"))
			} else {
				fmt.Println(color.HiRedString("✗ Solution verification failed: %v", err))
			}
		} else {
			fmt.Printf("%s (%s)\n", color.HiRedString("✗ Failed to solve"), stats.TimeElapsed)
		}

		fmt.Printf("Matrix: %d columns, %d rows, %d nodes\n",
			stats.Matrix.Columns, stats.Matrix.Rows, stats.Matrix.TotalNodes)
		fmt.Println(color.HiBlackString("─────────────────────────────────────"))
	}

	demonstrateAlgorithmDetails()
}

// bandShiftPuzzle builds a complete, valid N x N solution using the standard
// band-shift base pattern and then blanks every other cell.
func bandShiftPuzzle(n, side int) [][]int {
	out := make([][]int, n)
	for r := 0; r < n; r++ {
		row := make([]int, n)
		for c := 0; c < n; c++ {
			v := (side*(r%side)+r/side+c)%n + 1
			if (r+c)%2 == 0 {
				v = 0
			}
			row[c] = v
		}
		out[r] = row
	}
	return out
}

func demonstrateAlgorithmDetails() {
	fmt.Printf("\n%s\n", color.HiCyanString("Dancing Links Algorithm Details"))
	fmt.Println(color.HiCyanString("================================"))

	fmt.Println("\nThe Dancing Links algorithm (also known as Algorithm X) solves")
	fmt.Println("exact cover problems efficiently. For an N x N Sudoku, the puzzle is")
	fmt.Println("modeled as an exact cover problem over 4*N^2 constraint columns:")

	fmt.Printf("\n%s\n", color.HiYellowString("1. Constraint Matrix Structure:"))
	fmt.Println("   • N^2 cell constraints: each cell holds exactly one value")
	fmt.Println("   • N^2 row constraints: each row contains every digit exactly once")
	fmt.Println("   • N^2 column constraints: each column contains every digit exactly once")
	fmt.Println("   • N^2 region constraints: each sqrt(N)xsqrt(N) region contains every digit exactly once")

	fmt.Printf("\n%s\n", color.HiYellowString("2. Matrix Rows:"))
	fmt.Println("   • N^3 candidate rows, one per (row, col, digit) triple")
	fmt.Println("   • Each row has exactly 4 nodes, one per constraint type")
	fmt.Println("   • Rows for given clues are covered up front, before search begins")

	fmt.Printf("\n%s\n", color.HiYellowString("3. Dancing Links Operations:"))
	fmt.Println("   • Cover: remove a column and every row intersecting it")
	fmt.Println("   • Uncover: restore a column and its rows, in exact reverse order (backtracking)")
	fmt.Println("   • Search: recursively choose a column, try each of its rows, cover/uncover")

	fmt.Printf("\n%s\n", color.HiYellowString("4. Key optimizations:"))
	fmt.Println("   • Minimum Remaining Values (MRV) heuristic: choose the column with fewest rows")
	fmt.Println("   • Doubly-linked circular lists give O(1) cover/uncover")
	fmt.Println("   • No mid-search cancellation: an interrupted cover/uncover pair would corrupt the mesh")

	fmt.Printf("\n%s\n", color.HiYellowString("5. Scope:"))
	fmt.Println("   • Finds the first solution, not all of them")
	fmt.Println("   • Works for any perfect-square order N, not just 9")
}
