package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/arithfn/sudoku-dlx/internal/grid"
	"github.com/arithfn/sudoku-dlx/internal/solver"
)

func main() {
	if isStdinTTY() {
		fmt.Println("Enter the puzzle as N lines of N characters, or N^2 characters on one line.")
		fmt.Println("Use '.' or '0' for empty cells; digits 1-9 then A-Z for N > 9.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("reading stdin: %v", err)
	}

	g, err := grid.Parse(string(raw))
	if err != nil {
		fatal("%v", err)
	}

	s, err := solver.New(g.Cells())
	if err != nil {
		fatal("%v", err)
	}

	if s.Solve() {
		color.HiWhite("\nSolution:")
		solution, _ := s.Solution()
		solved, err := grid.New(solution)
		if err != nil {
			fatal("%v", err)
		}
		solved.Print(g.Cells())
	} else {
		color.HiRed("\nNo solution.")
		g.Print(nil)
	}
}

func fatal(format string, args ...any) {
	color.New(color.FgHiRed).Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func isStdinTTY() bool {
	return isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
