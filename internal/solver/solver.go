// Package solver is the public entry point for solving a Sudoku puzzle: it
// validates the grid, builds the exact-cover mesh, seeds the given clues,
// and runs the Dancing Links search.
package solver

import (
	"github.com/arithfn/sudoku-dlx/internal/dlx"
	"github.com/arithfn/sudoku-dlx/internal/grid"
)

// Solver solves a single Sudoku puzzle. It is not safe for concurrent use,
// but independent Solvers may run on independent puzzles in parallel: each
// owns its own mesh exclusively for its lifetime, and there is no shared
// state between them.
type Solver struct {
	grid  *grid.Grid
	mesh  *dlx.Mesh
	clues []int32

	// inconsistent is set at construction time if two clues collide on a
	// constraint column. When set, Solve reports failure without running
	// a search that can never succeed.
	inconsistent bool

	attempted bool
	solved    bool
	solution  [][]int
}

// New validates cells and prepares a Solver for it. It fails only for
// structural problems: an UnsupportedSizeError, MalformedGridError, or
// InvalidCellError from internal/grid. A puzzle whose clues conflict (e.g.
// the same digit twice in a row) is accepted here and instead reported by
// Solve returning false.
func New(cells [][]int) (*Solver, error) {
	g, err := grid.New(cells)
	if err != nil {
		return nil, err
	}

	matrix := dlx.BuildMatrix(g.Size(), g.RegionSize())
	mesh := dlx.BuildMesh(matrix)

	s := &Solver{grid: g, mesh: mesh}
	clues, seedErr := mesh.Seed(g.Cells())
	if seedErr != nil {
		s.inconsistent = true
		return s, nil
	}
	s.clues = clues
	return s, nil
}

// Solve runs the search and reports whether a solution was found. It is
// idempotent: calling it again after a successful solve returns true again
// without re-running the search or altering the recorded solution.
func (s *Solver) Solve() bool {
	if s.attempted {
		return s.solved
	}
	s.attempted = true

	if s.inconsistent {
		return false
	}

	rows, ok := s.mesh.Search(nil)
	if !ok {
		return false
	}

	s.solution = s.applySolution(rows)
	s.solved = true
	return true
}

func (s *Solver) applySolution(rows []int32) [][]int {
	out := s.grid.Clone()
	for _, id := range s.clues {
		c := s.mesh.Candidate(id)
		out[c.Row-1][c.Col-1] = c.Digit
	}
	for _, id := range rows {
		c := s.mesh.Candidate(id)
		out[c.Row-1][c.Col-1] = c.Digit
	}
	return out
}

// Solution returns the solved grid and true if Solve has returned true;
// otherwise it returns (nil, false).
func (s *Solver) Solution() ([][]int, bool) {
	if !s.solved {
		return nil, false
	}
	return s.solution, true
}
