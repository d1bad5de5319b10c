package solver

import (
	"time"

	"github.com/arithfn/sudoku-dlx/internal/dlx"
)

// MatrixInfo describes the size of the exact-cover matrix a Solver built.
type MatrixInfo struct {
	Columns    int
	Rows       int
	TotalNodes int
	Density    float64 // fraction of matrix cells that are nonzero (each row sets exactly 4 of Columns)
}

// Stats reports instrumentation from a single SolveWithStats call: how much
// of the search tree was explored and how large the underlying matrix was.
// It carries no time limit or solution-count cap: a search always runs to
// completion and stops at the first solution.
type Stats struct {
	NodesVisited   int
	BacktrackCount int
	TimeElapsed    time.Duration
	Matrix         MatrixInfo
}

// SolveWithStats behaves exactly like Solve but also returns instrumentation
// about the search. It does not print or log anything itself; the caller
// decides whether and how to report Stats.
func (s *Solver) SolveWithStats() (bool, *Stats) {
	stats := &Stats{Matrix: s.matrixInfo()}

	start := time.Now()
	defer func() { stats.TimeElapsed = time.Since(start) }()

	if s.attempted {
		return s.solved, stats
	}
	s.attempted = true

	if s.inconsistent {
		return false, stats
	}

	searchStats := &dlx.SearchStats{}
	rows, ok := s.mesh.SearchInstrumented(nil, searchStats)
	stats.NodesVisited = searchStats.NodesVisited
	stats.BacktrackCount = searchStats.BacktrackCount

	if !ok {
		return false, stats
	}

	s.solution = s.applySolution(rows)
	s.solved = true
	return true, stats
}

func (s *Solver) matrixInfo() MatrixInfo {
	n := s.grid.Size()
	columns, rows := s.mesh.NumColumns(), n*n*n
	return MatrixInfo{
		Columns:    columns,
		Rows:       rows,
		TotalNodes: 4 * rows,
		Density:    4 / float64(columns),
	}
}
