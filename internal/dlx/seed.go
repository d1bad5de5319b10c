package dlx

import "fmt"

// ErrInconsistentClue reports that two given clues collide on the same
// constraint column — e.g. the same digit twice in a row, column, or
// region. Candidate identifies the second clue encountered, the one whose
// cover attempt found an already-covered column.
type ErrInconsistentClue struct {
	Candidate Candidate
}

func (e *ErrInconsistentClue) Error() string {
	return fmt.Sprintf("inconsistent clue %d at r%dc%d: constraint already satisfied by another clue",
		e.Candidate.Digit, e.Candidate.Row, e.Candidate.Col)
}

// Seed covers the four constraint columns satisfied by every pre-filled
// cell in grid, appending the chosen row to the returned clue list. The
// clue list is never popped during search, so seeded columns stay covered
// for its entire run.
//
// Seeding uses exactly the cover primitive search uses to choose a row; it
// is not a special case. grid[r][c] == 0 means empty.
func (mesh *Mesh) Seed(grid [][]int) ([]int32, error) {
	n := mesh.N
	clues := make([]int32, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := grid[r][c]
			if v == 0 {
				continue
			}
			rowIdx := (r*n+c)*n + (v - 1)
			entry := mesh.rowAt[rowIdx]
			if !mesh.coverRow(entry) {
				return nil, &ErrInconsistentClue{Candidate: mesh.nodes[entry].candidate}
			}
			clues = append(clues, entry)
		}
	}
	return clues, nil
}

// coverRow covers the four columns touched by the row starting at entry. It
// reports false, without finishing, the moment it finds a column already
// covered: a header H is live iff H.left.right == H, so a header that fails
// that check is the detectable symptom of a clue collision.
//
// A false return leaves the mesh partially covered. That's fine here: the
// caller (Solver) treats ErrInconsistentClue as an immediate, permanent
// "no solution", so the mesh is discarded rather than searched further.
func (mesh *Mesh) coverRow(entry int32) bool {
	nodes := mesh.nodes
	head := nodes[entry].head
	if !mesh.isLive(head) {
		return false
	}
	mesh.cover(head)
	for m := nodes[entry].right; m != entry; m = nodes[m].right {
		h := nodes[m].head
		if !mesh.isLive(h) {
			return false
		}
		mesh.cover(h)
	}
	return true
}

func (mesh *Mesh) isLive(head int32) bool {
	nodes := mesh.nodes
	return nodes[nodes[head].left].right == head
}
