// Package dlx implements Knuth's Dancing Links (Algorithm X) over the
// exact-cover formulation of Sudoku. It owns the sparse constraint matrix,
// the toroidal quadruply-linked mesh, clue seeding, and the recursive
// search. It never validates puzzle shape (that's internal/grid's job) and
// never prints or logs.
package dlx

// Candidate identifies a single digit placement (d, r, c): the row of the
// exact-cover matrix that sets digit d into cell (r, c). Row and Col are
// 1-based, matching the coordinates a solved grid exposes to callers.
type Candidate struct {
	Digit, Row, Col int
}

// node is one element of the toroidal mesh: the root sentinel, a column
// header, or a matrix entry. All three share the same four neighbor links;
// which of the remaining fields are meaningful depends on the node's role.
//
// Nodes live in a single flat arena addressed by int32 index rather than by
// pointer (the up/down/left/right "links" are index fields). This removes
// the lifetime ambiguity of a cyclic pointer graph: the whole mesh is
// allocated once by BuildMesh and freed as a unit when the Mesh is dropped.
type node struct {
	up, down, left, right int32

	// head is the column header this node belongs to. A header's own head
	// field is its own index; the root's head field is unused.
	head int32

	// size is the live entry count for a column header. Meaningless for
	// the root and for matrix entries.
	size int32

	// candidate is the placement this row represents. Meaningless for the
	// root and for column headers.
	candidate Candidate
}

// rootID is the fixed arena index of the root sentinel. Column headers
// occupy 1..numCols; matrix entries follow.
const rootID int32 = 0
