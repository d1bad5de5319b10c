package dlx

// Mesh is the toroidal quadruply-linked structure built from a
// SparseMatrix: a single flat node arena, indices 1..NumCols are column
// headers spliced into root's horizontal list, and every later index is a
// matrix entry spliced into both its column's vertical list and its row's
// horizontal list.
//
// All node memory is allocated once, here, and released as a unit when the
// Mesh is garbage collected — cover/uncover only re-link, they never
// allocate or free a node.
type Mesh struct {
	N       int
	nodes   []node
	numCols int
	rowAt   []int32 // rowAt[i] is the cell-band entry of candidate row i
}

// BuildMesh allocates the mesh described by m and splices it into a
// toroidal quadruply-linked structure: headers first, in a circular
// horizontal list around the root; then one quad of entries per row, each
// appended to the bottom of its column's vertical list and spliced into a
// 4-cycle horizontally.
func BuildMesh(m *SparseMatrix) *Mesh {
	total := 1 + m.NumCols + 4*len(m.Rows)
	mesh := &Mesh{
		N:       m.N,
		numCols: m.NumCols,
		nodes:   make([]node, total),
		rowAt:   make([]int32, len(m.Rows)),
	}
	nodes := mesh.nodes

	nodes[rootID] = node{up: rootID, down: rootID, left: rootID, right: rootID, head: rootID, size: -1}

	prev := rootID
	for col := 0; col < m.NumCols; col++ {
		id := int32(1 + col)
		nodes[id] = node{up: id, down: id, head: id, left: prev}
		nodes[prev].right = id
		prev = id
	}
	nodes[rootID].left = prev
	nodes[prev].right = rootID

	next := int32(1 + m.NumCols)
	for i, row := range m.Rows {
		var quad [4]int32
		for k, colIdx := range row.Columns {
			colID := int32(1 + colIdx)
			id := next
			next++

			up := nodes[colID].up
			nodes[id] = node{up: up, down: colID, head: colID, candidate: row.Candidate}
			nodes[up].down = id
			nodes[colID].up = id
			nodes[colID].size++

			quad[k] = id
		}
		for k := range quad {
			nodes[quad[k]].left = quad[(k+3)%4]
			nodes[quad[k]].right = quad[(k+1)%4]
		}
		mesh.rowAt[i] = quad[0]
	}
	return mesh
}

// Candidate returns the placement represented by the row containing the
// arena node at id. Only meaningful for ids returned from Seed or Search.
func (mesh *Mesh) Candidate(id int32) Candidate {
	return mesh.nodes[id].candidate
}

// NumColumns returns the number of constraint columns (4*N^2).
func (mesh *Mesh) NumColumns() int {
	return mesh.numCols
}

// liveColumns reports how many column headers remain in root's horizontal
// list, and the total entry count still reachable from them. Used by the
// package's tests, not by the search itself.
func (mesh *Mesh) liveColumns() (columns, entries int) {
	nodes := mesh.nodes
	for col := nodes[rootID].right; col != rootID; col = nodes[col].right {
		columns++
		entries += int(nodes[col].size)
	}
	return columns, entries
}
