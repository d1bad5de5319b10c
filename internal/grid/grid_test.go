package grid

import "testing"

func TestNewRejectsUnsupportedSize(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 5, 8, 10} {
		cells := make([][]int, n)
		for r := range cells {
			cells[r] = make([]int, n)
		}
		_, err := New(cells)
		if _, ok := err.(*UnsupportedSizeError); !ok {
			t.Errorf("N=%d: err = %v (%T), want *UnsupportedSizeError", n, err, err)
		}
	}
}

func TestNewRejectsMalformedGrid(t *testing.T) {
	cells := [][]int{
		{0, 0, 0, 0},
		{0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	_, err := New(cells)
	me, ok := err.(*MalformedGridError)
	if !ok {
		t.Fatalf("err = %v (%T), want *MalformedGridError", err, err)
	}
	if me.Row != 1 || me.Got != 3 || me.Want != 4 {
		t.Errorf("err = %+v, want {Row:1 Got:3 Want:4}", me)
	}
}

func TestNewRejectsInvalidCell(t *testing.T) {
	cells := [][]int{
		{0, 0, 0, 0},
		{0, 5, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	_, err := New(cells)
	ce, ok := err.(*InvalidCellError)
	if !ok {
		t.Fatalf("err = %v (%T), want *InvalidCellError", err, err)
	}
	if ce.Row != 1 || ce.Col != 1 || ce.Value != 5 {
		t.Errorf("err = %+v, want {Row:1 Col:1 Value:5}", ce)
	}
}

func TestNewAccepts16x16(t *testing.T) {
	cells := make([][]int, 16)
	for r := range cells {
		cells[r] = make([]int, 16)
	}
	g, err := New(cells)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.Size() != 16 || g.RegionSize() != 4 {
		t.Errorf("Size()=%d RegionSize()=%d, want 16 and 4", g.Size(), g.RegionSize())
	}
}

func TestParseRoundTrip(t *testing.T) {
	s := "974236158638591742125487936316754289742918563589362417867125394253649871491873625"
	g, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := g.String(); got != s {
		t.Errorf("round trip mismatch:\ngot  %s\nwant %s", got, s)
	}
}

func TestParseStripsWhitespace(t *testing.T) {
	puzzle := "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	var lines string
	for i := 0; i < len(puzzle); i += 9 {
		lines += puzzle[i:i+9] + "\n"
	}
	if _, err := Parse(lines); err != nil {
		t.Fatalf("Parse with newlines: %v", err)
	}
}

func TestParseRejectsBadLength(t *testing.T) {
	if _, err := Parse("123"); err == nil {
		t.Fatal("expected an error for a non-square-length string")
	}
}

func TestParseRejectsInvalidCharacter(t *testing.T) {
	// 4x4 grid (16 chars) with an invalid '@' character.
	if _, err := Parse("12@4123412341234"); err == nil {
		t.Fatal("expected an error for an invalid puzzle character")
	}
}

func TestValidateDetectsDuplicateRow(t *testing.T) {
	cells := [][]int{
		{1, 1, 3, 4},
		{3, 4, 1, 2},
		{2, 3, 4, 1},
		{4, 2, 1, 3},
	}
	g, err := New(cells)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := g.Validate(); err == nil {
		t.Fatal("expected Validate to reject a duplicate value in a row")
	}
}

func TestValidateAcceptsCompleteSolution(t *testing.T) {
	cells := [][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	g, err := New(cells)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate rejected a valid solution: %v", err)
	}
}

func ExampleParse() {
	g, err := Parse("53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79")
	if err != nil {
		return
	}
	_ = g
	// Output:
}
