package grid

import (
	"fmt"
	"math"
	"strings"
)

// symbolAlphabet maps a 1-based digit to its printable character: 1-9 first,
// then A-Z for N above 9.
const symbolAlphabet = "123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Parse decodes the conventional N^2-character row-major puzzle string: '.'
// or '0' for an empty cell, '1'-'9' then 'A'-'Z' (case-insensitive) for
// digits above 9. Whitespace (including newlines, so a puzzle may also be
// given as N lines of N characters) is stripped before decoding.
func Parse(s string) (*Grid, error) {
	s = stripWhitespace(s)

	n := int(math.Round(math.Sqrt(float64(len(s)))))
	if n*n != len(s) {
		return nil, fmt.Errorf("grid: puzzle string has %d characters, not a perfect square", len(s))
	}

	cells := make([][]int, n)
	for r := 0; r < n; r++ {
		row := make([]int, n)
		for c := 0; c < n; c++ {
			v, err := decodeSymbol(s[r*n+c])
			if err != nil {
				return nil, err
			}
			row[c] = v
		}
		cells[r] = row
	}
	return New(cells)
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			return -1
		}
		return r
	}, s)
}

func decodeSymbol(ch byte) (int, error) {
	if ch == '.' || ch == '0' {
		return 0, nil
	}
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	idx := strings.IndexByte(symbolAlphabet, ch)
	if idx < 0 {
		return 0, fmt.Errorf("grid: invalid puzzle character %q", ch)
	}
	return idx + 1, nil
}

// String encodes g using the conventional row-major format: '.' for empty,
// symbolAlphabet[v-1] otherwise.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.n * g.n)
	for _, row := range g.cells {
		for _, v := range row {
			if v == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte(symbolAlphabet[v-1])
			}
		}
	}
	return b.String()
}
