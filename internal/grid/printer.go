package grid

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	givenColor  = color.New(color.Bold, color.FgHiYellow, color.BgHiBlack)
	solvedColor = color.New(color.Bold, color.FgHiWhite)
	edgeColor   = color.New(color.FgHiWhite)
)

// Print renders g to stdout with box-drawing borders, using a heavier
// divider every RegionSize rows and columns. Cells that are nonzero in
// givens are highlighted as fixed clues; every other nonzero cell is drawn
// as solved. Pass nil for givens to draw every nonzero cell as solved.
func (g *Grid) Print(givens [][]int) {
	s := g.side
	edgeColor.Println(g.rule("┌", "┬", "╥", "┐", s))
	for r := 0; r < g.n; r++ {
		if r != 0 {
			if r%s == 0 {
				edgeColor.Println(g.rule("╞", "╪", "╬", "╡", s))
			} else {
				edgeColor.Println(g.rule("├", "┼", "╫", "┤", s))
			}
		}
		g.printRow(r, givens, s)
	}
	edgeColor.Println(g.rule("└", "┴", "╨", "┘", s))
}

func (g *Grid) rule(left, minor, major, right string, s int) string {
	var b strings.Builder
	b.WriteString(left)
	for c := 0; c < g.n; c++ {
		b.WriteString("───")
		if c == g.n-1 {
			break
		}
		if (c+1)%s == 0 {
			b.WriteString(major)
		} else {
			b.WriteString(minor)
		}
	}
	b.WriteString(right)
	return b.String()
}

func (g *Grid) printRow(r int, givens [][]int, s int) {
	edgeColor.Print("│")
	for c := 0; c < g.n; c++ {
		v := g.cells[r][c]
		switch {
		case v == 0:
			fmt.Print("   ")
		case givens != nil && c < len(givens[r]) && givens[r][c] != 0:
			givenColor.Printf(" %s ", symbolAlphabet[v-1:v])
		default:
			solvedColor.Printf(" %s ", symbolAlphabet[v-1:v])
		}
		if c == g.n-1 {
			break
		}
		if (c+1)%s == 0 {
			edgeColor.Print("║")
		} else {
			edgeColor.Print("│")
		}
	}
	edgeColor.Println("│")
}
