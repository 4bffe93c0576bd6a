package ui

import (
	"strings"

	"github.com/atomicstack/lookbook/internal/transition"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// paint is the comparable subset of a Lip Gloss style that a cell can carry.
type paint struct {
	fg     string
	bg     string
	bold   bool
	italic bool
}

func (p paint) style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if p.fg != "" {
		s = s.Foreground(lipgloss.Color(p.fg))
	}
	if p.bg != "" {
		s = s.Background(lipgloss.Color(p.bg))
	}
	if p.bold {
		s = s.Bold(true)
	}
	if p.italic {
		s = s.Italic(true)
	}
	return s
}

type cell struct {
	ch   rune
	wide bool // second column of a double-width rune; never printed
	p    paint
}

// canvas is a fixed grid of cells that later layers paint over. Lip Gloss
// joins blocks side by side but cannot stack one block on top of another, and
// the stage, the advance button and the morph ghosts all overlap.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]cell, h)}
	for y := range c.cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{ch: ' '}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

func (c *canvas) set(x, y int, ch rune, p paint) {
	if !c.inside(x, y) {
		return
	}
	c.cells[y][x] = cell{ch: ch, p: p}
}

// setBg changes the background of a cell and keeps its glyph.
func (c *canvas) setBg(x, y int, bg string) {
	if !c.inside(x, y) {
		return
	}
	c.cells[y][x].p.bg = bg
}

func (c *canvas) fill(r transition.Rect, ch rune, p paint) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			c.set(x, y, ch, p)
		}
	}
}

// text writes s starting at (x, y), clipped to maxW columns, and returns the
// number of columns used. Cell backgrounds already painted are kept when p
// has none.
func (c *canvas) text(x, y int, s string, maxW int, p paint) int {
	used := 0
	for _, r := range s {
		w := ansi.StringWidth(string(r))
		if w == 0 {
			continue
		}
		if used+w > maxW {
			break
		}
		cp := p
		if cp.bg == "" && c.inside(x+used, y) {
			cp.bg = c.cells[y][x+used].p.bg
		}
		c.set(x+used, y, r, cp)
		if w == 2 && c.inside(x+used+1, y) {
			c.cells[y][x+used+1] = cell{wide: true, p: cp}
		}
		used += w
	}
	return used
}

// centerText writes s centred within r on row y.
func (c *canvas) centerText(r transition.Rect, y int, s string, p paint) {
	w := ansi.StringWidth(s)
	if w > r.W {
		w = r.W
	}
	c.text(r.X+(r.W-w)/2, y, s, r.W, p)
}

// box draws the outline of r with the given border glyphs.
func (c *canvas) box(r transition.Rect, b lipgloss.Border, p paint) {
	canvasClip{c: c, clip: transition.Rect{W: c.w, H: c.h}}.box(r, b, p)
}

func (c *canvas) glyph(x, y int, s string, p paint) {
	if s == "" {
		s = " "
	}
	c.text(x, y, s, 1, p)
}

// renderRows serialises rows [from, to) of the grid, grouping runs of
// equally painted cells so each run is styled once.
func (c *canvas) renderRows(from, to int) string {
	from = max(from, 0)
	to = min(to, c.h)
	if from >= to {
		return ""
	}
	sub := &canvas{w: c.w, h: to - from, cells: c.cells[from:to]}
	return sub.render()
}

// render serialises the grid, grouping runs of equally painted cells so each
// run is styled once.
func (c *canvas) render() string {
	cache := make(map[paint]lipgloss.Style)
	styleFor := func(p paint) lipgloss.Style {
		if s, ok := cache[p]; ok {
			return s
		}
		s := p.style()
		cache[p] = s
		return s
	}
	rows := make([]string, c.h)
	var run strings.Builder
	for y, row := range c.cells {
		var line strings.Builder
		current := paint{}
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current == (paint{}) {
				line.WriteString(run.String())
			} else {
				line.WriteString(styleFor(current).Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.wide {
				continue
			}
			if cl.p != current {
				flush()
				current = cl.p
			}
			run.WriteRune(cl.ch)
		}
		flush()
		rows[y] = line.String()
	}
	return strings.Join(rows, "\n")
}
