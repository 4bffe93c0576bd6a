package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/lookbook/internal/catalog"
	"github.com/atomicstack/lookbook/internal/render"
	"github.com/atomicstack/lookbook/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/truncate"
)

// gradientSteps quantises backdrop gradients so neighbouring cells share a
// colour and render as a single styled run.
const gradientSteps = 12

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	l := m.layout()
	if l.compact {
		return m.viewCompact(l)
	}

	c := newCanvas(l.width, l.height)
	m.drawStage(c, l)
	m.drawButton(c, l)
	m.drawTiles(c, l)
	m.drawGhosts(c, l)

	body := c.renderRows(headerRows, l.height-bottomRows)
	top := applyWidth(m.headerLines(), l.width)
	bottom := applyWidth(m.bottomLines(), l.width)
	return renderLines(top) + "\n" + body + "\n" + renderLines(bottom)
}

// viewCompact is used when the terminal is too small for the stage: one line
// per control, still reflecting the active item.
func (m *Model) viewCompact(l screenLayout) string {
	f := m.frame
	lines := []styledLine{
		{text: m.title, style: styles.Title},
		{text: fmt.Sprintf("%s  [%s]", f.Stage.Label, f.Advance.Position), style: styles.ActiveLabel},
	}
	for _, th := range f.Thumbs {
		marker := "  "
		style := styles.TileLabel
		if th.Active {
			marker = "▸ "
			style = styles.ActiveLabel
		}
		lines = append(lines, styledLine{text: fmt.Sprintf("%s%d %s", marker, th.Index+1, th.Item.Alt), style: style})
	}
	lines = append(lines, m.bottomLines()...)
	lines = limitHeight(lines, l.height, l.width)
	return renderLines(applyWidth(lines, l.width))
}

func (m *Model) headerLines() []styledLine {
	return []styledLine{
		{text: m.title, style: styles.Title},
		{text: defaultSubtitle, style: styles.Subtitle},
	}
}

// bottomLines is the status row (hover label or info) followed by the
// prompt, help or accessible description of the stage.
func (m *Model) bottomLines() []styledLine {
	var status styledLine
	switch {
	case m.hover.label != "":
		status = styledLine{text: m.hover.label, style: styles.Info}
	default:
		if info := m.currentInfo(); info != "" {
			status = styledLine{text: info, style: styles.Info}
		}
	}

	var last styledLine
	switch {
	case m.prompting:
		last = styledLine{text: m.promptLine(), raw: true}
	case m.showFooter || m.help.ShowAll:
		last = styledLine{text: m.help.View(m.keys), raw: true}
	default:
		f := m.frame
		last = styledLine{text: fmt.Sprintf("%s · %s", f.Stage.Label, f.Advance.Description), style: styles.Footer}
	}
	if m.help.ShowAll && !m.prompting {
		// Full help is two columns tall; keep the bottom bar at two rows.
		help := strings.Split(m.help.View(m.keys), "\n")
		if len(help) > 1 {
			return []styledLine{{text: help[0], raw: true}, {text: help[1], raw: true}}
		}
	}
	return []styledLine{status, last}
}

// drawStage paints the tone backdrop and the displayed item's card with the
// current transition pose applied.
func (m *Model) drawStage(c *canvas, l screenLayout) {
	area := l.stageArea
	backdrop := theme.ParseTone(m.frame.Tone)
	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			c.set(x, y, ' ', paint{bg: gradientAt(backdrop, area, x, y).Hex()})
		}
	}

	item, ok := m.itemFor(m.stage.Displayed())
	if !ok {
		return
	}
	pose := m.stage.Pose()
	if pose.Opacity <= 0.02 {
		return
	}
	card := posed(l.card, pose)
	visible := intersect(card, area)
	if visible.Empty() {
		return
	}
	tone := theme.ParseTone(item.Tone)
	fade := func(fg colorful.Color, x, y int) string {
		return theme.Fade(fg, gradientAt(backdrop, area, x, y), pose.Opacity).Hex()
	}
	for y := visible.Y; y < visible.Y+visible.H; y++ {
		for x := visible.X; x < visible.X+visible.W; x++ {
			fill := theme.Shade(gradientAt(tone, card, x, y))
			c.set(x, y, ' ', paint{bg: fade(fill, x, y)})
		}
	}
	inkAt := func(x, y int) paint {
		return paint{fg: fade(theme.Ink, x, y)}
	}
	clipped := canvasClip{c: c, clip: area}
	clipped.box(card, lipgloss.RoundedBorder(), paint{fg: fade(theme.Edge, card.X, card.Y)})

	inner := inset(card, 2, 1)
	if inner.Empty() {
		return
	}
	idPaint := inkAt(inner.X, inner.Y)
	idPaint.bold = true
	clipped.text(inner.X, inner.Y, truncateText(item.ID, inner.W), inner.W, idPaint)
	if inner.H >= 3 {
		// The displayed item differs from the active one while the outgoing
		// card plays its exit.
		altY := inner.Y + inner.H - 2
		clipped.centerText(inner, altY, truncateText(render.Describe(item), inner.W), inkAt(inner.X, altY))
	}
	capY := inner.Y + inner.H - 1
	capPaint := inkAt(inner.X, capY)
	capPaint.italic = true
	clipped.centerText(inner, capY, truncateText(item.Image, inner.W), capPaint)
}

// drawButton paints the advance control centred on the stage. It does not
// take part in the transition.
func (m *Model) drawButton(c *canvas, l screenLayout) {
	b := l.button
	if b.Empty() {
		return
	}
	style := styles.Button
	if m.hover.name == "advance" {
		style = styles.ButtonHover
	}
	p := paintOf(style)
	c.fill(b, ' ', p)
	c.centerText(b, b.Y, m.frame.Advance.Label, p)
	if b.H > 1 {
		pos := paintOf(styles.ButtonPosition)
		pos.bg = p.bg
		c.centerText(b, b.Y+1, m.frame.Advance.Position, pos)
	}
}

// drawTiles paints one tile per visible thumbnail. The active tile gets a
// heavy amber ring; every other tile a thin neutral one.
func (m *Model) drawTiles(c *canvas, l screenLayout) {
	for _, th := range m.frame.Thumbs {
		r := l.tiles[th.Index]
		if r.Empty() {
			continue
		}
		ring, label, border := paintOf(styles.Tile), paintOf(styles.TileLabel), lipgloss.RoundedBorder()
		if th.Active {
			ring, label, border = paintOf(styles.ActiveTile), paintOf(styles.ActiveLabel), lipgloss.ThickBorder()
		}
		c.box(r, border, ring)
		inner := inset(r, 1, 1)
		if inner.Empty() {
			continue
		}
		tone := theme.ParseTone(th.Item.Tone)
		swatchY := inner.Y
		for x := inner.X; x < inner.X+inner.W; x++ {
			c.setBg(x, swatchY, theme.Shade(gradientAt(tone, inner, x, swatchY)).Hex())
		}
		number := fmt.Sprintf("%d ", th.Index+1)
		if inner.H == 1 {
			text := truncateText(number+render.Describe(th.Item), inner.W)
			c.text(inner.X, swatchY, text, inner.W, paint{fg: theme.Ink.Hex(), bold: th.Active})
			continue
		}
		c.text(inner.X, swatchY, number, inner.W, paint{fg: theme.Ink.Hex(), bold: true})
		c.text(inner.X, inner.Y+1, truncateText(render.Describe(th.Item), inner.W), inner.W, label)
	}
}

// drawGhosts outlines every shared element that is between its old and new
// bounds, on top of everything else.
func (m *Model) drawGhosts(c *canvas, l screenLayout) {
	body := rect{X: 0, Y: headerRows, W: l.width, H: l.height - headerRows - bottomRows}
	clipped := canvasClip{c: c, clip: body}
	p := paintOf(styles.Ghost)
	for _, g := range m.registry.Ghosts() {
		clipped.box(g.Rect, lipgloss.RoundedBorder(), p)
		if item, ok := m.itemFor(g.Key); ok && g.Rect.W > 4 {
			clipped.text(g.Rect.X+2, g.Rect.Y, truncateText(render.Describe(item), g.Rect.W-4), g.Rect.W-4, p)
		}
	}
}

func (m *Model) itemFor(key string) (catalog.Item, bool) {
	c := m.ctl.Catalog()
	idx := c.IndexOf(key)
	if idx < 0 {
		return catalog.Item{}, false
	}
	return c.At(idx), true
}

// gradientAt samples a diagonal gradient across r at cell (x, y).
func gradientAt(t theme.Tone, r rect, x, y int) colorful.Color {
	fx := float64(x-r.X) / float64(max(r.W-1, 1))
	fy := float64(y-r.Y) / float64(max(r.H-1, 1))
	pos := (fx + fy) / 2
	step := float64(int(pos*gradientSteps+0.5)) / gradientSteps
	return t.At(step)
}

func paintOf(s *lipgloss.Style) paint {
	if s == nil {
		return paint{}
	}
	p := paint{bold: s.GetBold(), italic: s.GetItalic()}
	if fg, ok := s.GetForeground().(lipgloss.Color); ok {
		p.fg = string(fg)
	}
	if bg, ok := s.GetBackground().(lipgloss.Color); ok {
		p.bg = string(bg)
	}
	return p
}

// canvasClip restricts drawing to a region of the canvas.
type canvasClip struct {
	c    *canvas
	clip rect
}

func (cc canvasClip) box(r rect, b lipgloss.Border, p paint) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X; x <= right; x++ {
		top, bot := b.Top, b.Bottom
		switch x {
		case r.X:
			top, bot = b.TopLeft, b.BottomLeft
		case right:
			top, bot = b.TopRight, b.BottomRight
		}
		cc.glyph(x, r.Y, top, p)
		cc.glyph(x, bottom, bot, p)
	}
	for y := r.Y + 1; y < bottom; y++ {
		cc.glyph(r.X, y, b.Left, p)
		cc.glyph(right, y, b.Right, p)
	}
}

func (cc canvasClip) glyph(x, y int, s string, p paint) {
	if !cc.clip.Contains(x, y) {
		return
	}
	cc.c.glyph(x, y, s, p)
}

func (cc canvasClip) text(x, y int, s string, maxW int, p paint) {
	if y < cc.clip.Y || y >= cc.clip.Y+cc.clip.H {
		return
	}
	if right := cc.clip.X + cc.clip.W - x; right < maxW {
		maxW = right
	}
	if x < cc.clip.X || maxW <= 0 {
		return
	}
	cc.c.text(x, y, s, maxW, p)
}

func (cc canvasClip) centerText(r rect, y int, s string, p paint) {
	if y < cc.clip.Y || y >= cc.clip.Y+cc.clip.H {
		return
	}
	cc.c.centerText(intersect(r, rect{X: cc.clip.X, Y: y, W: cc.clip.W, H: 1}), y, s, p)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText fits text into width terminal cells, ending with an ellipsis
// when anything was cut.
func truncateText(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return ansi.Truncate(text, 1, "")
	}
	return ansi.Truncate(text, width, "…")
}
