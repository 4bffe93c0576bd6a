package ui

import (
	"math"

	"github.com/atomicstack/lookbook/internal/transition"
	uistate "github.com/atomicstack/lookbook/internal/ui/state"
)

type rect = transition.Rect

const (
	headerRows = 2
	bottomRows = 2

	fallbackWidth  = 80
	fallbackHeight = 24

	minWidth  = 30
	minHeight = 12

	// Below this width the thumbnails move from a side column to a strip
	// under the stage.
	sidePanelMinWidth = 64
	panelFraction     = 0.3
	panelMinWidth     = 20
	panelMaxWidth     = 36

	sideTileHeight  = 4
	stripTileHeight = 3
	stripTileMin    = 10
	stripTileMax    = 24

	buttonHeight   = 2
	buttonMinWidth = 12
)

// screenLayout places every region of the screen. It depends only on the
// terminal size, the catalog size and the thumbnail scroll offset.
type screenLayout struct {
	width, height int
	compact       bool
	side          bool
	stageArea     rect
	card          rect
	button        rect
	panel         rect
	tiles         []rect
	maxTiles      int
	statusRow     int
	footerRow     int
}

func computeLayout(width, height, n, offset int) screenLayout {
	if width <= 0 {
		width = fallbackWidth
	}
	if height <= 0 {
		height = fallbackHeight
	}
	l := screenLayout{
		width:     width,
		height:    height,
		statusRow: height - 2,
		footerRow: height - 1,
		tiles:     make([]rect, n),
	}
	if width < minWidth || height < minHeight {
		l.compact = true
		return l
	}

	bodyTop := headerRows
	bodyH := height - headerRows - bottomRows
	scroll := uistate.Viewport{Offset: offset}

	if width >= sidePanelMinWidth {
		l.side = true
		pw := int(float64(width) * panelFraction)
		pw = clamp(pw, panelMinWidth, panelMaxWidth)
		l.panel = rect{X: width - pw, Y: bodyTop, W: pw, H: bodyH}
		l.stageArea = rect{X: 0, Y: bodyTop, W: width - pw - 1, H: bodyH}
		l.maxTiles = max(1, bodyH/sideTileHeight)
		for i := 0; i < n; i++ {
			if !scroll.Visible(i, l.maxTiles) {
				continue
			}
			slot := i - offset
			l.tiles[i] = rect{X: l.panel.X, Y: l.panel.Y + slot*sideTileHeight, W: pw, H: sideTileHeight}
		}
	} else {
		stripY := bodyTop + bodyH - stripTileHeight
		l.panel = rect{X: 0, Y: stripY, W: width, H: stripTileHeight}
		l.stageArea = rect{X: 0, Y: bodyTop, W: width, H: bodyH - stripTileHeight}
		tw := clamp(width/max(n, 1), stripTileMin, stripTileMax)
		l.maxTiles = max(1, width/tw)
		for i := 0; i < n; i++ {
			if !scroll.Visible(i, l.maxTiles) {
				continue
			}
			slot := i - offset
			l.tiles[i] = rect{X: slot * tw, Y: stripY, W: tw, H: stripTileHeight}
		}
	}

	l.card = inset(l.stageArea, 2, 1)
	if l.card.H < 3 {
		l.card = l.stageArea
	}
	l.button = centered(l.stageArea, buttonMinWidth, buttonHeight)
	return l
}

// withButtonWidth widens the advance button to fit its label.
func (l screenLayout) withButtonWidth(w int) screenLayout {
	if l.compact || w <= l.button.W {
		return l
	}
	l.button = centered(l.stageArea, min(w, l.stageArea.W), buttonHeight)
	return l
}

// posed applies the stage pose to the card: a vertical offset in rows and a
// width scale around the centre.
func posed(card rect, p transition.Pose) rect {
	w := int(math.Round(float64(card.W) * p.Scale))
	if w < 1 {
		w = 1
	}
	return rect{
		X: card.X + (card.W-w)/2,
		Y: card.Y + int(math.Round(p.OffsetY)),
		W: w,
		H: card.H,
	}
}

func inset(r rect, dx, dy int) rect {
	out := rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

func centered(outer rect, w, h int) rect {
	w = min(w, outer.W)
	h = min(h, outer.H)
	return rect{X: outer.X + (outer.W-w)/2, Y: outer.Y + (outer.H-h)/2, W: w, H: h}
}

func intersect(a, b rect) rect {
	x0, y0 := max(a.X, b.X), max(a.Y, b.Y)
	x1, y1 := min(a.X+a.W, b.X+b.W), min(a.Y+a.H, b.Y+b.H)
	if x1 <= x0 || y1 <= y0 {
		return rect{}
	}
	return rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
