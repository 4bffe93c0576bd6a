package theme

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// palette maps the colour names used by catalog tones to RGB values.
var palette = map[string]string{
	"white":     "#ffffff",
	"black":     "#000000",
	"amber-50":  "#fffbeb",
	"amber-100": "#fef3c7",
	"amber-200": "#fde68a",
	"amber-300": "#fcd34d",
	"stone-50":  "#fafaf9",
	"stone-100": "#f5f5f4",
	"stone-200": "#e7e5e4",
	"stone-300": "#d6d3d1",
	"stone-500": "#78716c",
	"stone-700": "#44403c",
	"stone-800": "#292524",
	"stone-900": "#1c1917",
}

// Ink is the foreground used for text painted on a tone.
var Ink = mustColor("stone-800")

// Edge outlines cards painted on a tone.
var Edge = mustColor("stone-300")

// Tone is a two-stop gradient behind the stage.
type Tone struct {
	From colorful.Color
	To   colorful.Color
}

// DefaultTone is used when a catalog tone is blank or cannot be parsed.
var DefaultTone = Tone{From: mustColor("white"), To: mustColor("amber-50")}

// ParseTone reads tones such as "from-white to-amber-50" or
// "from-#fff to-#fde68a". Missing stops repeat the other stop; unknown input
// yields DefaultTone. Tones are decorative, so parsing never fails.
func ParseTone(spec string) Tone {
	var from, to *colorful.Color
	for _, field := range strings.Fields(spec) {
		switch {
		case strings.HasPrefix(field, "from-"):
			if c, ok := Lookup(strings.TrimPrefix(field, "from-")); ok {
				from = &c
			}
		case strings.HasPrefix(field, "to-"):
			if c, ok := Lookup(strings.TrimPrefix(field, "to-")); ok {
				to = &c
			}
		}
	}
	switch {
	case from == nil && to == nil:
		return DefaultTone
	case from == nil:
		return Tone{From: *to, To: *to}
	case to == nil:
		return Tone{From: *from, To: *from}
	}
	return Tone{From: *from, To: *to}
}

// At returns the gradient colour at position t in [0, 1].
func (t Tone) At(pos float64) colorful.Color {
	if pos <= 0 {
		return t.From
	}
	if pos >= 1 {
		return t.To
	}
	return t.From.BlendLab(t.To, pos).Clamped()
}

// Lookup resolves a palette name or a hex colour.
func Lookup(name string) (colorful.Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if hex, ok := palette[name]; ok {
		name = hex
	}
	if !strings.HasPrefix(name, "#") {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(expandHex(name))
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// Hex returns the hex code of a palette colour, or the input unchanged.
func Hex(name string) string {
	if hex, ok := palette[name]; ok {
		return hex
	}
	return name
}

// Fade mixes fg towards bg as opacity goes from 1 to 0.
func Fade(fg, bg colorful.Color, opacity float64) colorful.Color {
	if opacity >= 1 {
		return fg
	}
	if opacity <= 0 {
		return bg
	}
	return bg.BlendLab(fg, opacity).Clamped()
}

// Shade darkens a tone colour slightly so a card stands off its backdrop.
func Shade(c colorful.Color) colorful.Color {
	return c.BlendLab(Edge, 0.45).Clamped()
}

func expandHex(hex string) string {
	if len(hex) == 4 {
		return "#" + strings.Repeat(hex[1:2], 2) + strings.Repeat(hex[2:3], 2) + strings.Repeat(hex[3:4], 2)
	}
	return hex
}

func mustColor(name string) colorful.Color {
	c, ok := Lookup(name)
	if !ok {
		panic("theme: unknown colour " + name)
	}
	return c
}
