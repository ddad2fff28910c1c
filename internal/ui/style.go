package ui

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-sandbox/internal/palette"
)

// Rule is one CSS rule: a selector (".class" or "#id") and raw property
// values.
type Rule struct {
	Selector string
	Props    map[string]string
}

// Stylesheet is an ordered rule list; later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// ComputedStyle holds the resolved drawing values for one node.
type ComputedStyle struct {
	Background rl.Color
	Color      rl.Color
	Border     rl.Color
	HasBorder  bool
	Width      int32
	Height     int32
	Padding    int32
}

// DefaultComputedStyle is transparent background, white text, no border.
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Background: rl.NewColor(0, 0, 0, 0),
		Color:      rl.White,
		Border:     rl.Black,
		Padding:    4,
	}
}

// ParseColor parses a #RGB or #RRGGBB value into an opaque rl.Color using
// the shared palette decoder.
func ParseColor(s string) (rl.Color, bool) {
	r, g, b, ok := palette.Decode(strings.TrimSpace(s))
	if !ok {
		return rl.Black, false
	}
	return rl.NewColor(r, g, b, 255), true
}

// ParsePx parses a number with an optional "px" suffix.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// Resolve merges every rule matching the node (in order) and computes the
// final style.
func (sheet *Stylesheet) Resolve(n *Node) ComputedStyle {
	out := DefaultComputedStyle()
	if sheet == nil {
		return out
	}
	for _, rule := range sheet.Rules {
		if !matches(rule.Selector, n) {
			continue
		}
		applyProps(&out, rule.Props)
	}
	return out
}

func matches(selector string, n *Node) bool {
	if len(selector) < 2 {
		return false
	}
	switch selector[0] {
	case '.':
		return n.Class == selector[1:]
	case '#':
		return n.ID == selector[1:]
	}
	return false
}

func applyProps(out *ComputedStyle, props map[string]string) {
	for k, v := range props {
		switch k {
		case "background":
			if c, ok := ParseColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		}
	}
}
