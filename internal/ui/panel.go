package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-sandbox/internal/shapes"
)

// panelCSS styles the spawn panel and its buttons. Button width/height come
// from here; panel bounds are computed around the button row.
const panelCSS = `
.panel { background: #20242a; border: #3a4048; }
.button { background: #2e3440; color: #eceff4; border: #4c566a; width: 96px; height: 40px; }
`

const (
	buttonGap     = 10
	panelPad      = 12
	panelMarginY  = 16
	labelFontSize = 18
)

// SpawnPanel is the strip of spawn buttons along the bottom of the window,
// one per shape kind. Clicks call the injected onSpawn with the button's
// kind; the panel holds no scene state of its own.
type SpawnPanel struct {
	sheet   *Stylesheet
	panel   *Node
	buttons []*Node
	kinds   []shapes.Kind
	onSpawn func(shapes.Kind)

	laidOutW int32
	laidOutH int32
}

// NewSpawnPanel builds the panel: one draggable button per kind, labelled
// with the kind name, in kind order. onSpawn runs on every button click.
func NewSpawnPanel(kinds []shapes.Kind, onSpawn func(shapes.Kind)) *SpawnPanel {
	p := &SpawnPanel{
		sheet:   ParseCSS(panelCSS),
		panel:   NewNode("panel", "panel", "spawn", ""),
		kinds:   kinds,
		onSpawn: onSpawn,
	}
	for _, k := range kinds {
		btn := NewNode("button", "button", "spawn-"+k.String(), k.String())
		btn.Draggable = true
		p.buttons = append(p.buttons, btn)
	}
	return p
}

// Layout positions the panel bottom-centered for the given screen size and
// places the buttons in a row inside it. Idempotent per screen size.
func (p *SpawnPanel) Layout(screenW, screenH int32) {
	if len(p.buttons) == 0 {
		return
	}
	style := p.sheet.Resolve(p.buttons[0])
	btnW, btnH := float32(style.Width), float32(style.Height)
	n := float32(len(p.buttons))

	panelW := n*btnW + (n-1)*buttonGap + 2*panelPad
	panelH := btnH + 2*panelPad
	px := (float32(screenW) - panelW) / 2
	py := float32(screenH) - panelH - panelMarginY
	p.panel.Bounds = rl.NewRectangle(px, py, panelW, panelH)

	x := px + panelPad
	for _, btn := range p.buttons {
		btn.Bounds = rl.NewRectangle(x, py+panelPad, btnW, btnH)
		x += btnW + buttonGap
	}
	p.laidOutW, p.laidOutH = screenW, screenH
}

// Invalidate forces a relayout on the next Update (window resized).
func (p *SpawnPanel) Invalidate() {
	p.laidOutW, p.laidOutH = 0, 0
}

// HandleClick dispatches a click at the given screen point to the button
// under it, if any. Returns true when a button fired.
func (p *SpawnPanel) HandleClick(x, y float32) bool {
	for i, btn := range p.buttons {
		if btn.Contains(x, y) {
			if p.onSpawn != nil {
				p.onSpawn(p.kinds[i])
			}
			return true
		}
	}
	return false
}

// Update relayouts after a resize and feeds mouse clicks into HandleClick.
func (p *SpawnPanel) Update() {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	if w != p.laidOutW || h != p.laidOutH {
		p.Layout(w, h)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		p.HandleClick(pos.X, pos.Y)
	}
}

// Draw renders the panel background and the buttons with their resolved
// styles, labels centered.
func (p *SpawnPanel) Draw() {
	drawNode(p.panel, p.sheet.Resolve(p.panel))
	for _, btn := range p.buttons {
		drawNode(btn, p.sheet.Resolve(btn))
	}
}

func drawNode(n *Node, style ComputedStyle) {
	x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
	w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)
	if style.Background.A > 0 {
		rl.DrawRectangle(x, y, w, h, style.Background)
	}
	if style.HasBorder && w > 0 && h > 0 {
		rl.DrawRectangleLines(x, y, w, h, style.Border)
	}
	if n.Label != "" {
		tw := rl.MeasureText(n.Label, labelFontSize)
		rl.DrawText(n.Label, x+(w-tw)/2, y+(h-labelFontSize)/2, labelFontSize, style.Color)
	}
}
