// Package ui draws the spawn panel: a CSS-styled strip of buttons, one per
// shape kind. Styling reuses the small CSS dialect (class/id selectors,
// "key: value;" declarations); layout and click dispatch live in panel.go.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Node is one UI element: the panel background or a button. Class and ID
// feed CSS matching; Bounds is set by layout, not by style.
type Node struct {
	Type  string // "panel" or "button"
	Class string
	ID    string
	Label string
	// Draggable is set on buttons to mirror the original demo's draggable
	// controls; nothing reads it yet.
	Draggable bool
	Bounds    rl.Rectangle
}

// NewNode returns a node with the given type, class, id, and label.
func NewNode(typ, class, id, label string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Label: label}
}

// Contains reports whether the point is inside the node's bounds.
func (n *Node) Contains(x, y float32) bool {
	return x >= n.Bounds.X && x <= n.Bounds.X+n.Bounds.Width &&
		y >= n.Bounds.Y && y <= n.Bounds.Y+n.Bounds.Height
}
