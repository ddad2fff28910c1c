package shapes

// Kind identifies one of the primitive shapes the sandbox can create.
// The set is closed: mesh generation, physics sizing, and the spawn panel
// all switch over it exhaustively, so adding a kind is a compile-time event.
type Kind int

const (
	Box Kind = iota
	Sphere
	Cylinder
	Cone
	Torus
)

// Kinds lists every kind in creation order. Used for the initial row of
// shapes and for building the spawn panel (one button per kind, same order).
var Kinds = []Kind{Box, Sphere, Cylinder, Cone, Torus}

// String returns the lowercase kind name (button labels, log lines).
func (k Kind) String() string {
	switch k {
	case Box:
		return "box"
	case Sphere:
		return "sphere"
	case Cylinder:
		return "cylinder"
	case Cone:
		return "cone"
	case Torus:
		return "torus"
	}
	return "unknown"
}
