package scene

import (
	"math/rand"
	"testing"

	"shape-sandbox/internal/defs"
	"shape-sandbox/internal/shapes"
)

func newTestSession() *Session {
	return NewSession(defs.Default(), nil, rand.New(rand.NewSource(1)))
}

func TestBootstrapCounts(t *testing.T) {
	s := newTestSession()
	if len(s.Shapes) != len(shapes.Kinds) {
		t.Errorf("len(Shapes) = %d, want %d", len(s.Shapes), len(shapes.Kinds))
	}
	if s.Shadows == nil {
		t.Fatal("Shadows = nil, want one generator")
	}
	if s.Shadows.CasterCount() != len(shapes.Kinds) {
		t.Errorf("CasterCount = %d, want %d", s.Shadows.CasterCount(), len(shapes.Kinds))
	}
	if len(s.Grounds) != 2 {
		t.Errorf("len(Grounds) = %d, want 2", len(s.Grounds))
	}
	if !s.Grounds[1].Overlay || s.Grounds[0].Overlay {
		t.Errorf("Grounds = %+v, want solid floor then grid overlay", s.Grounds)
	}
	// Two lights: hemispheric and directional, both at their fixed settings.
	if s.Hemi.Intensity != 0.9 {
		t.Errorf("Hemi.Intensity = %f, want 0.9", s.Hemi.Intensity)
	}
	if s.Sun.Intensity != 0.3 {
		t.Errorf("Sun.Intensity = %f, want 0.3", s.Sun.Intensity)
	}
	// World holds the plane body plus one per shape.
	if got := len(s.World.Bodies); got != len(shapes.Kinds)+1 {
		t.Errorf("len(World.Bodies) = %d, want %d", got, len(shapes.Kinds)+1)
	}
}

func TestBootstrapOneShapePerKind(t *testing.T) {
	s := newTestSession()
	seen := make(map[shapes.Kind]int)
	for _, sh := range s.Shapes {
		seen[sh.Kind]++
	}
	for _, k := range shapes.Kinds {
		if seen[k] != 1 {
			t.Errorf("kind %s appears %d times, want 1", k, seen[k])
		}
	}
}

func TestBootstrapRowLayout(t *testing.T) {
	s := newTestSession()
	d := defs.Default()
	for i, sh := range s.Shapes {
		wantX := (float32(i) - 2) * d.Spacing
		if sh.Position.X() != wantX {
			t.Errorf("shape %d X = %f, want %f", i, sh.Position.X(), wantX)
		}
		if sh.Position.Y() != d.DropHeight || sh.Position.Z() != 0 {
			t.Errorf("shape %d position = %v, want (x, %f, 0)", i, sh.Position, d.DropHeight)
		}
	}
}

func TestSpawnIncrementsCounts(t *testing.T) {
	s := newTestSession()
	for i, kind := range shapes.Kinds {
		before := len(s.Shapes)
		casters := s.Shadows.CasterCount()
		s.Spawn(kind)
		if len(s.Shapes) != before+1 {
			t.Errorf("spawn %d: len(Shapes) = %d, want %d", i, len(s.Shapes), before+1)
		}
		if s.Shadows.CasterCount() != casters+1 {
			t.Errorf("spawn %d: CasterCount = %d, want %d", i, s.Shadows.CasterCount(), casters+1)
		}
		got := s.Shapes[len(s.Shapes)-1]
		if got.Kind != kind {
			t.Errorf("spawn %d: kind = %s, want %s", i, got.Kind, kind)
		}
	}
}

func TestSpawnPositionBounds(t *testing.T) {
	d := defs.Default()
	s := NewSession(d, nil, rand.New(rand.NewSource(99)))
	for i := 0; i < 200; i++ {
		s.Spawn(shapes.Box)
		sh := s.Shapes[len(s.Shapes)-1]
		if x := sh.Position.X(); x < -d.SpawnExtent || x > d.SpawnExtent {
			t.Fatalf("spawn %d X = %f, outside ±%f", i, x, d.SpawnExtent)
		}
		if z := sh.Position.Z(); z < -d.SpawnExtent || z > d.SpawnExtent {
			t.Fatalf("spawn %d Z = %f, outside ±%f", i, z, d.SpawnExtent)
		}
		if sh.Position.Y() != d.DropHeight {
			t.Fatalf("spawn %d Y = %f, want %f", i, sh.Position.Y(), d.DropHeight)
		}
	}
}

func TestSpawnColorsFromPalette(t *testing.T) {
	s := newTestSession()
	inPalette := make(map[string]bool)
	for _, entry := range s.Palette() {
		inPalette[entry] = true
	}
	s.Spawn(shapes.Sphere)
	sh := s.Shapes[len(s.Shapes)-1]
	if !inPalette[sh.ColorHex] {
		t.Errorf("ColorHex = %q, not in palette %v", sh.ColorHex, s.Palette())
	}
	for i := 0; i < 3; i++ {
		if sh.Color[i] < 0 || sh.Color[i] > 1 {
			t.Errorf("Color[%d] = %f, out of [0,1]", i, sh.Color[i])
		}
	}
}

func TestEmptyPaletteSpawnsGray(t *testing.T) {
	d := defs.Default()
	d.Palette = []string{"#nothex"}
	s := NewSession(d, nil, rand.New(rand.NewSource(3)))
	sh := s.Shapes[0]
	if sh.ColorHex != "" {
		t.Errorf("ColorHex = %q, want empty for undecodable palette", sh.ColorHex)
	}
	if sh.Color[0] != 0.5 {
		t.Errorf("fallback Color = %v, want gray", sh.Color)
	}
}

func TestCasterInvariantHolds(t *testing.T) {
	s := newTestSession()
	s.Spawn(shapes.Torus)
	s.Spawn(shapes.Cone)
	casters := make(map[*shapes.Shape]bool)
	for _, c := range s.Shadows.Casters() {
		casters[c] = true
	}
	for i, sh := range s.Shapes {
		if sh.Body != nil && !casters[sh] {
			t.Errorf("shape %d has a body but is not a shadow caster", i)
		}
	}
}

func TestRunBoundedFrames(t *testing.T) {
	s := newTestSession()
	s.Spawn(shapes.Box)
	s.Run(300, 1.0/60.0)
	// Five seconds in, everything has landed: resting on the ground plane,
	// shape positions synced from their bodies.
	for i, sh := range s.Shapes {
		if sh.Position != sh.Body.Position {
			t.Errorf("shape %d position not synced with body", i)
		}
		half := sh.Body.Size.Y() / 2
		if sh.Position.Y() < half-1e-3 {
			t.Errorf("shape %d below ground: y = %f", i, sh.Position.Y())
		}
		if sh.Position.Y() > 5 {
			t.Errorf("shape %d still airborne after 5s: y = %f", i, sh.Position.Y())
		}
	}
}

func TestStepSyncsPositions(t *testing.T) {
	s := newTestSession()
	before := s.Shapes[0].Position.Y()
	s.Step(1.0 / 60.0)
	after := s.Shapes[0].Position.Y()
	if after >= before {
		t.Errorf("shape did not fall: %f -> %f", before, after)
	}
}
