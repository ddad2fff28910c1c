package shapes

import "testing"

func TestKindString(t *testing.T) {
	want := map[Kind]string{
		Box:      "box",
		Sphere:   "sphere",
		Cylinder: "cylinder",
		Cone:     "cone",
		Torus:    "torus",
	}
	for k, name := range want {
		if k.String() != name {
			t.Errorf("%d.String() = %q, want %q", int(k), k.String(), name)
		}
	}
	if Kind(99).String() != "unknown" {
		t.Errorf("Kind(99).String() = %q, want unknown", Kind(99).String())
	}
}

func TestKindsCoversAll(t *testing.T) {
	if len(Kinds) != 5 {
		t.Fatalf("len(Kinds) = %d, want 5", len(Kinds))
	}
	seen := make(map[Kind]bool)
	for _, k := range Kinds {
		if seen[k] {
			t.Errorf("kind %s listed twice", k)
		}
		seen[k] = true
	}
}

func TestSyncFromBody(t *testing.T) {
	s := &Shape{Kind: Box}
	s.SyncFromBody() // nil body: no-op, no panic
	if s.Position.Y() != 0 {
		t.Errorf("Position = %v, want unchanged", s.Position)
	}
}
