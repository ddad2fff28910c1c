package palette

import (
	"math/rand"
	"testing"
)

func TestDecodeShorthand(t *testing.T) {
	r, g, b, ok := Decode("#fff")
	if !ok {
		t.Fatal("Decode(#fff) ok = false, want true")
	}
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("Decode(#fff) = (%d,%d,%d), want (255,255,255)", r, g, b)
	}
}

func TestDecodeFull(t *testing.T) {
	r, g, b, ok := Decode("#FF4D4D")
	if !ok {
		t.Fatal("Decode(#FF4D4D) ok = false, want true")
	}
	if r != 255 || g != 77 || b != 77 {
		t.Errorf("Decode(#FF4D4D) = (%d,%d,%d), want (255,77,77)", r, g, b)
	}
}

func TestDecodeShorthandDoubling(t *testing.T) {
	// #a1b doubles to #aa11bb
	r, g, b, ok := Decode("#a1b")
	if !ok {
		t.Fatal("Decode(#a1b) ok = false, want true")
	}
	if r != 0xaa || g != 0x11 || b != 0xbb {
		t.Errorf("Decode(#a1b) = (%#x,%#x,%#x), want (0xaa,0x11,0xbb)", r, g, b)
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "#", "#ff", "#ffff", "#fffff", "fff", "#ggg", "#FF4D4Z", "#FF4D4D4D"} {
		if _, _, _, ok := Decode(s); ok {
			t.Errorf("Decode(%q) ok = true, want false", s)
		}
	}
}

func TestDecodeIdempotent(t *testing.T) {
	for _, s := range Default {
		r1, g1, b1, ok1 := Decode(s)
		r2, g2, b2, ok2 := Decode(s)
		if ok1 != ok2 || r1 != r2 || g1 != g2 || b1 != b2 {
			t.Errorf("Decode(%q) not stable: (%d,%d,%d,%v) then (%d,%d,%d,%v)",
				s, r1, g1, b1, ok1, r2, g2, b2, ok2)
		}
	}
}

func TestNormalizeRange(t *testing.T) {
	for _, s := range Default {
		r, g, b, ok := Decode(s)
		if !ok {
			t.Fatalf("Decode(%q) ok = false, want true", s)
		}
		v := Normalize(r, g, b)
		for i := 0; i < 3; i++ {
			if v[i] < 0 || v[i] > 1 {
				t.Errorf("Normalize(%q)[%d] = %f, out of [0,1]", s, i, v[i])
			}
		}
	}
	v := Normalize(255, 255, 255)
	if v[0] != 1 || v[1] != 1 || v[2] != 1 {
		t.Errorf("Normalize(255,255,255) = %v, want (1,1,1)", v)
	}
}

func TestPickEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, ok := Pick(nil, rng); ok {
		t.Error("Pick(nil) ok = true, want false")
	}
	if _, _, ok := PickColor([]string{}, rng); ok {
		t.Error("PickColor(empty) ok = true, want false")
	}
}

func TestPickUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 5000
	counts := make(map[string]int, len(Default))
	for i := 0; i < n; i++ {
		entry, ok := Pick(Default, rng)
		if !ok {
			t.Fatal("Pick(Default) ok = false, want true")
		}
		counts[entry]++
	}
	if len(counts) != len(Default) {
		t.Fatalf("distinct entries = %d, want %d", len(counts), len(Default))
	}
	// Expect n/5 = 1000 per entry; allow a generous +-20% band.
	want := n / len(Default)
	for entry, c := range counts {
		if c < want*8/10 || c > want*12/10 {
			t.Errorf("count[%s] = %d, want within 20%% of %d", entry, c, want)
		}
	}
}

func TestPickColorDecodes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		entry, color, ok := PickColor(Default, rng)
		if !ok {
			t.Fatalf("PickColor ok = false for entry %q", entry)
		}
		for j := 0; j < 3; j++ {
			if color[j] < 0 || color[j] > 1 {
				t.Errorf("PickColor(%q)[%d] = %f, out of [0,1]", entry, j, color[j])
			}
		}
	}
}
