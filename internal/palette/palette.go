// Package palette holds the fixed material palette and the hex color decoding
// used for every shape's diffuse color.
package palette

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Default is the sandbox palette: five hex colors, sampled uniformly per
// shape. The slice is never mutated; treat it as a constant.
var Default = []string{
	"#FF4D4D", // red
	"#4DA6FF", // blue
	"#FFD24D", // yellow
	"#5CD65C", // green
	"#B84DFF", // purple
}

// Pick returns one entry of p chosen uniformly at random. ok is false when p
// is empty; callers get no color rather than a panic.
func Pick(p []string, rng *rand.Rand) (entry string, ok bool) {
	if len(p) == 0 {
		return "", false
	}
	return p[rng.Intn(len(p))], true
}

// Decode parses a hex color of the form #RGB or #RRGGBB into 0-255 channels.
// Shorthand digits are doubled (#fff -> ff ff ff). ok is false for any other
// form. Decode is pure: same input, same output.
func Decode(s string) (r, g, b uint8, ok bool) {
	if len(s) < 4 || s[0] != '#' {
		return 0, 0, 0, false
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		hr, ok1 := hexDigit(hex[0])
		hg, ok2 := hexDigit(hex[1])
		hb, ok3 := hexDigit(hex[2])
		if !ok1 || !ok2 || !ok3 {
			return 0, 0, 0, false
		}
		// Doubling a digit d gives d*16 + d = d*17.
		return hr * 17, hg * 17, hb * 17, true
	case 6:
		var ch [6]uint8
		for i := 0; i < 6; i++ {
			d, okd := hexDigit(hex[i])
			if !okd {
				return 0, 0, 0, false
			}
			ch[i] = d
		}
		return ch[0]<<4 | ch[1], ch[2]<<4 | ch[3], ch[4]<<4 | ch[5], true
	}
	return 0, 0, 0, false
}

// Normalize maps 0-255 channels to the 0.0-1.0 range the material system
// expects.
func Normalize(r, g, b uint8) mgl32.Vec3 {
	return mgl32.Vec3{float32(r) / 255, float32(g) / 255, float32(b) / 255}
}

// PickColor samples p and returns the entry plus its normalized channels.
// ok is false when p is empty or the sampled entry does not decode.
func PickColor(p []string, rng *rand.Rand) (entry string, color mgl32.Vec3, ok bool) {
	entry, ok = Pick(p, rng)
	if !ok {
		return "", mgl32.Vec3{}, false
	}
	r, g, b, ok := Decode(entry)
	if !ok {
		return entry, mgl32.Vec3{}, false
	}
	return entry, Normalize(r, g, b), true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
