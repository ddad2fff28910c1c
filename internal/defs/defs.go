// Package defs loads the shape and spawn definitions that feed scene
// construction. Defaults are built in; config/shapes.yaml, when present,
// overrides them (same shape as the embedded defaults, all fields optional).
package defs

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"shape-sandbox/internal/shapes"
)

// Path is the definitions file, relative to the process working directory.
const Path = "config/shapes.yaml"

// Defs holds the tunables for shape creation and layout.
type Defs struct {
	// Mass and Restitution apply to every spawned body.
	Mass        float32 `yaml:"mass"`
	Restitution float32 `yaml:"restitution"`
	// Spacing is the X distance between the initial shapes.
	Spacing float32 `yaml:"spacing"`
	// SpawnExtent bounds the random spawn square: X and Z are drawn from
	// [-SpawnExtent, SpawnExtent].
	SpawnExtent float32 `yaml:"spawn_extent"`
	// DropHeight is the Y coordinate new shapes start at.
	DropHeight float32 `yaml:"drop_height"`
	// GroundSize is the side length of the ground planes.
	GroundSize float32 `yaml:"ground_size"`
	// GroundRestitution applies to the static ground body.
	GroundRestitution float32 `yaml:"ground_restitution"`
	// Palette overrides the built-in five-color palette when non-empty.
	Palette []string `yaml:"palette"`
	// Sizes overrides per-kind visual extents, keyed by kind name.
	Sizes map[string][3]float32 `yaml:"sizes"`
}

// Default returns the built-in definitions: unit shapes spaced 3 apart,
// mass 1 / restitution 0.5 bodies, spawns within the ±4 square at height 4,
// a 50-unit ground with restitution 1.
func Default() Defs {
	return Defs{
		Mass:              1,
		Restitution:       0.5,
		Spacing:           3,
		SpawnExtent:       4,
		DropHeight:        4,
		GroundSize:        50,
		GroundRestitution: 1,
	}
}

// Load reads definitions from path. A missing file is not an error: the
// defaults are returned. Invalid YAML returns the defaults and an error.
// Zero-valued fields in the file fall back to their defaults.
func Load(path string) (Defs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	d := Default()
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	base := Default()
	if d.Mass <= 0 {
		d.Mass = base.Mass
	}
	if d.Spacing <= 0 {
		d.Spacing = base.Spacing
	}
	if d.SpawnExtent <= 0 {
		d.SpawnExtent = base.SpawnExtent
	}
	if d.DropHeight <= 0 {
		d.DropHeight = base.DropHeight
	}
	if d.GroundSize <= 0 {
		d.GroundSize = base.GroundSize
	}
	return d, nil
}

// SizeFor returns the visual extents for a kind: the per-kind override when
// set, otherwise the default: each primitive mesh is generated to fit a
// 1×1×1 volume, except the torus, which is flatter.
func (d Defs) SizeFor(k shapes.Kind) mgl32.Vec3 {
	if s, ok := d.Sizes[k.String()]; ok && s != ([3]float32{}) {
		return mgl32.Vec3{s[0], s[1], s[2]}
	}
	if k == shapes.Torus {
		return mgl32.Vec3{1, 0.6, 1}
	}
	return mgl32.Vec3{1, 1, 1}
}
