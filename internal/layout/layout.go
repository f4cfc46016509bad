package layout

import (
	"errors"
	"fmt"
	"os"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"stairwalk/internal/geom"
)

// DefaultPath is the optional layout override, relative to the working directory.
const DefaultPath = "assets/scene.yaml"

// Plane is a flat, double-sided quad. Size is width x height in the plane's local XY
// plane (normal +Z) before Rotation is applied. Rotation is XYZ Euler in degrees.
// Unlit planes show their texture as-is; Lit planes are shaded by the spot light.
type Plane struct {
	Name     string     `yaml:"name"`
	Size     [2]float32 `yaml:"size"`
	Position [3]float32 `yaml:"position"`
	Rotation [3]float32 `yaml:"rotation"`
	Texture  string     `yaml:"texture"`
	Lit      bool       `yaml:"lit"`
}

// Transform places the plane in the world.
func (p Plane) Transform() geom.Transform {
	return geom.At(vec(p.Position), rad(p.Rotation[0]), rad(p.Rotation[1]), rad(p.Rotation[2]))
}

// Bounds returns the plane's world AABB (zero thickness along its normal).
func (p Plane) Bounds() geom.AABB {
	return p.Transform().Bounds(mgl32.Vec3{p.Size[0], p.Size[1], 0})
}

// Stairs describes a straight staircase climbing toward -Z. Step i is centered at
// Origin + (0, i*Rise, -i*Run) and has full extents Step.
type Stairs struct {
	Count   int        `yaml:"count"`
	Origin  [3]float32 `yaml:"origin"`
	Rise    float32    `yaml:"rise"`
	Run     float32    `yaml:"run"`
	Step    [3]float32 `yaml:"step"`
	Texture string     `yaml:"texture"`
	Lit     bool       `yaml:"lit"`
}

// Transforms returns one placement per step, bottom to top.
func (s Stairs) Transforms() []geom.Transform {
	out := make([]geom.Transform, s.Count)
	for i := range out {
		fi := float32(i)
		pos := vec(s.Origin).Add(mgl32.Vec3{0, fi * s.Rise, -fi * s.Run})
		out[i] = geom.At(pos, 0, 0, 0)
	}
	return out
}

// StepSize returns the full extents of one step.
func (s Stairs) StepSize() mgl32.Vec3 { return vec(s.Step) }

// SpotLight is a cone light. Angle is the half-angle in degrees. The shadow fields are
// accepted for layout compatibility; shadow maps are not rendered.
type SpotLight struct {
	Position      [3]float32 `yaml:"position"`
	Target        [3]float32 `yaml:"target"`
	Color         string     `yaml:"color"`
	Intensity     float32    `yaml:"intensity"`
	Angle         float32    `yaml:"angle"`
	Penumbra      float32    `yaml:"penumbra"`
	CastShadow    bool       `yaml:"cast_shadow"`
	ShadowMapSize int        `yaml:"shadow_map_size"`
	ShadowNear    float32    `yaml:"shadow_near"`
	ShadowFar     float32    `yaml:"shadow_far"`
}

// Direction returns the normalized vector from the light toward its target.
func (s SpotLight) Direction() mgl32.Vec3 {
	d := vec(s.Target).Sub(vec(s.Position))
	if d.Len() == 0 {
		return mgl32.Vec3{0, -1, 0}
	}
	return d.Normalize()
}

// Cone returns the cosines of the outer edge and of the inner edge where the penumbra
// ends. Penumbra 0 gives a hard edge.
func (s SpotLight) Cone() (cosOuter, cosInner float32) {
	angle := rad(s.Angle)
	return math32.Cos(angle), math32.Cos(angle * (1 - s.Penumbra))
}

// Camera is the starting viewpoint and projection.
type Camera struct {
	Position [3]float32 `yaml:"position"`
	Fovy     float32    `yaml:"fovy"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
}

// Body is a rigid box body. HalfExtents are before Rotation (XYZ Euler, degrees).
type Body struct {
	HalfExtents [3]float32 `yaml:"half_extents"`
	Position    [3]float32 `yaml:"position"`
	Rotation    [3]float32 `yaml:"rotation"`
	Mass        float32    `yaml:"mass"`
	Static      bool       `yaml:"static"`
}

// Transform returns the body's initial placement.
func (b Body) Transform() geom.Transform {
	return geom.At(vec(b.Position), rad(b.Rotation[0]), rad(b.Rotation[1]), rad(b.Rotation[2]))
}

// Physics holds world settings and the ground body.
type Physics struct {
	Gravity [3]float32 `yaml:"gravity"`
	Ground  Body       `yaml:"ground"`
}

// Layout is the whole scene description.
type Layout struct {
	TextureDir string    `yaml:"texture_dir"`
	Camera     Camera    `yaml:"camera"`
	Light      SpotLight `yaml:"light"`
	Ground     Plane     `yaml:"ground"`
	Walls      []Plane   `yaml:"walls"`
	Stairs     Stairs    `yaml:"stairs"`
	Physics    Physics   `yaml:"physics"`
}

// Default returns the built-in scene: a 40x80 floor, four walls, 15 steps and a spot light.
func Default() Layout {
	return Layout{
		TextureDir: "assets/textures",
		Camera: Camera{
			Position: [3]float32{12, 1, 5},
			Fovy:     75,
			Near:     0.1,
			Far:      1000,
		},
		Light: SpotLight{
			Position:      [3]float32{2.5, 5, 5},
			Color:         "#ffffff",
			Intensity:     1,
			Angle:         45,
			Penumbra:      0.5,
			CastShadow:    true,
			ShadowMapSize: 1024,
			ShadowNear:    0.5,
			ShadowFar:     20,
		},
		Ground: Plane{Name: "ground", Size: [2]float32{40, 80}, Rotation: [3]float32{-90, 0, 0}, Texture: "floor.png"},
		Walls: []Plane{
			{Name: "wall-north", Size: [2]float32{40, 20}, Position: [3]float32{0, 5, -40}, Rotation: [3]float32{0, 180, 0}, Texture: "wall.png"},
			{Name: "wall-east", Size: [2]float32{80, 20}, Position: [3]float32{20, 5, 0}, Rotation: [3]float32{0, 90, 0}, Texture: "wall.png"},
			{Name: "wall-west", Size: [2]float32{80, 20}, Position: [3]float32{-20, 5, 0}, Rotation: [3]float32{0, -90, 0}, Texture: "wall.png"},
			{Name: "wall-south", Size: [2]float32{40, 20}, Position: [3]float32{0, 5, 40}, Texture: "wall.png"},
		},
		Stairs: Stairs{
			Count:   15,
			Origin:  [3]float32{12, 0.25, -15},
			Rise:    0.5,
			Run:     1,
			Step:    [3]float32{10, 0.5, 1},
			Texture: "stair.png",
		},
		Physics: Physics{
			Gravity: [3]float32{0, -9.82, 0},
			Ground: Body{
				HalfExtents: [3]float32{20, 40, 0.1},
				Rotation:    [3]float32{-90, 0, 0},
				Static:      true,
			},
		},
	}
}

// Parse decodes YAML over the defaults: fields absent from data keep their default
// values; a present walls list replaces the default walls.
func Parse(data []byte) (Layout, error) {
	l := Default()
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Load reads path. A missing file yields Default() and no error.
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Layout{}, fmt.Errorf("layout: %w", err)
	}
	return Parse(data)
}

// Validate rejects layouts the walk loop cannot use.
func (l Layout) Validate() error {
	if l.Stairs.Count < 0 {
		return fmt.Errorf("layout: stairs.count must not be negative, got %d", l.Stairs.Count)
	}
	if l.Stairs.Count > 1 && l.Stairs.Rise <= 0 {
		return fmt.Errorf("layout: stairs.rise must be positive, got %g", l.Stairs.Rise)
	}
	for i, v := range l.Stairs.Step {
		if v < 0 {
			return fmt.Errorf("layout: stairs.step[%d] must not be negative, got %g", i, v)
		}
	}
	if _, err := l.Light.RGB(); err != nil {
		return err
	}
	if l.Camera.Fovy <= 0 || l.Camera.Fovy >= 180 {
		return fmt.Errorf("layout: camera.fovy must be in (0, 180), got %g", l.Camera.Fovy)
	}
	if l.Camera.Near <= 0 || l.Camera.Far <= l.Camera.Near {
		return fmt.Errorf("layout: camera near/far invalid: %g/%g", l.Camera.Near, l.Camera.Far)
	}
	return nil
}

func vec(a [3]float32) mgl32.Vec3 { return mgl32.Vec3{a[0], a[1], a[2]} }

func rad(deg float32) float32 { return mgl32.DegToRad(deg) }
