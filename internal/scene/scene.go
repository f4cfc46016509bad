package scene

import (
	"fmt"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"stairwalk/internal/geom"
	"stairwalk/internal/layout"
	"stairwalk/internal/logger"
	"stairwalk/internal/primitives"
)

const (
	gridExtent     = 40
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
)

var (
	stairBoxColor  = rl.NewColor(255, 200, 40, 255)
	cameraBoxColor = rl.NewColor(80, 220, 255, 255)
)

// Mesh is one drawable object. Transform.Scale carries the object's size.
type Mesh struct {
	Name      string
	Kind      primitives.Kind
	Transform geom.Transform
	Texture   string // file name under the texture directory; "" draws untextured
	Lit       bool
}

// Scene holds the static geometry, the spot light and the camera, and draws them.
// Textures are loaded on the first Draw, after the window and GL context exist.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	ShowBoxes   bool

	meshes     []Mesh
	ground     int
	stairBoxes []geom.AABB
	cameraBox  geom.AABB
	light      primitives.Light
	reg        *primitives.Registry
	log        *logger.Logger

	projection    mgl32.Mat4
	hasProjection bool

	textureDir string
	textures   map[string]rl.Texture2D
	loaded     bool
}

// New builds the scene description from l. No GPU work happens here.
func New(l layout.Layout, textureDir string, log *logger.Logger) *Scene {
	s := &Scene{
		reg:        primitives.NewRegistry(),
		log:        log,
		textureDir: textureDir,
		textures:   make(map[string]rl.Texture2D),
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = l.Camera.Fovy
	s.Camera.Projection = rl.CameraPerspective

	s.ground = len(s.meshes)
	s.meshes = append(s.meshes, planeMesh(l.Ground))
	for _, w := range l.Walls {
		s.meshes = append(s.meshes, planeMesh(w))
	}
	size := l.Stairs.StepSize()
	for i, t := range l.Stairs.Transforms() {
		t.Scale = size
		s.meshes = append(s.meshes, Mesh{
			Name:      stairName(i),
			Kind:      primitives.Box,
			Transform: t,
			Texture:   l.Stairs.Texture,
			Lit:       l.Stairs.Lit,
		})
		s.stairBoxes = append(s.stairBoxes, t.Bounds(mgl32.Vec3{1, 1, 1}))
	}

	color, err := l.Light.RGB()
	if err != nil {
		color = mgl32.Vec3{1, 1, 1}
	}
	cosOuter, cosInner := l.Light.Cone()
	s.light = primitives.Light{
		Position:  mgl32.Vec3{l.Light.Position[0], l.Light.Position[1], l.Light.Position[2]},
		Direction: l.Light.Direction(),
		Color:     color,
		Intensity: l.Light.Intensity,
		CosOuter:  cosOuter,
		CosInner:  cosInner,
	}
	return s
}

func planeMesh(p layout.Plane) Mesh {
	t := p.Transform()
	t.Scale = mgl32.Vec3{p.Size[0], p.Size[1], 1}
	return Mesh{Name: p.Name, Kind: primitives.Plane, Transform: t, Texture: p.Texture, Lit: p.Lit}
}

func stairName(i int) string {
	return fmt.Sprintf("stair-%02d", i)
}

// Ground returns the ground mesh transform so a physics body can drive it.
func (s *Scene) Ground() *geom.Transform {
	return &s.meshes[s.ground].Transform
}

// Meshes returns the number of drawable meshes.
func (s *Scene) Meshes() int {
	return len(s.meshes)
}

// SetCamera points the camera from pos toward target and records the box drawn by ShowBoxes.
func (s *Scene) SetCamera(pos, target mgl32.Vec3, box geom.AABB) {
	s.Camera.Position = primitives.ToVector3(pos)
	s.Camera.Target = primitives.ToVector3(target)
	s.cameraBox = box
}

// SetProjection sets the projection used for the 3D pass, replacing the one raylib
// derives from the camera's fovy and its default clip planes.
func (s *Scene) SetProjection(fovy float32, proj mgl32.Mat4) {
	s.Camera.Fovy = fovy
	s.projection = proj
	s.hasProjection = true
}

// ensureLoaded loads every referenced texture once. Missing files are logged and the
// affected meshes draw with the fallback color.
func (s *Scene) ensureLoaded() {
	if s.loaded {
		return
	}
	s.loaded = true
	for _, m := range s.meshes {
		if m.Texture == "" {
			continue
		}
		if _, ok := s.textures[m.Texture]; ok {
			continue
		}
		path := filepath.Join(s.textureDir, m.Texture)
		tex, err := loadTexture(path)
		if err != nil {
			s.log.Logf("scene: %v", err)
		} else {
			s.log.Logf("scene: loaded %s (%dx%d)", path, tex.Width, tex.Height)
		}
		s.textures[m.Texture] = tex
	}
}

// Draw renders the scene. Call between BeginDrawing and EndDrawing, before 2D overlays.
func (s *Scene) Draw() {
	s.ensureLoaded()
	rl.BeginMode3D(s.Camera)
	if s.hasProjection {
		rl.SetMatrixProjection(primitives.ToMatrix(s.projection))
	}
	pos := s.Camera.Position
	s.reg.SetView(mgl32.Vec3{pos.X, pos.Y, pos.Z}, s.light)

	// Planes are double-sided.
	rl.DisableBackfaceCulling()
	for _, m := range s.meshes {
		s.reg.Draw(m.Kind, m.Transform.Matrix(), s.textures[m.Texture], m.Lit)
	}
	rl.EnableBackfaceCulling()

	if s.ShowBoxes {
		for _, b := range s.stairBoxes {
			rl.DrawBoundingBox(toBoundingBox(b), stairBoxColor)
		}
		rl.DrawBoundingBox(toBoundingBox(s.cameraBox), cameraBoxColor)
	}
	if s.GridVisible {
		drawGrid()
	}
	rl.EndMode3D()
}

// Unload frees textures and cached meshes. Call before the window closes.
func (s *Scene) Unload() {
	for name, tex := range s.textures {
		if rl.IsTextureValid(tex) {
			rl.UnloadTexture(tex)
		}
		delete(s.textures, name)
	}
	s.reg.Unload()
	s.loaded = false
}

func toBoundingBox(b geom.AABB) rl.BoundingBox {
	return rl.NewBoundingBox(primitives.ToVector3(b.Min), primitives.ToVector3(b.Max))
}

// drawGrid draws unit grid lines on the XZ plane just above the floor.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	const y = 0.01
	for i := -gridExtent; i <= gridExtent; i++ {
		c := minor
		if i%gridMajorStep == 0 {
			c = major
		}
		f := float32(i)
		rl.DrawLine3D(rl.NewVector3(f, y, -gridExtent), rl.NewVector3(f, y, gridExtent), c)
		rl.DrawLine3D(rl.NewVector3(-gridExtent, y, f), rl.NewVector3(gridExtent, y, f), c)
	}
}
