package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Kind names a cached mesh.
type Kind string

const (
	// Box is a unit cube centered on the origin.
	Box Kind = "box"
	// Plane is a unit quad in the local XY plane facing +Z.
	Plane Kind = "plane"
)

// fallbackColor tints meshes whose texture failed to load.
var fallbackColor = rl.NewColor(128, 128, 128, 255)

// planeBase turns raylib's XZ plane mesh into an XY quad facing +Z.
var planeBase = mgl32.HomogRotate3DX(mgl32.DegToRad(90))

type cached struct {
	mesh  rl.Mesh
	basic rl.Material
	lit   rl.Material
	blank rl.Texture2D // raylib's default white texture, used when a texture is missing
}

// Light is the spot light fed to lit materials each frame.
type Light struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3 // normalized, from the light toward its target
	Color     mgl32.Vec3
	Intensity float32
	CosOuter  float32
	CosInner  float32
}

// Registry caches meshes and materials. Meshes are created on first use so GPU resources
// are allocated after the window exists.
type Registry struct {
	cache   map[Kind]cached
	viewPos mgl32.Vec3
	light   Light
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{cache: make(map[Kind]cached)}
}

// SetView sets the camera position and light for this frame. Call once per frame before Draw.
func (r *Registry) SetView(viewPos mgl32.Vec3, light Light) {
	r.viewPos = viewPos
	r.light = light
}

func (r *Registry) ensure(kind Kind) (cached, bool) {
	if c, ok := r.cache[kind]; ok {
		return c, true
	}
	var mesh rl.Mesh
	switch kind {
	case Box:
		mesh = rl.GenMeshCube(1, 1, 1)
	case Plane:
		mesh = rl.GenMeshPlane(1, 1, 1, 1)
	default:
		return cached{}, false
	}
	basic := rl.LoadMaterialDefault()
	lit := rl.LoadMaterialDefault()
	if s := rl.LoadShaderFromMemory(spotVS, spotFS); rl.IsShaderValid(s) {
		lit.Shader = s
	}
	c := cached{mesh: mesh, basic: basic, lit: lit, blank: basic.GetMap(rl.MapAlbedo).Texture}
	r.cache[kind] = c
	return c, true
}

// Draw draws one mesh with the given model matrix. Basic materials show the texture
// unlit; lit materials apply the spot light. An invalid texture draws the flat fallback color.
// Must be called between BeginMode3D and EndMode3D.
func (r *Registry) Draw(kind Kind, model mgl32.Mat4, tex rl.Texture2D, lit bool) {
	c, ok := r.ensure(kind)
	if !ok {
		return
	}
	if kind == Plane {
		model = model.Mul4(planeBase)
	}
	mtl := c.basic
	if lit {
		mtl = c.lit
		r.setSpotUniforms(mtl.Shader)
	}
	albedo := mtl.GetMap(rl.MapAlbedo)
	if rl.IsTextureValid(tex) {
		rl.SetMaterialTexture(&mtl, rl.MapAlbedo, tex)
		albedo.Color = rl.White
	} else {
		albedo.Texture = c.blank
		albedo.Color = fallbackColor
	}
	rl.DrawMesh(c.mesh, mtl, ToMatrix(model))
}

// Unload frees every cached mesh and material. Scene textures bound to a material are
// detached first; their owner unloads them.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		for _, mtl := range []rl.Material{c.basic, c.lit} {
			mtl.GetMap(rl.MapAlbedo).Texture = c.blank
			// Also unloads the lit material's shader.
			rl.UnloadMaterial(mtl)
		}
		delete(r.cache, k)
	}
}

// ToMatrix converts a column-major mgl32 matrix to raylib's layout.
func ToMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

// ToVector3 converts an mgl32 vector to raylib's type.
func ToVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}
