package primitives

import rl "github.com/gen2brain/raylib-go/raylib"

// ambient keeps areas outside the cone from going fully black.
var ambient = [4]float32{0.2, 0.22, 0.26, 1.0}

const (
	spotVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	// spotFS: albedo texture lit by one spot light with a smoothstep penumbra. Two-sided.
	spotFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 lightPos;
uniform vec3 lightDir;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float cosOuter;
uniform float cosInner;
uniform vec4 ambient;
out vec4 finalColor;
void main() {
  vec4 tint = texture(texture0, fragTexCoord) * colDiffuse;
  vec3 toLight = normalize(lightPos - fragPosition);
  vec3 N = normalize(fragNormal);
  if (!gl_FrontFacing) N = -N;
  float NdotL = max(dot(N, toLight), 0.0);
  float cone = smoothstep(cosOuter, cosInner, dot(-toLight, normalize(lightDir)));
  vec3 diffuse = tint.rgb * lightColor * lightIntensity * NdotL * cone;
  finalColor = vec4(ambient.rgb * tint.rgb + diffuse, tint.a);
}
`
)

// setSpotUniforms uploads the frame's light.
func (r *Registry) setSpotUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	l := r.light
	vec3 := map[string][3]float32{
		"lightPos":   {l.Position.X(), l.Position.Y(), l.Position.Z()},
		"lightDir":   {l.Direction.X(), l.Direction.Y(), l.Direction.Z()},
		"lightColor": {l.Color.X(), l.Color.Y(), l.Color.Z()},
	}
	for name, v := range vec3 {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValueV(shader, loc, v[:], rl.ShaderUniformVec3, 1)
		}
	}
	floats := map[string]float32{
		"lightIntensity": l.Intensity,
		"cosOuter":       l.CosOuter,
		"cosInner":       l.CosInner,
	}
	for name, v := range floats {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValue(shader, loc, []float32{v}, rl.ShaderUniformFloat)
		}
	}
	amb := ambient
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
}
