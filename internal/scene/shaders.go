package scene

// Main pass: hemispheric fill + directional diffuse/specular, with
// percentage-closer shadow sampling from the depth texture. Same vertex
// attributes as all raylib meshes.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
uniform mat4 matLightVP;
out vec3 fragPosition;
out vec3 fragNormal;
out vec4 fragLightClip;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  fragLightClip = matLightVP * worldPos;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
in vec4 fragLightClip;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform vec3 hemiSky;
uniform vec3 hemiGround;
uniform float hemiIntensity;
uniform sampler2D shadowMap;
uniform float shadowBias;
uniform float texelSize;
out vec4 finalColor;

float unpackDepth(vec4 c) {
  return dot(c, vec4(1.0, 1.0/255.0, 1.0/65025.0, 1.0/16581375.0));
}

// 3x3 PCF over the packed depth map; fragments outside the light frustum
// count as fully lit.
float shadowFactor(vec3 N, vec3 L) {
  vec3 ndc = fragLightClip.xyz / fragLightClip.w;
  vec3 uvz = ndc * 0.5 + 0.5;
  if (uvz.x < 0.0 || uvz.x > 1.0 || uvz.y < 0.0 || uvz.y > 1.0 || uvz.z > 1.0) {
    return 1.0;
  }
  float bias = shadowBias * max(1.0, 2.0 * (1.0 - dot(N, L)));
  float lit = 0.0;
  for (int x = -1; x <= 1; x++) {
    for (int y = -1; y <= 1; y++) {
      float d = unpackDepth(texture(shadowMap, uvz.xy + vec2(x, y) * texelSize));
      lit += (uvz.z - bias) <= d ? 1.0 : 0.0;
    }
  }
  return lit / 9.0;
}

void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float shadow = shadowFactor(N, L);
  float hemi = N.y * 0.5 + 0.5;
  vec3 ambient = mix(hemiGround, hemiSky, hemi) * hemiIntensity * tint.rgb;
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity * shadow;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), 48.0) * 0.35;
  vec3 specular = lightColor * spec * ((NdotL > 0.0) ? shadow : 0.0);
  finalColor = vec4(ambient + diffuse + specular, tint.a);
}
`
)

// Depth pass: project through the light's view-projection and pack
// gl_FragCoord.z across the color channels (the render target is a plain
// RGBA8 texture, so a single channel would quantize depth too coarsely).
const (
	depthVS = `#version 330
in vec3 vertexPosition;
uniform mat4 matModel;
uniform mat4 matLightVP;
void main() {
  gl_Position = matLightVP * matModel * vec4(vertexPosition, 1.0);
}
`
	depthFS = `#version 330
out vec4 finalColor;

vec4 packDepth(float d) {
  vec4 enc = vec4(1.0, 255.0, 65025.0, 16581375.0) * d;
  enc = fract(enc);
  enc -= enc.yzww * vec4(1.0/255.0, 1.0/255.0, 1.0/255.0, 0.0);
  return enc;
}

void main() {
  finalColor = packDepth(gl_FragCoord.z);
}
`
)
