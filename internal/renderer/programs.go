package renderer

// GLSL programs for the studio scene. The terrain program draws the
// procedural grid overlay on top of a displacement-mapped plane; the halo
// program shades the decorative sun disk; points and silhouette are the
// flat programs used by the design view and the sun outline.

var terrainVertexSource = `#version 410 core

layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec2 inTexCoord;

uniform mat4 model;
uniform mat4 viewProjection;
uniform sampler2D heightMap;
uniform float displaceAmount;

out vec2 fragTexCoord;

void main() {
    float h = texture(heightMap, inTexCoord).r;
    vec3 displaced = inPosition + vec3(0.0, h * displaceAmount, 0.0);
    fragTexCoord = inTexCoord;
    gl_Position = viewProjection * model * vec4(displaced, 1.0);
}
` + "\x00"

var terrainFragmentSource = `#version 410 core

in vec2 fragTexCoord;

uniform sampler2D metalnessMap;
uniform vec3 gridTint;
uniform float gridCycles;
uniform vec3 spotColor0;
uniform vec3 spotColor1;
uniform vec3 spotDir0;
uniform vec3 spotDir1;

out vec4 FragColor;

// Antialiased step: the transition band width follows the screen-space
// derivative of the input, so grid lines stay one pixel wide at any
// distance or angle.
float aastep(float threshold, float value) {
    float afwidth = fwidth(value) * 0.5;
    return smoothstep(threshold - afwidth, threshold + afwidth, value);
}

void main() {
    float gradX = cos(fragTexCoord.x * gridCycles * 6.2831853) * 0.5 + 0.5;
    float gradY = cos(fragTexCoord.y * gridCycles * 6.2831853) * 0.5 + 0.5;
    float grid = aastep(0.985, gradX) + aastep(0.985, gradY);

    float metal = texture(metalnessMap, fragTexCoord).r;
    vec3 base = vec3(0.02, 0.01, 0.05) * (0.6 + 0.4 * metal);
    vec3 color = base + gridTint * min(grid, 1.0) * (0.65 + 0.35 * metal);

    // The displaced plane is flat enough to shade against the world up
    // axis; the two spots contribute a broad wash, not per-vertex normals.
    vec3 up = vec3(0.0, 1.0, 0.0);
    vec3 lighting = vec3(0.35)
        + spotColor0 * max(dot(-spotDir0, up), 0.0)
        + spotColor1 * max(dot(-spotDir1, up), 0.0);
    FragColor = vec4(color * lighting, 1.0);
}
` + "\x00"

var quadVertexSource = `#version 410 core

layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec2 inTexCoord;

uniform mat4 model;
uniform mat4 viewProjection;

out vec2 fragTexCoord;

void main() {
    fragTexCoord = inTexCoord;
    gl_Position = viewProjection * model * vec4(inPosition, 1.0);
}
` + "\x00"

var haloFragmentSource = `#version 410 core

in vec2 fragTexCoord;

uniform vec3 haloColor;
uniform float haloOpacity;

out vec4 FragColor;

void main() {
    float d = distance(fragTexCoord, vec2(0.5));
    float disk = 1.0 - smoothstep(0.18, 0.30, d);
    float ring = smoothstep(0.30, 0.42, d) * (1.0 - smoothstep(0.42, 0.50, d));
    float glow = clamp(disk + 0.6 * ring, 0.0, 1.0);
    FragColor = vec4(haloColor * glow, glow * haloOpacity);
}
` + "\x00"

var spriteFragmentSource = `#version 410 core

in vec2 fragTexCoord;

uniform sampler2D sprite;
uniform float spriteOpacity;

out vec4 FragColor;

void main() {
    vec4 texel = texture(sprite, fragTexCoord);
    FragColor = vec4(texel.rgb, texel.a * spriteOpacity);
}
` + "\x00"

var pointVertexSource = `#version 410 core

layout(location = 0) in vec3 inPosition;

uniform mat4 viewProjection;
uniform float pointSize;

void main() {
    gl_Position = viewProjection * vec4(inPosition, 1.0);
    gl_PointSize = pointSize;
}
` + "\x00"

var pointFragmentSource = `#version 410 core

uniform vec3 pointColor;

out vec4 FragColor;

void main() {
    vec2 p = gl_PointCoord - vec2(0.5);
    if (dot(p, p) > 0.25) {
        discard;
    }
    FragColor = vec4(pointColor, 1.0);
}
` + "\x00"

var flatVertexSource = `#version 410 core

layout(location = 0) in vec3 inPosition;

uniform mat4 model;
uniform mat4 viewProjection;

void main() {
    gl_Position = viewProjection * model * vec4(inPosition, 1.0);
}
` + "\x00"

var flatFragmentSource = `#version 410 core

uniform vec3 flatColor;

out vec4 FragColor;

void main() {
    FragColor = vec4(flatColor, 1.0);
}
` + "\x00"

func InitTerrainShader() Shader {
	return Shader{
		vertexSource:   terrainVertexSource,
		fragmentSource: terrainFragmentSource,
	}
}

func InitHaloShader() Shader {
	return Shader{
		vertexSource:   quadVertexSource,
		fragmentSource: haloFragmentSource,
	}
}

func InitSpriteShader() Shader {
	return Shader{
		vertexSource:   quadVertexSource,
		fragmentSource: spriteFragmentSource,
	}
}

func InitPointShader() Shader {
	return Shader{
		vertexSource:   pointVertexSource,
		fragmentSource: pointFragmentSource,
	}
}

func InitFlatShader() Shader {
	return Shader{
		vertexSource:   flatVertexSource,
		fragmentSource: flatFragmentSource,
	}
}
