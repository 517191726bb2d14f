package shader

// Uniform names shared by the Phong program and its callers.
const (
	UniformModel      = "uModel"
	UniformNormal     = "uNormal"
	UniformView       = "uView"
	UniformProjection = "uProjection"
	UniformLightColor = "lightColor"
	UniformLightPos   = "lightPos"
	UniformViewPos    = "viewPos"
	UniformShininess  = "shininess"
	UniformAmbient    = "ambientStrength"
	UniformDiffuse    = "diffuseStrength"
	UniformSpecular   = "specularStrength"
	UniformUnlit      = "unlit"
)

// PhongUniforms lists every uniform the Phong program reads.
var PhongUniforms = []string{
	UniformModel, UniformNormal, UniformView, UniformProjection,
	UniformLightColor, UniformLightPos, UniformViewPos,
	UniformShininess, UniformAmbient, UniformDiffuse, UniformSpecular,
	UniformUnlit,
}

// PhongVertex expects the mesh layout: position, RGBA colour, normal.
const PhongVertex = `#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;
layout (location = 2) in vec3 aNormal;

uniform mat4 uModel;
uniform mat3 uNormal;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 fragPos;
out vec3 normal;
out vec4 vertexColor;

void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	fragPos = world.xyz;
	normal = uNormal * aNormal;
	vertexColor = aColor;
	gl_Position = uProjection * uView * world;
}
`

// PhongFragment does ambient + diffuse + specular per fragment. With unlit
// set it passes the vertex colour through, for debug lines.
const PhongFragment = `#version 410 core

in vec3 fragPos;
in vec3 normal;
in vec4 vertexColor;

uniform vec3 lightColor;
uniform vec3 lightPos;
uniform vec3 viewPos;
uniform float shininess;
uniform float ambientStrength;
uniform float diffuseStrength;
uniform float specularStrength;
uniform int unlit;

out vec4 FragColor;

void main() {
	if (unlit != 0) {
		FragColor = vertexColor;
		return;
	}
	vec3 n = normalize(normal);
	vec3 lightDir = normalize(lightPos - fragPos);
	vec3 viewDir = normalize(viewPos - fragPos);
	vec3 reflectDir = reflect(-lightDir, n);

	vec3 ambient = ambientStrength * lightColor;
	vec3 diffuse = diffuseStrength * max(dot(n, lightDir), 0.0) * lightColor;
	vec3 specular = specularStrength * pow(max(dot(viewDir, reflectDir), 0.0), shininess) * lightColor;

	FragColor = vec4((ambient + diffuse + specular) * vertexColor.rgb, vertexColor.a);
}
`
