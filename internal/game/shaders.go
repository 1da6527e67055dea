//go:build !android

package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Object vertex shader shared by every program slot.
const objectVertSrc = `#version 410 core

uniform mat4 modelingMatrix;
uniform mat4 viewingMatrix;
uniform mat4 projectionMatrix;

layout(location = 0) in vec3 inVertex;
layout(location = 1) in vec3 inNormal;

out vec4 fragWorldPos;
out vec3 fragWorldNor;

void main() {
    fragWorldPos = modelingMatrix * vec4(inVertex, 1.0);
    fragWorldNor = inverse(transpose(mat3(modelingMatrix))) * inNormal;
    gl_Position = projectionMatrix * viewingMatrix * fragWorldPos;
}
` + "\x00"

// Object fragment shader: Blinn-Phong with one white point light. kd is
// set once per program so each slot gets its own surface colour.
const objectFragSrc = `#version 410 core

const vec3 I = vec3(1.0);
const vec3 Iamb = vec3(0.8);
const vec3 ka = vec3(0.3);
const vec3 ks = vec3(0.8);
const vec3 lightPos = vec3(5.0, 5.0, 5.0);

uniform vec3 eyePos;
uniform vec3 kd;

in vec4 fragWorldPos;
in vec3 fragWorldNor;
out vec4 fragColor;

void main() {
    vec3 L = normalize(lightPos - fragWorldPos.xyz);
    vec3 V = normalize(eyePos - fragWorldPos.xyz);
    vec3 H = normalize(L + V);
    vec3 N = normalize(fragWorldNor);

    vec3 diffuse = I * kd * max(0.0, dot(N, L));
    vec3 specular = I * ks * pow(max(0.0, dot(N, H)), 100.0);
    vec3 ambient = Iamb * ka * kd;
    fragColor = vec4(diffuse + specular + ambient, 1.0);
}
` + "\x00"

// Background: full-screen quad in clip space.
const bgVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;

out vec2 TexCoords;

void main() {
    TexCoords = aUV;
    gl_Position = vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const bgFragSrc = `#version 410 core

uniform sampler2D bgTexture;

in vec2 TexCoords;
out vec4 color;

void main() {
    color = texture(bgTexture, TexCoords);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
