//go:build !android

package game

import (
	"fmt"
	"image"
	"log"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"bunnyrun/internal/assets"
	"bunnyrun/internal/runner"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// objectProgram is one pre-linked program slot and its uniform locations.
type objectProgram struct {
	id     uint32
	uModel int32
	uView  int32
	uProj  int32
	uEye   int32
}

// meshBuffers is a mesh uploaded as positions followed by normals in one
// VBO, indexed through an EBO.
type meshBuffers struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

type Renderer struct {
	programs [runner.NumSlots]objectProgram
	meshes   [2]meshBuffers

	bgProg uint32
	bgVAO  uint32
	bgVBO  uint32
	bgTex  uint32
	uBgTex int32

	debug bool
}

// NewRenderer links every program slot, uploads both meshes and the
// background texture.
func NewRenderer(player, cube *assets.Mesh, background *image.NRGBA, debug bool) (*Renderer, error) {
	r := &Renderer{debug: debug}

	for slot := runner.ProgramSlot(0); slot < runner.NumSlots; slot++ {
		id, err := linkProgram(objectVertSrc, objectFragSrc)
		if err != nil {
			r.Destroy()
			return nil, fmt.Errorf("program slot %d: %w", slot, err)
		}
		p := objectProgram{
			id:     id,
			uModel: gl.GetUniformLocation(id, gl.Str("modelingMatrix\x00")),
			uView:  gl.GetUniformLocation(id, gl.Str("viewingMatrix\x00")),
			uProj:  gl.GetUniformLocation(id, gl.Str("projectionMatrix\x00")),
			uEye:   gl.GetUniformLocation(id, gl.Str("eyePos\x00")),
		}
		gl.UseProgram(id)
		cr, cg, cb := slotColor(slot).Floats()
		gl.Uniform3f(gl.GetUniformLocation(id, gl.Str("kd\x00")), cr, cg, cb)
		r.programs[slot] = p
	}

	r.meshes[runner.MeshPlayer] = uploadMesh(player)
	r.meshes[runner.MeshCube] = uploadMesh(cube)

	bgProg, err := linkProgram(bgVertSrc, bgFragSrc)
	if err != nil {
		r.Destroy()
		return nil, fmt.Errorf("background program: %w", err)
	}
	r.bgProg = bgProg
	gl.UseProgram(bgProg)
	r.uBgTex = gl.GetUniformLocation(bgProg, gl.Str("bgTexture\x00"))
	gl.Uniform1i(r.uBgTex, 0)
	r.bgVAO, r.bgVBO = uploadQuad()
	r.bgTex = uploadTexture(background)

	gl.BindVertexArray(0)
	gl.UseProgram(0)
	r.checkGLError("init")
	return r, nil
}

func uploadMesh(m *assets.Mesh) meshBuffers {
	var mb meshBuffers
	gl.GenVertexArrays(1, &mb.vao)
	gl.GenBuffers(1, &mb.vbo)
	gl.GenBuffers(1, &mb.ebo)
	gl.BindVertexArray(mb.vao)

	posBytes := len(m.Positions) * 4
	norBytes := len(m.Normals) * 4
	gl.BindBuffer(gl.ARRAY_BUFFER, mb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, posBytes+norBytes, nil, gl.STATIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, posBytes, gl.Ptr(m.Positions))
	gl.BufferSubData(gl.ARRAY_BUFFER, posBytes, norBytes, gl.Ptr(m.Normals))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 3*4, glOffset(posBytes))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mb.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	mb.indexCount = int32(len(m.Indices))

	gl.BindVertexArray(0)
	return mb
}

func uploadQuad() (vao, vbo uint32) {
	quad := [24]float32{
		// x, y, u, v
		-1, 1, 0, 1,
		-1, -1, 0, 0,
		1, -1, 1, 0,

		-1, 1, 0, 1,
		1, -1, 1, 0,
		1, 1, 1, 1,
	}
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(&quad[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, glOffset(2*4))
	gl.BindVertexArray(0)
	return vao, vbo
}

func uploadTexture(img *image.NRGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	b := img.Bounds()
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

func (r *Renderer) Destroy() {
	for i := range r.meshes {
		m := &r.meshes[i]
		for _, id := range []uint32{m.vbo, m.ebo} {
			if id != 0 {
				gl.DeleteBuffers(1, &id)
			}
		}
		if m.vao != 0 {
			gl.DeleteVertexArrays(1, &m.vao)
		}
	}
	if r.bgVBO != 0 {
		gl.DeleteBuffers(1, &r.bgVBO)
	}
	if r.bgVAO != 0 {
		gl.DeleteVertexArrays(1, &r.bgVAO)
	}
	if r.bgTex != 0 {
		gl.DeleteTextures(1, &r.bgTex)
	}
	for _, p := range r.programs {
		if p.id != 0 {
			gl.DeleteProgram(p.id)
		}
	}
	if r.bgProg != 0 {
		gl.DeleteProgram(r.bgProg)
	}
}

// DrawFrame clears the framebuffer, paints the background without depth
// and then draws the scene in list order.
func (r *Renderer) DrawFrame(sc runner.Scene, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.Disable(gl.DEPTH_TEST)
	gl.UseProgram(r.bgProg)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.bgTex)
	gl.BindVertexArray(r.bgVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	r.checkGLError("background")

	gl.Enable(gl.DEPTH_TEST)
	cam := sc.Camera
	bound := [runner.NumSlots]bool{}
	current := runner.ProgramSlot(-1)
	boundMesh := runner.MeshKind(-1)
	for i := range sc.Draws {
		d := &sc.Draws[i]
		p := &r.programs[d.Slot]
		if d.Slot != current {
			gl.UseProgram(p.id)
			current = d.Slot
			// Camera uniforms are per-program state; set once per frame.
			if !bound[d.Slot] {
				gl.UniformMatrix4fv(p.uView, 1, false, &cam.View[0])
				gl.UniformMatrix4fv(p.uProj, 1, false, &cam.Projection[0])
				gl.Uniform3f(p.uEye, cam.Eye[0], cam.Eye[1], cam.Eye[2])
				bound[d.Slot] = true
			}
		}
		gl.UniformMatrix4fv(p.uModel, 1, false, &d.Model[0])
		if d.Mesh != boundMesh {
			gl.BindVertexArray(r.meshes[d.Mesh].vao)
			boundMesh = d.Mesh
		}
		gl.DrawElements(gl.TRIANGLES, r.meshes[d.Mesh].indexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
	r.checkGLError("scene")
}

// checkGLError drains the GL error queue when debug is on.
func (r *Renderer) checkGLError(where string) {
	if !r.debug {
		return
	}
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		log.Printf("[GL] %s at %s", glErrorString(code), where)
	}
}

func glErrorString(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	}
	return fmt.Sprintf("GL error 0x%x", code)
}
