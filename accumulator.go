package main

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/sirupsen/logrus"
	"github.com/stewi1014/glflame/flame"
	"github.com/stewi1014/glflame/programs"
	"github.com/stewi1014/glflame/raster"
)

var _ flame.Surface = (*glAccumulator)(nil)

// glAccumulator keeps the flame in a float texture behind a framebuffer
// object and presents it onto the default framebuffer.
type glAccumulator struct {
	size          int32
	width, height int32
	pointSize     float32
	alpha         float32

	fbo     uint32
	texture uint32
	depth   uint32

	quadVBO  uint32
	pointVBO uint32
	capacity int

	fade    *glProgram
	splat   *glProgram
	present *glProgram
}

func newGLAccumulator(size int32, pointSize, alpha float32) (*glAccumulator, error) {
	a := &glAccumulator{
		size:      size,
		pointSize: pointSize,
		alpha:     alpha,
	}

	var err error
	if a.fade, err = loadNamedProgram(programs.Fade, &programs.FadeUniforms{}); err != nil {
		a.delete()
		return nil, err
	}
	if a.splat, err = loadNamedProgram(programs.Splat, &programs.SplatUniforms{}); err != nil {
		a.delete()
		return nil, err
	}
	if a.present, err = loadNamedProgram(programs.Present, &programs.PresentUniforms{}); err != nil {
		a.delete()
		return nil, err
	}

	gl.GenBuffers(1, &a.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, a.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(programs.QuadVertices)*4, gl.Ptr(programs.QuadVertices), gl.STATIC_DRAW)
	a.fade.bindBuffer(a.quadVBO)
	a.present.bindBuffer(a.quadVBO)

	gl.GenBuffers(1, &a.pointVBO)
	a.splat.bindBuffer(a.pointVBO)

	gl.GenTextures(1, &a.texture)
	gl.BindTexture(gl.TEXTURE_2D, a.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA32F, size, size, 0, gl.RGBA, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.GenRenderbuffers(1, &a.depth)
	gl.BindRenderbuffer(gl.RENDERBUFFER, a.depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT16, size, size)

	gl.GenFramebuffers(1, &a.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, a.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, a.texture, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, a.depth)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		a.delete()
		return nil, fmt.Errorf("%w: accumulator framebuffer incomplete (status 0x%x)", flame.ErrSurfaceUnavailable, status)
	}

	gl.Viewport(0, 0, size, size)
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	gl.Enable(gl.BLEND)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Disable(gl.DEPTH_TEST)

	logrus.WithField("size", size).Debug("accumulator framebuffer ready")
	return a, nil
}

func loadNamedProgram(name string, uniforms interface{}) (*glProgram, error) {
	program, err := programs.GetProgram(name)
	if err != nil {
		return nil, err
	}
	return loadProgram(program, uniforms)
}

func (a *glAccumulator) Resize(width, height int) {
	a.width, a.height = int32(width), int32(height)
}

func (a *glAccumulator) bindTarget() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, a.fbo)
	gl.Viewport(0, 0, a.size, a.size)
}

func (a *glAccumulator) Fade(amount float32) {
	if amount == 0 {
		return
	}

	a.bindTarget()
	// Colour and alpha both scale by 1-amount, so the premultiplied
	// content fades toward transparent black.
	gl.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ZERO, gl.ONE_MINUS_SRC_ALPHA)
	a.fade.use(&programs.FadeUniforms{Amount: amount})
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

func (a *glAccumulator) Splat(points []flame.Point, palette flame.Palette) {
	if len(points) == 0 {
		return
	}

	a.bindTarget()

	size := len(points) * int(unsafe.Sizeof(points[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, a.pointVBO)
	if len(points) > a.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, size, unsafe.Pointer(&points[0]), gl.STREAM_DRAW)
		a.capacity = len(points)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&points[0]))
	}

	gl.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	a.splat.use(&programs.SplatUniforms{
		Colours:   palette,
		PointSize: a.pointSize,
		Alpha:     a.alpha,
	})
	gl.DrawArrays(gl.POINTS, 0, int32(len(points)))
	gl.BindVertexArray(0)
}

func (a *glAccumulator) Present() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, a.width, a.height)
	gl.ClearColor(1, 1, 1, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, a.texture)
	a.present.use(&programs.PresentUniforms{
		Camera: programs.Camera(int(a.width), int(a.height)),
		Accum:  0,
	})
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

// Snapshot reads the accumulated image back from the GPU.
func (a *glAccumulator) Snapshot() *raster.Accumulator {
	pix := make([]float32, a.size*a.size*4)
	gl.BindFramebuffer(gl.FRAMEBUFFER, a.fbo)
	gl.ReadPixels(0, 0, a.size, a.size, gl.RGBA, gl.FLOAT, gl.Ptr(pix))
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return raster.FromPixels(int(a.size), pix)
}

func (a *glAccumulator) delete() {
	gl.DeleteFramebuffers(1, &a.fbo)
	gl.DeleteRenderbuffers(1, &a.depth)
	gl.DeleteTextures(1, &a.texture)
	gl.DeleteBuffers(1, &a.pointVBO)
	gl.DeleteBuffers(1, &a.quadVBO)
	for _, p := range []*glProgram{a.fade, a.splat, a.present} {
		if p != nil {
			p.delete()
		}
	}
}
