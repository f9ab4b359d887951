package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sirupsen/logrus"
	"github.com/stewi1014/glflame/config"
	"github.com/stewi1014/glflame/flame"
)

// frameLogInterval is how many frames are summarised per timing log line.
const frameLogInterval = 600

// RenderWindow is the visible drawing surface. It also supplies the pointer
// position and the frame clock.
type RenderWindow struct {
	*glfw.Window
	accumulator *glAccumulator
	pointer     flame.Pointer

	snapshotRequested bool
}

func NewRenderWindow(width, height int, settings *config.Settings, debug bool) (*RenderWindow, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: glfw.Init failed: %v", flame.ErrSurfaceUnavailable, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}
	window, err := glfw.CreateWindow(
		width,
		height,
		"GLFlame",
		nil,
		nil,
	)

	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: glfw.CreateWindow failed: %v", flame.ErrSurfaceUnavailable, err)
	}

	w := &RenderWindow{
		Window: window,
	}

	w.MakeContextCurrent()
	err = gl.Init()
	if err != nil {
		w.Destroy()
		return nil, fmt.Errorf("%w: gl.Init failed: %v", flame.ErrSurfaceUnavailable, err)
	}
	logrus.Infof("OpenGL version %v", glInfo())

	if debug {
		gl.Enable(gl.DEBUG_OUTPUT)
		gl.DebugMessageCallback(glDebugMessage, nil)
	}

	if settings.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w.accumulator, err = newGLAccumulator(int32(settings.TextureSize), settings.PointSize, settings.PointAlpha)
	if err != nil {
		w.Destroy()
		return nil, err
	}
	w.accumulator.Resize(w.GetFramebufferSize())

	w.SetFramebufferSizeCallback(w.resize)
	w.SetCursorPosCallback(w.cursor)
	w.SetKeyCallback(w.key)

	return w, nil
}

func (w *RenderWindow) resize(_ *glfw.Window, width, height int) {
	logrus.WithFields(logrus.Fields{"width": width, "height": height}).Debug("framebuffer resized")
	w.accumulator.Resize(width, height)
}

// cursor records the pointer in framebuffer pixels.
func (w *RenderWindow) cursor(_ *glfw.Window, x, y float64) {
	sx, sy := w.GetContentScale()
	w.pointer.Set(float32(x)*sx, float32(y)*sy)
}

func (w *RenderWindow) key(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.KeyS:
		w.snapshotRequested = true
	}
}

// Run ticks renderer once per displayed frame until the window closes or
// ctx is cancelled.
func (w *RenderWindow) Run(ctx context.Context, renderer *flame.Renderer) error {
	frameTimes := make([]time.Duration, 0, frameLogInterval)

	for !w.ShouldClose() {
		if ctx.Err() != nil {
			return context.Cause(ctx)
		}

		start := time.Now()
		renderer.Tick(glfw.GetTime() * 1000)

		if w.snapshotRequested {
			w.snapshotRequested = false
			w.saveSnapshot()
		}

		w.SwapBuffers()
		glfw.PollEvents()

		frameTimes = append(frameTimes, time.Since(start))
		if len(frameTimes) == frameLogInterval {
			logFrameTimes(renderer.Frames(), frameTimes)
			frameTimes = frameTimes[:0]
		}
	}

	logrus.WithField("frames", renderer.Frames()).Info("window closed")
	return nil
}

func (w *RenderWindow) saveSnapshot() {
	size := int(w.accumulator.size)
	accumulated := w.accumulator.Snapshot()
	name := snapshotName(time.Now())

	go func() {
		if err := savePNG(name, accumulated, size, size); err != nil {
			logrus.WithError(err).Error("failed to save snapshot")
			return
		}
		logrus.WithField("file", name).Info("saved snapshot")
	}()
}

func (w *RenderWindow) Destroy() {
	if w.accumulator != nil {
		w.accumulator.delete()
	}
	w.Window.Destroy()
	glfw.Terminate()
}

func logFrameTimes(frames uint64, times []time.Duration) {
	var total, worst time.Duration
	for _, t := range times {
		total += t
		worst = max(worst, t)
	}
	mean := total / time.Duration(len(times))

	logrus.WithFields(logrus.Fields{
		"frames": frames,
		"mean":   mean,
		"worst":  worst,
	}).Debug("frame times")
}
