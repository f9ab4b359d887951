package flame

import (
	"fmt"
)

// Surface is where the points accumulate between frames.
type Surface interface {
	// Fade darkens the accumulated image toward transparent black.
	// 0 leaves it untouched and 1 clears it.
	Fade(amount float32)
	// Splat blends points into the accumulated image, coloured by palette.
	Splat(points []Point, palette Palette)
	// Present composites the accumulated image onto the visible surface.
	Present()
}

type State int

const (
	Uninitialized State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Frame describes the most recent tick.
type Frame struct {
	ElapsedMs float64
	DeltaMs   float64
	FadeOut   float32
	FadeIn    float32
	Maps      IteratedFunctionSet
	Palette   Palette
}

// Renderer drives one frame of the animation per Tick. Tick must not be
// called concurrently.
type Renderer struct {
	cfg      Config
	animator *Animator
	colours  *ColourCycle
	cloud    *PointCloud
	surface  Surface
	pointer  PointerSource

	state  State
	start  float64
	prev   float64
	frames uint64
	last   Frame
}

// NewRenderer builds the animation from cfg. The first source seeds the
// points and the hue offset; each source advances one chunk of the points.
func NewRenderer(cfg Config, surface Surface, pointer PointerSource, sources ...Source) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if surface == nil {
		return nil, ErrSurfaceUnavailable
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: no random source", ErrInvalidConfig)
	}
	if pointer == nil {
		pointer = &Pointer{}
	}

	return &Renderer{
		cfg:      cfg,
		animator: NewAnimator(cfg.Baseline, cfg.RotationRates, cfg.DriftRates),
		colours:  NewColourCycle(cfg.ColourRate, sources[0]),
		cloud:    NewPointCloud(cfg.Points, sources...),
		surface:  surface,
		pointer:  pointer,
	}, nil
}

func (r *Renderer) State() State {
	return r.state
}

func (r *Renderer) Frames() uint64 {
	return r.frames
}

func (r *Renderer) Cloud() *PointCloud {
	return r.cloud
}

func (r *Renderer) LastFrame() Frame {
	return r.last
}

// Tick renders the frame for timestamp nowMs. Timestamps are expected to
// increase; elapsed time is measured from the first tick.
func (r *Renderer) Tick(nowMs float64) {
	if r.state == Uninitialized {
		r.start, r.prev = nowMs, nowMs
		r.state = Running
	}

	elapsed := nowMs - r.start
	delta := nowMs - r.prev
	r.prev = nowMs

	set := NewIteratedFunctionSet(r.animator.Update(elapsed, r.pointer.Pointer()))
	palette := r.colours.ColoursAt(elapsed)
	r.cloud.Advance(&set)

	fadeOut := FadeOutAmount(delta, r.cfg.FadeOutMs, r.cfg.FadeOutPercent)
	fadeIn := FadeInAmount(elapsed, r.cfg.FadeInMs)

	r.surface.Fade(fadeOut)
	r.surface.Splat(r.cloud.Points(), palette)
	r.surface.Fade(fadeIn)
	r.surface.Present()

	r.frames++
	r.last = Frame{
		ElapsedMs: elapsed,
		DeltaMs:   delta,
		FadeOut:   fadeOut,
		FadeIn:    fadeIn,
		Maps:      set,
		Palette:   palette,
	}
}
