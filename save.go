package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stewi1014/glflame/config"
	"github.com/stewi1014/glflame/flame"
	"github.com/stewi1014/glflame/raster"
)

type HeadlessOptions struct {
	Name          string
	Frames        int
	Width, Height int
	FrameMs       float64
}

func snapshotName(t time.Time) string {
	return fmt.Sprintf("glflame-%s.png", t.Format("20060102-150405"))
}

// savePNG composites img over white at width by height and writes it to
// name. A partially written file is removed.
func savePNG(name string, img image.Image, width, height int) (err error) {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(name)
		}
	}()

	return png.Encode(file, raster.Snapshot(img, width, height))
}

// renderHeadless runs the animation on the software accumulator at a fixed
// frame rate and saves the last frame.
func renderHeadless(ctx context.Context, settings *config.Settings, opts HeadlessOptions, sources []flame.Source) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	accumulator := raster.New(settings.TextureSize)
	accumulator.PointSize = settings.PointSize
	accumulator.Alpha = settings.PointAlpha

	renderer, err := flame.NewRenderer(settings.Flame(), accumulator, nil, sources...)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"frames": opts.Frames,
		"points": settings.Points,
		"size":   settings.TextureSize,
	}).Info("rendering headless")

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer CatchPanicToContext(cancel)

		for i := 0; i < opts.Frames; i++ {
			if ctx.Err() != nil {
				return
			}
			renderer.Tick(float64(i) * opts.FrameMs)

			if (i+1)%60 == 0 {
				logrus.Debugf("rendered %v/%v frames", i+1, opts.Frames)
			}
		}
	}()
	<-done

	if ctx.Err() != nil {
		return context.Cause(ctx)
	}

	if err := savePNG(opts.Name, accumulator, opts.Width, opts.Height); err != nil {
		return fmt.Errorf("saving %v: %w", opts.Name, err)
	}
	logrus.WithField("file", opts.Name).Info("saved image")
	return nil
}
