package main

import (
	"context"
	"errors"
	"flag"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stewi1014/glflame/config"
	"github.com/stewi1014/glflame/flame"
)

func init() {
	// GLFW and OpenGL calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "settings file (default ~/.config/glflame/settings.json)")
	debug := flag.Bool("debug", false, "enable debug logging and the OpenGL debug context")
	headless := flag.Bool("headless", false, "render offscreen and save a single image")
	frames := flag.Int("frames", 600, "frames to render in headless mode")
	out := flag.String("out", "flame.png", "output image in headless mode")
	width := flag.Int("width", 1200, "window or image width")
	height := flag.Int("height", 800, "window or image height")
	seed := flag.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	noDialog := flag.Bool("no-dialog", false, "report errors on the log only")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Warn("Failed to load settings, using defaults")
		settings = config.Default()
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	sources := newSources(settings.Seed, settings.Workers)

	if *headless {
		err = renderHeadless(ctx, settings, HeadlessOptions{
			Name:    *out,
			Frames:  *frames,
			Width:   *width,
			Height:  *height,
			FrameMs: 1000.0 / 60,
		}, sources)
	} else {
		err = runWindow(ctx, settings, *width, *height, *debug, sources)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		logrus.WithError(err).Error("glflame failed")
		if !*noDialog && !*headless {
			ShowErrorDialog(err)
		}
		stop()
		os.Exit(1)
	}
}

func runWindow(ctx context.Context, settings *config.Settings, width, height int, debug bool, sources []flame.Source) error {
	window, err := NewRenderWindow(width, height, settings, debug)
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer, err := flame.NewRenderer(settings.Flame(), window.accumulator, &window.pointer, sources...)
	if err != nil {
		return err
	}

	return window.Run(ctx, renderer)
}

// newSources returns one generator per worker, all derived from seed so a
// run can be repeated.
func newSources(seed uint64, workers int) []flame.Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logrus.WithFields(logrus.Fields{"seed": seed, "workers": workers}).Info("seeding point cloud")

	sources := make([]flame.Source, workers)
	for i := range sources {
		sources[i] = rand.New(rand.NewPCG(seed, uint64(i)))
	}
	return sources
}
