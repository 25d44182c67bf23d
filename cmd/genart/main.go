// Command genart evolves a triangle-soup approximation of an input image
// and displays the best individual while it runs, either in a window or
// through an HTTP viewer in headless mode. It runs until interrupted or
// the window is closed.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/genart"
)

var (
	input     = flag.String("input", "", "target image (bmp, png or jpeg); required")
	popSize   = flag.Int("pop", genart.DefaultPopulationSize, "population size")
	triangles = flag.Int("triangles", genart.DefaultTriangleCount, "triangles per individual")
	alpha     = flag.Float64("alpha", genart.DefaultAlpha, "fixed triangle alpha")
	seed      = flag.Int64("seed", 0, "random seed; 0 seeds from the clock")
	headless  = flag.Bool("headless", false, "run without a window")
	httpAddr  = flag.String("http", "", "serve a live viewer on this address, e.g. :8080")
	snapshot  = flag.String("snapshot", "", "write the best individual to this PNG periodically and on exit")
	every     = flag.Int("every", 250, "generations between snapshots and progress logs")
	plotPath  = flag.String("plot", "", "write a fitness-over-generations plot here on exit")
	verbose   = flag.Bool("v", false, "debug logging")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "genart:", err)
		os.Exit(1)
	}
}

func run() error {
	if *input == "" {
		flag.Usage()
		return fmt.Errorf("missing -input")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	genart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	target, err := genart.LoadTarget(*input)
	if err != nil {
		return err
	}

	opts := []genart.Option{
		genart.WithPopulationSize(*popSize),
		genart.WithTriangleCount(*triangles),
		genart.WithAlpha(*alpha),
	}
	if *seed != 0 {
		opts = append(opts, genart.WithRand(rand.New(rand.NewSource(*seed))))
	}
	engine, err := genart.NewEngine(target, opts...)
	if err != nil {
		return err
	}

	var viewer *genart.Viewer
	if *httpAddr != "" {
		viewer = genart.NewViewer()
		go func() {
			if err := viewer.Start(*httpAddr); err != nil {
				genart.Logger().Warn("viewer stopped", "err", err)
			}
		}()
	}

	l := &loop{
		engine:   engine,
		viewer:   viewer,
		width:    target.Width(),
		height:   target.Height(),
		every:    *every,
		snapshot: *snapshot,
	}

	if *headless {
		err = l.runHeadless()
	} else {
		ebiten.SetWindowSize(target.Width(), target.Height())
		ebiten.SetWindowTitle("genart")
		err = ebiten.RunGame(l)
	}
	if err != nil {
		return err
	}
	return l.finalize(*plotPath)
}

// loop drives the engine. As an ebiten.Game, Update advances one
// generation per tick and Draw paints the current best; headless mode
// ticks as fast as it can until interrupted.
type loop struct {
	engine   *genart.Engine
	viewer   *genart.Viewer
	frame    *ebiten.Image
	width    int
	height   int
	every    int
	snapshot string
}

func (l *loop) Update() error {
	l.engine.Tick()
	l.maybePublish()
	return nil
}

func (l *loop) Draw(screen *ebiten.Image) {
	img := l.engine.RenderBest()
	if l.frame == nil {
		l.frame = ebiten.NewImage(l.width, l.height)
	}
	// The rendered composite is fully opaque, so the straight-alpha
	// pixels are valid premultiplied data as-is.
	l.frame.WritePixels(img.Pix)
	screen.DrawImage(l.frame, nil)
}

func (l *loop) Layout(outsideWidth, outsideHeight int) (int, int) {
	return l.width, l.height
}

func (l *loop) runHeadless() error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)
	for {
		select {
		case s := <-sig:
			genart.Logger().Info("stopping", "signal", s)
			return nil
		default:
		}
		l.engine.Tick()
		l.maybePublish()
	}
}

// maybePublish pushes the best individual to the viewer and snapshot file
// every l.every generations.
func (l *loop) maybePublish() {
	if l.every <= 0 || l.engine.Generation()%l.every != 0 {
		return
	}
	genart.Logger().Info("progress",
		"generation", l.engine.Generation(),
		"best", l.engine.BestFitness())
	img := l.engine.RenderBest()
	if l.viewer != nil {
		if err := l.viewer.Publish(img, l.engine.Generation(), l.engine.BestFitness()); err != nil {
			genart.Logger().Warn("publish failed", "err", err)
		}
	}
	if l.snapshot != "" {
		if err := writePNG(l.snapshot, img); err != nil {
			genart.Logger().Warn("snapshot failed", "path", l.snapshot, "err", err)
		}
	}
}

// finalize writes the last snapshot and the fitness plot, if requested.
func (l *loop) finalize(plotPath string) error {
	if l.snapshot != "" {
		if err := writePNG(l.snapshot, l.engine.RenderBest()); err != nil {
			return err
		}
	}
	if plotPath != "" {
		if err := l.engine.History().SavePlot(plotPath); err != nil {
			return err
		}
		genart.Logger().Info("plot written", "path", plotPath)
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
