// Command shapedemo runs a scripted interactive scene and writes frames as
// PNG files.
package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/shape"
	"github.com/gogpu/shape/render"
	"github.com/gogpu/shape/scene"
	"github.com/gogpu/shape/surface"
)

//go:embed assets
var assets embed.FS

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("shapedemo: config: %v", err)
	}
	cfg.bindFlags(flag.CommandLine)
	flag.Parse()

	shape.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.logLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	n, err := run(ctx, cfg)
	if err != nil {
		log.Fatalf("shapedemo: %v", err)
	}
	log.Printf("wrote %d frames to %s", n, cfg.Output)
}

// run plays the demo and returns the number of frames written.
func run(ctx context.Context, cfg *Config) (int, error) {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		return 0, err
	}
	f, err := sub.Open("scene.yaml")
	if err != nil {
		return 0, err
	}
	defer f.Close()

	sc, err := scene.Load(f, scene.WithAssets(sub))
	if err != nil {
		return 0, err
	}
	d, err := newDemo(sc)
	if err != nil {
		return 0, err
	}

	surf, err := surface.NewSurfaceByName(cfg.Surface, int(sc.Width), int(sc.Height))
	if err != nil {
		return 0, err
	}
	defer surf.Close()
	r := render.New(surf, sc.Background)

	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return 0, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))
	written := 0

	err = scene.Run(gctx, cfg.Interval, demoScript(cfg.Frames, sc.Width, sc.Height), func(tick int, in shape.Input) error {
		d.tick(in)
		sc.Draw(r)
		if err := surf.Flush(); err != nil {
			return err
		}
		if cfg.Every <= 0 || tick%cfg.Every != 0 {
			return nil
		}

		img := surf.Snapshot()
		if img == nil {
			return fmt.Errorf("surface %q returned no snapshot", cfg.Surface)
		}
		name := filepath.Join(cfg.Output, fmt.Sprintf("frame-%04d.png", tick))
		written++
		g.Go(func() error { return writePNG(name, img) })
		return nil
	})
	if werr := g.Wait(); werr != nil {
		err = werr
	}
	return written, err
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	shape.Logger().Debug("frame written", "file", name)
	return f.Close()
}
