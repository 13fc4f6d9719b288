package main

import (
	"context"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gogpu/shape"
	"github.com/gogpu/shape/scene"
)

func loadDemo(t *testing.T) *demo {
	t.Helper()
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		t.Fatal(err)
	}
	f, err := sub.Open("scene.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	sc, err := scene.Load(f, scene.WithAssets(sub))
	if err != nil {
		t.Fatal(err)
	}
	d, err := newDemo(sc)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestDemo_Setup(t *testing.T) {
	d := loadDemo(t)
	if d.heart.Box.Width != 200 || d.heart.Center() != shape.Pt(216, 216) {
		t.Errorf("heart box = %+v", d.heart.Box)
	}
	if _, err := newDemo(scene.New(10, 10, shape.White)); err == nil {
		t.Error("newDemo accepted an empty scene")
	}
}

func TestDemo_TickHover(t *testing.T) {
	d := loadDemo(t)

	d.tick(shape.NewInput(shape.Pt(60, 60)))
	if d.rect.Width != 150 || d.rect.Center() != shape.Pt(60, 60) {
		t.Errorf("hovered rect = %+v", *d.rect)
	}
	d.tick(shape.NewInput(shape.Pt(400, 400)))
	if math.Abs(d.rect.Width-100) > 1e-9 || !d.rect.Center().Approx(shape.Pt(60, 60), 1e-9) {
		t.Errorf("released rect = %+v", *d.rect)
	}
	if d.ball.Center != shape.Pt(400, 400) {
		t.Errorf("circle center = %v, want pointer", d.ball.Center)
	}
}

func TestDemo_TickClick(t *testing.T) {
	d := loadDemo(t)

	in := shape.NewInput(shape.Pt(70, 50))
	in.Clicked = true
	d.tick(in)
	if d.rect.Center() != shape.Pt(70, 50) {
		t.Errorf("dragged rect center = %v, want the pointer", d.rect.Center())
	}
	if d.line.Start != shape.Pt(500, 0) || d.line.End != shape.Pt(0, 500) {
		t.Errorf("line after click = %v", d.line.Segment)
	}
}

func TestDemo_TickKeys(t *testing.T) {
	d := loadDemo(t)
	start := d.heart.Center()

	in := shape.NewInput(shape.Pt(499, 499))
	in.Keys.Set("D", true)
	in.Keys.Set("w", true)
	d.tick(in)
	if got := d.heart.Center(); got != start.Add(shape.Pt(step, -step)) {
		t.Errorf("heart center = %v, want %v", got, start.Add(shape.Pt(step, -step)))
	}
}

func TestDemo_TickOppositeKeysCancel(t *testing.T) {
	d := loadDemo(t)
	start := d.heart.Center()

	in := shape.NewInput(shape.Pt(499, 499))
	for _, k := range []string{"w", "a", "s", "d"} {
		in.Keys.Set(k, true)
	}
	d.tick(in)
	if got := d.heart.Center(); !got.Approx(start, 1e-9) {
		t.Errorf("heart center = %v, want %v", got, start)
	}

	in.Keys.Set("d", false)
	d.tick(in)
	if got, want := d.heart.Center(), start.Add(shape.Pt(-step, 0)); !got.Approx(want, 1e-9) {
		t.Errorf("heart center = %v, want %v", got, want)
	}
}

func TestDemo_LineIsVisible(t *testing.T) {
	d := loadDemo(t)
	if d.line.Color == shape.Black {
		t.Errorf("line color %v matches the black background", d.line.Color)
	}
}

func TestDemoScript(t *testing.T) {
	s := demoScript(80, 500, 500)
	if s.Remaining() != 80 {
		t.Fatalf("Remaining() = %d", s.Remaining())
	}
	clicks, keys := 0, 0
	var last shape.Input
	for {
		in, ok := s.Poll()
		if !ok {
			break
		}
		if in.Clicked {
			clicks++
		}
		if len(in.Keys) > 0 {
			keys++
		}
		last = in
	}
	if clicks == 0 || keys == 0 {
		t.Errorf("script has %d clicks and %d key frames", clicks, keys)
	}
	if last.Pointer != shape.Pt(500, 500) {
		t.Errorf("last pointer = %v", last.Pointer)
	}
}

func TestRun_WritesFrames(t *testing.T) {
	for _, kind := range []string{"image", "record"} {
		t.Run(kind, func(t *testing.T) {
			cfg := &Config{
				Frames:   10,
				Interval: time.Millisecond,
				Every:    3,
				Output:   t.TempDir(),
				Surface:  kind,
				Workers:  2,
			}
			n, err := run(context.Background(), cfg)
			if err != nil {
				t.Fatal(err)
			}
			if n != 4 {
				t.Errorf("wrote %d frames, want 4", n)
			}
			matches, err := filepath.Glob(filepath.Join(cfg.Output, "frame-*.png"))
			if err != nil {
				t.Fatal(err)
			}
			if len(matches) != 4 {
				t.Errorf("found %d frame files, want 4", len(matches))
			}
			info, err := os.Stat(filepath.Join(cfg.Output, "frame-0009.png"))
			if err != nil || info.Size() == 0 {
				t.Errorf("last frame: %v", err)
			}
		})
	}
}

func TestRun_UnknownSurface(t *testing.T) {
	cfg := &Config{Frames: 1, Interval: time.Millisecond, Output: t.TempDir(), Surface: "vulkan"}
	if _, err := run(context.Background(), cfg); err == nil {
		t.Error("run() accepted an unknown surface kind")
	}
}
