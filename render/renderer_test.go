// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/shape"
	"github.com/gogpu/shape/surface"
)

var background = shape.Hex("#f0f0f0")

func newRecording(t *testing.T) (*Renderer, *surface.Recorder) {
	t.Helper()
	rec := surface.NewRecorder(500, 500)
	t.Cleanup(func() { rec.Close() })
	return New(rec, background), rec
}

func commandTypes(rec *surface.Recorder) []surface.CommandType {
	var out []surface.CommandType
	for _, c := range rec.Commands() {
		out = append(out, c.Type())
	}
	return out
}

func sameTypes(got, want []surface.CommandType) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func fillAt(t *testing.T, rec *surface.Recorder, i int) surface.FillCommand {
	t.Helper()
	cmds := rec.Commands()
	if i >= len(cmds) {
		t.Fatalf("only %d commands recorded", len(cmds))
	}
	f, ok := cmds[i].(surface.FillCommand)
	if !ok {
		t.Fatalf("command %d is %v, want Fill", i, cmds[i].Type())
	}
	return f
}

func TestRenderer_Clear(t *testing.T) {
	r, rec := newRecording(t)
	r.Clear()
	cmds := rec.Commands()
	if len(cmds) != 1 {
		t.Fatalf("recorded %d commands, want 1", len(cmds))
	}
	if c := cmds[0].(surface.ClearCommand).Color; c != background {
		t.Errorf("Clear color = %v, want background", c)
	}

	r.SetBackground(shape.White)
	if r.Background() != shape.White {
		t.Error("SetBackground did not take effect")
	}
	if r.Surface() != rec {
		t.Error("Surface() returned a different surface")
	}
}

func TestRenderer_DrawRect(t *testing.T) {
	orange, lime := shape.Hex("#ff751a"), shape.Hex("#32CD32")

	tests := []struct {
		name      string
		rect      *shape.Rect
		wantFills int
		inner     shape.RGBA
		innerBox  [4]float64
	}{
		{"plain", shape.NewRect(10, 10, 100, 100, shape.WithColor(orange)), 1, shape.RGBA{}, [4]float64{}},
		{"outline with fill", shape.NewRect(10, 10, 100, 100,
			shape.WithColor(orange), shape.WithFill(lime), shape.WithOutline(20)),
			2, lime, [4]float64{30, 30, 90, 90}},
		{"outline without fill", shape.NewRect(10, 10, 100, 100, shape.WithOutline(5)),
			2, background, [4]float64{15, 15, 105, 105}},
		{"flipped", shape.NewRect(110, 110, -100, -100, shape.WithOutline(20)),
			2, background, [4]float64{30, 30, 90, 90}},
		{"outline swallows interior", shape.NewRect(0, 0, 30, 30, shape.WithOutline(15)), 1, shape.RGBA{}, [4]float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, rec := newRecording(t)
			r.DrawRect(tt.rect)

			if rec.Len() != tt.wantFills {
				t.Fatalf("recorded %d commands, want %d", rec.Len(), tt.wantFills)
			}
			border := fillAt(t, rec, 0)
			if border.Style.Color != tt.rect.Color {
				t.Errorf("border color = %v, want %v", border.Style.Color, tt.rect.Color)
			}
			if tt.wantFills == 1 {
				return
			}
			inner := fillAt(t, rec, 1)
			if inner.Style.Color != tt.inner {
				t.Errorf("inner color = %v, want %v", inner.Style.Color, tt.inner)
			}
			minX, minY, maxX, maxY := inner.Path.Bounds()
			if got := [4]float64{minX, minY, maxX, maxY}; got != tt.innerBox {
				t.Errorf("inner bounds = %v, want %v", got, tt.innerBox)
			}
		})
	}
}

func TestRenderer_DrawRectPixels(t *testing.T) {
	s := surface.NewImageSurface(200, 200)
	defer s.Close()

	r := New(s, shape.White)
	r.Clear()
	r.DrawRect(shape.NewRect(10, 10, 100, 100,
		shape.WithColor(shape.Red), shape.WithFill(shape.RGB(0, 0, 1)), shape.WithOutline(20)))

	img := s.Snapshot()
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{15, 15, color.RGBA{255, 0, 0, 255}},
		{60, 15, color.RGBA{255, 0, 0, 255}},
		{60, 60, color.RGBA{0, 0, 255, 255}},
		{150, 150, color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		got := img.RGBAAt(tt.x, tt.y)
		if diff(got.R, tt.want.R) > 2 || diff(got.G, tt.want.G) > 2 || diff(got.B, tt.want.B) > 2 {
			t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func diff(a, b uint8) uint8 {
	return max(a, b) - min(a, b)
}

func TestRenderer_SolidShapes(t *testing.T) {
	poly, err := shape.NewPolygon([]shape.Point{shape.Pt(0, 0), shape.Pt(10, 0), shape.Pt(5, 8)}, shape.WithColor(shape.Red))
	if err != nil {
		t.Fatal(err)
	}
	path, err := shape.NewPathFromPoints([]shape.Point{shape.Pt(1, 1), shape.Pt(9, 1), shape.Pt(9, 9)})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		v     any
		color shape.RGBA
	}{
		{"polygon", poly, shape.Red},
		{"circle", shape.NewCircle(shape.Pt(50, 50), 10), shape.Black},
		{"ellipse", shape.NewEllipse(shape.Pt(50, 50), 20, 10, shape.WithColor(shape.White)), shape.White},
		{"path", path, shape.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, rec := newRecording(t)
			if !r.Draw(tt.v) {
				t.Fatal("Draw returned false")
			}
			want := []surface.CommandType{surface.CmdFill, surface.CmdStroke}
			if got := commandTypes(rec); !sameTypes(got, want) {
				t.Fatalf("commands = %v, want %v", got, want)
			}
			if c := fillAt(t, rec, 0).Style.Color; c != tt.color {
				t.Errorf("fill color = %v, want %v", c, tt.color)
			}
			stroke := rec.Commands()[1].(surface.StrokeCommand)
			if stroke.Style.Width != 1 || stroke.Style.Color != tt.color {
				t.Errorf("stroke style = %+v", stroke.Style)
			}
		})
	}
}

func TestRenderer_DegenerateShapesDrawNothing(t *testing.T) {
	r, rec := newRecording(t)
	r.DrawPolygon(&shape.Polygon{Vertices: []shape.Point{shape.Pt(1, 1)}})
	r.DrawCircle(shape.NewCircle(shape.Pt(0, 0), 0))
	r.DrawEllipse(shape.NewEllipse(shape.Pt(0, 0), 5, 0))
	r.DrawPath(&shape.Path{})
	r.DrawImageBox(&shape.ImageBox{})
	if rec.Len() != 0 {
		t.Errorf("recorded %v", commandTypes(rec))
	}
}

func TestRenderer_DrawEllipsePie(t *testing.T) {
	r, rec := newRecording(t)
	e := shape.NewEllipse(shape.Pt(100, 100), 40, 20)
	e.EndAngle = math.Pi / 2
	r.DrawEllipse(e)

	p := fillAt(t, rec, 0).Path
	verbs, pts := p.Verbs(), p.Points()
	if verbs[0] != surface.VerbMoveTo || pts[0] != surface.Pt(100, 100) {
		t.Errorf("pie does not start at the center: %v %v", verbs[0], pts[0])
	}
	if verbs[len(verbs)-1] != surface.VerbClose {
		t.Errorf("pie is not closed: %v", verbs)
	}

	full := shape.NewEllipse(shape.Pt(100, 100), 40, 20)
	rec.Reset()
	r.DrawEllipse(full)
	if first := fillAt(t, rec, 0).Path.Points()[0]; first != surface.Pt(140, 100) {
		t.Errorf("full ellipse starts at %v, want (140, 100)", first)
	}
}

func TestRenderer_DrawPathElements(t *testing.T) {
	start := shape.Pt(0, 0)
	corner := shape.Pt(100, 0)
	elems := []shape.PathElement{
		&start,
		&corner,
		&shape.Arc{From: shape.Pt(200, 0), To: shape.Pt(200, 100), Radius: 20},
		shape.NewEllipse(shape.Pt(150, 150), 10, 10),
	}
	p, err := shape.NewPath(elems)
	if err != nil {
		t.Fatal(err)
	}

	r, rec := newRecording(t)
	r.DrawPath(p)

	verbs := fillAt(t, rec, 0).Path.Verbs()
	if verbs[0] != surface.VerbMoveTo {
		t.Errorf("first verb = %v, want MoveTo", verbs[0])
	}
	if verbs[len(verbs)-1] != surface.VerbClose {
		t.Errorf("last verb = %v, want Close", verbs[len(verbs)-1])
	}
	cubics := 0
	for _, v := range verbs {
		if v == surface.VerbCubicTo {
			cubics++
		}
	}
	// One cubic for the quarter turn of the tangent arc, four for the circle.
	if cubics != 5 {
		t.Errorf("path has %d cubics, want 5", cubics)
	}

	p.Closed = false
	rec.Reset()
	r.DrawPath(p)
	if verbs := fillAt(t, rec, 0).Path.Verbs(); verbs[len(verbs)-1] == surface.VerbClose {
		t.Error("open path was closed")
	}
}

func TestRenderer_DrawSegmentAndArc(t *testing.T) {
	r, rec := newRecording(t)
	r.Draw(shape.Seg(shape.Pt(0, 0), shape.Pt(10, 10)))
	seg := shape.Seg(shape.Pt(5, 5), shape.Pt(6, 6))
	r.Draw(&seg)
	r.DrawArc(shape.Pt(0, 0), &shape.Arc{From: shape.Pt(10, 0), To: shape.Pt(10, 10), Radius: 5}, shape.Style{Color: shape.Red})

	want := []surface.CommandType{surface.CmdStroke, surface.CmdStroke, surface.CmdStroke}
	if got := commandTypes(rec); !sameTypes(got, want) {
		t.Fatalf("commands = %v, want %v", got, want)
	}
	arc := rec.Commands()[2].(surface.StrokeCommand)
	if arc.Style.Color != shape.Red {
		t.Errorf("arc color = %v", arc.Style.Color)
	}
	if got := arc.Path.CurrentPoint(); math.Abs(got.X-10) > 1e-9 || math.Abs(got.Y-5) > 1e-9 {
		t.Errorf("arc ends at %v, want (10, 5)", got)
	}
}

func TestRenderer_DrawImageBox(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))

	r, rec := newRecording(t)
	ib := shape.NewImageBox(img, 10, 20)
	r.Draw(ib)

	ib.SetScaleToWidth(32)
	r.Draw(ib)

	cmds := rec.Commands()
	if len(cmds) != 2 {
		t.Fatalf("recorded %d commands, want 2", len(cmds))
	}

	natural := cmds[0].(surface.DrawImageCommand)
	if *natural.Options.DstRect != image.Rect(10, 20, 26, 28) {
		t.Errorf("natural DstRect = %v", *natural.Options.DstRect)
	}
	if natural.Options.Filter != surface.FilterNearest {
		t.Errorf("natural size should use nearest filtering")
	}

	scaled := cmds[1].(surface.DrawImageCommand)
	if *scaled.Options.DstRect != image.Rect(2, 16, 34, 32) {
		t.Errorf("scaled DstRect = %v", *scaled.Options.DstRect)
	}
	if scaled.Options.Filter != surface.FilterBilinear {
		t.Errorf("scaled image should use bilinear filtering")
	}
	if *scaled.Options.SrcRect != img.Bounds() {
		t.Errorf("SrcRect = %v", *scaled.Options.SrcRect)
	}
}

func TestRenderer_UnknownValueLogged(t *testing.T) {
	var buf bytes.Buffer
	shape.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { shape.SetLogger(nil) })

	r, rec := newRecording(t)
	if r.Draw("not a shape") {
		t.Error("Draw(string) returned true")
	}
	if r.Draw(&shape.Arc{}) {
		t.Error("Draw(*Arc) returned true")
	}
	if rec.Len() != 0 {
		t.Errorf("recorded %d commands", rec.Len())
	}
	if out := buf.String(); !strings.Contains(out, "level=WARN") || !strings.Contains(out, "type=string") {
		t.Errorf("log output = %q", out)
	}
}

func TestRenderer_DrawAllOrder(t *testing.T) {
	r, rec := newRecording(t)
	r.DrawAll(
		shape.NewRect(0, 0, 10, 10),
		shape.NewCircle(shape.Pt(5, 5), 2),
	)
	want := []surface.CommandType{surface.CmdFill, surface.CmdFill, surface.CmdStroke}
	if got := commandTypes(rec); !sameTypes(got, want) {
		t.Errorf("commands = %v, want %v", got, want)
	}
}

func TestRenderer_DrawLine(t *testing.T) {
	r, rec := newRecording(t)
	l := &Line{Segment: shape.Seg(shape.Pt(0, 0), shape.Pt(500, 500)), Style: shape.NewStyle(shape.WithColor(shape.Hex("#0000ff")))}
	if !r.Draw(l) {
		t.Fatal("Draw(*Line) returned false")
	}
	stroke := rec.Commands()[0].(surface.StrokeCommand)
	if stroke.Style.Color != shape.Hex("#0000ff") {
		t.Errorf("line color = %v", stroke.Style.Color)
	}

	// Lines move like segments.
	l.Reflect(shape.VerticalLine(250))
	if l.Start != shape.Pt(500, 0) || l.End != shape.Pt(0, 500) {
		t.Errorf("reflected line = %v", l.Segment)
	}
}
