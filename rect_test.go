package shape

import (
	"math"
	"slices"
	"testing"
)

func TestRect_CornersRingOrder(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	want := [4]Point{Pt(10, 20), Pt(40, 20), Pt(40, 60), Pt(10, 60)}
	if got := r.Corners(); got != want {
		t.Errorf("Corners() = %v, want %v", got, want)
	}
	if got := r.Center(); got != Pt(25, 40) {
		t.Errorf("Center() = %v, want (25, 40)", got)
	}
	p := r.Polygon()
	if !slices.Equal(p.Vertices, want[:]) {
		t.Errorf("Polygon().Vertices = %v", p.Vertices)
	}
}

func TestRect_SetScaleToWidth(t *testing.T) {
	r := NewRect(0, 0, 100, 100)
	if !r.SetScaleToWidth(200) {
		t.Fatal("SetScaleToWidth returned false")
	}
	if r.X != -50 || r.Y != -50 || r.Width != 200 || r.Height != 200 {
		t.Errorf("after SetScaleToWidth(200): origin (%v, %v) size (%v, %v), want (-50, -50) (200, 200)",
			r.X, r.Y, r.Width, r.Height)
	}
	if r.Center() != Pt(50, 50) {
		t.Errorf("center moved to %v", r.Center())
	}
}

func TestRect_SetScaleToHeight(t *testing.T) {
	r := NewRect(10, 10, 40, 20)
	if !r.SetScaleToHeight(10) {
		t.Fatal("SetScaleToHeight returned false")
	}
	if r.Width != 20 || r.Height != 10 || r.Center() != Pt(30, 20) {
		t.Errorf("after SetScaleToHeight(10): %+v", *r)
	}
}

func TestRect_SetScaleZeroExtent(t *testing.T) {
	r := NewRect(5, 5, 0, 0)
	if r.SetScaleToWidth(100) {
		t.Error("SetScaleToWidth on zero width returned true")
	}
	if r.SetScaleToHeight(100) {
		t.Error("SetScaleToHeight on zero height returned true")
	}
	if r.X != 5 || r.Y != 5 || r.Width != 0 || r.Height != 0 {
		t.Errorf("zero-extent rect changed: %+v", *r)
	}
}

func TestRect_ScaleMatchesCorners(t *testing.T) {
	tests := []struct {
		name   string
		pivot  Point
		factor float64
	}{
		{"grow about origin", Pt(0, 0), 2},
		{"shrink about outside point", Pt(-30, 70), 0.25},
		{"flip through center", Pt(35, 45), -1},
		{"collapse", Pt(1, 2), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRect(20, 30, 30, 30)
			o, f := r.Origin(), r.Far()
			o.Scale(tt.pivot, tt.factor)
			f.Scale(tt.pivot, tt.factor)

			r.Scale(tt.pivot, tt.factor)
			if !r.Origin().Approx(o, 1e-9) || !r.Far().Approx(f, 1e-9) {
				t.Errorf("Scale corners = %v %v, want %v %v", r.Origin(), r.Far(), o, f)
			}
		})
	}
}

func TestRect_NegativeSize(t *testing.T) {
	r := NewRect(10, 10, -10, -10)
	b := r.Bounds()
	if b.Min != Pt(0, 0) || b.Max != Pt(10, 10) {
		t.Errorf("Bounds() = %+v", b)
	}
	if !r.Contains(Pt(5, 5)) {
		t.Error("flipped rect should contain its interior")
	}
	if r.Contains(Pt(15, 5)) {
		t.Error("flipped rect should not contain an outside point")
	}
}

func TestRect_ContainsAndHovered(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if !r.Contains(Pt(5, 5)) {
		t.Error("Contains((5, 5)) = false")
	}
	if r.Contains(Pt(15, 5)) {
		t.Error("Contains((15, 5)) = true")
	}
	_ = r.Contains(Pt(5, 0)) // border: any answer, no panic

	if !r.Hovered(NewInput(Pt(2, 8))) {
		t.Error("pointer inside rect not reported as hovered")
	}
	if r.Hovered(NewInput(Pt(-1, 8))) {
		t.Error("pointer outside rect reported as hovered")
	}
}

func TestRect_ReflectInvolution(t *testing.T) {
	for _, l := range []Line{VerticalLine(250), HorizontalLine(-3), NewLine(2, 1)} {
		r := NewRect(10, 20, 30, 40)
		r.Reflect(l)
		r.Reflect(l)
		if math.Abs(r.X-10) > 1e-9 || math.Abs(r.Y-20) > 1e-9 ||
			math.Abs(r.Width-30) > 1e-9 || math.Abs(r.Height-40) > 1e-9 {
			t.Errorf("reflect twice across %v = %+v", l, *r)
		}
	}
}

func TestRect_ReflectVertical(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	r.Reflect(VerticalLine(0))
	b := r.Bounds()
	if b.Min != Pt(-40, 20) || b.Max != Pt(-10, 60) {
		t.Errorf("mirrored bounds = %+v", b)
	}
}

func TestRect_Rotate(t *testing.T) {
	r := NewRect(0, 0, 10, 20)
	r.Rotate(Pt(0, 0), math.Pi/2)
	b := r.Bounds()
	if !b.Min.Approx(Pt(-20, 0), 1e-9) || !b.Max.Approx(Pt(0, 10), 1e-9) {
		t.Errorf("rotated bounds = %+v", b)
	}
}

func TestRect_MoveHelpers(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	r.Drag(Pt(5, 5), Pt(8, 1))
	if r.X != 3 || r.Y != -4 {
		t.Errorf("Drag: origin = (%v, %v), want (3, -4)", r.X, r.Y)
	}
	r.MoveTo(100, 200)
	r.Resize(7, 9)
	if *r != (Rect{X: 100, Y: 200, Width: 7, Height: 9, Style: defaultStyle()}) {
		t.Errorf("MoveTo/Resize: %+v", *r)
	}
	r.SetCorners(Pt(5, 5), Pt(1, 2))
	if r.X != 5 || r.Y != 5 || r.Width != -4 || r.Height != -3 {
		t.Errorf("SetCorners: %+v", *r)
	}
}

func TestRect_Touching(t *testing.T) {
	reg := NewRegistry()
	outer := reg.NewRect(0, 0, 100, 100)
	inner := reg.NewRect(10, 10, 20, 20)
	crossing := reg.NewRect(90, 90, 20, 20)
	flush := reg.NewRect(0, 0, 100, 50)
	outside := reg.NewRect(200, 200, 5, 5)
	flipped := reg.NewRect(60, 60, -10, -10)

	got := outer.Touching(reg)
	want := []*Rect{outer, inner, flush, flipped}
	if !slices.Equal(got, want) {
		t.Errorf("Touching() returned %d rects, want %d in insertion order", len(got), len(want))
	}
	for _, r := range got {
		if r == crossing || r == outside {
			t.Errorf("Touching() included %+v", *r)
		}
	}

	if got := inner.Touching(reg); !slices.Equal(got, []*Rect{inner}) {
		t.Errorf("inner.Touching() = %v, want only itself", got)
	}

	// The registry sees current geometry.
	outside.MoveTo(50, 50)
	if got := outer.Touching(reg); !slices.Contains(got, outside) {
		t.Error("moved rect not reported after MoveTo")
	}
}

func TestRect_EdgeProximity(t *testing.T) {
	const w, h = 800, 600
	tests := []struct {
		name string
		r    *Rect
		want Edge
	}{
		{"inside", NewRect(10, 10, 100, 100), EdgeNone},
		{"touching left", NewRect(0, 10, 100, 100), EdgeLeft},
		{"past top", NewRect(10, -5, 100, 100), EdgeTop},
		{"touching right", NewRect(700, 10, 100, 100), EdgeRight},
		{"past bottom", NewRect(10, 550, 100, 100), EdgeBottom},
		{"left wins over top", NewRect(-1, -1, 10, 10), EdgeLeft},
		{"top wins over bottom", NewRect(10, -1, 10, 700), EdgeTop},
		{"right wins over bottom", NewRect(750, 550, 100, 100), EdgeRight},
		{"flipped near left", NewRect(5, 10, -10, 10), EdgeLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.EdgeProximity(w, h); got != tt.want {
				t.Errorf("EdgeProximity() = %v, want %v", got, tt.want)
			}
			if got := tt.r.OnEdge(w, h); got != (tt.want != EdgeNone) {
				t.Errorf("OnEdge() = %v", got)
			}
		})
	}
}

func TestRect_CloneNotShared(t *testing.T) {
	r := NewRect(1, 2, 3, 4, WithOutline(2))
	c := r.Clone()
	c.Translate(10, 10)
	if r.X != 1 || r.Y != 2 {
		t.Errorf("original moved: %+v", *r)
	}
	if c.Outline != 2 {
		t.Errorf("clone lost style: %+v", c.Style)
	}
}
