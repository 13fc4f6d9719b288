package shape

// Style holds the paint parameters a renderer reads from a shape.
// The kernel itself never looks at it.
type Style struct {
	// Color is the stroke color, and the fill color of shapes that are
	// painted as a single solid (polygons, circles, paths). For a Rect it
	// is the border color.
	Color RGBA

	// Fill is the interior color of an outlined Rect. Only meaningful when
	// HasFill is set; otherwise the renderer uses its background.
	Fill    RGBA
	HasFill bool

	// Outline is the border thickness of a Rect. Zero paints the whole
	// rect with Color.
	Outline float64
}

// Option configures the Style of a shape during creation.
//
// Example:
//
//	r := shape.NewRect(10, 10, 100, 100,
//	    shape.WithColor(shape.Hex("#ff751a")),
//	    shape.WithFill(shape.Hex("#32CD32")),
//	    shape.WithOutline(20))
type Option func(*Style)

// defaultStyle returns the style used when no option overrides it.
func defaultStyle() Style {
	return Style{Color: Black}
}

// NewStyle returns the default style with opts applied, for values that
// carry a Style but have no constructor of their own.
func NewStyle(opts ...Option) Style {
	return newStyle(opts)
}

func newStyle(opts []Option) Style {
	s := defaultStyle()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithColor sets the stroke/solid color.
func WithColor(c RGBA) Option {
	return func(s *Style) {
		s.Color = c
	}
}

// WithFill sets the interior color of an outlined rectangle.
func WithFill(c RGBA) Option {
	return func(s *Style) {
		s.Fill = c
		s.HasFill = true
	}
}

// WithOutline sets the border thickness of a rectangle. Negative values
// are treated as zero.
func WithOutline(width float64) Option {
	return func(s *Style) {
		s.Outline = max(width, 0)
	}
}
