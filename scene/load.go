package scene

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG assets
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/shape"
	"github.com/gogpu/shape/render"
)

var (
	// ErrUnknownType is returned for an object type Load does not know.
	ErrUnknownType = errors.New("scene: unknown object type")

	// ErrNoAssets is returned when an image object is loaded without an
	// asset filesystem.
	ErrNoAssets = errors.New("scene: no asset filesystem for image")

	// ErrMissingField is returned when a required field is absent.
	ErrMissingField = errors.New("scene: missing field")
)

// Config is the YAML form of a scene.
type Config struct {
	Width      float64        `yaml:"width"`
	Height     float64        `yaml:"height"`
	Background string         `yaml:"background"`
	Objects    []ObjectConfig `yaml:"objects"`
}

// ObjectConfig describes one object. Which fields are read depends on
// Type: rect, polygon, circle, ellipse, path, segment or image. Segments
// load as *render.Line so they keep their color.
type ObjectConfig struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`

	Color   string  `yaml:"color"`
	Fill    string  `yaml:"fill"`
	Outline float64 `yaml:"outline"`

	// rect, image
	X      float64  `yaml:"x"`
	Y      float64  `yaml:"y"`
	Width  *float64 `yaml:"width"`
	Height *float64 `yaml:"height"`

	// polygon
	Points [][]float64 `yaml:"points"`

	// circle, ellipse
	Center   []float64 `yaml:"center"`
	Radius   float64   `yaml:"radius"`
	Radii    []float64 `yaml:"radii"`
	Rotation float64   `yaml:"rotation"`
	Start    float64   `yaml:"start"`
	End      *float64  `yaml:"end"`

	// path
	Closed   *bool           `yaml:"closed"`
	Elements []ElementConfig `yaml:"elements"`

	// segment
	From []float64 `yaml:"from"`
	To   []float64 `yaml:"to"`

	// image
	Src string `yaml:"src"`
}

// ElementConfig is one path element. Exactly one field is set.
type ElementConfig struct {
	Point   []float64      `yaml:"point"`
	Arc     *ArcConfig     `yaml:"arc"`
	Ellipse *EllipseConfig `yaml:"ellipse"`
}

// ArcConfig describes a tangent arc element.
type ArcConfig struct {
	From   []float64 `yaml:"from"`
	To     []float64 `yaml:"to"`
	Radius float64   `yaml:"radius"`
}

// EllipseConfig describes an elliptical arc element.
type EllipseConfig struct {
	Center   []float64 `yaml:"center"`
	Radii    []float64 `yaml:"radii"`
	Rotation float64   `yaml:"rotation"`
	Start    float64   `yaml:"start"`
	End      *float64  `yaml:"end"`
}

type loadOptions struct {
	assets fs.FS
	cache  *AssetCache
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithAssets sets the filesystem image objects are read from.
func WithAssets(fsys fs.FS) LoadOption {
	return func(o *loadOptions) {
		o.assets = fsys
	}
}

// WithAssetCache shares decoded images between loads. Without it each
// load uses a cache of its own.
func WithAssetCache(c *AssetCache) LoadOption {
	return func(o *loadOptions) {
		o.cache = c
	}
}

// Load reads a YAML scene description from r.
func Load(r io.Reader, opts ...LoadOption) (*Scene, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	s, err := cfg.Build(opts...)
	if err != nil {
		return nil, err
	}
	shape.Logger().Info("scene: loaded", "objects", s.Len(), "width", s.Width, "height", s.Height)
	return s, nil
}

// Build creates the scene described by c.
func (c *Config) Build(opts ...LoadOption) (*Scene, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.cache == nil {
		o.cache = NewAssetCache(0)
	}

	bg := shape.White
	if c.Background != "" {
		var err error
		if bg, err = shape.ParseColor(c.Background); err != nil {
			return nil, fmt.Errorf("scene: background: %w", err)
		}
	}

	s := New(c.Width, c.Height, bg)
	for i, oc := range c.Objects {
		v, err := oc.build(&o)
		if err != nil {
			return nil, fmt.Errorf("scene: object %s: %w", oc.label(i), err)
		}
		if _, err := s.Add(oc.Name, v); err != nil {
			return nil, fmt.Errorf("scene: object %s: %w", oc.label(i), err)
		}
	}
	return s, nil
}

func (oc *ObjectConfig) label(i int) string {
	if oc.Name != "" {
		return fmt.Sprintf("%q", oc.Name)
	}
	return fmt.Sprintf("#%d", i)
}

func (oc *ObjectConfig) options() ([]shape.Option, error) {
	var opts []shape.Option
	if oc.Color != "" {
		c, err := shape.ParseColor(oc.Color)
		if err != nil {
			return nil, fmt.Errorf("color: %w", err)
		}
		opts = append(opts, shape.WithColor(c))
	}
	if oc.Fill != "" {
		c, err := shape.ParseColor(oc.Fill)
		if err != nil {
			return nil, fmt.Errorf("fill: %w", err)
		}
		opts = append(opts, shape.WithFill(c))
	}
	if oc.Outline != 0 {
		opts = append(opts, shape.WithOutline(oc.Outline))
	}
	return opts, nil
}

func (oc *ObjectConfig) build(o *loadOptions) (any, error) {
	opts, err := oc.options()
	if err != nil {
		return nil, err
	}

	switch oc.Type {
	case "rect":
		if oc.Width == nil || oc.Height == nil {
			return nil, fmt.Errorf("%w: width and height", ErrMissingField)
		}
		return shape.NewRect(oc.X, oc.Y, *oc.Width, *oc.Height, opts...), nil

	case "polygon":
		return shape.NewPolygonFromCoords(oc.Points, opts...)

	case "circle":
		center, err := shape.PointFromSlice(oc.Center)
		if err != nil {
			return nil, fmt.Errorf("center: %w", err)
		}
		return shape.NewCircle(center, oc.Radius, opts...), nil

	case "ellipse":
		return buildEllipse(oc.Center, oc.Radii, oc.Rotation, oc.Start, oc.End, opts...)

	case "path":
		elems := make([]shape.PathElement, 0, len(oc.Elements))
		for i, ec := range oc.Elements {
			el, err := ec.build()
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			elems = append(elems, el)
		}
		p, err := shape.NewPath(elems, opts...)
		if err != nil {
			return nil, err
		}
		if oc.Closed != nil {
			p.Closed = *oc.Closed
		}
		return p, nil

	case "segment":
		from, err := shape.PointFromSlice(oc.From)
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
		to, err := shape.PointFromSlice(oc.To)
		if err != nil {
			return nil, fmt.Errorf("to: %w", err)
		}
		return &render.Line{Segment: shape.Seg(from, to), Style: shape.NewStyle(opts...)}, nil

	case "image":
		img, err := o.image(oc.Src)
		if err != nil {
			return nil, err
		}
		ib := shape.NewImageBox(img, oc.X, oc.Y)
		if oc.Width != nil {
			ib.Box.Width = *oc.Width
		}
		if oc.Height != nil {
			ib.Box.Height = *oc.Height
		}
		return ib, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, oc.Type)
}

func (o *loadOptions) image(src string) (image.Image, error) {
	if src == "" {
		return nil, fmt.Errorf("%w: src", ErrMissingField)
	}
	if o.assets == nil {
		return nil, ErrNoAssets
	}
	if img, ok := o.cache.Get(src); ok {
		return img, nil
	}
	f, err := o.assets.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}
	o.cache.Set(src, img)
	return img, nil
}

func (ec *ElementConfig) build() (shape.PathElement, error) {
	switch {
	case ec.Point != nil:
		p, err := shape.PointFromSlice(ec.Point)
		if err != nil {
			return nil, err
		}
		return &p, nil
	case ec.Arc != nil:
		from, err := shape.PointFromSlice(ec.Arc.From)
		if err != nil {
			return nil, fmt.Errorf("arc from: %w", err)
		}
		to, err := shape.PointFromSlice(ec.Arc.To)
		if err != nil {
			return nil, fmt.Errorf("arc to: %w", err)
		}
		return &shape.Arc{From: from, To: to, Radius: ec.Arc.Radius}, nil
	case ec.Ellipse != nil:
		return buildEllipse(ec.Ellipse.Center, ec.Ellipse.Radii, ec.Ellipse.Rotation, ec.Ellipse.Start, ec.Ellipse.End)
	}
	return nil, fmt.Errorf("%w: point, arc or ellipse", ErrMissingField)
}

func buildEllipse(center, radii []float64, rotation, start float64, end *float64, opts ...shape.Option) (*shape.Ellipse, error) {
	c, err := shape.PointFromSlice(center)
	if err != nil {
		return nil, fmt.Errorf("center: %w", err)
	}
	r, err := shape.PointFromSlice(radii)
	if err != nil {
		return nil, fmt.Errorf("radii: %w", err)
	}
	e := shape.NewEllipse(c, r.X, r.Y, opts...)
	e.Rotation = rotation
	e.StartAngle = start
	if end != nil {
		e.EndAngle = *end
	}
	return e, nil
}
