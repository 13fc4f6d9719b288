package shape

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record and reports every level as disabled, so
// callers never build attributes while logging is off.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var silent = slog.New(discard{})

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes the log output of shape, surface, render and scene to
// l. Nothing is logged until it is called; nil switches logging off again.
//
// Records emitted:
//   - Debug "shape: registry grew" when a Registry gains rects
//   - Debug "scene: hit index built", "scene: tick" and
//     "scene: input exhausted" from HitIndex and Run
//   - Info "scene: loaded" once Load has built a scene
//   - Warn "render: skipping unsupported value" from Renderer.Draw
//
// A demo or test that wants to see per-tick state sets a debug handler:
//
//	shape.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger. It is safe to call from any
// goroutine, including Run's tick callbacks.
func Logger() *slog.Logger {
	return current.Load()
}
