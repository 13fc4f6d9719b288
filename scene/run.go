package scene

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/shape"
)

// ErrInvalidInterval is returned by Run for a non-positive tick interval.
var ErrInvalidInterval = errors.New("scene: tick interval must be positive")

// InputSource supplies one input snapshot per tick. Poll returns false
// once the source is exhausted, which ends the loop.
type InputSource interface {
	Poll() (shape.Input, bool)
}

// TickFunc advances the scene by one tick. Returning an error stops Run.
type TickFunc func(tick int, in shape.Input) error

// Run calls fn once per interval with the next input from src until src is
// exhausted, fn fails or ctx is done. It returns nil when src runs out.
func Run(ctx context.Context, interval time.Duration, src InputSource, fn TickFunc) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for tick := 0; ; tick++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		in, ok := src.Poll()
		if !ok {
			shape.Logger().Debug("scene: input exhausted", "ticks", tick)
			return nil
		}
		if err := fn(tick, in); err != nil {
			return fmt.Errorf("scene: tick %d: %w", tick, err)
		}
		shape.Logger().Debug("scene: tick", "n", tick, "pointer", in.Pointer, "clicked", in.Clicked)
	}
}

// Script is an InputSource that replays a fixed list of snapshots.
type Script struct {
	frames []shape.Input
	next   int
}

// NewScript creates a script replaying frames in order.
func NewScript(frames ...shape.Input) *Script {
	return &Script{frames: frames}
}

// Poll returns the next frame.
func (s *Script) Poll() (shape.Input, bool) {
	if s.next >= len(s.frames) {
		return shape.Input{}, false
	}
	in := s.frames[s.next].Clone()
	s.next++
	return in, true
}

// Remaining returns the number of frames not yet polled.
func (s *Script) Remaining() int {
	return len(s.frames) - s.next
}
