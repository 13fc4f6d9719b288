// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"slices"
)

// CommandType identifies the type of a recorded command.
type CommandType uint8

const (
	CmdClear     CommandType = iota // Clear the surface
	CmdFill                         // Fill a path
	CmdStroke                       // Stroke a path
	CmdDrawImage                    // Draw an image
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdClear:     "Clear",
	CmdFill:      "Fill",
	CmdStroke:    "Stroke",
	CmdDrawImage: "DrawImage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one recorded Surface call.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ClearCommand records a Clear call.
type ClearCommand struct {
	Color color.Color
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// FillCommand records a Fill call. Path is a private copy.
type FillCommand struct {
	Path  *Path
	Style FillStyle
}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// StrokeCommand records a Stroke call. Path is a private copy.
type StrokeCommand struct {
	Path  *Path
	Style StrokeStyle
}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// DrawImageCommand records a DrawImage call. Options holds the resolved
// options, defaults included.
type DrawImageCommand struct {
	Image   image.Image
	At      Point
	Options DrawImageOptions
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// Recorder is a Surface that keeps every call as a typed Command instead
// of drawing. Recorded commands can be inspected or replayed onto another
// surface with Playback.
//
// Example:
//
//	rec := surface.NewRecorder(800, 600)
//	renderer.Draw(shape)
//	for _, cmd := range rec.Commands() {
//	    fmt.Println(cmd.Type())
//	}
type Recorder struct {
	width    int
	height   int
	commands []Command
	closed   bool
}

// NewRecorder creates a recorder reporting the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: max(width, 1), height: max(height, 1)}
}

// Width returns the surface width.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the surface height.
func (r *Recorder) Height() int {
	return r.height
}

// Clear records a Clear call and discards the commands recorded
// before it.
func (r *Recorder) Clear(c color.Color) {
	if r.closed {
		return
	}
	r.Reset()
	r.record(ClearCommand{Color: c})
}

// Fill records a Fill call.
func (r *Recorder) Fill(path *Path, style FillStyle) {
	if path == nil || path.IsEmpty() {
		return
	}
	r.record(FillCommand{Path: path.Clone(), Style: style})
}

// Stroke records a Stroke call.
func (r *Recorder) Stroke(path *Path, style StrokeStyle) {
	if path == nil || path.IsEmpty() {
		return
	}
	r.record(StrokeCommand{Path: path.Clone(), Style: style})
}

// DrawImage records a DrawImage call.
func (r *Recorder) DrawImage(img image.Image, at Point, opts *DrawImageOptions) {
	if img == nil {
		return
	}
	if opts == nil {
		opts = DefaultDrawImageOptions()
	}
	o := *opts
	if o.SrcRect != nil {
		sr := *o.SrcRect
		o.SrcRect = &sr
	}
	if o.DstRect != nil {
		dr := *o.DstRect
		o.DstRect = &dr
	}
	r.record(DrawImageCommand{Image: img, At: at, Options: o})
}

func (r *Recorder) record(cmd Command) {
	if r.closed {
		return
	}
	r.commands = append(r.commands, cmd)
}

// Flush is a no-op.
func (r *Recorder) Flush() error {
	return nil
}

// Snapshot replays the recorded commands onto a fresh ImageSurface and
// returns its contents.
func (r *Recorder) Snapshot() *image.RGBA {
	if r.closed {
		return nil
	}
	s := NewImageSurface(r.width, r.height)
	defer s.Close()
	r.Playback(s)
	return s.Snapshot()
}

// Close discards the recorded commands.
func (r *Recorder) Close() error {
	r.closed = true
	r.commands = nil
	return nil
}

// Commands returns the recorded commands in call order.
func (r *Recorder) Commands() []Command {
	return slices.Clone(r.commands)
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset discards the recorded commands and keeps recording.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Playback replays the recorded commands onto dst in order.
func (r *Recorder) Playback(dst Surface) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case ClearCommand:
			dst.Clear(c.Color)
		case FillCommand:
			dst.Fill(c.Path, c.Style)
		case StrokeCommand:
			dst.Stroke(c.Path, c.Style)
		case DrawImageCommand:
			opts := c.Options
			dst.DrawImage(c.Image, c.At, &opts)
		}
	}
}

// Capabilities returns the surface capabilities.
func (r *Recorder) Capabilities() Capabilities {
	return Capabilities{SupportsScaledImages: true}
}

var (
	_ Surface        = (*Recorder)(nil)
	_ CapableSurface = (*Recorder)(nil)
)
