// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestRecorderCommands(t *testing.T) {
	rec := NewRecorder(40, 30)
	if rec.Width() != 40 || rec.Height() != 30 {
		t.Fatalf("size = %dx%d", rec.Width(), rec.Height())
	}

	path := NewPath()
	path.Rectangle(1, 1, 5, 5)

	rec.Clear(color.White)
	rec.Fill(path, FillStyle{Color: red})
	rec.Stroke(path, DefaultStrokeStyle())
	rec.DrawImage(image.NewRGBA(image.Rect(0, 0, 2, 2)), Pt(3, 4), nil)
	rec.Fill(nil, DefaultFillStyle())
	rec.Fill(NewPath(), DefaultFillStyle())

	want := []CommandType{CmdClear, CmdFill, CmdStroke, CmdDrawImage}
	cmds := rec.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("recorded %d commands, want %d", len(cmds), len(want))
	}
	for i, cmd := range cmds {
		if cmd.Type() != want[i] {
			t.Errorf("command %d = %v, want %v", i, cmd.Type(), want[i])
		}
	}

	// Recorded paths are private copies.
	path.LineTo(50, 50)
	if got := len(cmds[1].(FillCommand).Path.Verbs()); got != 5 {
		t.Errorf("recorded path has %d verbs after caller mutation, want 5", got)
	}

	di := cmds[3].(DrawImageCommand)
	if di.At != Pt(3, 4) || di.Options.Alpha != 1 {
		t.Errorf("DrawImage command = %+v", di)
	}
}

func TestRecorderPlaybackMatchesDirectDrawing(t *testing.T) {
	draw := func(s Surface) {
		s.Clear(color.White)
		p := NewPath()
		p.Circle(20, 15, 8)
		s.Fill(p, FillStyle{Color: red})
		l := NewPath()
		l.MoveTo(0, 0)
		l.LineTo(40, 30)
		s.Stroke(l, DefaultStrokeStyle().WithWidth(3))
	}

	direct := NewImageSurface(40, 30)
	defer direct.Close()
	draw(direct)

	rec := NewRecorder(40, 30)
	draw(rec)

	if !bytes.Equal(direct.Snapshot().Pix, rec.Snapshot().Pix) {
		t.Error("recorder snapshot differs from direct rendering")
	}
}

func TestRecorderClearDropsHiddenCommands(t *testing.T) {
	rec := NewRecorder(40, 30)
	frame := func(x float64) {
		rec.Clear(color.Black)
		p := NewPath()
		p.Rectangle(x, 2, 6, 6)
		rec.Fill(p, FillStyle{Color: red})
		rec.Stroke(p, DefaultStrokeStyle())
	}

	frame(0)
	want := rec.Len()
	for i := 1; i < 50; i++ {
		frame(float64(i % 30))
		if rec.Len() != want {
			t.Fatalf("frame %d: Len() = %d, want %d", i, rec.Len(), want)
		}
	}
	if cmds := rec.Commands(); cmds[0].Type() != CmdClear {
		t.Errorf("first command = %v, want Clear", cmds[0].Type())
	}

	// Playback of the last frame alone matches drawing it directly.
	direct := NewImageSurface(40, 30)
	defer direct.Close()
	direct.Clear(color.Black)
	p := NewPath()
	p.Rectangle(float64(49%30), 2, 6, 6)
	direct.Fill(p, FillStyle{Color: red})
	direct.Stroke(p, DefaultStrokeStyle())
	if !bytes.Equal(direct.Snapshot().Pix, rec.Snapshot().Pix) {
		t.Error("snapshot after repeated frames differs from the last frame")
	}
}

func TestRecorderResetAndClose(t *testing.T) {
	rec := NewRecorder(0, 0)
	if rec.Width() != 1 || rec.Height() != 1 {
		t.Errorf("size = %dx%d, want 1x1", rec.Width(), rec.Height())
	}
	rec.Clear(color.Black)
	rec.Reset()
	if rec.Len() != 0 {
		t.Errorf("Len() after Reset = %d", rec.Len())
	}
	rec.Clear(color.Black)
	if rec.Len() != 1 {
		t.Errorf("Len() after recording again = %d", rec.Len())
	}

	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}
	rec.Clear(color.Black)
	if rec.Len() != 0 || rec.Snapshot() != nil {
		t.Error("closed recorder kept recording")
	}
	if CommandType(200).String() != "Unknown" || CmdStroke.String() != "Stroke" {
		t.Error("CommandType.String mismatch")
	}
}
