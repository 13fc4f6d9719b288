package main

import (
	"github.com/gogpu/shape"
	"github.com/gogpu/shape/scene"
)

// demoScript builds a replayable input sequence: the pointer sweeps
// diagonally across the viewport while keys and clicks are scripted at
// fixed ticks.
func demoScript(frames int, width, height float64) *scene.Script {
	in := make([]shape.Input, frames)
	for i := range in {
		t := float64(i) / float64(max(frames-1, 1))
		in[i] = shape.NewInput(shape.Pt(t*width, t*height))

		switch phase := i * 8 / max(frames, 1); phase {
		case 1:
			in[i].Keys.Set("d", true)
		case 2:
			in[i].Keys.Set("s", true)
		case 5:
			in[i].Keys.Set("a", true)
		case 6:
			in[i].Keys.Set("W", true)
		}
		if i%15 == 7 {
			in[i].Clicked = true
		}
		if i == frames/2 {
			in[i].Keys.Set("c", true)
		}
	}
	return scene.NewScript(in...)
}
