// Package scene holds the objects of a drawing and drives them over time.
//
// A [Scene] is an ordered list of named shapes plus the viewport they live
// in. Scenes are usually described in YAML and read with [Load]:
//
//	width: 500
//	height: 500
//	background: "#f0f0f0"
//	objects:
//	  - name: box
//	    type: rect
//	    x: 10
//	    y: 10
//	    width: 100
//	    height: 100
//	    color: "#ff751a"
//	    fill: limegreen
//	    outline: 20
//
// Every tick, [Run] polls an [InputSource] for a shape.Input snapshot and
// hands it to a TickFunc, which mutates the scene through the shape API and
// redraws it. A [HitIndex] answers "what is under the pointer" for a tick.
//
// Nothing here is safe for concurrent use; a scene belongs to the goroutine
// running its tick loop.
package scene
