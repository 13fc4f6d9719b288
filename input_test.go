package shape

import "testing"

func TestKeyState(t *testing.T) {
	in := NewInput(Pt(3, 4))
	in.Keys.Set("W", true)
	if !in.Pressed("w") || !in.Pressed("W") {
		t.Error("key lookup should ignore case")
	}
	if in.Pressed("a") {
		t.Error("unknown key reported as pressed")
	}
	in.Keys.Set("w", false)
	if in.Pressed("W") {
		t.Error("released key still pressed")
	}
}

func TestKeyState_NilDown(t *testing.T) {
	var k KeyState
	if k.Down("c") {
		t.Error("nil KeyState reported a key down")
	}
	var in Input
	if in.Pressed("c") {
		t.Error("zero Input reported a key down")
	}
}

func TestInput_Clone(t *testing.T) {
	in := NewInput(Pt(1, 1))
	in.Clicked = true
	in.Keys.Set("d", true)

	c := in.Clone()
	c.Keys.Set("a", true)
	c.Keys.Set("d", false)
	if !in.Pressed("d") || in.Pressed("a") {
		t.Error("Clone shares key state with the original")
	}
	if c.Pointer != in.Pointer || !c.Clicked {
		t.Errorf("Clone lost fields: %+v", c)
	}

	var zero Input
	z := zero.Clone()
	z.Keys.Set("s", true) // must not panic
	if !z.Pressed("s") {
		t.Error("clone of zero input cannot record keys")
	}
}
