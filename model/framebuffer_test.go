package model

import "testing"

func TestFramebufferPoint(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	if len(fb.Pixels) != 12 {
		t.Fatalf("len(Pixels) = %d, want 12", len(fb.Pixels))
	}

	fb.SetCurrentColor(0x81C14B)
	fb.Point(3, 2)
	if got := fb.Pixels[2*4+3]; got != 0x81C14B {
		t.Errorf("pixel (3,2) = %#06x, want 0x81c14b", got)
	}
	if got := fb.At(3, 2); got != 0x81C14B {
		t.Errorf("At(3,2) = %#06x, want 0x81c14b", got)
	}
}

func TestFramebufferPointOutOfBounds(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.SetCurrentColor(0xFFFFFF)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}} {
		fb.Point(p[0], p[1])
	}
	for i, px := range fb.Pixels {
		if px != 0 {
			t.Errorf("pixel %d = %#06x, want untouched", i, px)
		}
	}
	if got := fb.At(9, 9); got != 0 {
		t.Errorf("At out of bounds = %#06x, want 0", got)
	}
}

func TestFramebufferColorMasked(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	fb.SetCurrentColor(0xFF204E4A)
	if got := fb.CurrentColor(); got != 0x204E4A {
		t.Errorf("CurrentColor() = %#x, want 0x204e4a", got)
	}
}

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(3, 3)
	fb.SetCurrentColor(0x123456)
	fb.Clear()
	for i, px := range fb.Pixels {
		if px != 0x123456 {
			t.Fatalf("pixel %d = %#06x after Clear", i, px)
		}
	}
}
