package render

import (
	"image/color"
	"testing"
)

func TestPackedToRGBA(t *testing.T) {
	fb := []uint32{0xFF4444, 0x000000, 0x87CEEB}
	got := PackedToRGBA(fb, nil)

	want := []byte{
		0xFF, 0x44, 0x44, 0xFF,
		0x00, 0x00, 0x00, 0xFF,
		0x87, 0xCE, 0xEB, 0xFF,
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d bytes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Byte %d: expected %02X, got %02X", i, want[i], got[i])
		}
	}
}

func TestPackedToRGBAReusesBuffer(t *testing.T) {
	buf := make([]byte, 64)
	got := PackedToRGBA([]uint32{0x123456}, buf)
	if len(got) != 4 {
		t.Fatalf("Expected 4 bytes, got %d", len(got))
	}
	if &got[0] != &buf[0] {
		t.Error("Expected the destination buffer to be reused")
	}
}

func TestColor(t *testing.T) {
	if got := Color(0xFFD700); got != (color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}) {
		t.Errorf("Unexpected color %v", got)
	}
}

func TestDigitKey(t *testing.T) {
	if k, ok := DigitKey(1); !ok || k != KeyDigit1 {
		t.Errorf("Expected KeyDigit1, got %v %v", k, ok)
	}
	if k, ok := DigitKey(9); !ok || k != KeyDigit9 {
		t.Errorf("Expected KeyDigit9, got %v %v", k, ok)
	}
	for _, n := range []int{0, 10, -1} {
		if _, ok := DigitKey(n); ok {
			t.Errorf("Expected no key for %d", n)
		}
	}
}
