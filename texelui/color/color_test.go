package color

import (
	"math"
	"testing"
)

func TestShadeClamps(t *testing.T) {
	c := Color{R: 10, G: 200, B: 250, A: 7}
	got := c.Darken(50)
	if got != (Color{R: 0, G: 150, B: 200, A: 7}) {
		t.Fatalf("Darken = %+v", got)
	}
	got = c.Shade(30)
	if got != (Color{R: 40, G: 230, B: 255, A: 7}) {
		t.Fatalf("Shade = %+v", got)
	}
}

func TestHSVRoundTrip(t *testing.T) {
	red := FromHSV(0, 1, 1)
	if red != RGB(255, 0, 0) {
		t.Fatalf("FromHSV(0,1,1) = %+v", red)
	}
	h, s, v := RGB(0, 0, 255).HSV()
	if math.Abs(h-240) > 0.5 || math.Abs(s-1) > 1e-6 || math.Abs(v-1) > 1e-6 {
		t.Fatalf("HSV of blue = %v %v %v", h, s, v)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#505a5b")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if c != RGB(0x50, 0x5a, 0x5b) {
		t.Fatalf("ParseHex = %+v", c)
	}
	if c.Hex() != "#505a5b" {
		t.Fatalf("Hex = %s", c.Hex())
	}
	if _, err := ParseHex("nope"); err == nil {
		t.Fatalf("expected error for invalid hex")
	}
}

func TestContrast(t *testing.T) {
	if White.Contrast() != Black {
		t.Fatalf("expected black on white")
	}
	if Black.Contrast() != White {
		t.Fatalf("expected white on black")
	}
}
