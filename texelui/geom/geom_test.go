package geom

import "testing"

func TestRectContainsExcludesFarEdges(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{2, 3}, true},
		{Point{5, 4}, true},
		{Point{6, 4}, false},
		{Point{5, 5}, false},
		{Point{1, 3}, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: 8, W: 10, H: 10}
	if got, want := a.Intersect(b), (Rect{X: 5, Y: 8, W: 5, H: 2}); got != want {
		t.Fatalf("Intersect = %v, want %v", got, want)
	}
	if got := a.Intersect(Rect{X: 20, Y: 20, W: 1, H: 1}); !got.Empty() {
		t.Fatalf("expected empty intersection, got %v", got)
	}
}

func TestInsetNeverNegative(t *testing.T) {
	if got := (Rect{W: 1, H: 1}).Inset(1); got.W != 0 || got.H != 0 {
		t.Fatalf("Inset on tiny rect = %v", got)
	}
}
