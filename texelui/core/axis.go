package core

import "github.com/framegrace/texelpaint/texelui/geom"

// Axis selects the orientation of a one-dimensional control.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// AxisAccessor reads and writes the primary and secondary components of
// points and sizes. Widgets pick one at construction and never branch on
// orientation afterwards.
type AxisAccessor struct {
	Axis Axis

	Primary     func(p geom.Point) int
	Secondary   func(p geom.Point) int
	WithPrimary func(p geom.Point, v int) geom.Point
	Extent      func(s geom.Size) int
	CrossExtent func(s geom.Size) int
	Point       func(primary, secondary int) geom.Point
	SizeOf      func(primary, secondary int) geom.Size
}

var horizontalAccessor = AxisAccessor{
	Axis:        Horizontal,
	Primary:     func(p geom.Point) int { return p.X },
	Secondary:   func(p geom.Point) int { return p.Y },
	WithPrimary: func(p geom.Point, v int) geom.Point { p.X = v; return p },
	Extent:      func(s geom.Size) int { return s.W },
	CrossExtent: func(s geom.Size) int { return s.H },
	Point:       func(a, b int) geom.Point { return geom.Point{X: a, Y: b} },
	SizeOf:      func(a, b int) geom.Size { return geom.Size{W: a, H: b} },
}

var verticalAccessor = AxisAccessor{
	Axis:        Vertical,
	Primary:     func(p geom.Point) int { return p.Y },
	Secondary:   func(p geom.Point) int { return p.X },
	WithPrimary: func(p geom.Point, v int) geom.Point { p.Y = v; return p },
	Extent:      func(s geom.Size) int { return s.H },
	CrossExtent: func(s geom.Size) int { return s.W },
	Point:       func(a, b int) geom.Point { return geom.Point{X: b, Y: a} },
	SizeOf:      func(a, b int) geom.Size { return geom.Size{W: b, H: a} },
}

// Accessor returns the accessor pair for a.
func (a Axis) Accessor() AxisAccessor {
	if a == Vertical {
		return verticalAccessor
	}
	return horizontalAccessor
}
