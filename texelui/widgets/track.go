package widgets

import (
	"math"

	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/geom"
)

// track is the range a thumb origin may occupy along one axis.
type track struct {
	acc          core.AxisAccessor
	lower, upper int
}

func (t track) clamp(v int) int { return geom.Clamp(v, t.lower, t.upper) }

// relative maps v into [0,1]. An empty range reports 0.
func (t track) relative(v int) float64 {
	if t.upper <= t.lower {
		return 0
	}
	return float64(t.clamp(v)-t.lower) / float64(t.upper-t.lower)
}

// at is the inverse of relative.
func (t track) at(rel float64) int {
	rel = math.Max(0, math.Min(1, rel))
	return t.lower + int(math.Round(rel*float64(t.upper-t.lower)))
}
