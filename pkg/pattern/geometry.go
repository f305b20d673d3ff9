package pattern

import "math"

// Point is a position in pattern space.
type Point struct {
	X, Y float64
}

// cornerScale lists the per-corner distance multipliers (relative to the
// group's x-spacing) that deviate from the default of 1. Index 0 is the
// origin and never scaled. Groups absent from this table use 1 everywhere.
var cornerScale = map[Group][4]float64{
	GroupP1:   {1, 1, 1, math.Sqrt(3)},
	GroupP2:   {1, 1, 1, math.Sqrt(3)},
	GroupPM:   {1, 1, 1, math.Sqrt2},
	GroupPMM:  {1, 1, 1, math.Sqrt2},
	GroupPG:   {1, 1, 1, math.Sqrt2},
	GroupCM:   {1, 1, 1, math.Sqrt2},
	GroupCMM:  {1, 1, 1, math.Sqrt2},
	GroupPGG:  {1, 1, 1, math.Sqrt2},
	GroupPMG:  {1, 1, 1, math.Sqrt2},
	GroupP3:   {1, 0.5 / sqrt34, 0.5 / sqrt34, 0.5 / sqrt34},
	GroupP3M1: {1, 1 / math.Sqrt(3), 1 / math.Sqrt(3), 1 / math.Sqrt(3)},
	GroupP31M: {1, 1, 1 / math.Sqrt(3), 1},
	GroupP6:   {1, 1, 1 / math.Sqrt(3), 1},
	GroupP6M:  {1, 0.5, 1 / math.Sqrt(3), 1},
	GroupP4:   {1, 0.5, 0.5, math.Sqrt2 / 2},
	GroupP4M:  {1, 0.5, 0.5 * math.Sqrt2, math.Sqrt2 / 2},
	GroupP4G:  {1, 0.5, 0.5, math.Sqrt2 / 2},
}

var sqrt34 = math.Sqrt(3.0 / 4)

// cornerDistance returns the distance from the origin to corner index for
// the active group. index must be in [0, 3].
func (p *Pattern) cornerDistance(index int) float64 {
	scale := 1.0
	if s, ok := cornerScale[p.group]; ok {
		scale = s[index]
	}
	return scale * p.rules.XSpacing
}

// Corner returns the position of one corner of the active group's
// fundamental-domain polygon. Index 0 is always the origin, index 1 lies on
// the positive x axis, index 2 sits at the initial corner angle and index 3
// (4-sided domains only) bisects it.
func (p *Pattern) Corner(index int) Point {
	switch index {
	case 1:
		return Point{X: p.cornerDistance(1)}
	case 2:
		d := p.cornerDistance(2)
		return Point{X: d * math.Cos(p.rules.Angle0), Y: d * math.Sin(p.rules.Angle0)}
	case 3:
		d := p.cornerDistance(3)
		return Point{X: d * math.Cos(p.rules.Angle0/2), Y: d * math.Sin(p.rules.Angle0/2)}
	}
	return Point{}
}

// lerp blends between two values; blend 0 yields n1, blend 1 yields n2.
func lerp(n1, n2, blend float64) float64 {
	return (1.0-blend)*n1 + blend*n2
}

// DomainPoint samples a point inside the fundamental-domain polygon by
// iterated linear interpolation between its corners: a blend toward corner 1,
// then for 3-sided domains a blend toward corner 2, or for 4-sided domains a
// blend of the y coordinate toward corner 2 with a matching shear correction.
// Exactly two draws per sample; no rejection sampling takes place.
func (p *Pattern) DomainPoint() Point {
	corner0 := p.Corner(0)
	corner1 := p.Corner(1)
	corner2 := p.Corner(2)

	pt := corner0

	blend := p.rng.Float()
	pt = Point{
		X: lerp(pt.X, corner1.X, blend),
		Y: lerp(pt.Y, corner1.Y, blend),
	}

	if p.rules.PolygonSides == 3 {
		blend = p.rng.Float()
		pt = Point{
			X: lerp(pt.X, corner2.X, blend),
			Y: lerp(pt.Y, corner2.Y, blend),
		}
		return pt
	}

	// 4-sided domains blend the y coordinate toward corner 2 and shift x by
	// the matching shear correction so samples stay inside the sheared cell.
	blend = p.rng.Float()
	pt.Y = lerp(pt.Y, corner2.Y, blend)
	pt.X += (corner2.X - corner0.X) * blend
	return pt
}
