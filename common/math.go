package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MoveTowards steps from current toward target by at most maxDelta.
// Returns target when the remaining distance is within maxDelta, so callers
// can compare against the target to detect arrival. A zero-length remainder
// is treated as already arrived instead of normalizing a zero vector.
func MoveTowards(current, target cp.Vector, maxDelta float64) cp.Vector {
	to := target.Sub(current)
	d := to.Length()
	if d <= maxDelta || d == 0 {
		return target
	}
	return current.Add(to.Mult(maxDelta / d))
}

// Direction returns the unit vector from a toward b, or the zero vector when
// the points coincide.
func Direction(a, b cp.Vector) cp.Vector {
	to := b.Sub(a)
	d := to.Length()
	if d == 0 {
		return cp.Vector{}
	}
	return to.Mult(1 / d)
}

// PointSegmentDistance returns the distance from point p to the segment ab.
func PointSegmentDistance(p, a, b cp.Vector) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := Clamp(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	closest := a.Add(ab.Mult(t))
	return p.Distance(closest)
}

// PushOutFromCenter moves pos away from center until it is at least minDist
// away. Positions exactly at the center are pushed along +X.
func PushOutFromCenter(pos, center cp.Vector, minDist float64) cp.Vector {
	to := pos.Sub(center)
	d := to.Length()
	if d >= minDist {
		return pos
	}
	if d == 0 {
		return center.Add(cp.Vector{X: minDist})
	}
	return center.Add(to.Mult(minDist / d))
}

// WrapAngle keeps an angle within [0, 2π).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
