// Package control turns a snapshot and a target position into bounded
// actuation rates, and plans inventory moves for equipping an item.
package control

import (
	"math"

	"missionloop.ai/internal/geom"
)

const (
	// DefaultRampMax maps a 180° gap to a rate of 2, so the rate saturates at 1
	// once the gap reaches 90°.
	DefaultRampMax = 2.0

	DefaultStopDistance = 2.0

	// AlignTolerance is how close to zero both turn rates must be for the agent
	// to count as facing its target.
	AlignTolerance = 0.001

	zeroDirection = 1.0e-6
)

// Rates are normalized camera turn rates in [-1,1].
type Rates struct {
	Yaw   float64
	Pitch float64
}

// Movement holds normalized translation rates in [-1,1], relative to the
// direction the agent faces.
type Movement struct {
	Strafe float64
	Move   float64
}

// Law carries the tunable constants of the control law.
type Law struct {
	RampMax      float64
	StopDistance float64
}

func Default() Law {
	return Law{RampMax: DefaultRampMax, StopDistance: DefaultStopDistance}
}

func (l Law) normalized() Law {
	if l.RampMax <= 0 {
		l.RampMax = DefaultRampMax
	}
	if l.StopDistance < 0 {
		l.StopDistance = DefaultStopDistance
	}
	return l
}

// AngleDiffs returns the signed yaw and pitch, in degrees, the camera must
// rotate through to face target. ok is false when target coincides with pos,
// in which case there is no meaningful direction and both diffs are zero.
func AngleDiffs(pos geom.Vector, pov geom.Rotation, target geom.Vector) (diff geom.Rotation, ok bool) {
	v := geom.Normalize(geom.Difference(pos, target))
	if geom.IsZero(v, zeroDirection) {
		return geom.Rotation{}, false
	}

	targetPitch := geom.Degrees(math.Atan(-v.Y / math.Sqrt(v.Z*v.Z+v.X*v.X)))
	targetYaw := geom.NormalizeYaw(geom.Degrees(math.Atan2(-v.X, v.Z)))

	return geom.Rotation{
		Yaw:   YawDiff(pov.Yaw, targetYaw),
		Pitch: targetPitch - pov.Pitch,
	}, true
}

// YawDiff returns the signed shortest rotation from current to target, in
// [-180,180]. Positive values turn clockwise (increasing yaw).
func YawDiff(current, target float64) float64 {
	current = geom.NormalizeYaw(current)
	target = geom.NormalizeYaw(target)

	diff := math.Abs(current - target)
	dir := 1.0
	if target < current {
		dir = -1
	}
	if alt := 360 - diff; alt < diff {
		diff = alt
		dir = -dir
	}
	return diff * dir
}

// RampRate converts a signed angular gap into a turn rate: proportional for
// small gaps, saturating at ±1.
func (l Law) RampRate(diff float64) float64 {
	l = l.normalized()
	r := math.Min(geom.LinearMap(math.Abs(diff), 0, 180, 0, l.RampMax), 1)
	return r * geom.Sign(diff)
}

// TurnRates computes the camera rates needed to face target and reports
// whether the agent already does.
func (l Law) TurnRates(pos geom.Vector, pov geom.Rotation, target geom.Vector) (Rates, bool) {
	diff, ok := AngleDiffs(pos, pov, target)
	if !ok {
		return Rates{}, true
	}
	r := Rates{Yaw: l.RampRate(diff.Yaw), Pitch: l.RampRate(diff.Pitch)}
	return r, Aligned(r)
}

// Aligned reports whether both turn rates are within AlignTolerance of zero.
func Aligned(r Rates) bool {
	return geom.ApproxEqual(r.Yaw, 0, AlignTolerance) && geom.ApproxEqual(r.Pitch, 0, AlignTolerance)
}

// MoveRates computes strafe and forward rates that carry the agent toward
// target from its current facing. Within stopDistance of the target both
// rates are zero. A negative stopDistance selects the law's default.
func (l Law) MoveRates(pos geom.Vector, pov geom.Rotation, target geom.Vector, stopDistance float64) Movement {
	l = l.normalized()
	if stopDistance < 0 {
		stopDistance = l.StopDistance
	}
	if geom.Distance(pos, target) <= stopDistance {
		return Movement{}
	}
	diff, ok := AngleDiffs(pos, pov, target)
	if !ok {
		return Movement{}
	}
	rad := geom.Radians(diff.Yaw)
	return Movement{Strafe: math.Sin(rad), Move: math.Cos(rad)}
}

// Arrived reports whether target is within stopDistance of pos.
func Arrived(pos, target geom.Vector, stopDistance float64) bool {
	return geom.Distance(pos, target) <= stopDistance
}
