// Package geom holds the small amount of vector and angle math shared by the
// snapshot decoder, the control law and the simulated engine.
package geom

import "math"

// zeroMagnitude is the magnitude below which Normalize gives up and returns the
// zero vector.
const zeroMagnitude = 1.0e-14

type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func Vec(x, y, z float64) Vector { return Vector{X: x, Y: y, Z: z} }

// Rotation is a camera orientation in degrees. Yaw is in [0,360) once
// normalized; pitch is in [-90,90], positive looking down.
type Rotation struct {
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
}

func (v Vector) Add(o Vector) Vector { return Vector{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z} }

func (v Vector) Scale(k float64) Vector { return Vector{X: v.X * k, Y: v.Y * k, Z: v.Z * k} }

// Difference returns the vector pointing from a to b.
func Difference(a, b Vector) Vector {
	return Vector{X: b.X - a.X, Y: b.Y - a.Y, Z: b.Z - a.Z}
}

func Magnitude(v Vector) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length, or the zero vector when v is too
// short to have a meaningful direction.
func Normalize(v Vector) Vector {
	m := Magnitude(v)
	if m < zeroMagnitude {
		return Vector{}
	}
	return Vector{X: v.X / m, Y: v.Y / m, Z: v.Z / m}
}

// IsZero reports whether every component of v is within tol of zero.
func IsZero(v Vector, tol float64) bool {
	return ApproxEqual(v.X, 0, tol) && ApproxEqual(v.Y, 0, tol) && ApproxEqual(v.Z, 0, tol)
}

func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func SquaredDistance(a, b Vector) float64 {
	d := Difference(a, b)
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}

func Distance(a, b Vector) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

// LinearMap maps value from the range [x1,x2] onto [a1,a2]. The result is not
// clamped.
func LinearMap(value, x1, x2, a1, a2 float64) float64 {
	return a1 + (value-x1)*(a2-a1)/(x2-x1)
}

// NormalizeYaw maps any angle in degrees into [0,360).
func NormalizeYaw(yaw float64) float64 {
	y := math.Mod(yaw+360, 360)
	if y < 0 {
		y += 360
	}
	if y >= 360 {
		y = 0
	}
	return y
}

func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Sign returns -1 for negative values and 1 otherwise.
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
