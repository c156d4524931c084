package tween

import "math"

// Quat is a rotation quaternion. Euler angles are in degrees and applied in
// Z, X, Y order.
type Quat struct {
	X, Y, Z, W float64
}

// IdentityQuat is the zero rotation.
var IdentityQuat = Quat{W: 1}

// QuatFromEuler builds a rotation from Euler angles in degrees.
func QuatFromEuler(e Vec3) Quat {
	rad := math.Pi / 180
	hx, hy, hz := e.X*rad/2, e.Y*rad/2, e.Z*rad/2
	qx := Quat{X: math.Sin(hx), W: math.Cos(hx)}
	qy := Quat{Y: math.Sin(hy), W: math.Cos(hy)}
	qz := Quat{Z: math.Sin(hz), W: math.Cos(hz)}
	return qy.Mul(qx).Mul(qz)
}

// Mul composes q after o.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

func (q Quat) Dot(o Quat) float64 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// Normalize returns the unit quaternion, or identity for a zero quaternion.
func (q Quat) Normalize() Quat {
	n := math.Sqrt(q.Dot(q))
	if n < 1e-12 {
		return IdentityQuat
	}
	return Quat{X: q.X / n, Y: q.Y / n, Z: q.Z / n, W: q.W / n}
}

// Lerp blends component-wise along the shorter arc and renormalizes. t is not
// clamped.
func (q Quat) Lerp(o Quat, t float64) Quat {
	if q.Dot(o) < 0 {
		o = Quat{X: -o.X, Y: -o.Y, Z: -o.Z, W: -o.W}
	}
	return Quat{
		X: q.X + (o.X-q.X)*t,
		Y: q.Y + (o.Y-q.Y)*t,
		Z: q.Z + (o.Z-q.Z)*t,
		W: q.W + (o.W-q.W)*t,
	}.Normalize()
}

// Euler decomposes the rotation into degrees in [0, 360).
func (q Quat) Euler() Vec3 {
	q = q.Normalize()
	sinX := 2 * (q.W*q.X - q.Y*q.Z)
	var x, y, z float64
	if math.Abs(sinX) < 0.99999 {
		x = math.Asin(sinX)
		y = math.Atan2(2*(q.X*q.Z+q.W*q.Y), 1-2*(q.X*q.X+q.Y*q.Y))
		z = math.Atan2(2*(q.X*q.Y+q.W*q.Z), 1-2*(q.X*q.X+q.Z*q.Z))
	} else {
		x = math.Copysign(math.Pi/2, sinX)
		y = math.Atan2(-2*(q.X*q.Z-q.W*q.Y), 1-2*(q.Y*q.Y+q.Z*q.Z))
	}
	deg := 180 / math.Pi
	return Vec3{X: wrapDegrees(x * deg), Y: wrapDegrees(y * deg), Z: wrapDegrees(z * deg)}
}

func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360-1e-9 {
		d = 0
	}
	return d
}
