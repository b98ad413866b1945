package scene

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vector3 is a position or scale.
type Vector3 struct {
	X, Y, Z float32
}

// One is the unit scale.
var One = Vector3{1, 1, 1}

// Add returns v+o.
func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v-o.
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul returns the component-wise product.
func (v Vector3) Mul(o Vector3) Vector3 { return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Scale returns v*f.
func (v Vector3) Scale(f float32) Vector3 { return Vector3{v.X * f, v.Y * f, v.Z * f} }

// Div returns the component-wise quotient, treating a zero divisor as 1.
func (v Vector3) Div(o Vector3) Vector3 {
	return Vector3{safeDiv(v.X, o.X), safeDiv(v.Y, o.Y), safeDiv(v.Z, o.Z)}
}

// Length returns the euclidean length.
func (v Vector3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Cross returns the cross product.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// ApproxEqual reports whether all components are within eps.
func (v Vector3) ApproxEqual(o Vector3, eps float32) bool {
	return math32.Abs(v.X-o.X) <= eps && math32.Abs(v.Y-o.Y) <= eps && math32.Abs(v.Z-o.Z) <= eps
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

func safeDiv(a, b float32) float32 {
	if b == 0 {
		return a
	}

	return a / b
}

// Quaternion is a rotation.
type Quaternion struct {
	X, Y, Z, W float32
}

// Identity is the zero rotation.
var Identity = Quaternion{0, 0, 0, 1}

// AxisAngle returns the rotation of angle radians around axis.
func AxisAngle(axis Vector3, angle float32) Quaternion {
	l := axis.Length()
	if l == 0 {
		return Identity
	}

	s := math32.Sin(angle/2) / l

	return Quaternion{axis.X * s, axis.Y * s, axis.Z * s, math32.Cos(angle / 2)}
}

// Mul returns the composition q*o, which applies o first.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Inverse returns the inverse rotation.
func (q Quaternion) Inverse() Quaternion {
	n := q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
	if n == 0 {
		return Identity
	}

	return Quaternion{-q.X / n, -q.Y / n, -q.Z / n, q.W / n}
}

// Rotate applies the rotation to v.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	u := Vector3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)

	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// ApproxEqual reports whether q and o describe the same rotation within eps.
func (q Quaternion) ApproxEqual(o Quaternion, eps float32) bool {
	same := math32.Abs(q.X-o.X) <= eps && math32.Abs(q.Y-o.Y) <= eps &&
		math32.Abs(q.Z-o.Z) <= eps && math32.Abs(q.W-o.W) <= eps
	flipped := math32.Abs(q.X+o.X) <= eps && math32.Abs(q.Y+o.Y) <= eps &&
		math32.Abs(q.Z+o.Z) <= eps && math32.Abs(q.W+o.W) <= eps

	return same || flipped
}

// Transform is a local position/rotation/scale triple.
type Transform struct {
	Position Vector3
	Rotation Quaternion
	Scale    Vector3
}

// IdentityTransform is the transform of a freshly created node.
func IdentityTransform() Transform {
	return Transform{Rotation: Identity, Scale: One}
}

// Compose returns the transform of a child with local transform c under parent t.
func (t Transform) Compose(c Transform) Transform {
	return Transform{
		Position: t.Position.Add(t.Rotation.Rotate(t.Scale.Mul(c.Position))),
		Rotation: t.Rotation.Mul(c.Rotation),
		Scale:    t.Scale.Mul(c.Scale),
	}
}

// Relative returns the local transform that, composed under t, yields world.
func (t Transform) Relative(world Transform) Transform {
	inv := t.Rotation.Inverse()

	return Transform{
		Position: inv.Rotate(world.Position.Sub(t.Position)).Div(t.Scale),
		Rotation: inv.Mul(world.Rotation),
		Scale:    world.Scale.Div(t.Scale),
	}
}
