package component

import "github.com/milk9111/tweens/tween"

// Transform places an entity on screen. Rotation is a quaternion; the
// renderer uses its Z euler angle.
type Transform struct {
	Position tween.Vec3
	Scale    tween.Vec3
	Rotation tween.Quat
}

// NewTransform returns a transform at the origin with unit scale.
func NewTransform() Transform {
	return Transform{
		Scale:    tween.Vec3{X: 1, Y: 1, Z: 1},
		Rotation: tween.IdentityQuat,
	}
}

var TransformComponent = NewComponent[Transform]()
