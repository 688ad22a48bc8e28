package vu1

type UnitBuilderOption func(u *unit)

// WithLightDirection sets the directional light vector. The vector is
// normalized when the unit is built, a zero vector is ignored.
//
// Parameters:
//   - dir: the light direction in world space
//
// Returns:
//   - UnitBuilderOption: the option to apply
func WithLightDirection(dir [3]float32) UnitBuilderOption {
	return func(u *unit) {
		if dir == ([3]float32{0, 0, 0}) {
			return
		}
		u.lightDirection = dir
	}
}

// WithAmbient sets the ambient lighting term added to every shaded color.
//
// Parameters:
//   - ambient: the ambient factor, negative values are ignored
//
// Returns:
//   - UnitBuilderOption: the option to apply
func WithAmbient(ambient float32) UnitBuilderOption {
	return func(u *unit) {
		if ambient < 0 {
			return
		}
		u.ambient = ambient
	}
}

// WithViewDistance sets how far the camera sits from the origin along +Z.
//
// Parameters:
//   - distance: the camera distance, zero or negative values are ignored
//
// Returns:
//   - UnitBuilderOption: the option to apply
func WithViewDistance(distance float32) UnitBuilderOption {
	return func(u *unit) {
		if distance <= 0 {
			return
		}
		u.viewDistance = distance
	}
}

// WithPerspective overrides the projection parameters.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: width over height of the target surface
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - UnitBuilderOption: the option to apply
func WithPerspective(fovY, aspect, near, far float32) UnitBuilderOption {
	return func(u *unit) {
		if fovY <= 0 || aspect <= 0 || near <= 0 || far <= near {
			return
		}
		u.fovY = fovY
		u.aspect = aspect
		u.near = near
		u.far = far
	}
}
