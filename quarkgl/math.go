package quarkgl

import "github.com/go-gl/mathgl/mgl32"

// Scalar is the numeric type used by QuarkGL math operations.
type Scalar = float32

// Vec3, Vec4 and Mat4 are the mgl32 types. Mat4 is column-major:
// m[col*4+row].
type (
	Vec3 = mgl32.Vec3
	Vec4 = mgl32.Vec4
	Mat4 = mgl32.Mat4
)

func V3(x, y, z Scalar) Vec3 { return Vec3{x, y, z} }

// Normalize returns v scaled to unit length. The zero vector stays zero
// instead of turning into NaNs.
func Normalize(v Vec3) Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

func Clamp01(v Scalar) Scalar { return mgl32.Clamp(v, 0, 1) }

func Mat4Identity() Mat4 { return mgl32.Ident4() }

func Mat4Mul(a, b Mat4) Mat4 { return a.Mul4(b) }

func Mat4MulV4(m Mat4, v Vec4) Vec4 { return m.Mul4x1(v) }

func Mat4Translate(v Vec3) Mat4 { return mgl32.Translate3D(v[0], v[1], v[2]) }

func Mat4Scale(v Vec3) Mat4 { return mgl32.Scale3D(v[0], v[1], v[2]) }

func Mat4RotateX(rad Scalar) Mat4 { return mgl32.HomogRotate3DX(rad) }
func Mat4RotateY(rad Scalar) Mat4 { return mgl32.HomogRotate3DY(rad) }
func Mat4RotateZ(rad Scalar) Mat4 { return mgl32.HomogRotate3DZ(rad) }

func Mat4LookAt(eye, target, up Vec3) Mat4 { return mgl32.LookAtV(eye, target, up) }

func Mat4Perspective(fovYRad, aspect, zNear, zFar Scalar) Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	return mgl32.Perspective(fovYRad, aspect, zNear, zFar)
}

func Mat4Ortho(left, right, bottom, top, zNear, zFar Scalar) Mat4 {
	if right == left {
		right = left + 1
	}
	if top == bottom {
		top = bottom + 1
	}
	if zFar == zNear {
		zFar = zNear + 1
	}
	return mgl32.Ortho(left, right, bottom, top, zNear, zFar)
}

// Mat4Compose builds translate * rotate * scale, with the rotation applied
// in X, Y, Z order (Euler "XYZ": R = Rx * Ry * Rz).
func Mat4Compose(pos, rot Vec3, scale Scalar) Mat4 {
	m := mgl32.Translate3D(pos[0], pos[1], pos[2])
	if rot != (Vec3{}) {
		m = m.Mul4(mgl32.HomogRotate3DX(rot[0])).
			Mul4(mgl32.HomogRotate3DY(rot[1])).
			Mul4(mgl32.HomogRotate3DZ(rot[2]))
	}
	if scale != 1 {
		m = m.Mul4(mgl32.Scale3D(scale, scale, scale))
	}
	return m
}

// Deg converts degrees to radians.
func Deg(deg Scalar) Scalar { return mgl32.DegToRad(deg) }
