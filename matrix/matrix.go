// Package matrix builds the 4x4 homogeneous matrices composed by a flipbook Transform.
//
// Matrices are mgl64.Mat4 values, stored column-major exactly like the CSS
// matrix3d() function: index i+4*j holds row i, column j, and the translation
// lives at indices 12, 13 and 14.
package matrix

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Identity returns the neutral matrix
func Identity() mgl64.Mat4 {
	return mgl64.Ident4()
}

// Multiply returns a·b. Applied to a point, b acts first.
func Multiply(a, b mgl64.Mat4) mgl64.Mat4 {
	return a.Mul4(b)
}

// Perspective returns the CSS perspective(d) matrix.
// d <= 0 is not rejected: d == 0 yields -Inf at index 11.
func Perspective(d float64) mgl64.Mat4 {
	m := mgl64.Ident4()
	m[11] = -1 / d

	return m
}

// Translate returns a 2D translation matrix
func Translate(x, y float64) mgl64.Mat4 {
	return mgl64.Translate3D(x, y, 0)
}

// Translate3d returns a 3D translation matrix
func Translate3d(x, y, z float64) mgl64.Mat4 {
	return mgl64.Translate3D(x, y, z)
}

// RotateY returns a rotation about the vertical axis, the angle given in degrees.
func RotateY(deg float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DY(mgl64.DegToRad(deg))
}

// Format renders m as a CSS matrix3d() value, in stored (column-major) order.
func Format(m mgl64.Mat4) string {
	var sb strings.Builder
	sb.WriteString("matrix3d(")
	for i, v := range m {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatNumber(v))
	}
	sb.WriteByte(')')

	return sb.String()
}

// formatNumber spells v the way a browser prints a number.
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		// also folds -0
		return "0"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ApproxEqual compares a and b element-wise within eps.
// NaN entries compare equal to NaN, infinities to the same infinity.
func ApproxEqual(a, b mgl64.Mat4, eps float64) bool {
	for i := range a {
		x, y := a[i], b[i]
		switch {
		case math.IsNaN(x) || math.IsNaN(y):
			if !(math.IsNaN(x) && math.IsNaN(y)) {
				return false
			}
		case math.IsInf(x, 0) || math.IsInf(y, 0):
			if x != y {
				return false
			}
		case math.Abs(x-y) > eps:
			return false
		}
	}

	return true
}
