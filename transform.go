// Package flipbook composes the 3D transforms behind a page-flip effect.
//
// A Transform is a 4x4 homogeneous matrix, column-major like CSS matrix3d().
// Composition methods mutate the receiver and return it, so calls chain:
//
//	t := flipbook.New().Perspective(1200).TranslateX(300).RotateY(-45)
//	style := t.Serialize()
//	edge := t.ProjectX(pageWidth)
//
// A Transform is not safe for concurrent use; clone it before sharing.
//
// Nothing in this package returns an error. Degenerate input such as a zero
// perspective depth, or a point projecting onto the vanishing plane,
// yields NaN or ±Inf which callers are expected to detect and clamp.
package flipbook

import (
	"github.com/akmonengine/flipbook/matrix"
	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a mutable 4x4 homogeneous transform.
type Transform struct {
	m mgl64.Mat4
}

// New creates an identity transform
func New() *Transform {
	return &Transform{m: matrix.Identity()}
}

// FromMat4 creates a transform holding a copy of m
func FromMat4(m mgl64.Mat4) *Transform {
	return &Transform{m: m}
}

// From creates a transform from src. A *Transform takes precedence, then a
// State, then bare Values. Anything else, including a nil *Transform, an
// empty State or a sequence that does not hold 16 numbers, gives identity.
func From(src Source) *Transform {
	switch s := src.(type) {
	case *Transform:
		if s != nil {
			return s.Clone()
		}
	case State:
		if m, ok := toMat4(s.M); ok {
			return FromMat4(m)
		}
	case Values:
		if m, ok := toMat4(s); ok {
			return FromMat4(m)
		}
	}

	return New()
}

// Clone returns an independent copy of t
func (t *Transform) Clone() *Transform {
	return &Transform{m: t.m}
}

// Multiply sets t to t·other. other applies to points before the current
// transform, the same order as a CSS transform list read left to right.
func (t *Transform) Multiply(other mgl64.Mat4) *Transform {
	t.m = matrix.Multiply(t.m, other)
	return t
}

// MultiplyValues is Multiply for a raw column-major sequence.
// t is left untouched unless v holds exactly 16 numbers.
func (t *Transform) MultiplyValues(v []float64) *Transform {
	if m, ok := toMat4(v); ok {
		t.Multiply(m)
	}
	return t
}

// Perspective composes a perspective projection with depth d.
// Larger depths flatten the effect toward an orthographic projection.
func (t *Transform) Perspective(d float64) *Transform {
	return t.Multiply(matrix.Perspective(d))
}

// Translate composes a 2D translation
func (t *Transform) Translate(x, y float64) *Transform {
	return t.Multiply(matrix.Translate(x, y))
}

// TranslateX composes a horizontal translation
func (t *Transform) TranslateX(x float64) *Transform {
	return t.Translate(x, 0)
}

// Translate3d composes a 3D translation
func (t *Transform) Translate3d(x, y, z float64) *Transform {
	return t.Multiply(matrix.Translate3d(x, y, z))
}

// RotateY composes a rotation of deg degrees about the vertical axis
func (t *Transform) RotateY(deg float64) *Transform {
	return t.Multiply(matrix.RotateY(deg))
}

// ProjectX returns the on-screen x of the local point (x, 0, 0), after the
// perspective division. Only the four entries that reach x are read.
// A zero divisor is not an error: the result is ±Inf or NaN.
func (t *Transform) ProjectX(x float64) float64 {
	return (x*t.m[0] + t.m[12]) / (x*t.m[3] + t.m[15])
}

// Serialize renders t as a CSS matrix3d() value
func (t *Transform) Serialize() string {
	return matrix.Format(t.m)
}

func (t *Transform) String() string {
	return t.Serialize()
}

// Mat4 returns a copy of the matrix
func (t *Transform) Mat4() mgl64.Mat4 {
	return t.m
}

// Values returns a copy of the 16 entries, column-major.
func (t *Transform) Values() Values {
	v := make(Values, len(t.m))
	copy(v, t.m[:])

	return v
}

// State returns t in object form.
func (t *Transform) State() State {
	return State{M: t.Values()}
}
