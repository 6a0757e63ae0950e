package flipbook

import "github.com/go-gl/mathgl/mgl64"

// Source is anything a Transform can be built from.
// It is implemented by *Transform, State and Values only.
type Source interface {
	isSource()
}

// Values is a bare sequence of 16 numbers in column-major order.
type Values []float64

// State is the object form of a transform, as it appears in
// serialized scene state.
type State struct {
	M []float64 `json:"m" toml:"m"`
}

func (*Transform) isSource() {}
func (State) isSource()      {}
func (Values) isSource()     {}

// toMat4 copies v into a matrix; ok is false unless v holds exactly 16 numbers.
func toMat4(v []float64) (m mgl64.Mat4, ok bool) {
	if len(v) != len(m) {
		return m, false
	}
	copy(m[:], v)

	return m, true
}
