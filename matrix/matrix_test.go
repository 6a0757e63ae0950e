package matrix

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tolerance = 1e-12

func seq(start float64) mgl64.Mat4 {
	var m mgl64.Mat4
	for i := range m {
		m[i] = start + float64(i)
	}
	return m
}

func TestIdentity(t *testing.T) {
	m := Identity()
	for i, v := range m {
		want := 0.0
		if i%5 == 0 {
			want = 1.0
		}
		if v != want {
			t.Errorf("Identity()[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestMultiply_IdentityIsNeutral(t *testing.T) {
	s := seq(1)

	if got := Multiply(s, Identity()); got != s {
		t.Errorf("s·I = %v, want %v", got, s)
	}
	if got := Multiply(Identity(), s); got != s {
		t.Errorf("I·s = %v, want %v", got, s)
	}
}

func TestMultiply_ColumnMajor(t *testing.T) {
	// entry (row i, col j) = sum_k a(i,k) * b(k,j), with (i,j) stored at i+4*j
	a, b := seq(1), seq(-7)
	got := Multiply(a, b)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			for k := 0; k < 4; k++ {
				want += a[i+4*k] * b[k+4*j]
			}
			if math.Abs(got[i+4*j]-want) > tolerance {
				t.Errorf("product(%d,%d) = %v, want %v", i, j, got[i+4*j], want)
			}
		}
	}
}

func TestMultiply_NotCommutative(t *testing.T) {
	a := Translate(10, 0)
	b := RotateY(90)

	if ApproxEqual(Multiply(a, b), Multiply(b, a), 1e-9) {
		t.Errorf("translate·rotate should differ from rotate·translate")
	}
}

func TestMultiply_Associative(t *testing.T) {
	a := Perspective(800)
	b := RotateY(33)
	c := Translate3d(4, -2, 9)

	left := Multiply(Multiply(a, b), c)
	right := Multiply(a, Multiply(b, c))

	if !ApproxEqual(left, right, 1e-9) {
		t.Errorf("(a·b)·c = %v, a·(b·c) = %v", left, right)
	}
}

func TestBuilders_Layout(t *testing.T) {
	sin30, cos30 := math.Sin(math.Pi/6), math.Cos(math.Pi/6)

	tests := []struct {
		name string
		got  mgl64.Mat4
		want mgl64.Mat4
	}{
		{
			name: "Perspective",
			got:  Perspective(4),
			want: mgl64.Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, -0.25, 0, 0, 0, 1},
		},
		{
			name: "Translate",
			got:  Translate(10, 20),
			want: mgl64.Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 10, 20, 0, 1},
		},
		{
			name: "Translate3d",
			got:  Translate3d(1, 2, 3),
			want: mgl64.Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 1, 2, 3, 1},
		},
		{
			name: "RotateY 30",
			got:  RotateY(30),
			want: mgl64.Mat4{cos30, 0, -sin30, 0, 0, 1, 0, 0, sin30, 0, cos30, 0, 0, 0, 0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !ApproxEqual(tt.got, tt.want, tolerance) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPerspective_ZeroDepth(t *testing.T) {
	m := Perspective(0)
	if !math.IsInf(m[11], -1) {
		t.Errorf("Perspective(0)[11] = %v, want -Inf", m[11])
	}
}

func TestRotateY_Periodic(t *testing.T) {
	for _, deg := range []float64{0, 360, -360, 720} {
		if !ApproxEqual(RotateY(deg), Identity(), 1e-12) {
			t.Errorf("RotateY(%v) = %v, want identity", deg, RotateY(deg))
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		m    mgl64.Mat4
		want string
	}{
		{
			name: "identity",
			m:    Identity(),
			want: "matrix3d(1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1)",
		},
		{
			name: "translation with fractions",
			m:    Translate3d(10.5, -20, 0.25),
			want: "matrix3d(1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 10.5, -20, 0.25, 1)",
		},
		{
			name: "negative zero and specials",
			m:    mgl64.Mat4{math.Copysign(0, -1), math.NaN(), math.Inf(1), math.Inf(-1), 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
			want: "matrix3d(0, NaN, Infinity, -Infinity, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.m)
			if got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
			if n := strings.Count(got, ","); n != 15 {
				t.Errorf("Format() has %d commas, want 15", n)
			}
		})
	}
}

func TestApproxEqual(t *testing.T) {
	nan := Identity()
	nan[3] = math.NaN()

	tests := []struct {
		name string
		a, b mgl64.Mat4
		want bool
	}{
		{"identical", Identity(), Identity(), true},
		{"within tolerance", Identity(), Translate(1e-13, 0), true},
		{"outside tolerance", Identity(), Translate(1e-3, 0), false},
		{"NaN matches NaN", nan, nan, true},
		{"NaN does not match number", nan, Identity(), false},
		{"same infinity", Perspective(0), Perspective(0), true},
		{"infinity against number", Perspective(0), Perspective(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApproxEqual(tt.a, tt.b, 1e-9); got != tt.want {
				t.Errorf("ApproxEqual() = %v, want %v", got, tt.want)
			}
		})
	}
}
