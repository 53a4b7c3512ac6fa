package core

import (
	"math"
	"testing"
)

func vecApproxEqual(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"divide", b.Divide(2), NewVec3(2, -2.5, 3)},
		{"multiply vec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	if d := a.Dot(b); d != 12 {
		t.Errorf("Expected dot 12, got %f", d)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4).Normalize()
	if !vecApproxEqual(v, NewVec3(0.6, 0, 0.8), 1e-12) {
		t.Errorf("Expected (0.6, 0, 0.8), got %v", v)
	}

	// Zero-length vectors are not special-cased
	zero := NewVec3(0, 0, 0).Normalize()
	if !math.IsNaN(zero.X) {
		t.Errorf("Expected NaN when normalizing zero vector, got %v", zero)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(0, -1e-3, 0).NearZero() {
		t.Error("Expected (0, -1e-3, 0) not to be near zero")
	}
}

func TestVec3_Reflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	r := v.Reflect(n)
	if !vecApproxEqual(r, NewVec3(1, 1, 0), 1e-12) {
		t.Errorf("Expected (1, 1, 0), got %v", r)
	}
}

func TestVec3_Refract(t *testing.T) {
	n := NewVec3(0, 1, 0)

	// Ratio 1 leaves the direction unchanged
	v := NewVec3(1, -1, 0).Normalize()
	r := v.Refract(n, 1.0)
	if !vecApproxEqual(r, v, 1e-12) {
		t.Errorf("Expected unchanged direction %v, got %v", v, r)
	}

	// Entering a denser medium bends toward the normal
	r = v.Refract(n, 1.0/1.5)
	if math.Abs(r.X) >= math.Abs(v.X) {
		t.Errorf("Expected refracted ray to bend toward normal, got %v", r)
	}
	if math.Abs(r.Length()-1) > 1e-9 {
		t.Errorf("Expected unit refracted direction, got length %f", r.Length())
	}

	// Snell: sin(θt) = ratio * sin(θi)
	sinI := math.Abs(v.X)
	sinT := math.Abs(r.X) / r.Length()
	if math.Abs(sinT-sinI/1.5) > 1e-9 {
		t.Errorf("Snell's law violated: sinT=%f want %f", sinT, sinI/1.5)
	}
}

func TestVec3_Axis(t *testing.T) {
	v := NewVec3(7, 8, 9)
	for i, expected := range []float64{7, 8, 9} {
		if v.Axis(i) != expected {
			t.Errorf("Axis(%d) = %f, want %f", i, v.Axis(i), expected)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for axis 3")
		}
	}()
	v.Axis(3)
}

func TestRay_At(t *testing.T) {
	ray := NewRayAtTime(NewVec3(1, 2, 3), NewVec3(1, 0, -1), 0.25)
	p := ray.At(2)
	if p != NewVec3(3, 2, 1) {
		t.Errorf("Expected (3, 2, 1), got %v", p)
	}
	if ray.Time != 0.25 {
		t.Errorf("Expected time 0.25, got %f", ray.Time)
	}
	if NewRay(p, p).Time != 0 {
		t.Error("Expected NewRay to default to time 0")
	}
}
