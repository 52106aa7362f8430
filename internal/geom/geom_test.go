package geom

import (
	"math"
	"testing"
)

func TestNormalize_ZeroGuard(t *testing.T) {
	if got := Normalize(Vector{}); got != (Vector{}) {
		t.Fatalf("expected zero vector, got %+v", got)
	}
	if got := Normalize(Vec(1e-15, 0, 0)); got != (Vector{}) {
		t.Fatalf("expected zero vector for tiny input, got %+v", got)
	}
	n := Normalize(Vec(3, 0, 4))
	if !ApproxEqual(Magnitude(n), 1, 1e-12) {
		t.Fatalf("expected unit length, got %v", Magnitude(n))
	}
	if !ApproxEqual(n.X, 0.6, 1e-12) || !ApproxEqual(n.Z, 0.8, 1e-12) {
		t.Fatalf("unexpected direction %+v", n)
	}
}

func TestDifferenceAndDistance(t *testing.T) {
	a := Vec(1, 2, 3)
	b := Vec(4, 6, 3)
	if d := Difference(a, b); d != Vec(3, 4, 0) {
		t.Fatalf("difference: %+v", d)
	}
	if d := Distance(a, b); d != 5 {
		t.Fatalf("distance: %v", d)
	}
	if d := SquaredDistance(a, b); d != 25 {
		t.Fatalf("squared distance: %v", d)
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(Vec(1e-7, -1e-7, 0), 1e-6) {
		t.Fatalf("expected zero within tolerance")
	}
	if IsZero(Vec(0, 0.01, 0), 1e-6) {
		t.Fatalf("expected non-zero")
	}
}

func TestLinearMap(t *testing.T) {
	cases := []struct {
		v, want float64
	}{
		{0, 0},
		{90, 1},
		{180, 2},
		{270, 3}, // unclamped
	}
	for _, c := range cases {
		if got := LinearMap(c.v, 0, 180, 0, 2); !ApproxEqual(got, c.want, 1e-12) {
			t.Fatalf("LinearMap(%v)=%v want %v", c.v, got, c.want)
		}
	}
}

func TestNormalizeYaw(t *testing.T) {
	cases := map[float64]float64{
		0:    0,
		-90:  270,
		360:  0,
		450:  90,
		-360: 0,
		-721: 359,
	}
	for in, want := range cases {
		got := NormalizeYaw(in)
		if !ApproxEqual(got, want, 1e-9) {
			t.Fatalf("NormalizeYaw(%v)=%v want %v", in, got, want)
		}
		if got < 0 || got >= 360 {
			t.Fatalf("NormalizeYaw(%v)=%v out of range", in, got)
		}
	}
	if got := NormalizeYaw(math.Nextafter(360, 0) - 360); got < 0 || got >= 360 {
		t.Fatalf("out of range: %v", got)
	}
}
