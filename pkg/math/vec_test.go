package math

import (
	"testing"
)

func TestVec2Sub(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 5}
	got := b.Sub(a)
	want := Vec2{2, 3}
	if got != want {
		t.Errorf("Vec2.Sub() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	got := (Vec3{}).Normalize()
	if got != (Vec3{}) {
		t.Errorf("Vec3.Normalize() on zero vector = %v, want zero", got)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, 5, -2}
	b := Vec3{3, -4, 0}
	if got := a.Min(b); got != (Vec3{1, -4, -2}) {
		t.Errorf("Vec3.Min() = %v", got)
	}
	if got := a.Max(b); got != (Vec3{3, 5, 0}) {
		t.Errorf("Vec3.Max() = %v", got)
	}
}

func TestMat4TransformPoint(t *testing.T) {
	m := Translate(1, 2, 3)
	got := m.TransformPoint(Vec3{1, 1, 1})
	want := Vec3{2, 3, 4}
	if got != want {
		t.Errorf("TransformPoint() = %v, want %v", got, want)
	}
}

func TestMat4MulOrder(t *testing.T) {
	// T * S first scales then translates the point.
	m := Translate(10, 0, 0).Mul(Scale(2, 2, 2))
	got := m.TransformPoint(Vec3{1, 0, 0})
	want := Vec3{12, 0, 0}
	if got != want {
		t.Errorf("TransformPoint() = %v, want %v", got, want)
	}
}

func TestQuatToMat4Identity(t *testing.T) {
	m := QuatIdentity().ToMat4()
	if m != Identity() {
		t.Errorf("QuatIdentity().ToMat4() = %v, want identity", m)
	}
}

func TestQuatToMat4HalfTurn(t *testing.T) {
	// 180° about Y maps +X to -X.
	q := Quat{X: 0, Y: 1, Z: 0, W: 0}
	got := q.ToMat4().TransformDirection(Vec3{1, 0, 0})
	if got.X > -0.999 || absf(got.Y) > 0.001 || absf(got.Z) > 0.001 {
		t.Errorf("rotated +X = %v, want (-1,0,0)", got)
	}
}

func absf(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
