package mesh

import "math"

// Vec3 is a point or direction in 3-space.
type Vec3 [3]float64

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }

func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

func (a Vec3) Scale(s float64) Vec3 { return Vec3{a[0] * s, a[1] * s, a[2] * s} }

func (a Vec3) Dot(b Vec3) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (a Vec3) Norm() float64 { return math.Sqrt(a.Dot(a)) }

// angleBetween returns the angle between a and b in [0, π], or 0 when either
// vector is zero. The cosine is clamped against rounding past ±1.
func angleBetween(a, b Vec3) float64 {
	den := a.Norm() * b.Norm()
	if den == 0 {
		return 0
	}
	return math.Acos(clamp(a.Dot(b) / den))
}

func clamp(c float64) float64 {
	return math.Max(-1, math.Min(1, c))
}
