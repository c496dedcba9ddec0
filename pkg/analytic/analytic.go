// Package analytic provides closed-form view factors for configurations with known solutions.
// Dimensions are normalized as noted on each function.
package analytic

import "math"

// SphereInCylinder is the view factor from a small sphere at the center of an open
// coaxial cylinder to the cylinder. h is the cylinder half-height divided by its radius.
func SphereInCylinder(h float64) float64 {
	return h / math.Sqrt(1+h*h)
}

// DiskToSphere is the view factor from a disk to a sphere on its axis.
// h is the center distance and r the sphere radius, both divided by the disk radius.
func DiskToSphere(h, r float64) float64 {
	return 2 * r * r * (1 - 1/math.Sqrt(1+1/(h*h)))
}

// SmallCylinderToSphere is the view factor from a tiny cylinder with its axis
// pointing at a sphere. h is the center distance divided by the sphere radius.
func SmallCylinderToSphere(h float64) float64 {
	s := math.Sqrt(1 - 1/(h*h))
	return 0.5 - s/(math.Pi*h) - math.Asin(s)/math.Pi
}

// SmallSphereToSphere is the view factor from a tiny sphere to a large one.
// h is the center distance divided by the large sphere radius.
func SmallSphereToSphere(h float64) float64 {
	return 0.5 * (1 - math.Sqrt(1-1/(h*h)))
}

// CylinderToCylinder is the view factor between two parallel infinite cylinders
// of equal radius. h is the center distance divided by the radius.
func CylinderToCylinder(h float64) float64 {
	return (math.Sqrt(h*h-4) - h + 2*math.Asin(2/h)) / (2 * math.Pi)
}

// StripToCylinder is the view factor from an infinite strip to a parallel infinite cylinder.
// h is the strip-to-axis distance divided by the radius, v the strip width divided by the diameter.
func StripToCylinder(h, v float64) float64 {
	return math.Atan(v/h) / v
}

// RodToCoaxialDisk is the view factor from a thin rod standing on the center of a disk
// to that disk. h is the rod length divided by the disk radius.
func RodToCoaxialDisk(h float64) float64 {
	return 0.25 - 0.5/math.Pi*math.Asin((h*h-1)/(h*h+1))
}

// EqualRectangularPlates is the view factor between two directly opposed equal rectangles.
// x and y are the plate sides divided by the gap.
func EqualRectangularPlates(x, y float64) float64 {
	x1 := math.Sqrt(1 + x*x)
	y1 := math.Sqrt(1 + y*y)

	a := math.Log(x1 * x1 * y1 * y1 / (x1*x1 + y1*y1 - 1))
	b := 2 * x * (y1*math.Atan(x/y1) - math.Atan(x))
	c := 2 * y * (x1*math.Atan(y/x1) - math.Atan(y))

	return (a + b + c) / (math.Pi * x * y)
}

// UnequalDisks is the view factor from disk 1 to a parallel coaxial disk 2.
// r1 and r2 are the radii divided by the gap.
func UnequalDisks(r1, r2 float64) float64 {
	x := 1 + 1/(r1*r1) + r2*r2/(r1*r1)
	y := math.Sqrt(x*x - 4*r2*r2/(r1*r1))
	return (x - y) / 2
}

// ConeHeight returns the height of a cone with base radius r and half angle w (radians)
func ConeHeight(r, w float64) float64 {
	return r / math.Tan(w)
}

// SphereToCoaxialCone is the view factor from a sphere to a cone whose apex points at it.
// r is the cone radius divided by the sphere radius, s the gap between sphere surface
// and apex in sphere radii, w the cone half angle in radians.
func SphereToCoaxialCone(r, s, w float64) float64 {
	x := r / (1 + s + ConeHeight(r, w))
	return 0.5 * (1 - 1/math.Sqrt(1+x*x))
}

// CoaxialConeToSphere is the reciprocal of SphereToCoaxialCone, A_sphere·F / A_cone
func CoaxialConeToSphere(r, s, w float64) float64 {
	h := ConeHeight(r, w)
	sphereArea := 4 * math.Pi
	coneArea := math.Pi * r * math.Sqrt(h*h+r*r)
	return sphereArea / coneArea * SphereToCoaxialCone(r, s, w)
}

// ConeMinHalfAngle is the smallest half angle for which the whole cone sees the sphere,
// the validity limit of SphereToCoaxialCone
func ConeMinHalfAngle(s float64) float64 {
	return math.Asin(1 / (s + 1))
}

// InfiniteGrayPlates is the fraction of energy diffusely emitted by plate 1 that is
// absorbed by plate 2 for two infinite parallel gray plates with emissivities e1 and e2
func InfiniteGrayPlates(e1, e2 float64) float64 {
	return e2 / (e1 + e2 - e1*e2)
}

// PercentError returns 100·(measured-expected)/expected
func PercentError(expected, measured float64) float64 {
	return 100 * (measured - expected) / expected
}
