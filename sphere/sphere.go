/*
 * sphere.go, part of fusechem.
 *
 * Copyright 2026 The fusechem Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package sphere fits spheres to sets of points and computes the circle where two spheres intersect.
package sphere

import (
	"fmt"
	"math"

	chem "github.com/sysu-software/fusechem"
	v3 "github.com/sysu-software/fusechem/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/spatial/r3"
)

//Sphere is given by the coordinates of its center and its radius.
type Sphere struct {
	X, Y, Z float64
	R       float64
}

//Center returns the center of the sphere.
func (S Sphere) Center() r3.Vec {
	return r3.Vec{X: S.X, Y: S.Y, Z: S.Z}
}

func (S Sphere) String() string {
	return fmt.Sprintf("center (%.3f, %.3f, %.3f) radius %.3f", S.X, S.Y, S.Z, S.R)
}

//CenterDistance returns the distance between the centers of the spheres a and b.
func CenterDistance(a, b Sphere) float64 {
	return r3.Norm(r3.Sub(a.Center(), b.Center()))
}

//Fit returns the sphere that best fits points, in the least squares sense. See FitMatrix.
func Fit(points [][3]float64, o *Options) (Sphere, error) {
	if o == nil {
		o = DefaultOptions()
	}
	if len(points) < o.MinPoints() {
		return Sphere{}, chem.NewInsufficientDataError("too few points for a sphere fit", len(points), o.MinPoints(), "sphere.Fit")
	}
	coords, err := v3.FromPoints(points)
	if err != nil {
		return Sphere{}, fmt.Errorf("sphere.Fit: %w", err)
	}
	s, err := FitMatrix(coords, o)
	return s, chem.ErrDecorate(err, "sphere.Fit")
}

//FitMatrix returns the sphere that best fits the vectors in coords, in the least squares sense,
//minimizing the algebraic residuals (x-x0)²+(y-y0)²+(z-z0)²-r² over all points. The fit starts
//from the centroid of the points, with the distance from the first point to the centroid as radius.
//A nil o means DefaultOptions(). If there are fewer than o.MinPoints() points, FitMatrix returns
//an InsufficientDataError. The radius is always positive. coords is not modified.
func FitMatrix(coords *v3.Matrix, o *Options) (Sphere, error) {
	if o == nil {
		o = DefaultOptions()
	}
	if coords == nil || coords.NVecs() < o.MinPoints() {
		have := 0
		if coords != nil {
			have = coords.NVecs()
		}
		return Sphere{}, chem.NewInsufficientDataError("too few points for a sphere fit", have, o.MinPoints(), "sphere.FitMatrix")
	}
	//The fit works on the coordinates centered at their centroid, so the initial center is the origin.
	centroid := coords.Centroid()
	centered := v3.Zeros(coords.NVecs())
	centered.SubVec(coords, centroid)
	n := centered.NVecs()
	xs := centered.Points()
	res := make([]float64, n)
	//residuals puts on res the algebraic residual of each point for the parameters p (x0,y0,z0,r).
	residuals := func(p []float64) {
		for i, v := range xs {
			dx, dy, dz := v[0]-p[0], v[1]-p[1], v[2]-p[2]
			res[i] = dx*dx + dy*dy + dz*dz - p[3]*p[3]
		}
	}
	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			residuals(p)
			return floats.Dot(res, res)
		},
		Grad: func(grad, p []float64) {
			residuals(p)
			for j := range grad {
				grad[j] = 0
			}
			for i, v := range xs {
				grad[0] -= 4 * res[i] * (v[0] - p[0])
				grad[1] -= 4 * res[i] * (v[1] - p[1])
				grad[2] -= 4 * res[i] * (v[2] - p[2])
			}
			grad[3] = -4 * p[3] * floats.Sum(res)
		},
	}
	x0 := []float64{0, 0, 0, r3.Norm(centered.Vec(0))}
	if x0[3] < 1e-12 {
		//the radius would never leave zero. Use the mean distance to the centroid instead.
		for i := 0; i < n; i++ {
			x0[3] += r3.Norm(centered.Vec(i)) / float64(n)
		}
	}
	settings := &optimize.Settings{
		GradientThreshold: o.GradTol(),
		MajorIterations:   o.MaxIterations(),
	}
	result, err := optimize.Minimize(problem, x0, settings, &optimize.BFGS{})
	if result == nil {
		return Sphere{}, fmt.Errorf("sphere.FitMatrix: %w", err)
	}
	//Otherwise, result holds the best point found, even if the optimizer stopped early
	//(typically a line search unable to improve on an exact fit).
	p := result.X
	if floats.HasNaN(p) {
		return Sphere{}, chem.NewInsufficientDataError("sphere fit diverged", n, -1, "sphere.FitMatrix")
	}
	return Sphere{X: p[0] + centroid.X, Y: p[1] + centroid.Y, Z: p[2] + centroid.Z, R: math.Abs(p[3])}, nil
}

//Circle describes the intersection of two spheres.
type Circle struct {
	Circumference float64
	//HalfAngle is the half of the angle subtended by the circle, seen from the center of the first sphere.
	HalfAngle float64
	Radius    float64
	//PlaneDistance is the signed distance from the center of the first sphere to the plane
	//of the circle, positive towards the center of the second sphere.
	PlaneDistance float64
}

//IntersectionCircle returns the circle where the spheres a and b intersect. The plane of the
//circle (the radical plane) is at a distance D = (d²+ra²-rb²)/2d from the center of a, where
//d is the distance between the centers, and the radius of the circle is sqrt(ra²-D²). The
//half angle is atan(r/|D|), or π/2 if the plane contains the center of a. Concentric spheres,
//and spheres that don't intersect, give an InsufficientDataError.
func IntersectionCircle(a, b Sphere) (Circle, error) {
	d := CenterDistance(a, b)
	if d < 1e-12 {
		return Circle{}, chem.NewInsufficientDataError("concentric spheres have no intersection plane", -1, -1, "sphere.IntersectionCircle")
	}
	D := (d*d + a.R*a.R - b.R*b.R) / (2 * d)
	r2 := a.R*a.R - D*D
	if r2 < 0 {
		return Circle{}, chem.NewInsufficientDataError(fmt.Sprintf("spheres (%s) and (%s) don't intersect", a, b), -1, -1, "sphere.IntersectionCircle")
	}
	r := math.Sqrt(r2)
	half := math.Pi / 2
	if D != 0 {
		half = math.Atan(r / math.Abs(D))
	}
	return Circle{Circumference: 2 * math.Pi * r, HalfAngle: half, Radius: r, PlaneDistance: D}, nil
}
