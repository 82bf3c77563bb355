/*
 * sphere_test.go, part of fusechem.
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

package sphere

import (
	"math"
	"math/rand"
	"testing"

	chem "github.com/sysu-software/fusechem"
	v3 "github.com/sysu-software/fusechem/v3"
)

//onSphere returns n random points on the sphere s.
func onSphere(rnd *rand.Rand, n int, s Sphere) [][3]float64 {
	ret := make([][3]float64, n)
	for i := range ret {
		x, y, z := rnd.NormFloat64(), rnd.NormFloat64(), rnd.NormFloat64()
		norm := math.Sqrt(x*x + y*y + z*z)
		ret[i] = [3]float64{s.X + s.R*x/norm, s.Y + s.R*y/norm, s.Z + s.R*z/norm}
	}
	return ret
}

func TestFit(Te *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for k := 0; k < 20; k++ {
		want := Sphere{R: 0.5 + 20*rnd.Float64()}
		if k%2 == 1 {
			want.X, want.Y, want.Z = 30*rnd.Float64(), -10*rnd.Float64(), 5
		}
		got, err := Fit(onSphere(rnd, 8+rnd.Intn(60), want), nil)
		if err != nil {
			Te.Fatal(err)
		}
		tol := 1e-6 * math.Max(1, want.R)
		if math.Abs(got.R-want.R) > tol || CenterDistance(got, want) > tol {
			Te.Errorf("fit %d: want %s, got %s", k, want, got)
		}
	}
}

func TestFitMatrixView(Te *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	s1 := Sphere{X: -20, R: 12}
	s2 := Sphere{X: 10, Y: 4, Z: -3, R: 2.5}
	points := append(onSphere(rnd, 30, s1), onSphere(rnd, 12, s2)...)
	m, err := v3.FromPoints(points)
	if err != nil {
		Te.Fatal(err)
	}
	got, err := FitMatrix(m.View(30, 12), nil)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(got.R-s2.R) > 1e-6 || CenterDistance(got, s2) > 1e-6 {
		Te.Errorf("want %s, got %s", s2, got)
	}
	p := m.Points()
	for i := range points {
		if p[i] != points[i] {
			Te.Fatalf("the fit changed the coordinates of point %d", i)
		}
	}
	if _, err := FitMatrix(m.View(0, 3), nil); !chem.IsInsufficient(err) {
		Te.Errorf("expected an InsufficientDataError, got %v", err)
	}
}

func TestFitTooFewPoints(Te *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	_, err := Fit(onSphere(rnd, 3, Sphere{R: 1}), nil)
	if !chem.IsInsufficient(err) {
		Te.Errorf("expected an InsufficientDataError, got %v", err)
	}
	o := DefaultOptions()
	o.MinPoints(10)
	if _, err = Fit(onSphere(rnd, 6, Sphere{R: 1}), o); !chem.IsInsufficient(err) {
		Te.Errorf("the MinPoints option was not honored: %v", err)
	}
	o.MinPoints(2)
	if o.MinPoints() != 10 {
		Te.Errorf("MinPoints must not go below 4")
	}
}

func TestIntersectionCircle(Te *testing.T) {
	c, err := IntersectionCircle(Sphere{R: 1}, Sphere{X: 1, R: 1})
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(c.Radius-math.Sqrt(0.75)) > 1e-12 || math.Abs(c.PlaneDistance-0.5) > 1e-12 {
		Te.Errorf("wrong circle %+v", c)
	}
	if math.Abs(c.HalfAngle-math.Pi/3) > 1e-12 || math.Abs(c.Circumference-2*math.Pi*c.Radius) > 1e-12 {
		Te.Errorf("wrong angle or circumference %+v", c)
	}
	//the plane contains the center of the first sphere
	c, err = IntersectionCircle(Sphere{R: 1}, Sphere{Y: 1, R: math.Sqrt2})
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(c.HalfAngle-math.Pi/2) > 1e-9 || math.Abs(c.Radius-1) > 1e-9 {
		Te.Errorf("wrong circle %+v", c)
	}
	if _, err = IntersectionCircle(Sphere{X: 2, R: 3}, Sphere{X: 2, R: 3}); !chem.IsInsufficient(err) {
		Te.Errorf("identical spheres should give an InsufficientDataError, got %v", err)
	}
	if _, err = IntersectionCircle(Sphere{R: 1}, Sphere{X: 5, R: 1}); !chem.IsInsufficient(err) {
		Te.Errorf("disjoint spheres should give an InsufficientDataError, got %v", err)
	}
	c, err = IntersectionCircle(Sphere{R: 10}, Sphere{X: 9, R: 3})
	if err != nil || math.IsNaN(c.HalfAngle) || c.Circumference <= 0 {
		Te.Errorf("a small sphere on the surface of a large one: %+v %v", c, err)
	}
}
