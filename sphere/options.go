/*
 * options.go, part of fusechem.
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

//Options contains the options for the sphere fit.
type Options struct {
	minPoints     int
	gradTol       float64
	maxIterations int
}

//DefaultOptions returns the default options for Fit: at least 4 points,
//a gradient threshold of 1e-10 and up to 1000 iterations.
func DefaultOptions() *Options {
	O := new(Options)
	O.minPoints = 4
	O.gradTol = 1e-10
	O.maxIterations = 1000
	return O
}

//MinPoints returns the minimum number of points needed for a fit, and sets it
//to a new value, if given. Values below 4 are ignored, as 4 points are the
//minimum to determine a sphere.
func (O *Options) MinPoints(n ...int) int {
	if len(n) > 0 && n[0] >= 4 {
		O.minPoints = n[0]
	}
	return O.minPoints
}

//GradTol returns the gradient norm below which the fit is considered converged,
//and sets it to a new value, if given.
func (O *Options) GradTol(t ...float64) float64 {
	if len(t) > 0 && t[0] > 0 {
		O.gradTol = t[0]
	}
	return O.gradTol
}

//MaxIterations returns the maximum number of iterations for the fit,
//and sets it to a new value, if given.
func (O *Options) MaxIterations(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.maxIterations = n[0]
	}
	return O.maxIterations
}
