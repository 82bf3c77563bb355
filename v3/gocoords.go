/*
 * gocoords.go, part of fusechem.
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

package v3

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//Vec returns the ith vector of F as an r3.Vec.
func (F *Matrix) Vec(i int) r3.Vec {
	return r3.Vec{X: F.At(i, 0), Y: F.At(i, 1), Z: F.At(i, 2)}
}

//Points returns a copy of the vectors in F.
func (F *Matrix) Points() [][3]float64 {
	ret := make([][3]float64, F.NVecs())
	for i := range ret {
		ret[i] = [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
	}
	return ret
}

//Centroid returns the geometric center of the vectors in F.
func (F *Matrix) Centroid() r3.Vec {
	n := F.NVecs()
	col := make([]float64, n)
	var c [3]float64
	for j := 0; j < 3; j++ {
		mat.Col(col, j, F)
		c[j] = stat.Mean(col, nil)
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}
}

//SubVec subtracts the vector vec from each vector of the matrix A, putting
//the result on the receiver. Panics if matrices are mismatched.
func (F *Matrix) SubVec(A *Matrix, vec r3.Vec) {
	ar, _ := A.Dims()
	fr, _ := F.Dims()
	if ar != fr {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		F.Set(i, 0, A.At(i, 0)-vec.X)
		F.Set(i, 1, A.At(i, 1)-vec.Y)
		F.Set(i, 2, A.At(i, 2)-vec.Z)
	}
}
