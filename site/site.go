/*
 * site.go, part of fusechem.
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

//Package site computes the geometry of an enzyme's active site once the enzyme is part of a
//fusion chain: a sphere fitted to the whole enzyme, a sphere fitted to the active residue,
//and the circle where both intersect.
package site

import (
	"fmt"

	chem "github.com/sysu-software/fusechem"
	"github.com/sysu-software/fusechem/align"
	"github.com/sysu-software/fusechem/sphere"
	v3 "github.com/sysu-software/fusechem/v3"
)

//Geometry contains the active site geometry of one enzyme in a fusion chain.
type Geometry struct {
	Circle sphere.Circle
	Enzyme sphere.Sphere //fitted to all the atoms of the enzyme in the fusion chain.
	Active sphere.Sphere //fitted to the atoms of the active residue.
	//First and Last are the indexes (inclusive) of the active residue atoms
	//among the coordinates of the aligned residues.
	First, Last int
	Residue     int //fusion chain number of the active residue.
	Range       *align.Range
}

//GeometryFiles reads the enzyme and the fusion chain structures from the given files
//and returns GeometryOf them.
func GeometryFiles(enzymePath, fusionPath, query string) (*Geometry, error) {
	enzyme, err := chem.PDBFileRead(enzymePath)
	if err != nil {
		return nil, chem.ErrDecorate(err, "site.GeometryFiles")
	}
	fusion, err := chem.PDBFileRead(fusionPath)
	if err != nil {
		return nil, chem.ErrDecorate(err, "site.GeometryFiles")
	}
	g, err := GeometryOf(enzyme, fusion, query)
	return g, chem.ErrDecorate(err, "site.GeometryFiles")
}

//tagged returns the coordinates of all the atoms of the residues of c with the
//given indexes, in order, and the residue number of each coordinate.
func tagged(c *chem.Chain, indexes []int) ([][3]float64, []int) {
	residues := make([]*chem.Residue, len(indexes))
	numbers := make([]int, 0, len(indexes)*8)
	for k, i := range indexes {
		residues[k] = c.Residues[i]
		for range c.Residues[i].Atoms {
			numbers = append(numbers, c.Residues[i].ID.Number)
		}
	}
	return chem.Coords(residues), numbers
}

//run returns the first and last (inclusive) indexes of the contiguous run of elements of
//numbers equal to the first one that is >= target.
func run(numbers []int, target int) (int, int, bool) {
	first := -1
	for i, n := range numbers {
		if n >= target {
			first = i
			break
		}
	}
	if first < 0 {
		return -1, -1, false
	}
	last := first
	for last+1 < len(numbers) && numbers[last+1] == numbers[first] {
		last++
	}
	return first, last, true
}

//GeometryOf aligns the sequence of the enzyme onto that of the fusion chain, and takes the
//coordinates of the aligned fusion residues. query is the active residue, as a label like
//"TRP124", numbered as in the enzyme. Its offset from the first aligned enzyme residue is applied
//to the first aligned fusion residue, to find the atoms of the active residue in the fusion chain.
//Leading residues that are not amino acids, like caps, don't shift the offset.
//One sphere is fitted to all the coordinates, another to those of the active residue,
//and the intersection circle of both is computed.
//Unrelated sequences give an AlignmentMismatchError and malformed queries, or queries
//for residues that are not among the aligned residues of the enzyme, an InputError.
func GeometryOf(enzyme, fusion *chem.Structure, query string) (*Geometry, error) {
	_, number, err := chem.ParseResidueLabel(query)
	if err != nil {
		return nil, chem.ErrDecorate(err, "site.GeometryOf")
	}
	r, enzseq, fusseq, err := align.Structures(enzyme, fusion)
	if err != nil {
		return nil, chem.ErrDecorate(err, "site.GeometryOf")
	}
	if r == nil {
		return nil, chem.NewAlignmentMismatchError(enzyme.Name, fusion.Name, "site.GeometryOf")
	}
	pairs, err := r.Pairs(enzseq, fusseq)
	if err != nil {
		return nil, chem.ErrDecorate(err, "site.GeometryOf")
	}
	enzchain, _ := enzyme.FirstChain() //Structures would have failed otherwise.
	fuschain, _ := fusion.FirstChain()
	coords, numbers := tagged(fuschain, align.Positions(pairs))
	if len(coords) == 0 {
		return nil, chem.NewInsufficientDataError("no atoms in the aligned residues", 0, 1, "site.GeometryOf")
	}
	start := enzchain.Residues[pairs[0].Src].ID.Number
	if number < start || !enzchain.HasNumber(number) {
		return nil, chem.NewInputError(fmt.Sprintf("residue %s is not among the aligned residues of %s", query, enzyme.Name), "site.GeometryOf")
	}
	target := numbers[0] + number - start
	first, last, ok := run(numbers, target)
	if !ok {
		return nil, chem.NewInputError(fmt.Sprintf("residue %s (%d in %s) is past the aligned residues", query, target, fusion.Name), "site.GeometryOf")
	}
	m, err := v3.FromPoints(coords)
	if err != nil {
		return nil, fmt.Errorf("site.GeometryOf: %w", err)
	}
	enz, err := sphere.FitMatrix(m, nil)
	if err != nil {
		return nil, chem.ErrDecorate(err, "site.GeometryOf")
	}
	act, err := sphere.FitMatrix(m.View(first, last-first+1), nil)
	if err != nil {
		return nil, chem.ErrDecorate(err, "site.GeometryOf")
	}
	circle, err := sphere.IntersectionCircle(enz, act)
	if err != nil {
		return nil, chem.ErrDecorate(err, "site.GeometryOf")
	}
	return &Geometry{Circle: circle, Enzyme: enz, Active: act, First: first, Last: last, Residue: numbers[first], Range: r}, nil
}

//Pair contains the parameters comparing the active sites of two enzymes in the same fusion chain.
type Pair struct {
	Circumference1, HalfAngle1, Radius1 float64
	Circumference2, HalfAngle2, Radius2 float64
	CenterDistance                      float64 //distance between the centers of the active site spheres.
	Geometry1, Geometry2                *Geometry
}

//Values returns the 7 parameters of the pair, in order.
func (P *Pair) Values() [7]float64 {
	return [7]float64{P.Circumference1, P.HalfAngle1, P.Radius1, P.Circumference2, P.HalfAngle2, P.Radius2, P.CenterDistance}
}

//Compare computes the active site geometry of the enzymes in the files e1 and e2, with the active
//residues q1 and q2, within the fusion chain in the file fusion. The radii in the Pair are those
//of the enzyme spheres. The first error found is returned.
func Compare(e1, e2, fusion, q1, q2 string) (*Pair, error) {
	s := make([]*chem.Structure, 3)
	for i, path := range []string{e1, e2, fusion} {
		var err error
		if s[i], err = chem.PDBFileRead(path); err != nil {
			return nil, chem.ErrDecorate(err, "site.Compare")
		}
	}
	p, err := CompareOf(s[0], s[1], s[2], q1, q2)
	return p, chem.ErrDecorate(err, "site.Compare")
}

//CompareOf is like Compare, but takes structures in memory.
func CompareOf(e1, e2, fusion *chem.Structure, q1, q2 string) (*Pair, error) {
	g1, err := GeometryOf(e1, fusion, q1)
	if err != nil {
		return nil, chem.ErrDecorate(err, "site.CompareOf")
	}
	g2, err := GeometryOf(e2, fusion, q2)
	if err != nil {
		return nil, chem.ErrDecorate(err, "site.CompareOf")
	}
	return pair(g1, g2), nil
}

func pair(g1, g2 *Geometry) *Pair {
	return &Pair{
		Circumference1: g1.Circle.Circumference,
		HalfAngle1:     g1.Circle.HalfAngle,
		Radius1:        g1.Enzyme.R,
		Circumference2: g2.Circle.Circumference,
		HalfAngle2:     g2.Circle.HalfAngle,
		Radius2:        g2.Enzyme.R,
		CenterDistance: sphere.CenterDistance(g1.Active, g2.Active),
		Geometry1:      g1,
		Geometry2:      g2,
	}
}

//CompareTriple compares three enzymes placed in two fusion chains: e1 and e2 in fusion12,
//and e2 and e3 in fusion23. q1, q2 and q3 are the active residues.
func CompareTriple(e1, e2, e3, fusion12, fusion23, q1, q2, q3 string) (*Pair, *Pair, error) {
	p12, err := Compare(e1, e2, fusion12, q1, q2)
	if err != nil {
		return nil, nil, chem.ErrDecorate(err, "site.CompareTriple")
	}
	p23, err := Compare(e2, e3, fusion23, q2, q3)
	if err != nil {
		return nil, nil, chem.ErrDecorate(err, "site.CompareTriple")
	}
	return p12, p23, nil
}
