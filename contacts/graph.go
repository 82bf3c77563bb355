/*
 * graph.go, part of fusechem.
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

package contacts

import (
	"math"

	chem "github.com/sysu-software/fusechem"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/spatial/r3"
)

//Residue wraps a chem.Residue so it can be a node in a gonum graph.
//The node ID is the position of the residue in the list the graph was built from.
type Residue struct {
	*chem.Residue
	index int64
}

//ID implements graph.Node
func (R *Residue) ID() int64 {
	return R.index
}

//ca returns the alpha-carbon coordinates of the residue
func (R *Residue) ca() (r3.Vec, bool) {
	a, ok := R.CA()
	if !ok {
		return r3.Vec{}, false
	}
	return r3.Vec{X: a.Coord[0], Y: a.Coord[1], Z: a.Coord[2]}, true
}

//Contact is an undirected edge between two residues whose alpha carbons are closer than the
//graph threshold. The weight is the CA-CA distance.
type Contact struct {
	R1, R2   *Residue
	Distance float64
}

func (C Contact) From() graph.Node {
	return C.R1
}

func (C Contact) To() graph.Node {
	return C.R2
}

func (C Contact) ReversedEdge() graph.Edge {
	return Contact{R1: C.R2, R2: C.R1, Distance: C.Distance}
}

func (C Contact) Weight() float64 {
	return C.Distance
}

//ContactGraph is the undirected graph of CA-CA contacts among a list of residues.
type ContactGraph struct {
	*simple.WeightedUndirectedGraph
	Residues  []*Residue
	Threshold float64
}

//NewContactGraph returns the graph with one node per residue in residues, in order,
//and an edge between every two residues whose alpha carbons are closer than threshold.
//Residues without an alpha carbon are nodes without edges.
func NewContactGraph(residues []*chem.Residue, threshold float64) *ContactGraph {
	g := &ContactGraph{
		WeightedUndirectedGraph: simple.NewWeightedUndirectedGraph(0, math.Inf(1)),
		Residues:                make([]*Residue, len(residues)),
		Threshold:               threshold,
	}
	cas := make([]r3.Vec, len(residues))
	hasca := make([]bool, len(residues))
	for i, r := range residues {
		g.Residues[i] = &Residue{Residue: r, index: int64(i)}
		g.AddNode(g.Residues[i])
		cas[i], hasca[i] = g.Residues[i].ca()
	}
	for i := range residues {
		if !hasca[i] {
			continue
		}
		for j := i + 1; j < len(residues); j++ {
			if !hasca[j] {
				continue
			}
			d := r3.Norm(r3.Sub(cas[i], cas[j]))
			if d < threshold {
				g.SetWeightedEdge(Contact{R1: g.Residues[i], R2: g.Residues[j], Distance: d})
			}
		}
	}
	return g
}

//Neighbors returns the residues in contact with the ith residue of the graph,
//in the order of the list the graph was built from.
func (C *ContactGraph) Neighbors(i int) []*Residue {
	ret := make([]*Residue, 0)
	for j, r := range C.Residues {
		if j != i && C.HasEdgeBetween(int64(i), int64(j)) {
			ret = append(ret, r)
		}
	}
	return ret
}

//Distance returns the CA-CA distance between the residues i and j of the graph,
//and false if they are not in contact.
func (C *ContactGraph) Distance(i, j int) (float64, bool) {
	if i == j {
		return 0, true
	}
	e := C.WeightedEdge(int64(i), int64(j))
	if e == nil {
		return -1, false
	}
	return e.Weight(), true
}
