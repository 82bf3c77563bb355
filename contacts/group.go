/*
 * group.go, part of fusechem.
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

//Package contacts groups the residues of a structure around given active residues,
//using alpha-carbon distances.
package contacts

import (
	"fmt"
	"math"

	chem "github.com/sysu-software/fusechem"
)

//DefaultThreshold is the default CA-CA distance cutoff, in A.
const DefaultThreshold = 4.0

//NeighborGroup is an active residue and the residues around it, all given
//by their residue numbers.
type NeighborGroup struct {
	Active    int
	Neighbors []int
}

func (N NeighborGroup) String() string {
	return fmt.Sprintf("%d: %v", N.Active, N.Neighbors)
}

//Group returns, for each active residue number, the numbers of the residues of ref whose alpha
//carbons are closer than threshold to the active residue's alpha carbon. Only the first chains
//are considered. Active residues not present in both ref and cand are dropped, and so are the
//residues of ref not present in cand (usually cand is ref transplanted onto another
//structure, which only contains the aligned residues). Neighbors are listed in the
//order of the ref chain. Active residues without neighbors are omitted, and if no group is left,
//Group returns an InsufficientDataError.
func Group(active []int, ref, cand *chem.Structure, threshold float64) ([]NeighborGroup, error) {
	if threshold < 0 || math.IsNaN(threshold) {
		return nil, chem.NewInputError(fmt.Sprintf("invalid distance threshold %f", threshold), "contacts.Group")
	}
	refchain, err := ref.FirstChain()
	if err != nil {
		return nil, chem.ErrDecorate(err, "contacts.Group")
	}
	candchain, err := cand.FirstChain()
	if err != nil {
		return nil, chem.ErrDecorate(err, "contacts.Group")
	}
	filtered := make([]*chem.Residue, 0, len(refchain.Residues))
	for _, r := range refchain.Residues {
		if candchain.Has(r.ID) {
			filtered = append(filtered, r)
		}
	}
	//the active residues that are not among the filtered ones are added at the end
	//of the list, so the graph has them, but they are never reported as neighbors.
	nfiltered := len(filtered)
	candnumbers := candchain.Numbers()
	nodes := filtered
	activeidx := make([]int, 0, len(active))
	actives := make([]int, 0, len(active))
	seen := make(map[int]bool, len(active))
	for _, a := range active {
		if seen[a] {
			continue
		}
		seen[a] = true
		r1, ok := refchain.ByNumber(a)
		if !ok || !candnumbers[a] {
			continue
		}
		idx := -1
		for i, r := range filtered {
			if r == r1 {
				idx = i
				break
			}
		}
		if idx < 0 {
			nodes = append(nodes, r1)
			idx = len(nodes) - 1
		}
		activeidx = append(activeidx, idx)
		actives = append(actives, a)
	}
	g := NewContactGraph(nodes, threshold)
	groups := make([]NeighborGroup, 0, len(actives))
	for k, idx := range activeidx {
		neighbors := make([]int, 0)
		for _, r := range g.Neighbors(idx) {
			if int(r.ID()) >= nfiltered || r.Residue.ID.Number == actives[k] {
				continue
			}
			neighbors = append(neighbors, r.Residue.ID.Number)
		}
		if len(neighbors) > 0 {
			groups = append(groups, NeighborGroup{Active: actives[k], Neighbors: neighbors})
		}
	}
	if len(groups) == 0 {
		return nil, chem.NewInsufficientDataError("no active residue has neighbors", 0, 1, "contacts.Group")
	}
	return groups, nil
}
