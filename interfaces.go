/*
 * interfaces.go, part of fusechem.
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

package chem

//Selector decides which residues are written to a structure file.
type Selector interface {
	AcceptResidue(chainID string, r *Residue) bool
}

//ResidueSet is a Selector that accepts only the residues with the ids in the set,
//in any chain. Build it with NewResidueSet, so blank insertion codes match.
type ResidueSet map[ResID]bool

//NewResidueSet returns a set with the given ids.
func NewResidueSet(ids []ResID) ResidueSet {
	ret := make(ResidueSet, len(ids))
	for _, v := range ids {
		ret[v.canonical()] = true
	}
	return ret
}

//AcceptResidue implements Selector.
func (R ResidueSet) AcceptResidue(chainID string, r *Residue) bool {
	return R[r.ID.canonical()]
}

//ChainResidues is a Selector that accepts the residues in Set belonging to the chain Chain.
type ChainResidues struct {
	Chain string
	Set   ResidueSet
}

//AcceptResidue implements Selector.
func (C ChainResidues) AcceptResidue(chainID string, r *Residue) bool {
	return chainID == C.Chain && C.Set.AcceptResidue(chainID, r)
}

//Errors

//Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
//error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
	//The decorate slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}
