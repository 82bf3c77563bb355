/*
 * chem.go, part of fusechem.
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

import (
	"fmt"
	"strings"
)

//Atom contains one atom record. The coordinates are kept in the atom itself,
//since structures here are always single-frame.
type Atom struct {
	Name      string
	ID        int //serial number as read from the file
	Symbol    string
	AltLoc    byte
	Occupancy float64
	Bfactor   float64
	Het       bool // is hetatm in the pdb file?
	Coord     [3]float64
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	newat := *A
	return &newat
}

//ResID identifies a residue within a chain. It is insertion-code aware
//and comparable, so it can be used as a map key.
//A blank insertion code can be given as ' ' or as 0, both compare equal in lookups.
type ResID struct {
	Het    string //"H_" plus the residue name for HETATM residues, "W" for waters, "" otherwise.
	Number int
	ICode  byte
}

//canonical returns the id with a blank insertion code always as ' '.
func (R ResID) canonical() ResID {
	if R.ICode == 0 {
		R.ICode = ' '
	}
	return R
}

//String returns the number followed by the insertion code, if any.
func (R ResID) String() string {
	if R.ICode == 0 || R.ICode == ' ' {
		return fmt.Sprintf("%d", R.Number)
	}
	return fmt.Sprintf("%d%c", R.Number, R.ICode)
}

//Residue is one amino acid (or ligand, or water) unit of a chain.
type Residue struct {
	ID    ResID
	Name  string
	Atoms []*Atom
}

//Atom returns the atom with the given name and true, or nil and false
//if the residue has no such atom. When alternate locations exist, the first
//one read is returned.
func (R *Residue) Atom(name string) (*Atom, bool) {
	for _, a := range R.Atoms {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

//CA returns the alpha-carbon of the residue.
func (R *Residue) CA() (*Atom, bool) {
	return R.Atom("CA")
}

//Label returns the residue name followed by its number, as in "TRP124".
func (R *Residue) Label() string {
	return fmt.Sprintf("%s%s", strings.TrimSpace(R.Name), R.ID)
}

//Copy returns a deep copy of the residue.
func (R *Residue) Copy() *Residue {
	r := &Residue{ID: R.ID, Name: R.Name, Atoms: make([]*Atom, len(R.Atoms))}
	for i, a := range R.Atoms {
		r.Atoms[i] = a.Copy()
	}
	return r
}

//Chain is an ordered sequence of residues.
type Chain struct {
	ID       string
	Residues []*Residue
}

//Index returns the position of the residue with the given id in the chain,
//or -1 if it is not there.
func (C *Chain) Index(id ResID) int {
	id = id.canonical()
	for i, r := range C.Residues {
		if r.ID.canonical() == id {
			return i
		}
	}
	return -1
}

//Residue returns the residue with the given id.
func (C *Chain) Residue(id ResID) (*Residue, bool) {
	i := C.Index(id)
	if i < 0 {
		return nil, false
	}
	return C.Residues[i], true
}

//Has returns true if a residue with the given id is in the chain.
func (C *Chain) Has(id ResID) bool {
	return C.Index(id) >= 0
}

//ByNumber returns the first standard (non-hetero) residue with the given number
//and no insertion code.
func (C *Chain) ByNumber(n int) (*Residue, bool) {
	return C.Residue(ResID{Number: n, ICode: ' '})
}

//HasNumber returns true if the chain contains a standard residue numbered n.
func (C *Chain) HasNumber(n int) bool {
	_, ok := C.ByNumber(n)
	return ok
}

//Numbers returns the set of standard residue numbers in the chain.
func (C *Chain) Numbers() map[int]bool {
	ret := make(map[int]bool, len(C.Residues))
	for _, r := range C.Residues {
		if r.ID.Het == "" && r.ID.canonical().ICode == ' ' {
			ret[r.ID.Number] = true
		}
	}
	return ret
}

//Len returns the number of atoms in the chain.
func (C *Chain) Len() int {
	n := 0
	for _, r := range C.Residues {
		n += len(r.Atoms)
	}
	return n
}

//Copy returns a deep copy of the chain.
func (C *Chain) Copy() *Chain {
	c := &Chain{ID: C.ID, Residues: make([]*Residue, len(C.Residues))}
	for i, r := range C.Residues {
		c.Residues[i] = r.Copy()
	}
	return c
}

//Structure is the hierarchical chain/residue/atom model of one model of a
//structure file.
type Structure struct {
	Name   string
	Path   string //the file the structure was read from, if any.
	Chains []*Chain
}

//FirstChain returns the first chain of the structure, which is the one
//all the analyses work on.
func (S *Structure) FirstChain() (*Chain, error) {
	if S == nil || len(S.Chains) == 0 || S.Chains[0] == nil {
		name := ""
		if S != nil {
			name = S.Name
		}
		return nil, NewInputError(fmt.Sprintf("structure %q has no chains", name), "FirstChain")
	}
	return S.Chains[0], nil
}

//Chain returns the chain with the given id.
func (S *Structure) Chain(id string) (*Chain, bool) {
	for _, c := range S.Chains {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

//Len returns the total number of atoms in the structure.
func (S *Structure) Len() int {
	n := 0
	for _, c := range S.Chains {
		n += c.Len()
	}
	return n
}

//Atom returns the ith atom of the structure, counting in file order. Panics if
//out of range.
func (S *Structure) Atom(i int) *Atom {
	cont := 0
	for _, c := range S.Chains {
		for _, r := range c.Residues {
			if i < cont+len(r.Atoms) {
				return r.Atoms[i-cont]
			}
			cont += len(r.Atoms)
		}
	}
	panic("Structure: Requested Atom out of bounds")
}

//Copy returns a deep copy of the structure, topology and coordinates.
func (S *Structure) Copy() *Structure {
	s := &Structure{Name: S.Name, Path: S.Path, Chains: make([]*Chain, len(S.Chains))}
	for i, c := range S.Chains {
		s.Chains[i] = c.Copy()
	}
	return s
}

//Coords returns the coordinates of all atoms of the given residues, in order.
func Coords(residues []*Residue) [][3]float64 {
	ret := make([][3]float64, 0, len(residues)*8)
	for _, r := range residues {
		for _, a := range r.Atoms {
			ret = append(ret, a.Coord)
		}
	}
	return ret
}
