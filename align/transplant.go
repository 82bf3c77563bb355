/*
 * transplant.go, part of fusechem.
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

package align

import (
	"fmt"
	"path/filepath"

	chem "github.com/sysu-software/fusechem"
)

//Transplant builds a copy of src where the coordinates of the residues aligned by r are
//replaced with those of the corresponding residues of tar. Residues correspond by their
//position in the first chains, not by their numbers. Each atom takes the coordinates of the
//target atom with the same name, or those of the target alpha carbon if the target residue
//lacks it. Transplant returns the new structure and the ids of the residues processed,
//in order. A nil r gives an AlignmentMismatchError.
func Transplant(src, tar *chem.Structure, r *Range) (*chem.Structure, []chem.ResID, error) {
	return transplant(src, tar, r, DefaultOptions().Fallback())
}

func transplant(src, tar *chem.Structure, r *Range, fallback string) (*chem.Structure, []chem.ResID, error) {
	if r == nil {
		return nil, nil, chem.NewAlignmentMismatchError(src.Name, tar.Name, "align.Transplant")
	}
	srcseq, err := src.Sequence()
	if err != nil {
		return nil, nil, chem.ErrDecorate(err, "align.Transplant")
	}
	tarseq, err := tar.Sequence()
	if err != nil {
		return nil, nil, chem.ErrDecorate(err, "align.Transplant")
	}
	pairs, err := r.Pairs(srcseq, tarseq)
	if err != nil {
		return nil, nil, chem.ErrDecorate(err, "align.Transplant")
	}
	newstr := src.Copy()
	newchain, _ := newstr.FirstChain() //can't fail, src has a first chain.
	tarchain, _ := tar.FirstChain()
	processed := make([]chem.ResID, 0, len(pairs))
	for _, p := range pairs {
		nres := newchain.Residues[p.Src]
		tres := tarchain.Residues[p.Tar]
		processed = append(processed, nres.ID)
		for _, at := range nres.Atoms {
			tat, ok := tres.Atom(at.Name)
			if !ok {
				tat, ok = tres.Atom(fallback)
			}
			if !ok {
				return nil, nil, chem.NewInputError(fmt.Sprintf("residue %s of %q has neither %s nor %s", tres.Label(), tar.Name, at.Name, fallback), "align.Transplant")
			}
			at.Coord = tat.Coord
		}
	}
	return newstr, processed, nil
}

//Result contains the information returned by TransplantFiles
type Result struct {
	Source       *chem.Structure //the source structure, as read.
	Transplanted *chem.Structure //the transplanted structure, as read back from Path.
	Path         string          //the file with the transplanted structure. The caller should delete it.
	ChainID      string          //the id of the first chain of the transplanted structure.
	Range        *Range
}

//TransplantPath returns the path where TransplantFiles writes the transplanted
//structure for srcpath, given the options o.
func TransplantPath(srcpath string, o *Options) string {
	if o == nil {
		o = DefaultOptions()
	}
	dir := o.OutDir()
	if dir == "" {
		dir = filepath.Dir(srcpath)
	}
	return filepath.Join(dir, o.Prefix()+chem.FileID(srcpath)+".pdb")
}

//TransplantFiles reads the structures in srcpath and tarpath, aligns them, transplants the
//coordinates of the target onto the source, and writes the residues processed to a file
//(see TransplantPath). The written file is read back, and the structure read is returned
//together with the path, as later steps use the file rather than the structure in memory.
//A nil o means DefaultOptions().
func TransplantFiles(srcpath, tarpath string, o *Options) (*Result, error) {
	if o == nil {
		o = DefaultOptions()
	}
	src, err := chem.PDBFileRead(srcpath)
	if err != nil {
		return nil, chem.ErrDecorate(err, "align.TransplantFiles")
	}
	tar, err := chem.PDBFileRead(tarpath)
	if err != nil {
		return nil, chem.ErrDecorate(err, "align.TransplantFiles")
	}
	r, _, _, err := Structures(src, tar)
	if err != nil {
		return nil, chem.ErrDecorate(err, "align.TransplantFiles")
	}
	newstr, processed, err := transplant(src, tar, r, o.Fallback())
	if err != nil {
		return nil, chem.ErrDecorate(err, "align.TransplantFiles")
	}
	newchain, _ := newstr.FirstChain()
	newpath := TransplantPath(srcpath, o)
	if err := chem.PDBFileWrite(newpath, newstr, chem.ChainResidues{Chain: newchain.ID, Set: chem.NewResidueSet(processed)}); err != nil {
		return nil, chem.ErrDecorate(err, "align.TransplantFiles")
	}
	reread, err := chem.PDBFileRead(newpath)
	if err != nil {
		return nil, chem.ErrDecorate(err, "align.TransplantFiles")
	}
	chain, err := reread.FirstChain()
	if err != nil {
		return nil, chem.ErrDecorate(err, "align.TransplantFiles")
	}
	return &Result{Source: src, Transplanted: reread, Path: newpath, ChainID: chain.ID, Range: r}, nil
}
