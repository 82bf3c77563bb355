/*
 * files.go, part of fusechem.
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
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//This tries to guess a chemical element symbol from a PDB atom name. Mostly based on AMBER names.
func symbolFromName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("Couldn't guess symbol from empty PDB name")
	}
	symbol := ""
	if len(name) == 4 || name[0] == 'H' { //I thiiink only Hs can have 4-char names in amber.
		symbol = "H"
	} else if name[0] == 'C' { //Ca is not considered here
		switch name {
		case "CU":
			symbol = "Cu"
		case "CO":
			symbol = "Co"
		case "CL":
			symbol = "Cl"
		default:
			symbol = "C"
		}
	} else if name[0] == 'N' {
		if name == "NA" {
			symbol = "Na"
		} else {
			symbol = "N"
		}
	} else if name[0] == 'O' {
		symbol = "O"
	} else if name[0] == 'P' {
		symbol = "P"
	} else if name[0] == 'S' {
		if name == "SE" {
			symbol = "Se"
		} else {
			symbol = "S"
		}
	} else if strings.HasPrefix(name, "ZN") {
		symbol = "Zn"
	}
	if symbol == "" {
		return symbol, fmt.Errorf("Couldn't guess symbol from PDB name %s", name)
	}
	return symbol, nil
}

//column returns the (trimmed) contents of line between the 0-based
//positions i and j, or the empty string if the line is too short.
func column(line string, i, j int) string {
	if len(line) <= i {
		return ""
	}
	if len(line) < j {
		j = len(line)
	}
	return strings.TrimSpace(line[i:j])
}

//readPDBLine parses a valid ATOM or HETATM line of a PDB file. It returns the atom, the residue
//name, the chain ID and the residue ID.
func readPDBLine(line string, contlines int) (*Atom, string, string, ResID, error) {
	var id ResID
	if len(line) < 54 {
		return nil, "", "", id, fmt.Errorf("line %d too short for an atom record", contlines)
	}
	var err error
	atom := new(Atom)
	atom.Het = strings.HasPrefix(line, "HETATM")
	atom.ID, err = strconv.Atoi(column(line, 6, 11))
	if err != nil {
		return nil, "", "", id, fmt.Errorf("line %d: serial number: %w", contlines, err)
	}
	atom.Name = column(line, 12, 16)
	atom.AltLoc = line[16]
	resname := column(line, 17, 20)
	chain := column(line, 21, 22)
	id.Number, err = strconv.Atoi(column(line, 22, 26))
	if err != nil {
		return nil, "", "", id, fmt.Errorf("line %d: residue number: %w", contlines, err)
	}
	id.ICode = ' '
	if len(line) > 26 && line[26] != ' ' {
		id.ICode = line[26]
	}
	if atom.Het {
		id.Het = "H_" + resname
		if resname == "HOH" || resname == "WAT" {
			id.Het = "W"
		}
	}
	for i, c := range [][2]int{{30, 38}, {38, 46}, {46, 54}} {
		atom.Coord[i], err = strconv.ParseFloat(column(line, c[0], c[1]), 64)
		if err != nil {
			return nil, "", "", id, fmt.Errorf("line %d: coordinate %d: %w", contlines, i, err)
		}
	}
	//Occupancy and b-factors are often missing in predicted structures.
	atom.Occupancy = 1.0
	if s := column(line, 54, 60); s != "" {
		if atom.Occupancy, err = strconv.ParseFloat(s, 64); err != nil {
			return nil, "", "", id, fmt.Errorf("line %d: occupancy: %w", contlines, err)
		}
	}
	if s := column(line, 60, 66); s != "" {
		if atom.Bfactor, err = strconv.ParseFloat(s, 64); err != nil {
			return nil, "", "", id, fmt.Errorf("line %d: b-factor: %w", contlines, err)
		}
	}
	atom.Symbol = column(line, 76, 78)
	if atom.Symbol == "" {
		atom.Symbol, _ = symbolFromName(atom.Name)
	}
	return atom, resname, chain, id, nil
}

//PDBRead reads the first model of a PDB file from an io.Reader. name is used
//as the name of the returned structure.
func PDBRead(pdb io.Reader, name string) (*Structure, error) {
	bufiopdb := bufio.NewReader(pdb)
	s, err := pdbBufIORead(bufiopdb, name)
	return s, errDecorate(err, "PDBRead")
}

//PDBFileRead reads the first model of the PDB file pdbname. Files with
//the .gz or .zst extensions are decompressed on the fly.
func PDBFileRead(pdbname string) (*Structure, error) {
	pdbfile, err := os.Open(pdbname)
	if err != nil {
		return nil, WrapInputError(err, "unable to open structure file", "PDBFileRead")
	}
	defer pdbfile.Close()
	var in io.Reader = pdbfile
	switch {
	case strings.HasSuffix(pdbname, ".gz"):
		gz, err := gzip.NewReader(pdbfile)
		if err != nil {
			return nil, WrapInputError(err, pdbname, "PDBFileRead")
		}
		defer gz.Close()
		in = gz
	case strings.HasSuffix(pdbname, ".zst"):
		zs, err := zstd.NewReader(pdbfile)
		if err != nil {
			return nil, WrapInputError(err, pdbname, "PDBFileRead")
		}
		defer zs.Close()
		in = zs
	}
	s, err := pdbBufIORead(bufio.NewReader(in), FileID(pdbname))
	if err != nil {
		return nil, errDecorate(err, "PDBFileRead")
	}
	s.Path = pdbname
	return s, nil
}

func pdbBufIORead(pdb *bufio.Reader, name string) (*Structure, error) {
	s := &Structure{Name: name}
	var chain *Chain
	var res *Residue
	contlines := 0 //count the lines read to better report errors
	for {
		line, err := pdb.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, WrapInputError(err, "reading structure", "pdbBufIORead")
		}
		contlines++
		if strings.HasPrefix(line, "ENDMDL") {
			break //only the first model is read.
		}
		if strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM") {
			at, resname, chainid, id, err2 := readPDBLine(line, contlines)
			if err2 != nil {
				return nil, WrapInputError(err2, name, "pdbBufIORead")
			}
			if chain == nil || chain.ID != chainid {
				var ok bool
				if chain, ok = s.Chain(chainid); !ok {
					chain = &Chain{ID: chainid}
					s.Chains = append(s.Chains, chain)
				}
				res = nil
				if l := len(chain.Residues); l > 0 {
					res = chain.Residues[l-1]
				}
			}
			if res == nil || res.ID != id {
				res = &Residue{ID: id, Name: resname}
				chain.Residues = append(chain.Residues, res)
			}
			res.Atoms = append(res.Atoms, at)
		}
		if err == io.EOF {
			break
		}
	}
	if len(s.Chains) == 0 {
		return nil, NewInputError(fmt.Sprintf("no atoms in %q", name), "pdbBufIORead")
	}
	return s, nil
}

//PDBFileWrite writes the structure s to the file pdbname, including only the
//residues sel accepts. A nil sel writes everything. Atom serial numbers are
//preserved.
func PDBFileWrite(pdbname string, s *Structure, sel Selector) error {
	out, err := os.Create(pdbname)
	if err != nil {
		return WrapInputError(err, "unable to create structure file", "PDBFileWrite")
	}
	if err := PDBWrite(out, s, sel); err != nil {
		out.Close()
		return errDecorate(err, "PDBFileWrite")
	}
	if err := out.Close(); err != nil {
		return WrapInputError(err, pdbname, "PDBFileWrite")
	}
	return nil
}

//PDBWrite writes the structure s in PDB format to out, including only the
//residues sel accepts. A nil sel writes everything.
func PDBWrite(out io.Writer, s *Structure, sel Selector) error {
	w := bufio.NewWriter(out)
	fmt.Fprint(w, "REMARK     WRITTEN WITH FUSECHEM\n")
	for _, c := range s.Chains {
		var last *Residue
		var lastserial int
		chainid := " "
		if c.ID != "" {
			chainid = c.ID[:1]
		}
		for _, r := range c.Residues {
			if sel != nil && !sel.AcceptResidue(c.ID, r) {
				continue
			}
			for _, a := range r.Atoms {
				if err := writePDBLine(w, a, r, chainid); err != nil {
					return err
				}
				lastserial = a.ID
			}
			last = r
		}
		if last != nil {
			fmt.Fprintf(w, "TER   %5d      %3s %1s%4d%c\n", lastserial+1, last.Name, chainid, last.ID.Number, icode(last.ID.ICode))
		}
	}
	fmt.Fprint(w, "END\n")
	if err := w.Flush(); err != nil {
		return WrapInputError(err, "writing structure", "PDBWrite")
	}
	return nil
}

func icode(c byte) byte {
	if c == 0 {
		return ' '
	}
	return c
}

func writePDBLine(w io.Writer, a *Atom, r *Residue, chainid string) error {
	first := "ATOM"
	if a.Het {
		first = "HETATM"
	}
	name := a.Name
	//4 chars for the atom name are used when hydrogens are included.
	if len(name) < 4 {
		name = " " + name
	} else if len(name) > 4 {
		return NewInputError(fmt.Sprintf("Cant print PDB line, atom name %q too long", a.Name), "writePDBLine")
	}
	_, err := fmt.Fprintf(w, "%-6s%5d %-4s%c%3s %1s%4d%c   %8.3f%8.3f%8.3f%6.2f%6.2f          %2s\n",
		first, a.ID, name, icode(a.AltLoc), r.Name, chainid, r.ID.Number, icode(r.ID.ICode),
		a.Coord[0], a.Coord[1], a.Coord[2], a.Occupancy, a.Bfactor, a.Symbol)
	if err != nil {
		return WrapInputError(err, "writing atom", "writePDBLine")
	}
	return nil
}

//FileID returns the base name of path without its extension(s),
//as in "1abc" for "/data/1abc.pdb" or "/data/1abc.pdb.gz".
func FileID(path string) string {
	base := filepath.Base(path)
	for _, ext := range []string{".gz", ".zst"} {
		base = strings.TrimSuffix(base, ext)
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base
}
