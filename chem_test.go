/*
 * chem_test.go, part of fusechem.
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
	"bytes"
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
)

const samplePDB = `HEADER    TEST STRUCTURE
ATOM      1  N   LYS A  10       1.000   2.000   3.000  1.00 20.00           N
ATOM      2  CA  LYS A  10       2.458   2.000   3.000  1.00 22.00           C
ATOM      3  CB  LYS A  10       3.000   3.400   3.100  1.00 30.00           C
ATOM      4  N   TRP A  11       3.300   1.100   4.000  1.00 10.00           N
ATOM      5  CA  TRP A  11       4.500   1.200   4.500  1.00 12.00           C
ATOM      6  N   GLY A  11A      5.300   2.100   5.000  1.00 50.00           N
ATOM      7  CA  GLY A  11A      6.500   2.200   5.500  1.00 52.00           C
HETATM    8  O   HOH A 301       9.000   9.000   9.000  1.00 40.00           O
TER
ATOM      9  N   ALA B   1      -1.000  -2.000  -3.000  1.00  5.00           N
ATOM     10  CA  ALA B   1      -2.000  -2.000  -3.000  1.00  5.00           C
ENDMDL
MODEL        2
ATOM      1  N   LYS A  10       0.000   0.000   0.000  1.00 20.00           N
END
`

func TestPDBIO(Te *testing.T) {
	mol, err := PDBRead(strings.NewReader(samplePDB), "sample")
	if err != nil {
		Te.Fatal(err)
	}
	if len(mol.Chains) != 2 || mol.Len() != 10 {
		Te.Fatalf("expected 2 chains and 10 atoms from the first model, got %d and %d", len(mol.Chains), mol.Len())
	}
	c, err := mol.FirstChain()
	if err != nil {
		Te.Fatal(err)
	}
	if c.ID != "A" || len(c.Residues) != 4 {
		Te.Errorf("wrong first chain %s with %d residues", c.ID, len(c.Residues))
	}
	gly := c.Residues[2]
	if gly.ID.Number != 11 || gly.ID.ICode != 'A' || gly.Label() != "GLY11A" {
		Te.Errorf("insertion code not read: %v %s", gly.ID, gly.Label())
	}
	if c.Residues[3].ID.Het != "W" {
		Te.Errorf("water not recognized: %v", c.Residues[3].ID)
	}
	if r, ok := c.ByNumber(11); !ok || r.Name != "TRP" {
		Te.Errorf("ByNumber(11) should give TRP, got %v", r)
	}
	if c.HasNumber(301) {
		Te.Error("waters should not count as standard residues")
	}
	ca, ok := c.Residues[0].CA()
	if !ok || ca.Coord != [3]float64{2.458, 2, 3} || ca.Bfactor != 22 || ca.Symbol != "C" {
		Te.Errorf("wrong alpha carbon %+v", ca)
	}
	seq, err := mol.Sequence()
	if err != nil || seq != "KWGX" {
		Te.Errorf("wrong sequence %q %v", seq, err)
	}
	var out bytes.Buffer
	if err := PDBWrite(&out, mol, nil); err != nil {
		Te.Fatal(err)
	}
	mol2, err := PDBRead(&out, "again")
	if err != nil {
		Te.Fatal(err)
	}
	if mol2.Len() != mol.Len() {
		Te.Fatalf("round trip changed the number of atoms: %d %d", mol2.Len(), mol.Len())
	}
	for i := 0; i < mol.Len(); i++ {
		a, b := mol.Atom(i), mol2.Atom(i)
		if a.Coord != b.Coord || a.Name != b.Name || a.ID != b.ID || a.Het != b.Het {
			Te.Errorf("atom %d changed in the round trip: %+v %+v", i, a, b)
		}
	}
}

func TestPDBWriteSelection(Te *testing.T) {
	mol, err := PDBRead(strings.NewReader(samplePDB), "sample")
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	name := filepath.Join(dir, "sel.pdb")
	sel := ChainResidues{Chain: "A", Set: NewResidueSet([]ResID{{Number: 10, ICode: ' '}, {Number: 11, ICode: 'A'}})}
	if err := PDBFileWrite(name, mol, sel); err != nil {
		Te.Fatal(err)
	}
	mol2, err := PDBFileRead(name)
	if err != nil {
		Te.Fatal(err)
	}
	if mol2.Path != name || mol2.Name != "sel" {
		Te.Errorf("wrong name or path: %s %s", mol2.Name, mol2.Path)
	}
	if len(mol2.Chains) != 1 || len(mol2.Chains[0].Residues) != 2 {
		Te.Errorf("the selection was not honored")
	}
	//ResidueSet alone accepts ids in any chain.
	var out bytes.Buffer
	PDBWrite(&out, mol, NewResidueSet([]ResID{{Number: 1, ICode: ' '}}))
	if mol3, err := PDBRead(&out, "b"); err != nil || mol3.Chains[0].ID != "B" {
		Te.Errorf("expected only chain B, got %v", err)
	}
}

func TestCompressedRead(Te *testing.T) {
	dir := Te.TempDir()
	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	w.Write([]byte(samplePDB))
	w.Close()
	gzname := filepath.Join(dir, "1abc.pdb.gz")
	if err := os.WriteFile(gzname, gz.Bytes(), 0644); err != nil {
		Te.Fatal(err)
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		Te.Fatal(err)
	}
	zsname := filepath.Join(dir, "1abc.pdb.zst")
	if err := os.WriteFile(zsname, enc.EncodeAll([]byte(samplePDB), nil), 0644); err != nil {
		Te.Fatal(err)
	}
	enc.Close()
	for _, name := range []string{gzname, zsname} {
		mol, err := PDBFileRead(name)
		if err != nil {
			Te.Fatal(err)
		}
		if mol.Name != "1abc" || mol.Len() != 10 {
			Te.Errorf("%s: wrong structure %s with %d atoms", name, mol.Name, mol.Len())
		}
	}
	if _, err := PDBFileRead(filepath.Join(dir, "nothere.pdb")); !IsInput(err) {
		Te.Errorf("expected an InputError, got %v", err)
	}
	if _, err := PDBRead(strings.NewReader("REMARK nothing\nEND\n"), "empty"); !IsInput(err) {
		Te.Errorf("expected an InputError for a file without atoms, got %v", err)
	}
}

func TestCandidateResidues(Te *testing.T) {
	mol, err := PDBRead(strings.NewReader(samplePDB), "sample")
	if err != nil {
		Te.Fatal(err)
	}
	c, err := CandidateResidues(mol, DefaultCandidateFraction)
	if err != nil {
		Te.Fatal(err)
	}
	if len(c) != 1 || c[0] != "TRP11" {
		Te.Errorf("expected [TRP11], got %v", c)
	}
	c, err = CandidateResidues(mol, 0.5)
	if err != nil {
		Te.Fatal(err)
	}
	if fmt.Sprint(c) != "[TRP11 LYS10]" {
		Te.Errorf("expected [TRP11 LYS10], got %v", c)
	}
	if _, err := CandidateResidues(mol, 0); !IsInput(err) {
		Te.Errorf("expected an InputError, got %v", err)
	}
}

func TestResidueLabels(Te *testing.T) {
	cases := []struct {
		label string
		name  string
		n     int
	}{
		{"TRP124", "TRP", 124},
		{"A:His57", "HIS", 57},
		{" ALA-3 ", "ALA", -3},
	}
	for _, v := range cases {
		name, n, err := ParseResidueLabel(v.label)
		if err != nil || name != v.name || n != v.n {
			Te.Errorf("%q: got %s %d %v", v.label, name, n, err)
		}
	}
	for _, bad := range []string{"124", "TRP", "TR1P2", ""} {
		if _, _, err := ParseResidueLabel(bad); !IsInput(err) {
			Te.Errorf("%q should be rejected, got %v", bad, err)
		}
	}
	if n, err := LabelNumber("HOH222"); err != nil || n != 222 {
		Te.Errorf("LabelNumber: %d %v", n, err)
	}
	if _, err := LabelNumber("HOH"); !IsInput(err) {
		Te.Errorf("expected an InputError, got %v", err)
	}
	if id := FileID("/data/model.v2.pdb.gz"); id != "model.v2" {
		Te.Errorf("FileID gave %s", id)
	}
}

func TestErrorDecoration(Te *testing.T) {
	var err error = NewInsufficientDataError("sphere fit", 3, 4, "sphere.Fit")
	err = ErrDecorate(err, "site.Geometry")
	wrapped := fmt.Errorf("job 1: %w", err)
	if !IsInsufficient(wrapped) || IsInput(wrapped) {
		Te.Errorf("the error kind is lost: %v", wrapped)
	}
	e := err.(Error)
	if d := e.Decorate(""); len(d) != 2 || d[1] != "site.Geometry" {
		Te.Errorf("wrong decoration %v", d)
	}
	fmt.Println(err)
	t := NewExternalToolError("CADscore_calc.bash", "", fmt.Errorf("killed"), true)
	if !t.Timeout() || !IsExternal(t) {
		Te.Errorf("wrong external tool error %v", t)
	}
}

func TestBlankInsertionCode(Te *testing.T) {
	//ids built in code often leave the insertion code as 0.
	c := &Chain{ID: "A"}
	for i := 1; i <= 3; i++ {
		c.Residues = append(c.Residues, &Residue{ID: ResID{Number: i}, Name: "ALA", Atoms: []*Atom{{Name: "CA"}}})
	}
	c.Residues = append(c.Residues, &Residue{ID: ResID{Number: 3, ICode: 'B'}, Name: "GLY"})
	if r, ok := c.ByNumber(2); !ok || r != c.Residues[1] {
		Te.Errorf("residue 2 not found by number")
	}
	if !c.Has(ResID{Number: 3, ICode: ' '}) || c.Index(ResID{Number: 3, ICode: 'B'}) != 3 {
		Te.Errorf("blank and non-blank insertion codes mixed up")
	}
	if n := c.Numbers(); len(n) != 3 || !n[1] || !n[3] {
		Te.Errorf("wrong residue numbers %v", n)
	}
	set := NewResidueSet([]ResID{{Number: 1, ICode: ' '}, {Number: 3}})
	if !set.AcceptResidue("A", c.Residues[0]) || !set.AcceptResidue("A", c.Residues[2]) || set.AcceptResidue("A", c.Residues[3]) {
		Te.Errorf("the residue set doesn't match blank insertion codes")
	}
	if s := (ResID{Number: 7}).String(); s != "7" {
		Te.Errorf("wrong id string %q", s)
	}
}
