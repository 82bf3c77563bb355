/*
 * plot_test.go, part of fusechem.
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

package chemplot

import (
	"os"
	"path/filepath"
	"testing"

	chem "github.com/sysu-software/fusechem"
)

func TestBfactorProfile(Te *testing.T) {
	c := &chem.Chain{ID: "A"}
	for i := 0; i < 30; i++ {
		r := &chem.Residue{ID: chem.ResID{Number: i + 1, ICode: ' '}, Name: "ALA"}
		for j, n := range []string{"N", "CA", "C"} {
			r.Atoms = append(r.Atoms, &chem.Atom{Name: n, ID: 3*i + j + 1, Bfactor: float64((i*7)%30 + j)})
		}
		c.Residues = append(c.Residues, r)
	}
	s := &chem.Structure{Name: "profile", Chains: []*chem.Chain{c}}
	cand, err := chem.CandidateResidues(s, chem.DefaultCandidateFraction)
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	for _, name := range []string{"bf.png", "bf.svg"} {
		path := filepath.Join(dir, name)
		if err := BfactorProfile(s, cand, path); err != nil {
			Te.Fatal(err)
		}
		if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
			Te.Errorf("%s was not written: %v", name, err)
		}
	}
	if err := BfactorProfile(s, cand, filepath.Join(dir, "bf.nope")); err == nil {
		Te.Error("an unknown format should give an error")
	}
}

func TestColors(Te *testing.T) {
	if r, g, b := colors(0, 5); r != 255 || g != 0 || b != 0 {
		Te.Errorf("the first color should be red, got %d %d %d", r, g, b)
	}
	if r, g, b := iHVS2RGB(240, 1, 1); r != 0 || g != 0 || b != 255 {
		Te.Errorf("240 should be blue, got %d %d %d", r, g, b)
	}
}
