/*
 * bfactor.go, part of fusechem.
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
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

//DefaultCandidateFraction is the fraction of residues, those with the lowest
//mean b-factors, proposed as active residue candidates.
const DefaultCandidateFraction = 0.2

//ResidueBfactor is the mean b-factor of the atoms in a residue.
type ResidueBfactor struct {
	Residue *Residue
	Mean    float64
}

//ResidueBfactors returns the mean b-factor of each residue in the first
//chain of s, in chain order. Residues without atoms are skipped.
func ResidueBfactors(s *Structure) ([]ResidueBfactor, error) {
	c, err := s.FirstChain()
	if err != nil {
		return nil, errDecorate(err, "ResidueBfactors")
	}
	ret := make([]ResidueBfactor, 0, len(c.Residues))
	for _, r := range c.Residues {
		if len(r.Atoms) == 0 {
			continue
		}
		b := make([]float64, len(r.Atoms))
		for i, a := range r.Atoms {
			b[i] = a.Bfactor
		}
		ret = append(ret, ResidueBfactor{Residue: r, Mean: stat.Mean(b, nil)})
	}
	return ret, nil
}

//CandidateResidues returns the labels ("TRP124") of the round(n*fraction) residues
//of the first chain with the lowest mean b-factors, lowest first. Ties keep the
//chain order. A fraction outside (0,1] gives an InputError.
func CandidateResidues(s *Structure, fraction float64) ([]string, error) {
	if fraction <= 0 || fraction > 1 || math.IsNaN(fraction) {
		return nil, NewInputError("candidate fraction must be in (0,1]", "CandidateResidues")
	}
	bf, err := ResidueBfactors(s)
	if err != nil {
		return nil, errDecorate(err, "CandidateResidues")
	}
	sort.SliceStable(bf, func(i, j int) bool { return bf[i].Mean < bf[j].Mean })
	n := int(math.RoundToEven(float64(len(bf)) * fraction))
	ret := make([]string, 0, n)
	for _, v := range bf[:n] {
		ret = append(ret, v.Residue.Label())
	}
	return ret, nil
}
