/*
 * align.go, part of fusechem.
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

//Package align finds the correspondence between a protein and a longer chain containing it
//and transplants the coordinates of the chain onto the protein's topology.
package align

import (
	"fmt"
	"strings"

	chem "github.com/sysu-software/fusechem"
)

//Range is a pair of half-open index intervals of equal length, meaning that
//src[SrcStart:SrcEnd] corresponds positionally to tar[TarStart:TarEnd]. The indexes
//refer to the sequences after removing the unknown residues (X).
type Range struct {
	SrcStart, SrcEnd int
	TarStart, TarEnd int
}

//Len returns the number of aligned positions.
func (R *Range) Len() int {
	return R.SrcEnd - R.SrcStart
}

//String returns a string representation of the Range
func (R *Range) String() string {
	return fmt.Sprintf("src[%d:%d] <-> tar[%d:%d]", R.SrcStart, R.SrcEnd, R.TarStart, R.TarEnd)
}

func strip(seq string) string {
	return strings.Map(func(r rune) rune {
		if r == rune(chem.Unknown) {
			return -1
		}
		return r
	}, seq)
}

//Sequences finds the first occurrence of src, as a contiguous substring, in tar.
//Both are stripped of unknown residues (X) before the comparison, which is exact
//and case-sensitive. If src is not in tar, it returns a nil Range and a nil error:
//unrelated sequences are a normal outcome. An empty src (after stripping) gives an
//InputError.
func Sequences(src, tar string) (*Range, error) {
	s := strip(src)
	t := strip(tar)
	if len(s) == 0 {
		return nil, chem.NewInputError("empty source sequence", "align.Sequences")
	}
	p := strings.Index(t, s)
	if p < 0 {
		return nil, nil
	}
	return &Range{SrcStart: 0, SrcEnd: len(s), TarStart: p, TarEnd: p + len(s)}, nil
}

//Structures aligns the first-chain sequence of src onto that of tar. It returns
//the range and both sequences, with one letter per residue, as needed by Range.Pairs.
func Structures(src, tar *chem.Structure) (*Range, string, string, error) {
	srcseq, err := src.Sequence()
	if err != nil {
		return nil, "", "", chem.ErrDecorate(err, "align.Structures")
	}
	tarseq, err := tar.Sequence()
	if err != nil {
		return nil, "", "", chem.ErrDecorate(err, "align.Structures")
	}
	r, err := Sequences(srcseq, tarseq)
	if err != nil {
		return nil, "", "", chem.ErrDecorate(err, "align.Structures")
	}
	return r, srcseq, tarseq, nil
}

//known returns the indexes of the letters of seq that are not X.
func known(seq string) []int {
	ret := make([]int, 0, len(seq))
	for i := 0; i < len(seq); i++ {
		if seq[i] != chem.Unknown {
			ret = append(ret, i)
		}
	}
	return ret
}

//Pair is a correspondence between the residue at index Src of the source
//chain and that at index Tar of the target chain.
type Pair struct {
	Src, Tar int
}

//Pairs maps the range, computed on sequences stripped of X, back to residue indexes
//in the unstripped sequences srcseq and tarseq (one letter per residue), so unknown
//residues never shift the correspondence.
func (R *Range) Pairs(srcseq, tarseq string) ([]Pair, error) {
	srck := known(srcseq)
	tark := known(tarseq)
	if R.SrcEnd > len(srck) || R.TarEnd > len(tark) || R.SrcStart < 0 || R.TarStart < 0 || R.Len() != R.TarEnd-R.TarStart {
		return nil, chem.NewInputError(fmt.Sprintf("range %s does not fit the sequences", R), "Range.Pairs")
	}
	ret := make([]Pair, 0, R.Len())
	for k := 0; k < R.Len(); k++ {
		ret = append(ret, Pair{Src: srck[R.SrcStart+k], Tar: tark[R.TarStart+k]})
	}
	return ret, nil
}

//Positions returns the target residue indexes of the pairs, in order.
func Positions(pairs []Pair) []int {
	ret := make([]int, len(pairs))
	for i, v := range pairs {
		ret[i] = v.Tar
	}
	return ret
}
