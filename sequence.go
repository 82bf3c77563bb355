/*
 * sequence.go, part of fusechem.
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

import "strings"

//A map between 3-letters name for aminoacidic residues to the corresponding 1-letter names.
var three2OneLetter = map[string]byte{
	"SER": 'S',
	"THR": 'T',
	"ASN": 'N',
	"GLN": 'Q',
	"SEC": 'U', //Selenocysteine!
	"PYL": 'O',
	"CYS": 'C',
	"GLY": 'G',
	"PRO": 'P',
	"ALA": 'A',
	"VAL": 'V',
	"ILE": 'I',
	"LEU": 'L',
	"MET": 'M',
	"PHE": 'F',
	"TYR": 'Y',
	"TRP": 'W',
	"ARG": 'R',
	"HIS": 'H',
	"LYS": 'K',
	"ASP": 'D',
	"GLU": 'E',
}

//Unknown is the one-letter code for residues that are not amino acids,
//or amino acids we don't know about.
const Unknown byte = 'X'

//OneLetter returns the one-letter code for the residue name resname,
//or Unknown.
func OneLetter(resname string) byte {
	if l, ok := three2OneLetter[strings.ToUpper(strings.TrimSpace(resname))]; ok {
		return l
	}
	return Unknown
}

//Sequence returns the one-letter sequence of the residues, one letter per residue.
func Sequence(residues []*Residue) string {
	b := make([]byte, len(residues))
	for i, r := range residues {
		b[i] = OneLetter(r.Name)
	}
	return string(b)
}

//Sequence returns the sequence of the first chain of the structure. The
//returned string always has one letter per residue in that chain.
func (S *Structure) Sequence() (string, error) {
	c, err := S.FirstChain()
	if err != nil {
		return "", errDecorate(err, "Sequence")
	}
	return Sequence(c.Residues), nil
}
