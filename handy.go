/*
 * handy.go, part of fusechem.
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
	"math"
	"strconv"
	"strings"
	"unicode"
)

func Rad2Deg(f float64) float64 {
	return f * 180 / math.Pi
}

//ParseResidueLabel parses labels like "TRP124" into the residue name and number.
//An optional chain prefix ("A:TRP124") is accepted and ignored, as the analyses
//work on the first chain only. The number may be negative ("ALA-3").
func ParseResidueLabel(label string) (string, int, error) {
	l := strings.TrimSpace(label)
	if i := strings.Index(l, ":"); i >= 0 {
		l = l[i+1:]
	}
	i := strings.IndexFunc(l, func(r rune) bool { return unicode.IsDigit(r) || r == '-' })
	if i <= 0 {
		return "", 0, NewInputError(fmt.Sprintf("malformed residue label %q", label), "ParseResidueLabel")
	}
	name := l[:i]
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return "", 0, NewInputError(fmt.Sprintf("malformed residue name in label %q", label), "ParseResidueLabel")
		}
	}
	n, err := strconv.Atoi(l[i:])
	if err != nil {
		return "", 0, WrapInputError(err, fmt.Sprintf("malformed residue number in label %q", label), "ParseResidueLabel")
	}
	return strings.ToUpper(name), n, nil
}

//LabelNumber returns the number formed by all the digits in label, so "HOH222"
//gives 222. It is more lenient than ParseResidueLabel, and is used for the
//active residue lists produced by other tools.
func LabelNumber(label string) (int, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, label)
	if digits == "" {
		return 0, NewInputError(fmt.Sprintf("no residue number in label %q", label), "LabelNumber")
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, WrapInputError(err, label, "LabelNumber")
	}
	return n, nil
}
