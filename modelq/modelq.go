/*
 * modelq.go, part of fusechem.
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

//Package modelq reads the model quality file (modelQ.dat) written by the structure
//prediction pipeline, and writes the summary of it given to users.
package modelq

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	chem "github.com/sysu-software/fusechem"
)

//Entry is one line of a modelQ.dat file: a model, its estimated TM-score and
//the path to its structure, followed by any other fields.
type Entry struct {
	Model   string
	TMScore float64
	Path    string
	Extra   []string
}

//ShortPath returns the last two components of the entry's path, as in "model/model_1.pdb".
func (E Entry) ShortPath() string {
	p := strings.Split(E.Path, "/")
	if len(p) > 2 {
		p = p[len(p)-2:]
	}
	return strings.Join(p, "/")
}

//Read parses a modelQ.dat file. Empty lines are skipped.
func Read(r io.Reader) ([]Entry, error) {
	ret := make([]Entry, 0, 5)
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 3 {
			return nil, chem.NewInputError(fmt.Sprintf("line %d has %d fields, need at least 3", n, len(fields)), "modelq.Read")
		}
		tm, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, chem.WrapInputError(err, fmt.Sprintf("line %d: TM-score", n), "modelq.Read")
		}
		ret = append(ret, Entry{Model: fields[0], TMScore: tm, Path: fields[2], Extra: fields[3:]})
	}
	if err := scanner.Err(); err != nil {
		return nil, chem.WrapInputError(err, "reading model quality file", "modelq.Read")
	}
	return ret, nil
}

//Scores returns the TM-score of each model, by model name.
func Scores(entries []Entry) map[string]float64 {
	ret := make(map[string]float64, len(entries))
	for _, v := range entries {
		ret[v.Model] = v.TMScore
	}
	return ret
}

//WriteSummary writes the entries as tab-separated lines, with the paths shortened
//to their last two components.
func WriteSummary(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, v := range entries {
		fields := append([]string{v.Model, strconv.FormatFloat(v.TMScore, 'f', -1, 64), v.ShortPath()}, v.Extra...)
		if _, err := fmt.Fprintln(bw, strings.Join(fields, "\t")); err != nil {
			return chem.WrapInputError(err, "writing summary", "modelq.WriteSummary")
		}
	}
	if err := bw.Flush(); err != nil {
		return chem.WrapInputError(err, "writing summary", "modelq.WriteSummary")
	}
	return nil
}
