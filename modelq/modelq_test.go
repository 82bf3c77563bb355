/*
 * modelq_test.go, part of fusechem.
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

package modelq

import (
	"bytes"
	"strings"
	"testing"

	chem "github.com/sysu-software/fusechem"
)

const sample = `model_1 0.8123 /data/7cq0/results/model/model_1.crderr.pdb 0.91

model_2 0.7 /data/7cq0/results/model/model_2.crderr.pdb 0.88
model_3 0.65 model_3.pdb
`

func TestReadAndSummary(Te *testing.T) {
	e, err := Read(strings.NewReader(sample))
	if err != nil {
		Te.Fatal(err)
	}
	if len(e) != 3 || e[0].TMScore != 0.8123 || e[1].Model != "model_2" || len(e[0].Extra) != 1 {
		Te.Fatalf("wrong entries %+v", e)
	}
	if s := Scores(e); s["model_3"] != 0.65 {
		Te.Errorf("wrong scores %v", s)
	}
	var out bytes.Buffer
	if err := WriteSummary(&out, e); err != nil {
		Te.Fatal(err)
	}
	want := "model_1\t0.8123\tmodel/model_1.crderr.pdb\t0.91\n" +
		"model_2\t0.7\tmodel/model_2.crderr.pdb\t0.88\n" +
		"model_3\t0.65\tmodel_3.pdb\n"
	if out.String() != want {
		Te.Errorf("wrong summary:\n%s\nwant:\n%s", out.String(), want)
	}
	for _, bad := range []string{"model_1 0.8\n", "model_1 high /a/b.pdb\n"} {
		if _, err := Read(strings.NewReader(bad)); !chem.IsInput(err) {
			Te.Errorf("%q should give an InputError, got %v", bad, err)
		}
	}
}
