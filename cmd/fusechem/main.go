/*
 * main.go, part of fusechem.
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

//fusechem computes active site parameters of enzymes fused into one chain,
//candidate active residues and CAD-scores, printing the results as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	chem "github.com/sysu-software/fusechem"
	"github.com/sysu-software/fusechem/cadscore"
	"github.com/sysu-software/fusechem/chemplot"
	"github.com/sysu-software/fusechem/contacts"
	"github.com/sysu-software/fusechem/jobs"
	"github.com/sysu-software/fusechem/modelq"
	"github.com/sysu-software/fusechem/site"
	"github.com/sysu-software/fusechem/sphere"
)

func usage() {
	fmt.Println("fusechem <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  geometry   -enzyme -fusion -query TRP124[,HIS57...] [-workers]")
	fmt.Println("  compare    -e1 -e2 -fusion -q1 -q2")
	fmt.Println("  candidates -pdb [-fraction] [-plot]")
	fmt.Println("  cad        -src -tar -active TRP124,HIS57 [-thresh] [-timeout] [-tool] [-keep] [-v]")
	fmt.Println("  modelq     -in modelQ.dat [-out modelQsummary.dat]")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("fusechem: ")
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	args := os.Args[2:]
	switch os.Args[1] {
	case "geometry":
		geometryCmd(args)
	case "compare":
		compareCmd(args)
	case "candidates":
		candidatesCmd(args)
	case "cad":
		cadCmd(args)
	case "modelq":
		modelqCmd(args)
	default:
		usage()
		os.Exit(1)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

//kind names the kind of err, so callers can tell them apart.
func kind(err error) string {
	switch {
	case chem.IsMismatch(err):
		return "alignment mismatch"
	case chem.IsInsufficient(err):
		return "insufficient data"
	case chem.IsInput(err):
		return "input error"
	case chem.IsExternal(err):
		return "external tool error"
	}
	return "error"
}

func check(err error) {
	if err != nil {
		fatalf("%s: %v", kind(err), err)
	}
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	check(enc.Encode(v))
}

func splitList(s string) []string {
	ret := make([]string, 0)
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			ret = append(ret, v)
		}
	}
	return ret
}

type sphereJSON struct {
	X, Y, Z, R float64
}

func toJSON(s sphere.Sphere) sphereJSON {
	return sphereJSON{X: s.X, Y: s.Y, Z: s.Z, R: s.R}
}

type geometryJSON struct {
	Query         string     `json:"query"`
	Circumference float64    `json:"circumference"`
	HalfAngle     float64    `json:"halfAngle"`
	HalfAngleDeg  float64    `json:"halfAngleDeg"`
	Residue       int        `json:"fusionResidue"`
	Enzyme        sphereJSON `json:"enzymeSphere"`
	Active        sphereJSON `json:"activeSphere"`
	Error         string     `json:"error,omitempty"`
}

//geometryCmd computes the geometry for each query as a separate job.
func geometryCmd(args []string) {
	fs := flag.NewFlagSet("geometry", flag.ExitOnError)
	enzyme := fs.String("enzyme", "", "Enzyme PDB file")
	fusion := fs.String("fusion", "", "Fusion chain PDB file")
	query := fs.String("query", "", "Active residues, comma separated (e.g. TRP124,HIS57)")
	workers := fs.Int("workers", 2, "Number of queries computed at the same time")
	_ = fs.Parse(args)
	queries := splitList(*query)
	if *enzyme == "" || *fusion == "" || len(queries) == 0 {
		fatalf("provide -enzyme, -fusion and -query")
	}
	enz, err := chem.PDBFileRead(*enzyme)
	check(err)
	fus, err := chem.PDBFileRead(*fusion)
	check(err)
	runner := jobs.NewRunner(*workers)
	ids := make([]string, len(queries))
	for i, q := range queries {
		q := q
		ids[i], err = runner.Submit(func(ctx context.Context) (any, error) {
			return site.GeometryOf(enz, fus, q)
		})
		check(err)
	}
	results := make([]geometryJSON, len(queries))
	failed := 0
	for i, id := range ids {
		st, err := runner.Wait(context.Background(), id)
		check(err)
		results[i].Query = queries[i]
		if st.State == jobs.Failed {
			results[i].Error = fmt.Sprintf("%s: %v", kind(st.Err), st.Err)
			failed++
			continue
		}
		g := st.Result.(*site.Geometry)
		results[i].Circumference = g.Circle.Circumference
		results[i].HalfAngle = g.Circle.HalfAngle
		results[i].HalfAngleDeg = chem.Rad2Deg(g.Circle.HalfAngle)
		results[i].Residue = g.Residue
		results[i].Enzyme = toJSON(g.Enzyme)
		results[i].Active = toJSON(g.Active)
	}
	runner.Close(false)
	printJSON(results)
	if failed > 0 {
		os.Exit(1)
	}
}

func compareCmd(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	e1 := fs.String("e1", "", "First enzyme PDB file")
	e2 := fs.String("e2", "", "Second enzyme PDB file")
	fusion := fs.String("fusion", "", "Fusion chain PDB file")
	q1 := fs.String("q1", "", "Active residue of the first enzyme")
	q2 := fs.String("q2", "", "Active residue of the second enzyme")
	_ = fs.Parse(args)
	if *e1 == "" || *e2 == "" || *fusion == "" || *q1 == "" || *q2 == "" {
		fatalf("provide -e1, -e2, -fusion, -q1 and -q2")
	}
	p, err := site.Compare(*e1, *e2, *fusion, *q1, *q2)
	check(err)
	printJSON(map[string]float64{
		"circumference1": p.Circumference1,
		"halfAngle1":     p.HalfAngle1,
		"radius1":        p.Radius1,
		"circumference2": p.Circumference2,
		"halfAngle2":     p.HalfAngle2,
		"radius2":        p.Radius2,
		"centerDistance": p.CenterDistance,
	})
}

func candidatesCmd(args []string) {
	fs := flag.NewFlagSet("candidates", flag.ExitOnError)
	pdb := fs.String("pdb", "", "PDB file")
	fraction := fs.Float64("fraction", chem.DefaultCandidateFraction, "Fraction of the residues proposed")
	plotPath := fs.String("plot", "", "Write the b-factor profile to this file (png, svg or pdf)")
	_ = fs.Parse(args)
	if *pdb == "" {
		fatalf("provide -pdb")
	}
	s, err := chem.PDBFileRead(*pdb)
	check(err)
	cand, err := chem.CandidateResidues(s, *fraction)
	check(err)
	if *plotPath != "" {
		check(chemplot.BfactorProfile(s, cand, *plotPath))
	}
	printJSON(cand)
}

func cadCmd(args []string) {
	fs := flag.NewFlagSet("cad", flag.ExitOnError)
	src := fs.String("src", "", "Source (experimental) PDB file")
	tar := fs.String("tar", "", "Target (predicted) PDB file")
	active := fs.String("active", "", "Active residues, comma separated (e.g. TRP124,HIS57)")
	thresh := fs.Float64("thresh", contacts.DefaultThreshold, "CA-CA distance cutoff for neighbors")
	timeout := fs.Duration("timeout", cadscore.DefaultTimeout, "Time limit for each CAD-score run")
	tool := fs.String("tool", "CADscore_calc.bash", "CAD-score program")
	keep := fs.Bool("keep", false, "Keep the intermediate files")
	verbose := fs.Bool("v", false, "Log the commands run")
	_ = fs.Parse(args)
	labels := splitList(*active)
	if *src == "" || *tar == "" || len(labels) == 0 {
		fatalf("provide -src, -tar and -active")
	}
	p := cadscore.NewPipeline()
	p.Runner.Exec = *tool
	p.Runner.Timeout = *timeout
	p.Runner.Verbose = *verbose
	p.KeepWorkspace = *keep
	start := time.Now()
	res, err := p.Score(context.Background(), *src, *tar, labels, *thresh)
	check(err)
	if *verbose {
		log.Printf("%d groups scored in %s", len(res.Groups), time.Since(start))
	}
	if *keep {
		log.Printf("intermediate files kept in %s", res.Workspace)
	}
	printJSON(res.Scores)
}

func modelqCmd(args []string) {
	fs := flag.NewFlagSet("modelq", flag.ExitOnError)
	in := fs.String("in", "modelQ.dat", "Model quality file")
	out := fs.String("out", "", "Write the summary to this file")
	_ = fs.Parse(args)
	f, err := os.Open(*in)
	if err != nil {
		fatalf("input error: %v", err)
	}
	entries, err := modelq.Read(f)
	f.Close()
	check(err)
	if *out != "" {
		o, err := os.Create(*out)
		if err != nil {
			fatalf("input error: %v", err)
		}
		check(modelq.WriteSummary(o, entries))
		check(o.Close())
	}
	printJSON(modelq.Scores(entries))
}
