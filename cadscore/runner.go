/*
 * runner.go, part of fusechem.
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

//Package cadscore runs the CAD-score tool on the residues around the active residues of a
//protein, comparing the protein with a model built by transplanting the coordinates
//of a predicted structure onto it.
package cadscore

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	chem "github.com/sysu-software/fusechem"
)

//DefaultTimeout is the time a single CAD-score run is allowed to take.
const DefaultTimeout = 2 * time.Minute

//Runner runs the CAD-score calculation program.
type Runner struct {
	Exec    string   //the program to run.
	Args    []string //arguments given before the ones Run adds.
	Timeout time.Duration
	Verbose bool //log each command line.
}

//DefaultRunner returns a Runner for CADscore_calc.bash, which must be in the PATH,
//with the DefaultTimeout.
func DefaultRunner() *Runner {
	return &Runner{Exec: "CADscore_calc.bash", Timeout: DefaultTimeout}
}

//Score is the result of a CAD-score run for one group of residues.
type Score struct {
	AA float64 `json:"AA"` //all atoms
	AS float64 `json:"AS"` //side chains
}

//Selection returns the CAD-score residue selection for the group with the active
//residue active and the given neighbors, in the chain chain, as in "(A12)(A10,A13)".
func Selection(chain string, active int, neighbors []int) string {
	n := make([]string, len(neighbors))
	for i, v := range neighbors {
		n[i] = chain + strconv.Itoa(v)
	}
	return fmt.Sprintf("(%s%d)(%s)", chain, active, strings.Join(n, ","))
}

//SummaryPath returns the summary file the tool writes in outDir for the
//given target and model.
func SummaryPath(outDir, target, model string) string {
	return filepath.Join(outDir, "targets", filepath.Base(target), "models", filepath.Base(model), "summary")
}

//Run executes the program with the arguments -D outDir -t target -m model -i selection,
//and kills it if it doesn't finish within the Runner's timeout. A failure gives an
//ExternalToolError carrying the output of the program. If the program ran out of time,
//the error's Timeout method returns true.
func (R *Runner) Run(ctx context.Context, outDir, target, model, selection string) error {
	if R.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, R.Timeout)
		defer cancel()
	}
	args := append(append([]string{}, R.Args...), "-D", outDir, "-t", target, "-m", model, "-i", selection)
	if R.Verbose {
		log.Printf("cadscore: %s %s", R.Exec, strings.Join(args, " "))
	}
	cmd := exec.CommandContext(ctx, R.Exec, args...)
	//children of the program could keep the output open after it is killed.
	cmd.WaitDelay = time.Second
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	if ctxerr := ctx.Err(); ctxerr != nil {
		return chem.NewExternalToolError(R.Exec, out.String(), ctxerr, errors.Is(ctxerr, context.DeadlineExceeded), "cadscore.Runner.Run")
	}
	if err != nil {
		return chem.NewExternalToolError(R.Exec, out.String(), err, false, "cadscore.Runner.Run")
	}
	return nil
}

//Score runs the program (see Run) and reads the summary it writes.
func (R *Runner) Score(ctx context.Context, outDir, target, model, selection string) (Score, error) {
	if err := R.Run(ctx, outDir, target, model, selection); err != nil {
		return Score{}, err
	}
	s, err := ReadSummary(SummaryPath(outDir, target, model))
	return s, chem.ErrDecorate(err, "cadscore.Runner.Score")
}

//ReadSummary reads the AA and AS scores from a CAD-score summary file.
//A summary lacking either gives an ExternalToolError.
func ReadSummary(path string) (Score, error) {
	var s Score
	f, err := os.Open(path)
	if err != nil {
		return s, chem.NewExternalToolError("CAD-score", "", fmt.Errorf("no summary: %w", err), false, "cadscore.ReadSummary")
	}
	defer f.Close()
	var hasAA, hasAS bool
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 2 {
			continue
		}
		var dest *float64
		switch line[:2] {
		case "AA":
			dest, hasAA = &s.AA, true
		case "AS":
			dest, hasAS = &s.AS, true
		default:
			continue
		}
		*dest, err = strconv.ParseFloat(strings.TrimSpace(line[2:]), 64)
		if err != nil {
			return s, chem.NewExternalToolError("CAD-score", line, fmt.Errorf("malformed summary %s: %w", path, err), false, "cadscore.ReadSummary")
		}
	}
	if err := scanner.Err(); err != nil {
		return s, chem.WrapInputError(err, path, "cadscore.ReadSummary")
	}
	if !hasAA || !hasAS {
		return s, chem.NewExternalToolError("CAD-score", "", fmt.Errorf("summary %s lacks the AA or AS scores", path), false, "cadscore.ReadSummary")
	}
	return s, nil
}
