/*
 * pipeline.go, part of fusechem.
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

package cadscore

import (
	"context"
	"fmt"
	"log"

	chem "github.com/sysu-software/fusechem"
	"github.com/sysu-software/fusechem/align"
	"github.com/sysu-software/fusechem/contacts"
	"github.com/sysu-software/fusechem/workspace"
)

//Pipeline computes CAD-scores for the active residues of a protein.
type Pipeline struct {
	Runner        *Runner
	Root          string //where the workspaces are created. The system temporary directory if empty.
	KeepWorkspace bool   //don't delete the workspace when done.
}

//NewPipeline returns a Pipeline using DefaultRunner.
func NewPipeline() *Pipeline {
	return &Pipeline{Runner: DefaultRunner()}
}

//Result contains the CAD-scores for each active residue with neighbors, by label.
type Result struct {
	Scores map[string]Score
	Groups []contacts.NeighborGroup
	//Transplanted is the file with the transplanted structure, and Workspace
	//the directory containing it. Both are empty unless the workspace is kept.
	Transplanted string
	Workspace    string
}

//Score transplants the coordinates of the structure in tarPath onto the one in srcPath, groups the
//residues of the latter around the active residues given in labels ("TRP124", only the digits
//are used), with the given distance threshold (contacts.DefaultThreshold if 0), and runs
//CAD-score for each group, comparing the source with the transplanted structure.
//Unrelated structures give an AlignmentMismatchError, and active residues without neighbors
//an InsufficientDataError. Any failed run aborts the whole calculation.
func (P *Pipeline) Score(ctx context.Context, srcPath, tarPath string, labels []string, threshold float64) (*Result, error) {
	if threshold == 0 {
		threshold = contacts.DefaultThreshold
	}
	runner := P.Runner
	if runner == nil {
		runner = DefaultRunner()
	}
	byNumber := make(map[int]string, len(labels))
	numbers := make([]int, 0, len(labels))
	for _, l := range labels {
		n, err := chem.LabelNumber(l)
		if err != nil {
			return nil, chem.ErrDecorate(err, "cadscore.Pipeline.Score")
		}
		if _, ok := byNumber[n]; !ok {
			numbers = append(numbers, n)
		}
		byNumber[n] = l
	}
	ws, err := workspace.New(P.Root, "cad")
	if err != nil {
		return nil, chem.ErrDecorate(err, "cadscore.Pipeline.Score")
	}
	if !P.KeepWorkspace {
		defer func() {
			if err := ws.Remove(); err != nil {
				log.Printf("cadscore: %v", err)
			}
		}()
	}
	o := align.DefaultOptions()
	o.OutDir(ws.Dir)
	tr, err := align.TransplantFiles(srcPath, tarPath, o)
	if err != nil {
		return nil, chem.ErrDecorate(err, "cadscore.Pipeline.Score")
	}
	groups, err := contacts.Group(numbers, tr.Source, tr.Transplanted, threshold)
	if err != nil {
		return nil, chem.ErrDecorate(err, "cadscore.Pipeline.Score")
	}
	ret := &Result{Scores: make(map[string]Score, len(groups)), Groups: groups}
	for _, g := range groups {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("cadscore.Pipeline.Score: %w", err)
		}
		out, err := ws.Sub(fmt.Sprintf("group-%d", g.Active))
		if err != nil {
			return nil, chem.ErrDecorate(err, "cadscore.Pipeline.Score")
		}
		s, err := runner.Score(ctx, out, srcPath, tr.Path, Selection(tr.ChainID, g.Active, g.Neighbors))
		if err != nil {
			return nil, chem.ErrDecorate(err, "cadscore.Pipeline.Score")
		}
		ret.Scores[byNumber[g.Active]] = s
	}
	if P.KeepWorkspace {
		ret.Transplanted = tr.Path
		ret.Workspace = ws.Dir
	}
	return ret, nil
}
