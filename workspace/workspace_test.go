/*
 * workspace_test.go, part of fusechem.
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

package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWorkspace(Te *testing.T) {
	root := Te.TempDir()
	w1, err := New(root, "cad")
	if err != nil {
		Te.Fatal(err)
	}
	w2, err := New(root, "cad")
	if err != nil {
		Te.Fatal(err)
	}
	if w1.Dir == w2.Dir {
		Te.Error("two workspaces share a directory")
	}
	if !strings.HasPrefix(filepath.Base(w1.Dir), "cad-") || filepath.Dir(w1.Dir) != root {
		Te.Errorf("unexpected workspace directory %s", w1.Dir)
	}
	sub, err := w1.Sub("group1")
	if err != nil {
		Te.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "summary"), []byte("AA 0.5\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	if w1.Path("x.pdb") != filepath.Join(w1.Dir, "x.pdb") {
		Te.Errorf("wrong path %s", w1.Path("x.pdb"))
	}
	if err := w1.Remove(); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(w1.Dir); !os.IsNotExist(err) {
		Te.Errorf("the workspace was not removed: %v", err)
	}
	if _, err := os.Stat(w2.Dir); err != nil {
		Te.Errorf("removing one workspace affected another: %v", err)
	}
}
