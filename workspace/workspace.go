/*
 * workspace.go, part of fusechem.
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

//Package workspace provides per-request directories for intermediate files, so
//concurrent requests never share file names.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	chem "github.com/sysu-software/fusechem"
)

//Workspace is a directory owned by one request.
type Workspace struct {
	Dir string
	ID  string
}

//New creates the directory <root>/<prefix>-<uuid> and returns it as a Workspace.
//An empty root means the system temporary directory.
func New(root, prefix string) (*Workspace, error) {
	if root == "" {
		root = os.TempDir()
	}
	id := uuid.NewString()
	name := id
	if prefix != "" {
		name = prefix + "-" + id
	}
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, chem.WrapInputError(err, fmt.Sprintf("creating workspace in %s", root), "workspace.New")
	}
	return &Workspace{Dir: dir, ID: id}, nil
}

//Path returns the path of the file name in the workspace.
func (W *Workspace) Path(name string) string {
	return filepath.Join(W.Dir, name)
}

//Sub creates the sub directory name in the workspace and returns its path.
func (W *Workspace) Sub(name string) (string, error) {
	p := W.Path(name)
	if err := os.MkdirAll(p, 0o755); err != nil {
		return "", chem.WrapInputError(err, "creating workspace sub directory", "Workspace.Sub")
	}
	return p, nil
}

//Remove deletes the workspace and everything in it.
func (W *Workspace) Remove() error {
	if err := os.RemoveAll(W.Dir); err != nil {
		return chem.WrapInputError(err, "removing workspace", "Workspace.Remove")
	}
	return nil
}
