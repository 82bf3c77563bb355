/*
 * options.go, part of fusechem.
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

package align

//Options contains various options for the TransplantFiles function
type Options struct {
	outDir   string //directory for the transplanted structure. The directory of the source structure if empty.
	prefix   string //prefix for the name of the transplanted structure file.
	fallback string //atom whose coordinates are used when the target residue lacks an atom.
}

//DefaultOptions return the options that reproduce the usual naming: the
//transplanted structure for src.pdb is written as new_tar_src.pdb next
//to src.pdb, and missing atoms take the alpha carbon coordinates.
func DefaultOptions() *Options {
	r := new(Options)
	r.outDir = ""
	r.prefix = "new_tar_"
	r.fallback = "CA"
	return r
}

//OutDir returns the directory where transplanted structures are written,
//and sets it to a new value, if given. An empty directory means "next to
//the source structure".
func (O *Options) OutDir(dir ...string) string {
	if len(dir) > 0 {
		O.outDir = dir[0]
	}
	return O.outDir
}

//Prefix returns the prefix for transplanted structure file names,
//and sets it to a new value, if given.
func (O *Options) Prefix(p ...string) string {
	if len(p) > 0 && p[0] != "" {
		O.prefix = p[0]
	}
	return O.prefix
}

//Fallback returns the name of the atom whose coordinates replace those
//missing in the target, and sets it to a new value, if given.
func (O *Options) Fallback(name ...string) string {
	if len(name) > 0 && name[0] != "" {
		O.fallback = name[0]
	}
	return O.fallback
}
