/*
 * doc.go, part of fusechem.
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

/*Package chem is the main package of the fusechem library. It provides the chain/residue/atom
model for protein structures, facilities for reading and writing PDB files, and the error kinds
shared by the analyses in the sub-packages, which deal with enzymes fused into a single chain.


	**fusechem Capabilities**


    Reads and writes PDB files, plain or compressed (gzip, zstd). Only the first model
	is read. Writing can be restricted to a selection of residues.

    One-letter sequences of the first chain of a structure.

    Finds an enzyme's sequence within a fusion chain, and transplants the coordinates
	of the fusion chain onto the enzyme's topology (package align).

    Groups residues around active residues by alpha-carbon distances (package contacts).

    Least-squares sphere fitting, and the circle where two spheres intersect (package sphere).

    Active site geometry of enzymes in a fusion chain, and comparison of two active
	sites in the same chain (package site).

    Candidate active residues by their b-factors, and plots of b-factor profiles
	(package chemplot).

    CAD-scores around active residues, computed with the CAD-score program in per-request
	workspaces (packages cadscore and workspace).

    A small background job runner, and a command line front-end (packages jobs and cmd/fusechem).


Errors

All the packages return errors implementing the Error interface, whose Decorate method
records the functions the error went through. The kind of an error is tested with IsMismatch,
IsInsufficient, IsInput and IsExternal, which also see through wrapping with fmt.Errorf and %w.
*/
package chem
