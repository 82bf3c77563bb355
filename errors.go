/*
 * errors.go, part of fusechem.
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
	"errors"
	"fmt"
	"strings"
)

//deco holds the decoration shared by all the error kinds.
type deco []string

func (D *deco) decorate(s string) []string {
	if s == "" {
		return *D
	}
	*D = append(*D, s)
	return *D
}

func (D deco) suffix() string {
	if len(D) == 0 {
		return ""
	}
	//innermost function first, as they were added.
	return " (" + strings.Join(D, " <- ") + ")"
}

//AlignmentMismatchError is returned when the source sequence is not found in the target.
//It is a normal outcome for unrelated structures, and should not be retried.
type AlignmentMismatchError struct {
	Src, Tar string //names of the structures compared
	deco
}

//NewAlignmentMismatchError returns a mismatch error between the structures src and tar.
func NewAlignmentMismatchError(src, tar string, decoration ...string) *AlignmentMismatchError {
	return &AlignmentMismatchError{Src: src, Tar: tar, deco: decoration}
}

func (E *AlignmentMismatchError) Error() string {
	return fmt.Sprintf("sequence of %q not found in %q%s", E.Src, E.Tar, E.suffix())
}

//Decorate adds s to the decoration of the error and returns the decoration.
func (E *AlignmentMismatchError) Decorate(s string) []string { return E.decorate(s) }

//InsufficientDataError is returned when a calculation has too few usable points,
//for instance no neighbor groups, or fewer points than needed for a sphere fit.
type InsufficientDataError struct {
	Msg  string
	Have int
	Need int
	deco
}

//NewInsufficientDataError returns an error for a calculation that got have
//points where it needed at least need. Use negative values when the
//numbers have no meaning.
func NewInsufficientDataError(msg string, have, need int, decoration ...string) *InsufficientDataError {
	return &InsufficientDataError{Msg: msg, Have: have, Need: need, deco: decoration}
}

func (E *InsufficientDataError) Error() string {
	if E.Need >= 0 {
		return fmt.Sprintf("insufficient data: %s: have %d, need %d%s", E.Msg, E.Have, E.Need, E.suffix())
	}
	return fmt.Sprintf("insufficient data: %s%s", E.Msg, E.suffix())
}

//Decorate adds s to the decoration of the error and returns the decoration.
func (E *InsufficientDataError) Decorate(s string) []string { return E.decorate(s) }

//InputError is returned for malformed queries, empty sequences, missing residues
//and unreadable files.
type InputError struct {
	Msg string
	Err error //the underlying error, if any
	deco
}

//NewInputError returns an InputError with the message msg.
func NewInputError(msg string, decoration ...string) *InputError {
	return &InputError{Msg: msg, deco: decoration}
}

//WrapInputError returns an InputError with the message msg, wrapping err.
func WrapInputError(err error, msg string, decoration ...string) *InputError {
	return &InputError{Msg: msg, Err: err, deco: decoration}
}

func (E *InputError) Error() string {
	if E.Err != nil {
		return fmt.Sprintf("input error: %s: %v%s", E.Msg, E.Err, E.suffix())
	}
	return fmt.Sprintf("input error: %s%s", E.Msg, E.suffix())
}

func (E *InputError) Unwrap() error { return E.Err }

//Decorate adds s to the decoration of the error and returns the decoration.
func (E *InputError) Decorate(s string) []string { return E.decorate(s) }

//ExternalToolError is returned when an external program fails or does not
//finish in time. Output contains whatever the program printed.
type ExternalToolError struct {
	Tool     string
	Output   string
	Err      error
	timedout bool
	deco
}

//NewExternalToolError returns an error for the program tool, which failed with err
//after printing output.
func NewExternalToolError(tool, output string, err error, timedout bool, decoration ...string) *ExternalToolError {
	return &ExternalToolError{Tool: tool, Output: output, Err: err, timedout: timedout, deco: decoration}
}

func (E *ExternalToolError) Error() string {
	if E.timedout {
		return fmt.Sprintf("%s did not finish in time: %v%s", E.Tool, E.Err, E.suffix())
	}
	return fmt.Sprintf("%s failed: %v: %s%s", E.Tool, E.Err, strings.TrimSpace(E.Output), E.suffix())
}

func (E *ExternalToolError) Unwrap() error { return E.Err }

//Timeout returns true if the program was killed because it ran out of time.
func (E *ExternalToolError) Timeout() bool { return E.timedout }

//Decorate adds s to the decoration of the error and returns the decoration.
func (E *ExternalToolError) Decorate(s string) []string { return E.decorate(s) }

//errDecorate decorates err with caller if err is one of our errors,
//and returns it. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}

//ErrDecorate is the exported version of errDecorate, for the sub-packages.
func ErrDecorate(err error, caller string) error {
	return errDecorate(err, caller)
}

//IsMismatch returns true if err is, or wraps, an AlignmentMismatchError.
func IsMismatch(err error) bool {
	var e *AlignmentMismatchError
	return errors.As(err, &e)
}

//IsInsufficient returns true if err is, or wraps, an InsufficientDataError.
func IsInsufficient(err error) bool {
	var e *InsufficientDataError
	return errors.As(err, &e)
}

//IsInput returns true if err is, or wraps, an InputError.
func IsInput(err error) bool {
	var e *InputError
	return errors.As(err, &e)
}

//IsExternal returns true if err is, or wraps, an ExternalToolError.
func IsExternal(err error) bool {
	var e *ExternalToolError
	return errors.As(err, &e)
}
