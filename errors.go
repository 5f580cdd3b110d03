// seehuhn.de/go/smith - Smith chart geometry for Go
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package smith

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a violated precondition, for example a
// point without reflection coefficient or a curve with fewer than two
// points.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes which argument of which operation was rejected.
// It unwraps to [ErrInvalidArgument].
type ArgumentError struct {
	Op     string // operation, e.g. "FitCurve"
	Arg    string // argument name
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("smith: %s: invalid %s: %s", e.Op, e.Arg, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func newArgumentError(op, arg, reason string) *ArgumentError {
	return &ArgumentError{
		Op:     op,
		Arg:    arg,
		Reason: reason,
	}
}
