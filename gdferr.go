/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package gdferr turns engine error codes into Go errors.
//
// The engine reports failures as integer codes (see package code). Error
// wraps such a code so it can travel through ordinary Go error handling,
// be matched with errors.Is, and be logged with its canonical name:
//
//	if err := gdferr.Check(code.Code(status)); err != nil {
//	    return err // "GDF_DTYPE_MISMATCH"
//	}
package gdferr

import (
	"errors"

	"dirpx.dev/gdferr/apis"
	"dirpx.dev/gdferr/code"
	"github.com/rs/zerolog"
)

// Error is an engine error code as a Go error.
//
// It carries only the code and an optional wrapped cause. Values are never
// mutated after construction, so they can be shared freely.
type Error struct {
	// Code is the engine error code. It may be a value that is not a defined
	// enumerator; it then renders as code.Unknown.
	Code code.Code

	// Err holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for debugging in lower layers.
	Err error
}

var (
	_ apis.CodedError            = (*Error)(nil)
	_ apis.CausedError           = (*Error)(nil)
	_ zerolog.LogObjectMarshaler = (*Error)(nil)
)

// New returns an Error for c.
func New(c code.Code) *Error {
	return &Error{Code: c}
}

// Wrap returns an Error for c that wraps cause.
func Wrap(c code.Code, cause error) *Error {
	return &Error{Code: c, Err: cause}
}

// Check converts a status code into an error: nil for code.Success, an
// *Error for anything else (including undefined values).
func Check(c code.Code) error {
	if c == code.Success {
		return nil
	}
	return New(c)
}

// CodeOf returns the code carried by err or by any error it wraps.
// A nil error is code.Success. The second result is false when no error in
// the chain carries a code.
func CodeOf(err error) (code.Code, bool) {
	if err == nil {
		return code.Success, true
	}
	var ce apis.CodedError
	if errors.As(err, &ce) {
		return ce.ErrorCode(), true
	}
	return code.Success, false
}

// Error implements the built-in error interface.
//
// The format is the canonical name, followed by ": <cause>" when a cause
// is attached:
//
//	GDF_FILE_ERROR: open /data/x.csv: no such file or directory
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Code.String() + ": " + e.Err.Error()
	}
	return e.Code.String()
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is an *Error with the same code, so that
//
//	errors.Is(err, gdferr.New(code.FileError))
//
// matches regardless of the cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// ErrorCode implements apis.CodedError. A nil *Error reports code.Success.
func (e *Error) ErrorCode() code.Code {
	if e == nil {
		return code.Success
	}
	return e.Code
}

// Cause implements apis.CausedError.
func (e *Error) Cause() error { return e.Unwrap() }

// MarshalZerologObject implements zerolog.LogObjectMarshaler:
//
//	log.Error().Object("error", err).Msg("join failed")
//	// {"error":{"code":9,"name":"GDF_JOIN_DTYPE_MISMATCH"}, ...}
func (e *Error) MarshalZerologObject(ev *zerolog.Event) {
	if e == nil {
		return
	}
	ev.Int32("code", int32(e.Code)).Str("name", e.Code.String())
	if e.Err != nil {
		ev.Str("cause", e.Err.Error())
	}
}
