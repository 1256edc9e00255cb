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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"iter"
	"strconv"
	"strings"

	"dirpx.dev/gdferr/code/internal/nametable"
)

// Code is an engine error code.
//
// The underlying type is int32 so that values coming from foreign bindings
// (the engine's C enum) can be converted without loss. Any int32 is
// representable, but only the enumerators declared in codes.go are defined;
// everything else resolves to Unknown.
type Code int32

// Unknown is the name returned for values that are not defined enumerators.
//
// The exact text is part of the observable contract: existing logs and
// tools match on it.
const Unknown = "Internal error. Unknown error code."

// namePrefix is the prefix shared by every canonical name.
const namePrefix = "GDF_"

var (
	// ErrCodeUnknown is returned when a value or name does not identify a
	// defined enumerator.
	ErrCodeUnknown = errors.New("gdferr: unknown error code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// names is the registry built from table. It is never mutated after
// package initialisation.
var names = nametable.MustNew(Unknown, table)

// Name returns the canonical name of c, or Unknown when c is not a defined
// enumerator. It never fails and never returns an empty string.
func Name(c Code) string {
	return names.Name(c)
}

// Lookup returns the canonical name of c and whether c is defined.
func Lookup(c Code) (string, bool) {
	return names.Lookup(c)
}

// Known reports whether c is a defined enumerator with a registered name.
func Known(c Code) bool {
	_, ok := names.Lookup(c)
	return ok
}

// All yields every enumerator of the taxonomy in ascending order.
//
// The sequence is derived from the enumeration itself (Success up to the
// count sentinel), not from the name table, so that it can be used to
// check the table for completeness.
func All() iter.Seq[Code] {
	return func(yield func(Code) bool) {
		for c := Success; c < numCodes; c++ {
			if !yield(c) {
				return
			}
		}
	}
}

// Missing returns the enumerators that have no registered name, sorted
// ascending. A nil result means the table is complete.
func Missing() []Code {
	return names.Missing(All())
}

// Parse resolves a user-provided value to a defined Code.
//
// Both forms are accepted:
//
//   - a decimal value, e.g. "19";
//   - a name, normalized by Normalize, e.g. "GDF_FILE_ERROR",
//     "file_error" or "file-error".
//
// On failure it returns Success together with ErrCodeUnknown.
func Parse(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		c := Code(n)
		if !Known(c) {
			return Success, ErrCodeUnknown
		}
		return c, nil
	}
	if c, ok := names.Key(Normalize(s)); ok {
		return c, nil
	}
	return Success, ErrCodeUnknown
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize brings a name closer to the canonical form:
//
//   - trims surrounding spaces;
//   - upper-cases the value;
//   - replaces '-' and inner spaces with '_';
//   - adds the "GDF_" prefix when absent.
//
// It does NOT guarantee that the result names a defined code.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToUpper(s)
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	if !strings.HasPrefix(s, namePrefix) {
		s = namePrefix + s
	}
	return s
}

// Validate returns ErrCodeUnknown when c is not a defined enumerator.
func Validate(c Code) error {
	if !Known(c) {
		return ErrCodeUnknown
	}
	return nil
}

// String returns the canonical name of c (see Name).
func (c Code) String() string {
	return Name(c)
}

// MarshalText implements encoding.TextMarshaler.
//
// Undefined codes are rejected rather than encoded as Unknown, so that the
// sentinel text never ends up in persisted data.
func (c Code) MarshalText() ([]byte, error) {
	name, ok := Lookup(c)
	if !ok {
		return nil, ErrCodeUnknown
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts everything
// Parse accepts.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
