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

// Package code is the registry of engine error codes and their canonical
// names.
//
// A Code is the integer status the engine returns from its operations, such
// as Success, UnsupportedDtype or FileError. Each defined Code has exactly
// one canonical name, the engine's own symbolic spelling:
//
//	code.Name(code.UnsupportedDtype) // "GDF_UNSUPPORTED_DTYPE"
//
// Values that are representable but not defined (an out-of-range integer
// handed over by a binding, a code added to the engine but not yet to this
// package) never fail: they resolve to the Unknown sentinel text.
//
// Names are declared once, in a single ordered table. The lookup index, the
// reverse index used by Parse, and the completeness check (Missing) are all
// derived from that table, so they cannot drift apart. Missing compares the
// table against All, which enumerates the constants themselves; a test
// asserting that Missing returns nil is what keeps the two in sync.
//
// Everything in this package is immutable after initialisation and safe for
// concurrent use.
package code
