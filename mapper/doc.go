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

// Package mapper provides deterministic, immutable mappings from engine
// error codes (dirpx.dev/gdferr/code) to transport-level statuses for HTTP
// and gRPC.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the Code;
//  2. per-Code default (library or user-adjusted);
//  3. global fallback (500 / codes.Internal unless configured).
//
// The library defaults cover every defined code, so the fallback is only
// reached for values that are not defined enumerators.
//
// # Library defaults
//
// Failures caused by the caller's input (type, size and specifier
// mismatches) map to 4xx / InvalidArgument-like codes; features that are
// declared but missing map to 501 / Unimplemented; device, runtime and I/O
// failures map to 5xx / Internal. MemoryManagerError maps to 503 /
// ResourceExhausted because it may succeed once memory is released.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.FileError, http.StatusNotFound),
//	    mapper.WithGRPCOverride(code.FileError, int(codes.NotFound)),
//	)
//	if err != nil {
//	    // option targets an undefined code or carries an invalid status
//	}
//
//	st := m.Status(code.FileError)
//	// st.HTTP == 404, st.GRPC == codes.NotFound
//
// # Policy files
//
// The same options can be declared in a YAML or TOML file and loaded with
// LoadPolicyFile or FromFile. See Policy for the layout.
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a particular code was
// resolved, naming the tier that matched. It is intended for inspection and
// logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Mapper does not observe further changes to the caller's maps. This makes it
// safe to share a single instance across handlers, goroutines and requests.
package mapper
