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

package apis

import "dirpx.dev/gdferr/code"

// CodedError represents an error that carries an engine error code.
//
// Adapters (gRPC, HTTP, loggers) use this interface to find the code of an
// error without depending on the concrete error type. Implementations may
// return codes that are not defined enumerators (for example a raw value
// received from a binding); adapters must treat those through the code
// package's Unknown fallback rather than reject them.
type CodedError interface {
	error

	// ErrorCode returns the engine error code.
	ErrorCode() code.Code
}

// CausedError represents an error that exposes its underlying cause.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this error, if any.
	// May return nil.
	Cause() error
}
