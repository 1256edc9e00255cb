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

package mapper

import (
	"net/http"

	"dirpx.dev/gdferr/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for every engine
// error code. These are only defaults: callers are expected to adjust them
// at the boundary where HTTP is actually produced.
//
// Failures caused by the caller's input (types, sizes, specifiers) are 4xx;
// failures of the engine or the device are 5xx.
var defaultHTTP = map[code.Code]int{
	code.Success: http.StatusOK,

	// 5xx: device / runtime / environment.
	code.CUDAError:              http.StatusInternalServerError, // Device runtime failure; not the caller's fault.
	code.HashTableInsertFailure: http.StatusInternalServerError, // Internal structure overflowed.
	code.CError:                 http.StatusInternalServerError, // C library failure.
	code.FileError:              http.StatusInternalServerError, // I/O failure on the server side.
	code.MemoryManagerError:     http.StatusServiceUnavailable,  // Device memory exhausted; may succeed later.

	// 501: known but not implemented.
	code.ValidityUnsupported: http.StatusNotImplemented,
	code.UnsupportedMethod:   http.StatusNotImplemented,
	code.UnsupportedJoinType: http.StatusNotImplemented,
	code.NotImplementedError: http.StatusNotImplemented,

	// 4xx: caller input.
	code.UnsupportedDtype:            http.StatusBadRequest,
	code.ColumnSizeMismatch:          http.StatusBadRequest,
	code.ColumnSizeTooBig:            http.StatusRequestEntityTooLarge, // Input exceeds the addressable row count.
	code.DatasetEmpty:                http.StatusBadRequest,
	code.ValidityMissing:             http.StatusBadRequest,
	code.InvalidAPICall:              http.StatusBadRequest,
	code.JoinDtypeMismatch:           http.StatusBadRequest,
	code.JoinTooManyColumns:          http.StatusBadRequest,
	code.DtypeMismatch:               http.StatusBadRequest,
	code.InvalidAggregator:           http.StatusBadRequest,
	code.InvalidHashFunction:         http.StatusBadRequest,
	code.PartitionDtypeMismatch:      http.StatusBadRequest,
	code.UndefinedNVTXColor:          http.StatusBadRequest,
	code.NullNVTXName:                http.StatusBadRequest,
	code.TimestampResolutionMismatch: http.StatusBadRequest,
	code.TablesSizeMismatch:          http.StatusBadRequest,
}

// defaultGRPC defines the library's built-in gRPC mappings for every engine
// error code. Like defaultHTTP these can be changed with options.
var defaultGRPC = map[code.Code]codes.Code{
	code.Success: codes.OK,

	// Internal / device.
	code.CUDAError:              codes.Internal,
	code.HashTableInsertFailure: codes.Internal,
	code.CError:                 codes.Internal,
	code.FileError:              codes.Internal,
	code.MemoryManagerError:     codes.ResourceExhausted, // Device memory pool exhausted.

	// Not implemented.
	code.ValidityUnsupported: codes.Unimplemented,
	code.UnsupportedMethod:   codes.Unimplemented,
	code.UnsupportedJoinType: codes.Unimplemented,
	code.NotImplementedError: codes.Unimplemented,

	// Input / preconditions.
	code.UnsupportedDtype:            codes.InvalidArgument,
	code.ColumnSizeMismatch:          codes.InvalidArgument,
	code.ColumnSizeTooBig:            codes.OutOfRange,
	code.DatasetEmpty:                codes.FailedPrecondition, // Input is well-formed but holds no rows.
	code.ValidityMissing:             codes.InvalidArgument,
	code.InvalidAPICall:              codes.FailedPrecondition, // Calls made in the wrong order.
	code.JoinDtypeMismatch:           codes.InvalidArgument,
	code.JoinTooManyColumns:          codes.InvalidArgument,
	code.DtypeMismatch:               codes.InvalidArgument,
	code.InvalidAggregator:           codes.InvalidArgument,
	code.InvalidHashFunction:         codes.InvalidArgument,
	code.PartitionDtypeMismatch:      codes.InvalidArgument,
	code.UndefinedNVTXColor:          codes.InvalidArgument,
	code.NullNVTXName:                codes.InvalidArgument,
	code.TimestampResolutionMismatch: codes.InvalidArgument,
	code.TablesSizeMismatch:          codes.InvalidArgument,
}
