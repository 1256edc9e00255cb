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

import "dirpx.dev/gdferr/code/internal/nametable"

// Engine error codes.
//
// The numeric values follow the engine's C enum and are part of the binding
// ABI: never reorder, never renumber, only append before numCodes. Every
// enumerator added here MUST also get an entry in table below; Missing
// reports the ones that did not.
const (
	// Success indicates that the operation completed.
	// It is the only code that does not denote a failure.
	//
	// Can be mapped to an HTTP 200 / gRPC OK.
	Success Code = iota

	// CUDAError indicates that the underlying accelerator runtime reported
	// a failure (kernel launch, device synchronisation, copy).
	//
	// Can be mapped to an HTTP 500 / gRPC Internal.
	CUDAError

	// UnsupportedDtype indicates that an operation was given a column whose
	// element type it does not implement.
	//
	// Can be mapped to an HTTP 400 / gRPC InvalidArgument.
	UnsupportedDtype

	// ColumnSizeMismatch indicates that operand columns have different
	// lengths where equal lengths are required.
	//
	// Can be mapped to an HTTP 400 / gRPC InvalidArgument.
	ColumnSizeMismatch

	// ColumnSizeTooBig indicates that a column exceeds the maximum number of
	// rows the engine can index.
	//
	// Can be mapped to an HTTP 413 / gRPC OutOfRange.
	ColumnSizeTooBig

	// DatasetEmpty indicates that an operation requiring data was given an
	// empty column or table.
	//
	// Can be mapped to an HTTP 400 / gRPC FailedPrecondition.
	DatasetEmpty

	// ValidityMissing indicates that a null (validity) bitmask was required
	// but not supplied.
	//
	// Can be mapped to an HTTP 400 / gRPC InvalidArgument.
	ValidityMissing

	// ValidityUnsupported indicates that a validity bitmask was supplied to
	// an operation that cannot handle nulls.
	//
	// Can be mapped to an HTTP 501 / gRPC Unimplemented.
	ValidityUnsupported

	// InvalidAPICall indicates that the API was used in an invalid sequence
	// or with arguments that cannot be combined (e.g. a nil output column).
	//
	// Can be mapped to an HTTP 400 / gRPC FailedPrecondition.
	InvalidAPICall

	// JoinDtypeMismatch indicates that join key columns on the left and
	// right side have different element types.
	//
	// Can be mapped to an HTTP 400 / gRPC InvalidArgument.
	JoinDtypeMismatch

	// JoinTooManyColumns indicates that a join was requested on more key
	// columns than the join implementation supports.
	//
	// Can be mapped to an HTTP 400 / gRPC InvalidArgument.
	JoinTooManyColumns

	// DtypeMismatch indicates that operand columns have different element
	// types where equal types are required.
	//
	// Can be mapped to an HTTP 400 / gRPC InvalidArgument.
	DtypeMismatch

	// UnsupportedMethod indicates that the requested method (sort, join or
	// group-by algorithm) is not available.
	//
	// Can be mapped to an HTTP 501 / gRPC Unimplemented.
	UnsupportedMethod

	// InvalidAggregator indicates that an aggregation specifier is not
	// recognised.
	//
	// Can be mapped to an HTTP 400 / gRPC InvalidArgument.
	InvalidAggregator

	// InvalidHashFunction indicates that a hash function specifier is not
	// recognised.
	//
	// Can be mapped to an HTTP 400 / gRPC InvalidArgument.
	InvalidHashFunction

	// PartitionDtypeMismatch indicates that columns being partitioned
	// together have incompatible element types.
	//
	// Can be mapped to an HTTP 400 / gRPC InvalidArgument.
	PartitionDtypeMismatch

	// HashTableInsertFailure indicates that inserting into a device hash
	// table failed, typically because it ran out of capacity.
	//
	// Can be mapped to an HTTP 500 / gRPC Internal.
	HashTableInsertFailure

	// UnsupportedJoinType indicates that the requested join kind (inner,
	// left, full, ...) is not implemented for the given inputs.
	//
	// Can be mapped to an HTTP 501 / gRPC Unimplemented.
	UnsupportedJoinType

	// CError indicates a failure reported by a C library call.
	//
	// Can be mapped to an HTTP 500 / gRPC Internal.
	CError

	// FileError indicates a file I/O failure (open, read, map).
	//
	// Can be mapped to an HTTP 500 / gRPC Internal.
	FileError

	// MemoryManagerError indicates that the device memory manager failed to
	// allocate or release memory.
	//
	// Can be mapped to an HTTP 503 / gRPC ResourceExhausted.
	MemoryManagerError

	// UndefinedNVTXColor indicates that a profiling range was opened with a
	// color that is not defined.
	//
	// Can be mapped to an HTTP 400 / gRPC InvalidArgument.
	UndefinedNVTXColor

	// NullNVTXName indicates that a profiling range was opened without a
	// name.
	//
	// Can be mapped to an HTTP 400 / gRPC InvalidArgument.
	NullNVTXName

	// TimestampResolutionMismatch indicates that timestamp operands use
	// different resolutions (s, ms, us, ns).
	//
	// Can be mapped to an HTTP 400 / gRPC InvalidArgument.
	TimestampResolutionMismatch

	// NotImplementedError indicates that the feature is declared but not
	// implemented.
	//
	// Can be mapped to an HTTP 501 / gRPC Unimplemented.
	NotImplementedError

	// TablesSizeMismatch indicates that operand tables have a different
	// number of columns or rows.
	//
	// Can be mapped to an HTTP 400 / gRPC InvalidArgument.
	TablesSizeMismatch

	// numCodes is the count sentinel. It must stay last.
	numCodes
)

// table is the single source for names. Both lookup directions and the
// completeness check are built from it.
var table = []nametable.Entry[Code]{
	{Key: Success, Name: "GDF_SUCCESS"},
	{Key: CUDAError, Name: "GDF_CUDA_ERROR"},
	{Key: UnsupportedDtype, Name: "GDF_UNSUPPORTED_DTYPE"},
	{Key: ColumnSizeMismatch, Name: "GDF_COLUMN_SIZE_MISMATCH"},
	{Key: ColumnSizeTooBig, Name: "GDF_COLUMN_SIZE_TOO_BIG"},
	{Key: DatasetEmpty, Name: "GDF_DATASET_EMPTY"},
	{Key: ValidityMissing, Name: "GDF_VALIDITY_MISSING"},
	{Key: ValidityUnsupported, Name: "GDF_VALIDITY_UNSUPPORTED"},
	{Key: InvalidAPICall, Name: "GDF_INVALID_API_CALL"},
	{Key: JoinDtypeMismatch, Name: "GDF_JOIN_DTYPE_MISMATCH"},
	{Key: JoinTooManyColumns, Name: "GDF_JOIN_TOO_MANY_COLUMNS"},
	{Key: DtypeMismatch, Name: "GDF_DTYPE_MISMATCH"},
	{Key: UnsupportedMethod, Name: "GDF_UNSUPPORTED_METHOD"},
	{Key: InvalidAggregator, Name: "GDF_INVALID_AGGREGATOR"},
	{Key: InvalidHashFunction, Name: "GDF_INVALID_HASH_FUNCTION"},
	{Key: PartitionDtypeMismatch, Name: "GDF_PARTITION_DTYPE_MISMATCH"},
	{Key: HashTableInsertFailure, Name: "GDF_HASH_TABLE_INSERT_FAILURE"},
	{Key: UnsupportedJoinType, Name: "GDF_UNSUPPORTED_JOIN_TYPE"},
	{Key: CError, Name: "GDF_C_ERROR"},
	{Key: FileError, Name: "GDF_FILE_ERROR"},
	{Key: MemoryManagerError, Name: "GDF_MEMORYMANAGER_ERROR"},
	{Key: UndefinedNVTXColor, Name: "GDF_UNDEFINED_NVTX_COLOR"},
	{Key: NullNVTXName, Name: "GDF_NULL_NVTX_NAME"},
	{Key: TimestampResolutionMismatch, Name: "GDF_TIMESTAMP_RESOLUTION_MISMATCH"},
	{Key: NotImplementedError, Name: "GDF_NOTIMPLEMENTED_ERROR"},
	{Key: TablesSizeMismatch, Name: "GDF_TABLES_SIZE_MISMATCH"},
}
