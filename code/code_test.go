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
	"encoding"
	"errors"
	"slices"
	"testing"

	"dirpx.dev/gdferr/code/internal/nametable"
	"golang.org/x/sync/errgroup"
)

// legacyNames are the names the engine has always reported. Logs and tools
// match on these exact strings.
var legacyNames = map[Code]string{
	Success:                     "GDF_SUCCESS",
	CUDAError:                   "GDF_CUDA_ERROR",
	UnsupportedDtype:            "GDF_UNSUPPORTED_DTYPE",
	ColumnSizeMismatch:          "GDF_COLUMN_SIZE_MISMATCH",
	ColumnSizeTooBig:            "GDF_COLUMN_SIZE_TOO_BIG",
	DatasetEmpty:                "GDF_DATASET_EMPTY",
	ValidityMissing:             "GDF_VALIDITY_MISSING",
	ValidityUnsupported:         "GDF_VALIDITY_UNSUPPORTED",
	InvalidAPICall:              "GDF_INVALID_API_CALL",
	JoinDtypeMismatch:           "GDF_JOIN_DTYPE_MISMATCH",
	JoinTooManyColumns:          "GDF_JOIN_TOO_MANY_COLUMNS",
	DtypeMismatch:               "GDF_DTYPE_MISMATCH",
	UnsupportedMethod:           "GDF_UNSUPPORTED_METHOD",
	InvalidAggregator:           "GDF_INVALID_AGGREGATOR",
	InvalidHashFunction:         "GDF_INVALID_HASH_FUNCTION",
	PartitionDtypeMismatch:      "GDF_PARTITION_DTYPE_MISMATCH",
	HashTableInsertFailure:      "GDF_HASH_TABLE_INSERT_FAILURE",
	UnsupportedJoinType:         "GDF_UNSUPPORTED_JOIN_TYPE",
	CError:                      "GDF_C_ERROR",
	FileError:                   "GDF_FILE_ERROR",
	MemoryManagerError:          "GDF_MEMORYMANAGER_ERROR",
	UndefinedNVTXColor:          "GDF_UNDEFINED_NVTX_COLOR",
	NullNVTXName:                "GDF_NULL_NVTX_NAME",
	TimestampResolutionMismatch: "GDF_TIMESTAMP_RESOLUTION_MISMATCH",
	NotImplementedError:         "GDF_NOTIMPLEMENTED_ERROR",
	TablesSizeMismatch:          "GDF_TABLES_SIZE_MISMATCH",
}

func TestName_EveryCode(t *testing.T) {
	n := 0
	for c := range All() {
		n++
		want, ok := legacyNames[c]
		if !ok {
			t.Fatalf("code %d has no expected name in the test table", int32(c))
		}
		if got := Name(c); got != want {
			t.Fatalf("Name(%d) = %q, want %q", int32(c), got, want)
		}
		if got := Name(c); got != want {
			t.Fatalf("Name(%d) not stable across calls: %q", int32(c), got)
		}
	}
	if n != len(legacyNames) {
		t.Fatalf("All() yielded %d codes, want %d", n, len(legacyNames))
	}
}

func TestName_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		in   Code
		want string
	}{
		{"success", Success, "GDF_SUCCESS"},
		{"unsupported dtype", UnsupportedDtype, "GDF_UNSUPPORTED_DTYPE"},
		{"one past the last", numCodes, Unknown},
		{"negative", Code(-1), Unknown},
		{"far out of range", Code(1 << 30), Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Name(tt.in)
			if got != tt.want {
				t.Fatalf("Name(%d) = %q, want %q", int32(tt.in), got, tt.want)
			}
			if got == "" {
				t.Fatalf("Name must never be empty")
			}
			if tt.in.String() != got {
				t.Fatalf("String() = %q, want %q", tt.in.String(), got)
			}
		})
	}
}

func TestUnknown_LegacyText(t *testing.T) {
	if Unknown != "Internal error. Unknown error code." {
		t.Fatalf("Unknown changed: %q", Unknown)
	}
}

func TestMissing_Complete(t *testing.T) {
	if got := Missing(); got != nil {
		t.Fatalf("codes without a name: %v", got)
	}
}

func TestMissing_DetectsUnwiredCode(t *testing.T) {
	// Drop the last entry to simulate an enumerator added to the const block
	// without a table entry.
	partial := nametable.MustNew(Unknown, table[:len(table)-1])
	got := partial.Missing(All())
	if !slices.Equal(got, []Code{TablesSizeMismatch}) {
		t.Fatalf("Missing() = %v, want [%d]", got, int32(TablesSizeMismatch))
	}
	if partial.Name(TablesSizeMismatch) != Unknown {
		t.Fatalf("unwired code must resolve to Unknown")
	}
}

func TestNames_Injective(t *testing.T) {
	seen := make(map[string]Code)
	for c := range All() {
		n := Name(c)
		if prev, ok := seen[n]; ok {
			t.Fatalf("codes %d and %d share name %q", int32(prev), int32(c), n)
		}
		seen[n] = c
	}
	if _, ok := seen[Unknown]; ok {
		t.Fatalf("no defined code may use the Unknown text")
	}
}

func TestTable_MatchesEnumeration(t *testing.T) {
	if len(table) != int(numCodes) {
		t.Fatalf("table has %d entries, enumeration has %d codes", len(table), int(numCodes))
	}
	keys := names.Keys()
	if !slices.Equal(keys, slices.Collect(All())) {
		t.Fatalf("table order %v does not follow the enumeration", keys)
	}
}

func TestAll_Restartable(t *testing.T) {
	first := slices.Collect(All())
	second := slices.Collect(All())
	if !slices.Equal(first, second) {
		t.Fatalf("All() must yield the same sequence on every call")
	}
	if first[0] != Success || first[len(first)-1] != TablesSizeMismatch {
		t.Fatalf("All() = %v, want Success..TablesSizeMismatch", first)
	}

	// Early break must be honoured.
	n := 0
	for range All() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("iteration did not stop at 3")
	}
}

func TestName_Concurrent(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			for j := 0; j < 2000; j++ {
				if got := Name(DtypeMismatch); got != "GDF_DTYPE_MISMATCH" {
					return errors.New("unexpected name " + got)
				}
				if got := Name(numCodes + Code(j)); got != Unknown {
					return errors.New("unexpected fallback " + got)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestLookupAndKnown(t *testing.T) {
	if n, ok := Lookup(FileError); !ok || n != "GDF_FILE_ERROR" {
		t.Fatalf("Lookup(FileError) = %q, %v", n, ok)
	}
	if n, ok := Lookup(numCodes); ok || n != "" {
		t.Fatalf("Lookup(numCodes) = %q, %v; want \"\", false", n, ok)
	}
	if !Known(Success) || Known(numCodes) {
		t.Fatalf("Known() mismatch")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"canonical", "GDF_FILE_ERROR", "GDF_FILE_ERROR"},
		{"trim and upper", "  gdf_file_error ", "GDF_FILE_ERROR"},
		{"no prefix", "file_error", "GDF_FILE_ERROR"},
		{"dashes", "file-error", "GDF_FILE_ERROR"},
		{"spaces", "file error", "GDF_FILE_ERROR"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want Code
	}{
		{"GDF_SUCCESS", Success},
		{"unsupported_dtype", UnsupportedDtype},
		{"memorymanager-error", MemoryManagerError},
		{"19", FileError},
		{" 0 ", Success},
		{"25", TablesSizeMismatch},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Parse(%q) = %d, want %d", tt.in, int32(got), int32(tt.want))
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "26", "-1", "GDF_NOPE", Unknown, "99999999999"} {
		got, err := Parse(in)
		if !errors.Is(err, ErrCodeUnknown) {
			t.Fatalf("Parse(%q) error = %v, want ErrCodeUnknown", in, err)
		}
		if got != Success {
			t.Fatalf("Parse(%q) on error must return Success, got %d", in, int32(got))
		}
	}
}

func TestMustParse(t *testing.T) {
	if c := MustParse("dtype_mismatch"); c != DtypeMismatch {
		t.Fatalf("MustParse = %d, want %d", int32(c), int32(DtypeMismatch))
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on unknown input")
		}
	}()
	_ = MustParse("GDF_NOPE")
}

func TestValidate(t *testing.T) {
	if err := Validate(NullNVTXName); err != nil {
		t.Fatalf("Validate(NullNVTXName) unexpected error: %v", err)
	}
	if err := Validate(numCodes); !errors.Is(err, ErrCodeUnknown) {
		t.Fatalf("Validate(numCodes) = %v, want ErrCodeUnknown", err)
	}
}

func TestCode_TextRoundTrip(t *testing.T) {
	text, err := InvalidAggregator.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "GDF_INVALID_AGGREGATOR" {
		t.Fatalf("MarshalText() = %q", text)
	}

	var c Code
	if err := c.UnmarshalText([]byte("  invalid-aggregator ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if c != InvalidAggregator {
		t.Fatalf("UnmarshalText() = %d, want %d", int32(c), int32(InvalidAggregator))
	}

	if _, err := numCodes.MarshalText(); !errors.Is(err, ErrCodeUnknown) {
		t.Fatalf("MarshalText() on undefined code must fail, got %v", err)
	}
	bad := CUDAError
	if err := bad.UnmarshalText([]byte("nope")); err == nil {
		t.Fatalf("UnmarshalText() expected error for unknown name")
	}
	if bad != CUDAError {
		t.Fatalf("UnmarshalText() must not modify the receiver on error")
	}
}

func TestCode_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Code)(nil)
	var _ encoding.TextUnmarshaler = (*Code)(nil)
}
