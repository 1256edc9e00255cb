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
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/gdferr/apis"
	"dirpx.dev/gdferr/code"
	"google.golang.org/grpc/codes"
)

var (
	// ErrInvalidHTTPStatus is returned by New when an option carries a value
	// outside the 100..599 range.
	ErrInvalidHTTPStatus = errors.New("mapper: invalid HTTP status")
	// ErrInvalidGRPCCode is returned by New when an option carries a value
	// that is not a gRPC status code.
	ErrInvalidGRPCCode = errors.New("mapper: invalid gRPC code")
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained mapper instance; no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, fallbacks).
//  3. Validate codes and statuses.
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function indicate options that target undefined
// codes or carry out-of-range statuses.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate.
	if err := validateHTTPMap("default", b.httpDefaults); err != nil {
		return nil, err
	}
	if err := validateHTTPMap("override", b.httpOverride); err != nil {
		return nil, err
	}
	if err := validateGRPCMap("default", b.grpcDefaults); err != nil {
		return nil, err
	}
	if err := validateGRPCMap("override", b.grpcOverride); err != nil {
		return nil, err
	}
	if err := validateHTTP(b.fallbackHTTP); err != nil {
		return nil, fmt.Errorf("mapper: HTTP fallback: %w", err)
	}
	if err := validateGRPC(b.fallbackGRPC); err != nil {
		return nil, fmt.Errorf("mapper: gRPC fallback: %w", err)
	}

	// (4) Freeze everything into a read-only snapshot.
	m := &mapper{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: codes.Code(b.fallbackGRPC),
	}

	return m, nil
}

// MustNew is the panic-on-error variant of New.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// mapper is an immutable mapper implementation that combines per-code
// defaults and per-code exact overrides. Lookups are O(1) and safe for
// concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given error code.
	httpDefault map[code.Code]int

	// grpcDefault holds the base gRPC status for a given error code.
	grpcDefault map[code.Code]codes.Code

	// httpOverride holds explicit HTTP statuses for specific codes.
	httpOverride map[code.Code]int

	// grpcOverride holds explicit gRPC statuses for specific codes.
	grpcOverride map[code.Code]codes.Code

	// fallbackHTTP is used when there is no mapping at all for a code.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no mapping at all for a code.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code.
//
// Resolution order (highest to lowest):
//  1. exact per-code override;
//  2. per-code default (library or user overridden);
//  3. fallback (500 unless configured).
func (m *mapper) HTTPStatus(c code.Code) int {
	v, _ := m.resolveHTTP(c)
	return v
}

// GRPCStatus resolves a gRPC status for the given code.
// Uses the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	v, _ := m.resolveGRPC(c)
	return v
}

// Status resolves both HTTP and gRPC using the same input.
func (m *mapper) Status(c code.Code) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular code.
//
// Example output:
//
//	code=19 name="GDF_FILE_ERROR"
//	http: source=override -> 404
//	grpc: source=default -> Internal(13)
//
// source is one of override, default or fallback.
func (m *mapper) Explain(c code.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%d name=%q\n", int32(c), code.Name(c))

	hv, hsrc := m.resolveHTTP(c)
	_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", hsrc, hv)

	gv, gsrc := m.resolveGRPC(c)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s(%d)", gsrc, gv, int(gv))

	return b.String()
}

// resolveHTTP returns the HTTP status for c and the tier it came from.
func (m *mapper) resolveHTTP(c code.Code) (int, string) {
	if v, ok := m.httpOverride[c]; ok {
		return v, "override"
	}
	if v, ok := m.httpDefault[c]; ok {
		return v, "default"
	}
	return m.fallbackHTTP, "fallback"
}

// resolveGRPC returns the gRPC status for c and the tier it came from.
func (m *mapper) resolveGRPC(c code.Code) (codes.Code, string) {
	if v, ok := m.grpcOverride[c]; ok {
		return v, "override"
	}
	if v, ok := m.grpcDefault[c]; ok {
		return v, "default"
	}
	return m.fallbackGRPC, "fallback"
}
