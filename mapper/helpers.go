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
	"fmt"
	"maps"

	"dirpx.dev/gdferr/code"
	"google.golang.org/grpc/codes"
)

// maxGRPCCode is the highest status code defined by gRPC (Unauthenticated).
const maxGRPCCode = int(codes.Unauthenticated)

// freezeHTTP makes an immutable copy of an HTTP map.
// Used when finalizing the mapper so later mutations to the builder
// (or caller-owned maps) cannot affect the mapper.
func freezeHTTP(src map[code.Code]int) map[code.Code]int {
	if len(src) == 0 {
		return nil
	}
	return maps.Clone(src)
}

// freezeGRPC makes an immutable copy of a gRPC map, converting builder-style
// int values into typed gRPC codes.
func freezeGRPC(src map[code.Code]int) map[code.Code]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

// validateHTTPMap checks that every key is a defined code and every value
// is a valid HTTP status.
func validateHTTPMap(kind string, m map[code.Code]int) error {
	for c, v := range m {
		if err := code.Validate(c); err != nil {
			return fmt.Errorf("mapper: HTTP %s for code %d: %w", kind, int32(c), err)
		}
		if err := validateHTTP(v); err != nil {
			return fmt.Errorf("mapper: HTTP %s for code %s: %w", kind, c, err)
		}
	}
	return nil
}

// validateGRPCMap checks that every key is a defined code and every value
// is a valid gRPC status code.
func validateGRPCMap(kind string, m map[code.Code]int) error {
	for c, v := range m {
		if err := code.Validate(c); err != nil {
			return fmt.Errorf("mapper: gRPC %s for code %d: %w", kind, int32(c), err)
		}
		if err := validateGRPC(v); err != nil {
			return fmt.Errorf("mapper: gRPC %s for code %s: %w", kind, c, err)
		}
	}
	return nil
}

func validateHTTP(v int) error {
	if v < 100 || v > 599 {
		return fmt.Errorf("%w: %d", ErrInvalidHTTPStatus, v)
	}
	return nil
}

func validateGRPC(v int) error {
	if v < 0 || v > maxGRPCCode {
		return fmt.Errorf("%w: %d", ErrInvalidGRPCCode, v)
	}
	return nil
}
