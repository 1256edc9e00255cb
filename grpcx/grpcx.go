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

// Package grpcx projects engine error codes onto gRPC statuses.
//
// A status produced here carries a google.rpc.ErrorInfo detail whose Reason
// is the canonical name and whose metadata holds the numeric code, so that
// clients in any language can recover the exact engine code.
package grpcx

import (
	"context"
	"errors"
	"strconv"

	"dirpx.dev/gdferr/apis"
	"dirpx.dev/gdferr/code"
	"github.com/rs/zerolog"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
)

// Domain is the ErrorInfo domain of every status built by this package.
const Domain = "gdf.dirpx.dev"

// UnknownReason is the ErrorInfo reason used for values that are not defined
// codes. ErrorInfo reasons must be UPPER_SNAKE_CASE, so the unknown-code
// sentinel text cannot be used there.
const UnknownReason = "UNKNOWN_ERROR_CODE"

// metaCode is the ErrorInfo metadata key holding the numeric code.
const metaCode = "code"

// Status builds a gRPC status for c. The status code is resolved through m;
// msg becomes the status message.
//
// An ErrorInfo detail is attached unless the resolved code is OK (gRPC does
// not allow details on OK statuses).
func Status(m apis.Mapper, c code.Code, msg string) *gstatus.Status {
	base := gstatus.New(m.GRPCStatus(c), msg)

	reason, ok := code.Lookup(c)
	if !ok {
		reason = UnknownReason
	}
	info := &errdetails.ErrorInfo{
		Reason: reason,
		Domain: Domain,
		Metadata: map[string]string{
			metaCode: strconv.FormatInt(int64(c), 10),
		},
	}

	// Try to attach the detail. If it fails, return base.
	if with, err := base.WithDetails(info); err == nil {
		return with
	}
	return base
}

// CodeOf recovers the engine code from a gRPC error built by Status.
// It returns false when err carries no ErrorInfo of this Domain.
func CodeOf(err error) (code.Code, bool) {
	if err == nil {
		return code.Success, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return code.Success, false
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != Domain {
			continue
		}
		n, err := strconv.ParseInt(info.GetMetadata()[metaCode], 10, 32)
		if err != nil {
			return code.Success, false
		}
		return code.Code(n), true
	}
	return code.Success, false
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// handler errors carrying an engine code (apis.CodedError, anywhere in the
// wrap chain) into gRPC statuses built by Status.
//
// Converted errors are logged at warn level on log. Errors without a code are
// returned as-is, and so are coded errors whose code resolves to OK.
func UnaryServerInterceptor(m apis.Mapper, log zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var ce apis.CodedError
		if !errors.As(err, &ce) {
			// Not ours.
			return nil, err
		}

		c := ce.ErrorCode()
		st := Status(m, c, err.Error())
		if st.Code() == gcodes.OK {
			return nil, err
		}

		ev := log.Warn().
			Int32("code", int32(c)).
			Str("name", c.String()).
			Stringer("grpc_code", st.Code())
		if info != nil {
			ev = ev.Str("method", info.FullMethod)
		}
		ev.Err(err).Msg("engine error")

		return nil, st.Err()
	}
}
