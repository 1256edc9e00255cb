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

// Package httpx writes engine errors as HTTP responses.
package httpx

import (
	"errors"
	"net/http"

	"dirpx.dev/gdferr/apis"
	"dirpx.dev/gdferr/grpcx"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
)

// ContentType is the media type of every error body written by Writer.
const ContentType = "application/json"

// Writer is a thin adapter that knows how to turn an error into an HTTP
// response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write writes err to rw.
//
// When err carries an engine code (apis.CodedError anywhere in the chain),
// the HTTP status is resolved via the Mapper and the body is the
// google.rpc.Status built by grpcx.Status, so that HTTP and gRPC clients see
// the same ErrorInfo. Other errors are written as 500 / INTERNAL without
// details. A nil err writes nothing.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	httpStatus := http.StatusInternalServerError
	st := gstatus.New(gcodes.Internal, err.Error())

	var ce apis.CodedError
	if errors.As(err, &ce) {
		c := ce.ErrorCode()
		httpStatus = w.Mapper.HTTPStatus(c)
		st = grpcx.Status(w.Mapper, c, err.Error())
	}

	// protojson keeps the google.rpc.Status field names and renders the
	// ErrorInfo detail with its @type.
	b, mErr := protojson.Marshal(st.Proto())
	if mErr != nil {
		http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	rw.Header().Set("Content-Type", ContentType)
	rw.WriteHeader(httpStatus)
	_, _ = rw.Write(b)
}

// Handler adapts a handler that returns an error into an http.Handler,
// writing any returned error with w.
func (w Writer) Handler(fn func(http.ResponseWriter, *http.Request) error) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		w.Write(rw, fn(rw, r))
	})
}
