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

// ErrorDescriptor is a flat, transport-friendly description of an engine
// error code together with its resolved statuses.
//
// It uses plain strings and integers (not code.Code) so that it can be
// serialized as-is for logs, listings, or foreign bindings.
type ErrorDescriptor struct {
	// Code is the numeric engine error code.
	Code int32 `json:"code" yaml:"code"`

	// Name is the canonical name, e.g. "GDF_FILE_ERROR", or the unknown-code
	// sentinel text when Code is not defined.
	Name string `json:"name" yaml:"name"`

	// Known reports whether Code is a defined enumerator.
	Known bool `json:"known" yaml:"known"`

	// HTTPStatus is the HTTP status used when the code is exposed over HTTP.
	HTTPStatus int `json:"http_status,omitempty" yaml:"http_status,omitempty"`

	// GRPCCode is the gRPC status code (as integer) used when the code is
	// exposed over gRPC.
	GRPCCode int `json:"grpc_code" yaml:"grpc_code"`

	// GRPCName is the gRPC code name as reported by codes.Code.String,
	// e.g. "InvalidArgument".
	GRPCName string `json:"grpc_name,omitempty" yaml:"grpc_name,omitempty"`
}
