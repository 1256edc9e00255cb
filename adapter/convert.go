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

// Package adapter converts engine error codes into portable, serializable
// shapes for logging, listings and bindings.
package adapter

import (
	"dirpx.dev/gdferr/apis"
	"dirpx.dev/gdferr/code"
)

// ToDescriptor converts an engine error code together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, listings or foreign
// bindings. Undefined codes are described too: Known is false and Name holds
// the unknown-code sentinel text.
func ToDescriptor(c code.Code, st apis.Status) apis.ErrorDescriptor {
	name, known := code.Lookup(c)
	if !known {
		name = code.Unknown
	}
	return apis.ErrorDescriptor{
		Code:       int32(c),
		Name:       name,
		Known:      known,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		GRPCName:   st.GRPC.String(),
	}
}

// Describe resolves c through m and converts the result with ToDescriptor.
func Describe(m apis.Mapper, c code.Code) apis.ErrorDescriptor {
	return ToDescriptor(c, m.Status(c))
}

// DescribeAll describes every defined code in ascending order.
func DescribeAll(m apis.Mapper) []apis.ErrorDescriptor {
	var out []apis.ErrorDescriptor
	for c := range code.All() {
		out = append(out, Describe(m, c))
	}
	return out
}
