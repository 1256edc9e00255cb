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

package httpx

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"dirpx.dev/gdferr"
	"dirpx.dev/gdferr/code"
	"dirpx.dev/gdferr/grpcx"
	"dirpx.dev/gdferr/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	gcodes "google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) *spb.Status {
	t.Helper()
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	var st spb.Status
	require.NoError(t, protojson.Unmarshal(body, &st), "body: %s", body)
	return &st
}

func TestWriter_CodedError(t *testing.T) {
	w := Writer{Mapper: mapper.MustNew(mapper.WithHTTPOverride(code.DatasetEmpty, http.StatusUnprocessableEntity))}
	rec := httptest.NewRecorder()

	w.Write(rec, fmt.Errorf("groupby: %w", gdferr.New(code.DatasetEmpty)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, ContentType, rec.Header().Get("Content-Type"))

	st := decode(t, rec)
	assert.EqualValues(t, gcodes.FailedPrecondition, st.GetCode())
	assert.Equal(t, "groupby: GDF_DATASET_EMPTY", st.GetMessage())
	require.Len(t, st.GetDetails(), 1)

	var info errdetails.ErrorInfo
	require.NoError(t, st.GetDetails()[0].UnmarshalTo(&info))
	assert.Equal(t, "GDF_DATASET_EMPTY", info.GetReason())
	assert.Equal(t, grpcx.Domain, info.GetDomain())
	assert.Equal(t, "5", info.GetMetadata()["code"])
}

func TestWriter_UncodedError(t *testing.T) {
	w := Writer{Mapper: mapper.MustNew()}
	rec := httptest.NewRecorder()

	w.Write(rec, errors.New("disk on fire"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	st := decode(t, rec)
	assert.EqualValues(t, gcodes.Internal, st.GetCode())
	assert.Equal(t, "disk on fire", st.GetMessage())
	assert.Empty(t, st.GetDetails())
}

func TestWriter_NilError(t *testing.T) {
	w := Writer{Mapper: mapper.MustNew()}
	rec := httptest.NewRecorder()

	w.Write(rec, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestWriter_Handler(t *testing.T) {
	w := Writer{Mapper: mapper.MustNew()}
	h := w.Handler(func(http.ResponseWriter, *http.Request) error {
		return gdferr.Wrap(code.MemoryManagerError, errors.New("pool exhausted"))
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/join", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	st := decode(t, rec)
	assert.EqualValues(t, gcodes.ResourceExhausted, st.GetCode())
	assert.Equal(t, "GDF_MEMORYMANAGER_ERROR: pool exhausted", st.GetMessage())
}
