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

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "warn", FormatJSON)
	require.NoError(t, err)

	log.Info().Msg("dropped")
	log.Warn().Int("code", 19).Msg("kept")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "kept", line["message"])
	assert.Equal(t, "gdferr", line["component"])
	assert.EqualValues(t, 19, line["code"])
}

func TestNew_ConsoleDefault(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "", "")
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("name", "GDF_FILE_ERROR").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "name=GDF_FILE_ERROR")
}

func TestNew_Errors(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", FormatJSON)
	assert.ErrorContains(t, err, `log level "loud"`)

	_, err = New(&bytes.Buffer{}, "info", "xml")
	assert.ErrorContains(t, err, `unknown log format "xml"`)
}
