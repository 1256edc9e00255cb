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

// Package logging builds the zerolog logger used by the gdferr command.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/rs/zerolog"
)

// Output formats accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New creates a logger writing to w.
//
// level is any zerolog level name ("debug", "info", "warn", ...); an empty
// level means info. format is FormatConsole (human-readable, RFC 3339 times)
// or FormatJSON (one object per line, unix times).
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		lvl, err = zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
		if err != nil {
			return zerolog.Nop(), errors.Wrapf(err, "log level %q", level)
		}
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		// JSON as-is.
	case FormatConsole, "":
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
	default:
		return zerolog.Nop(), errors.Errorf("unknown log format %q (want %s or %s)", format, FormatConsole, FormatJSON)
	}

	return zerolog.New(w).Level(lvl).With().
		Timestamp().
		Str("component", "gdferr").
		Logger(), nil
}
