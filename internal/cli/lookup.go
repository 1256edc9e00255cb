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

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"dirpx.dev/gdferr/code"
	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
)

func newNameCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "name <value>...",
		Short: "Print the canonical name of numeric codes",
		Long: `Print the canonical name of each numeric code, one per line.

Values that are not defined codes print the unknown-code text.

Examples:
  gdferr name 0 19
  gdferr name -- -1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				n, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 32)
				if err != nil {
					return errors.Wrapf(err, "value %q", arg)
				}
				c := code.Code(n)
				if !code.Known(c) {
					a.log.Debug().Int64("code", n).Msg("undefined code")
				}
				fmt.Fprintln(out, code.Name(c))
			}
			return nil
		},
	}
}

func newCodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "code <name>...",
		Short: "Print the numeric value of named codes",
		Long: `Print the numeric value of each named code, one per line.

Names are matched loosely: "GDF_FILE_ERROR", "file_error" and "file-error"
all resolve to the same code.

Examples:
  gdferr code GDF_FILE_ERROR dataset-empty`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				c, err := code.Parse(arg)
				if err != nil {
					return errors.Wrapf(err, "name %q", arg)
				}
				a.log.Debug().Str("arg", arg).Stringer("name", c).Msg("resolved")
				fmt.Fprintln(out, int32(c))
			}
			return nil
		},
	}
}
