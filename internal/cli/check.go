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

	"dirpx.dev/gdferr/code"
	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that every code has a registered name",
		Long: `Verify that every enumerator of the code taxonomy has a registered name.

Each missing code is logged; the command fails when any is found. Run it in
CI after adding a code.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			missing := a.missing()
			for _, c := range missing {
				a.log.Error().Int32("code", int32(c)).Msg("code has no registered name")
			}
			if len(missing) > 0 {
				return errors.Errorf("%d code(s) without a name", len(missing))
			}

			n := 0
			for range code.All() {
				n++
			}
			a.log.Info().Int("codes", n).Msg("name table complete")
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "ok: %d codes named\n", n)
			return err
		},
	}
}
