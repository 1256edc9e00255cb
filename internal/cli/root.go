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

// Package cli implements the gdferr command.
package cli

import (
	"dirpx.dev/gdferr/code"
	"dirpx.dev/gdferr/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is reported by --version. It is overridden at link time.
var Version = "dev"

// app holds state shared by all subcommands.
type app struct {
	logLevel  string
	logFormat string
	log       zerolog.Logger

	// missing reports enumerators without a name; code.Missing outside tests.
	missing func() []code.Code
}

// NewRootCommand returns the gdferr command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{missing: code.Missing})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "gdferr",
		Short: "Inspect GDF engine error codes",
		Long: `gdferr resolves GDF engine error codes to their canonical names and back,
lists the transport statuses each code maps to, and checks that every code
has a registered name.

Examples:
  gdferr name 19                 # GDF_FILE_ERROR
  gdferr code dataset_empty      # 5
  gdferr list --policy status.yaml
  gdferr check`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logging.New(cmd.ErrOrStderr(), a.logLevel, a.logFormat)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", logging.FormatConsole, "log format: console, json")

	root.AddCommand(
		newNameCommand(a),
		newCodeCommand(a),
		newListCommand(a),
		newCheckCommand(a),
	)
	return root
}
