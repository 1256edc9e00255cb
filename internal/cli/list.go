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
	"encoding/json"
	"fmt"
	"strconv"

	"dirpx.dev/gdferr/adapter"
	"dirpx.dev/gdferr/apis"
	"dirpx.dev/gdferr/mapper"
	"github.com/go-faster/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats of the list command.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

type listOptions struct {
	policy string
	format string
}

func newListCommand(a *app) *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every code with its transport statuses",
		Long: `List every defined code with its canonical name and the HTTP and gRPC
statuses it maps to.

A status policy file (YAML or TOML) can override the library defaults.

Examples:
  gdferr list
  gdferr list --policy status.toml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runList(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.policy, "policy", "", "status policy file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&opts.format, "format", formatTable, "output format: table, json, yaml")
	return cmd
}

func (a *app) runList(cmd *cobra.Command, opts listOptions) error {
	var (
		m   apis.Mapper
		err error
	)
	if opts.policy != "" {
		m, err = mapper.FromFile(opts.policy)
	} else {
		m, err = mapper.New()
	}
	if err != nil {
		return errors.Wrap(err, "build mapper")
	}
	if opts.policy != "" {
		a.log.Debug().Str("policy", opts.policy).Msg("loaded status policy")
	}

	descs := adapter.DescribeAll(m)
	out := cmd.OutOrStdout()

	switch opts.format {
	case formatTable:
		data := pterm.TableData{{"Code", "Name", "HTTP", "gRPC"}}
		for _, d := range descs {
			data = append(data, []string{
				strconv.Itoa(int(d.Code)),
				d.Name,
				strconv.Itoa(d.HTTPStatus),
				fmt.Sprintf("%s (%d)", d.GRPCName, d.GRPCCode),
			})
		}
		s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return errors.Wrap(err, "render table")
		}
		_, err = fmt.Fprintln(out, s)
		return err
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(descs); err != nil {
			return errors.Wrap(err, "encode json")
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(descs); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return enc.Close()
	default:
		return errors.Errorf("unknown format %q (want %s, %s or %s)", opts.format, formatTable, formatJSON, formatYAML)
	}
}
