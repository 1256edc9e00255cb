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

package mapper

import (
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"dirpx.dev/gdferr/apis"
	"dirpx.dev/gdferr/code"
	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"
	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"
)

// Policy is the file form of mapper options.
//
// Keys of Defaults and Overrides are anything code.Parse accepts
// ("GDF_FILE_ERROR", "file_error", "19"). gRPC values are code names
// ("NOT_FOUND") or numbers. Zero values mean "not set".
//
//	fallback:
//	  http: 500
//	  grpc: INTERNAL
//	overrides:
//	  GDF_FILE_ERROR:
//	    http: 404
//	    grpc: NOT_FOUND
type Policy struct {
	Fallback  Rule            `yaml:"fallback" toml:"fallback"`
	Defaults  map[string]Rule `yaml:"defaults" toml:"defaults"`
	Overrides map[string]Rule `yaml:"overrides" toml:"overrides"`
}

// Rule is a pair of optional transport statuses.
type Rule struct {
	HTTP int    `yaml:"http" toml:"http"`
	GRPC string `yaml:"grpc" toml:"grpc"`
}

// Supported policy formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// LoadPolicy decodes a policy in the given format. Unknown fields are
// rejected. An empty document is an empty policy.
func LoadPolicy(r io.Reader, format string) (*Policy, error) {
	var p Policy
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "decode yaml policy")
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&p)
		if err != nil {
			return nil, errors.Wrap(err, "decode toml policy")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Errorf("decode toml policy: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, errors.Errorf("unsupported policy format %q", format)
	}
	return &p, nil
}

// LoadPolicyFile reads a policy file, choosing the format from its
// extension (.yaml, .yml or .toml).
func LoadPolicyFile(path string) (*Policy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open policy")
	}
	defer func() { _ = f.Close() }()

	format := strings.TrimPrefix(filepath.Ext(path), ".")
	p, err := LoadPolicy(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return p, nil
}

// FromFile builds a Mapper from a policy file. Extra options are applied
// after the policy's own.
func FromFile(path string, opts ...Option) (apis.Mapper, error) {
	p, err := LoadPolicyFile(path)
	if err != nil {
		return nil, err
	}
	popts, err := p.Options()
	if err != nil {
		return nil, errors.Wrapf(err, "policy %s", path)
	}
	return New(append(popts, opts...)...)
}

// Options converts the policy into mapper options. Range checks are left
// to New.
func (p *Policy) Options() ([]Option, error) {
	var opts []Option

	if p.Fallback.HTTP != 0 {
		opts = append(opts, WithHTTPFallback(p.Fallback.HTTP))
	}
	if p.Fallback.GRPC != "" {
		v, err := parseGRPC(p.Fallback.GRPC)
		if err != nil {
			return nil, errors.Wrap(err, "fallback")
		}
		opts = append(opts, WithGRPCFallback(v))
	}

	add := func(section string, rules map[string]Rule, withHTTP, withGRPC func(code.Code, int) Option) error {
		// Sorted so that the first reported error is stable.
		for _, key := range slices.Sorted(maps.Keys(rules)) {
			rule := rules[key]
			c, err := code.Parse(key)
			if err != nil {
				return errors.Wrapf(err, "%s: key %q", section, key)
			}
			if rule.HTTP != 0 {
				opts = append(opts, withHTTP(c, rule.HTTP))
			}
			if rule.GRPC != "" {
				v, err := parseGRPC(rule.GRPC)
				if err != nil {
					return errors.Wrapf(err, "%s: key %q", section, key)
				}
				opts = append(opts, withGRPC(c, v))
			}
		}
		return nil
	}
	if err := add("defaults", p.Defaults, WithHTTPDefault, WithGRPCDefault); err != nil {
		return nil, err
	}
	if err := add("overrides", p.Overrides, WithHTTPOverride, WithGRPCOverride); err != nil {
		return nil, err
	}
	return opts, nil
}

// parseGRPC accepts a gRPC code number or its upper-snake name.
func parseGRPC(s string) (int, error) {
	s = strings.TrimSpace(s)
	raw := strconv.Quote(strings.ToUpper(s))
	if _, err := strconv.Atoi(s); err == nil {
		raw = s
	}
	var c codes.Code
	if err := c.UnmarshalJSON([]byte(raw)); err != nil {
		return 0, errors.Wrapf(err, "grpc code %q", s)
	}
	return int(c), nil
}
