// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config holds the path-rewrite configuration for a single run.
// It is constructed once at startup and never mutated afterwards.
type Config struct {
	BasePath      string   `json:"base_path" yaml:"base_path" hcl:"base_path,optional"`                // Deployment base path (GitHub Pages project root)
	WWWPath       string   `json:"www_path" yaml:"www_path" hcl:"www_path,optional"`                   // Prefix for mirrored site assets
	TargetFile    string   `json:"target_file" yaml:"target_file" hcl:"target_file,optional"`          // Default file to rewrite
	TargetGlob    string   `json:"target_glob" yaml:"target_glob" hcl:"target_glob,optional"`          // Glob the target is expected to match
	InternalPaths []string `json:"internal_paths" yaml:"internal_paths" hcl:"internal_paths,optional"` // Site-relative link paths to prefix, in order
}

// 🏭 Default returns the built-in configuration for the fecredit.com.vn
// mirror served from the /fecredit project subdirectory.
func Default() *Config {
	return &Config{
		BasePath:   "/fecredit",
		WWWPath:    "/fecredit/www.fecredit.com.vn",
		TargetFile: "www.fecredit.com.vn/index.html",
		TargetGlob: "**/*.html",
		InternalPaths: []string{
			"/ve-chung-toi/",
			"/san-pham/",
			"/the-tin-dung/",
			"/vay-tin-chap/",
			"/khuyen-mai/",
			"/tin-tuc/",
			"/ho-tro/",
			"/lien-he/",
			"/tuyen-dung/",
		},
	}
}

// 🎯 Load loads the configuration from a file. An empty path returns the
// built-in defaults. Values present in the file override the defaults.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	if path == "" {
		logger.Debug().Msg("no config file given, using built-in defaults")
		return Default(), nil
	}

	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid and fills defaults for
// fields the config file left empty.
func (cfg *Config) Validate() error {
	def := Default()

	if cfg.BasePath == "" {
		cfg.BasePath = def.BasePath
	}
	if cfg.WWWPath == "" {
		cfg.WWWPath = def.WWWPath
	}
	if cfg.TargetFile == "" {
		cfg.TargetFile = def.TargetFile
	}
	if cfg.TargetGlob == "" {
		cfg.TargetGlob = def.TargetGlob
	}
	if len(cfg.InternalPaths) == 0 {
		cfg.InternalPaths = def.InternalPaths
	}

	if !strings.HasPrefix(cfg.BasePath, "/") {
		return errors.Errorf("base_path must start with /: %q", cfg.BasePath)
	}
	if strings.HasSuffix(cfg.BasePath, "/") {
		return errors.Errorf("base_path must not end with /: %q", cfg.BasePath)
	}
	if !strings.HasPrefix(cfg.WWWPath, "/") {
		return errors.Errorf("www_path must start with /: %q", cfg.WWWPath)
	}
	for _, p := range cfg.InternalPaths {
		if !strings.HasPrefix(p, "/") {
			return errors.Errorf("internal path must start with /: %q", p)
		}
	}

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s (assets: %s, %d internal paths)", cfg.BasePath, cfg.WWWPath, len(cfg.InternalPaths))
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	return &cfg, nil
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

func init() {
	Register(&HCLParser{})
}

func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var cfg Config
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &cfg, nil
}
