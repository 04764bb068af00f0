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

// Package operation orchestrates a single rewrite run: read the target,
// apply the rule table, render the report, and persist the result unless
// the run is a dry run.
package operation

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/relink/pkg/config"
	"github.com/walteh/relink/pkg/diffview"
	"github.com/walteh/relink/pkg/report"
	"github.com/walteh/relink/pkg/rewrite"
	"github.com/walteh/relink/pkg/rules"
	"gitlab.com/tozd/go/errors"
)

// 🎛️ Options configures a rewrite operation
type Options struct {
	Config  *config.Config  // Run configuration
	Path    string          // Target file; empty means the configured default
	DryRun  bool            // Compute and report without writing
	Printer *report.Printer // Console report destination

	// WriteFile persists the rewritten text; defaults to os.WriteFile
	WriteFile func(name string, data []byte, perm os.FileMode) error
}

// 🔄 RewriteOperation rewrites one HTML file in place
type RewriteOperation struct {
	opts Options
}

// 🏭 NewRewriteOperation creates a new rewrite operation
func NewRewriteOperation(opts Options) *RewriteOperation {
	if opts.WriteFile == nil {
		opts.WriteFile = os.WriteFile
	}
	return &RewriteOperation{opts: opts}
}

// 📝 Name returns the operation name
func (op *RewriteOperation) Name() string {
	return "rewrite"
}

// 🎯 Run executes the rewrite. A missing target file is fatal and stops the
// run before any transformation; validation findings are advisory and never
// change the outcome.
func (op *RewriteOperation) Run(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	cfg := op.opts.Config
	printer := op.opts.Printer

	path := op.opts.Path
	if path == "" {
		path = cfg.TargetFile
	}

	mode := report.ModeLive
	if op.opts.DryRun {
		mode = report.ModeDryRun
	}
	printer.Header(mode, path)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return errors.Errorf("target file not found: %s", path)
		}
		return errors.Errorf("checking target file: %w", err)
	}

	// The glob check is advisory: a mismatch usually means the wrong file
	// was passed, but the operator may know better.
	if matched, err := doublestar.Match(cfg.TargetGlob, filepath.ToSlash(path)); err == nil && !matched {
		logger.Warn().Str("path", path).Str("glob", cfg.TargetGlob).Msg("target does not match configured glob")
	}

	// Raw bytes in, raw bytes out: the content is never re-encoded.
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Errorf("reading target file: %w", err)
	}

	ruleList := rules.Build(cfg)
	logger.Debug().Int("rules", len(ruleList)).Int("bytes", len(data)).Msg("applying rule table")

	result := rewrite.Apply(string(data), ruleList)

	printer.Summary(result.Changes)
	if result.Total > 0 {
		printer.Total(result.Total)
	}

	wrote := false
	if op.opts.DryRun {
		if result.Total > 0 {
			printer.Preview(diffview.Compare(result.Original, result.Output))
		}
	} else if result.Total > 0 {
		if err := op.opts.WriteFile(path, []byte(result.Output), 0644); err != nil {
			return errors.Errorf("writing target file: %w", err)
		}
		wrote = true
	}

	if wrote {
		printer.Wrote(path)
	} else {
		printer.NoWrite()
	}

	// Skip validation only for a dry run that found nothing: the text is
	// untouched and the scan would only restate the summary.
	if result.Total > 0 || !op.opts.DryRun {
		warnings := rewrite.Scan(result.Output, rules.Checks())
		printer.Validation(warnings)
	}

	printer.Done()

	logger.Debug().Int("total", result.Total).Bool("wrote", wrote).Msg("rewrite complete")
	return nil
}
