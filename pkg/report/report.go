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

package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/walteh/relink/pkg/diffview"
	"github.com/walteh/relink/pkg/rewrite"
)

// 🎨 Display configuration
const (
	// PreviewLimit is how many changed lines the dry-run preview shows.
	PreviewLimit = 5
)

// 🖥️ Mode is the run mode shown in the report header
type Mode string

const (
	ModeDryRun Mode = "DRY RUN"
	ModeLive   Mode = "LIVE"
)

// 🎯 Printer renders the fixed-format console report. Block order is part
// of the tool's contract: header, changes summary, total, preview (dry-run),
// write notice, validation, done.
type Printer struct {
	console io.Writer
}

// 🏭 New creates a new printer writing to console
func New(console io.Writer) *Printer {
	return &Printer{console: console}
}

// 📝 Header prints the tool name, run mode and target file
func (p *Printer) Header(mode Mode, file string) {
	name := color.New(color.Bold, color.FgCyan).Sprint("relink")
	fmt.Fprintf(p.console, "\n%s %s %s %s %s\n\n",
		name,
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(string(mode)),
		color.New(color.Faint).Sprint("•"),
		file)
}

// 📝 Summary prints one line per fired rule, in rule order
func (p *Printer) Summary(changes []rewrite.Change) {
	fmt.Fprintln(p.console, "--- Changes Summary ---")
	if len(changes) == 0 {
		fmt.Fprintln(p.console, "no changes needed")
		return
	}
	for _, change := range changes {
		fmt.Fprintf(p.console, "%s %s: %d replacement(s)\n",
			color.New(color.FgGreen).Sprint("✓"),
			change.Description,
			change.Count)
	}
}

// 📝 Total prints the running total of replacements
func (p *Printer) Total(n int) {
	fmt.Fprintf(p.console, "Total: %d replacement(s)\n", n)
}

// 📝 Preview prints up to PreviewLimit changed lines as before/after pairs,
// in original line order, then notes how many changes were not shown.
func (p *Printer) Preview(changes []diffview.LineChange) {
	fmt.Fprintf(p.console, "\n--- Preview (first %d changes) ---\n", PreviewLimit)

	shown := changes
	if len(shown) > PreviewLimit {
		shown = shown[:PreviewLimit]
	}
	for _, change := range shown {
		fmt.Fprintf(p.console, "Line %d:\n", change.Number)
		fmt.Fprintf(p.console, "  %s %s\n", color.New(color.FgRed).Sprint("-"), change.Before)
		fmt.Fprintf(p.console, "  %s %s\n", color.New(color.FgGreen).Sprint("+"), change.After)
	}
	if extra := len(changes) - len(shown); extra > 0 {
		fmt.Fprintf(p.console, "... and %d more changes\n", extra)
	}
}

// 📝 Wrote confirms the live-mode file write
func (p *Printer) Wrote(file string) {
	fmt.Fprintf(p.console, "\n%s wrote %s\n", color.New(color.FgGreen).Sprint("✓"), file)
}

// 📝 NoWrite prints the dry-run no-modification notice
func (p *Printer) NoWrite() {
	fmt.Fprintf(p.console, "\nno files were modified\n")
}

// 📝 Validation prints the post-transformation scan results
func (p *Printer) Validation(warnings []rewrite.Warning) {
	fmt.Fprintln(p.console, "\n--- Validation ---")
	if len(warnings) == 0 {
		pterm.Success.WithWriter(p.console).Println("no known-bad patterns remain")
		return
	}
	for _, warning := range warnings {
		pterm.Warning.WithWriter(p.console).Printfln("%s (%d occurrence(s))", warning.Message, warning.Count)
	}
}

// 📝 Done prints the report footer
func (p *Printer) Done() {
	fmt.Fprintln(p.console, "\n=== Done ===")
}

// 📝 Fatal prints a fatal error before the process exits
func (p *Printer) Fatal(err error) {
	pterm.Error.WithWriter(p.console).Println(err.Error())
}
