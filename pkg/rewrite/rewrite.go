// Package rewrite applies an ordered rule list to page text and re-scans
// the result for leftover patterns the rules should have removed.
package rewrite

import (
	"github.com/walteh/relink/pkg/rules"
)

// Change records one fired rule, in rule-evaluation order.
type Change struct {
	Description string
	Count       int
}

// Result holds the outcome of applying a full rule list.
type Result struct {
	Original string
	Output   string
	Changes  []Change
	Total    int
}

// Apply folds the ordered rule list over text. Each rule's count is taken
// against the text as already modified by the rules before it, and the
// substitution is global. Rules that match nothing leave no Change entry.
func Apply(text string, rs []rules.Rule) *Result {
	result := &Result{
		Original: text,
		Output:   text,
	}

	current := text
	for _, rule := range rs {
		count := len(rule.Pattern.FindAllStringIndex(current, -1))
		if count == 0 {
			continue
		}

		current = rule.Pattern.ReplaceAllString(current, rule.Replacement)
		result.Changes = append(result.Changes, Change{
			Description: rule.Description,
			Count:       count,
		})
		result.Total += count
	}

	result.Output = current
	return result
}

// Warning is a validation check that matched rewritten output.
type Warning struct {
	Message string
	Count   int
}

// Scan runs the validation checks against text. Warnings are advisory:
// they flag an incomplete rule table, not a failed run.
func Scan(text string, checks []rules.Check) []Warning {
	var warnings []Warning
	for _, check := range checks {
		count := len(check.Pattern.FindAllStringIndex(text, -1))
		if count == 0 {
			continue
		}
		warnings = append(warnings, Warning{
			Message: check.Message,
			Count:   count,
		})
	}
	return warnings
}
