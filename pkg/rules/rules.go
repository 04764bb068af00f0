// Package rules defines the ordered replacement-rule table applied when
// rewriting a mirrored HTML page for subdirectory serving, and the fixed
// list of validation checks run against the rewritten output.
package rules

import (
	"fmt"
	"regexp"

	"github.com/walteh/relink/pkg/config"
)

// Rule is a single find/replace step. Pattern is a literal substring
// compiled as a case-sensitive regular expression; the substitution is
// applied globally.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
	Description string
}

// Check is a pattern that must not survive a complete transformation.
// Checks are independent of the rule table.
type Check struct {
	Pattern *regexp.Regexp
	Message string
}

// literal compiles s as an exact, case-sensitive substring match.
func literal(s string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(s))
}

// Build produces the ordered rule list for cfg.
//
// Order is a contract, not an accident: the PushIO protocol fix must run
// before anything else that could touch a relative path, structural asset
// rules run before the generated internal-link rules, and the home-link
// rules run last before the JS redirect. Idempotence on already-rewritten
// text is a property of how the patterns are authored (each pattern fails
// to match its own replacement), not something the engine guards.
func Build(cfg *config.Config) []Rule {
	rs := []Rule{
		{
			Pattern:     literal(`href="sb/`),
			Replacement: `href="` + cfg.WWWPath + `/sb/`,
			Description: "CSS bundle paths",
		},
		{
			Pattern:     literal(`src="sb/`),
			Replacement: `src="` + cfg.WWWPath + `/sb/`,
			Description: "asset paths",
		},
		{
			Pattern:     literal(`src="../api.pushio.com/`),
			Replacement: `src="https://api.pushio.com/`,
			Description: "PushIO SDK protocol",
		},
		{
			Pattern:     literal(`action="/tim-kiem"`),
			Replacement: `action="` + cfg.BasePath + `/tim-kiem"`,
			Description: "search form action",
		},
		{
			Pattern:     literal(`action="/dang-ky-nhan-tin"`),
			Replacement: `action="` + cfg.BasePath + `/dang-ky-nhan-tin"`,
			Description: "newsletter form action",
		},
	}

	for _, p := range cfg.InternalPaths {
		rs = append(rs, Rule{
			Pattern:     literal(`href="` + p + `"`),
			Replacement: `href="` + cfg.BasePath + p + `"`,
			Description: fmt.Sprintf("internal link %s", p),
		})
	}

	// Home links need the trailing character to stay anchored, otherwise
	// the pattern would also hit every already-prefixed path.
	rs = append(rs,
		Rule{
			Pattern:     literal(`href="/">`),
			Replacement: `href="` + cfg.BasePath + `/">`,
			Description: "home link (closing bracket)",
		},
		Rule{
			Pattern:     literal(`href="/" `),
			Replacement: `href="` + cfg.BasePath + `/" `,
			Description: "home link (attribute list)",
		},
		Rule{
			Pattern:     literal(`window.location.href = "/"`),
			Replacement: `window.location.href = "` + cfg.BasePath + `/"`,
			Description: "JS redirect",
		},
	)

	return rs
}

// Checks returns the fixed validation list. A match in rewritten output
// means the rule table is incomplete for that page, not that the run failed.
func Checks() []Check {
	return []Check{
		{Pattern: literal(`href="sb/`), Message: "relative stylesheet path still present"},
		{Pattern: literal(`src="sb/`), Message: "relative asset path still present"},
		{Pattern: literal(`../api.pushio.com`), Message: "relative PushIO SDK path still present"},
		{Pattern: literal(`action="/tim-kiem"`), Message: "unprefixed search form action still present"},
		{Pattern: literal(`href="/">`), Message: "unprefixed home link still present"},
	}
}
