package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/relink/pkg/config"
	"github.com/walteh/relink/pkg/rules"
)

func TestBuild_Order(t *testing.T) {
	cfg := config.Default()
	ruleList := rules.Build(cfg)

	// fixed structural rules, one generated rule per internal path, two
	// home-link rules, one JS redirect rule
	require.Len(t, ruleList, 5+len(cfg.InternalPaths)+3)

	assert.Equal(t, "CSS bundle paths", ruleList[0].Description)
	assert.Equal(t, "asset paths", ruleList[1].Description)
	assert.Equal(t, "PushIO SDK protocol", ruleList[2].Description)
	assert.Equal(t, "search form action", ruleList[3].Description)
	assert.Equal(t, "newsletter form action", ruleList[4].Description)

	for i, p := range cfg.InternalPaths {
		assert.Equal(t, "internal link "+p, ruleList[5+i].Description)
	}

	last := ruleList[len(ruleList)-3:]
	assert.Equal(t, "home link (closing bracket)", last[0].Description)
	assert.Equal(t, "home link (attribute list)", last[1].Description)
	assert.Equal(t, "JS redirect", last[2].Description)
}

func TestBuild_PatternsAreLiteral(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name  string
		text  string
		rule  string
		match bool
	}{
		{
			name:  "css_bundle_matches",
			text:  `<link href="sb/app.css">`,
			rule:  "CSS bundle paths",
			match: true,
		},
		{
			name:  "css_bundle_is_case_sensitive",
			text:  `<link HREF="SB/app.css">`,
			rule:  "CSS bundle paths",
			match: false,
		},
		{
			name:  "pushio_dots_are_not_wildcards",
			text:  `<script src="xx/api1pushio2com/sdk.js"></script>`,
			rule:  "PushIO SDK protocol",
			match: false,
		},
		{
			name:  "home_link_needs_trailing_bracket",
			text:  `<a href="/subpage">x</a>`,
			rule:  "home link (closing bracket)",
			match: false,
		},
	}

	ruleList := rules.Build(cfg)
	byDescription := map[string]rules.Rule{}
	for _, r := range ruleList {
		byDescription[r.Description] = r
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := byDescription[tt.rule]
			require.True(t, ok, "rule %q not built", tt.rule)
			assert.Equal(t, tt.match, rule.Pattern.MatchString(tt.text))
		})
	}
}

func TestBuild_ReplacementsUseConfiguredPaths(t *testing.T) {
	cfg := &config.Config{
		BasePath: "/demo",
		WWWPath:  "/demo/www.example.com",
		InternalPaths: []string{
			"/about/",
		},
	}
	require.NoError(t, cfg.Validate())

	ruleList := rules.Build(cfg)

	assert.Equal(t, `href="/demo/www.example.com/sb/`, ruleList[0].Replacement)
	assert.Equal(t, `href="/demo/about/"`, ruleList[5].Replacement)
	assert.Equal(t, `window.location.href = "/demo/"`, ruleList[len(ruleList)-1].Replacement)
}

// Every rule's pattern must fail to match its own replacement, otherwise a
// second run would keep stacking prefixes.
func TestBuild_RulesDoNotMatchOwnReplacement(t *testing.T) {
	for _, rule := range rules.Build(config.Default()) {
		assert.False(t, rule.Pattern.MatchString(rule.Replacement),
			"rule %q re-matches its own replacement", rule.Description)
	}
}

func TestChecks_Fixed(t *testing.T) {
	checks := rules.Checks()
	require.Len(t, checks, 5)

	for _, check := range checks {
		assert.NotNil(t, check.Pattern)
		assert.NotEmpty(t, check.Message)
	}

	assert.True(t, checks[0].Pattern.MatchString(`<link href="sb/app.css">`))
	assert.False(t, checks[0].Pattern.MatchString(`<link href="/fecredit/www.fecredit.com.vn/sb/app.css">`))
}
