package diffview_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/relink/pkg/diffview"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name   string
		before string
		after  string
		want   []diffview.LineChange
	}{
		{
			name:   "identical_text",
			before: "a\nb\nc\n",
			after:  "a\nb\nc\n",
			want:   nil,
		},
		{
			name:   "empty_text",
			before: "",
			after:  "",
			want:   nil,
		},
		{
			name:   "single_changed_line",
			before: "one\ntwo\nthree\n",
			after:  "one\n2\nthree\n",
			want: []diffview.LineChange{
				{Number: 2, Before: "two", After: "2"},
			},
		},
		{
			name:   "first_and_last_line_changed",
			before: "alpha\nmiddle\nomega\n",
			after:  "ALPHA\nmiddle\nOMEGA\n",
			want: []diffview.LineChange{
				{Number: 1, Before: "alpha", After: "ALPHA"},
				{Number: 3, Before: "omega", After: "OMEGA"},
			},
		},
		{
			name:   "pure_insertion_at_start",
			before: "body\n",
			after:  "inserted\nbody\n",
			want: []diffview.LineChange{
				{Number: 1, After: "inserted"},
			},
		},
		{
			name:   "pure_insertion_in_middle",
			before: "alpha\nomega\n",
			after:  "alpha\nmiddle\nomega\n",
			want: []diffview.LineChange{
				{Number: 2, After: "middle"},
			},
		},
		{
			name:   "adjacent_changed_lines_stay_paired",
			before: "keep\nold one\nold two\nkeep\n",
			after:  "keep\nnew one\nnew two\nkeep\n",
			want: []diffview.LineChange{
				{Number: 2, Before: "old one", After: "new one"},
				{Number: 3, Before: "old two", After: "new two"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diffview.Compare(tt.before, tt.after)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompare_RewrittenPage(t *testing.T) {
	before := strings.Join([]string{
		`<html>`,
		`<link href="sb/app.css">`,
		`<a href="/ve-chung-toi/">About</a>`,
		`</html>`,
		``,
	}, "\n")
	after := strings.Join([]string{
		`<html>`,
		`<link href="/fecredit/www.fecredit.com.vn/sb/app.css">`,
		`<a href="/fecredit/ve-chung-toi/">About</a>`,
		`</html>`,
		``,
	}, "\n")

	changes := diffview.Compare(before, after)
	require.Len(t, changes, 2)

	assert.Equal(t, 2, changes[0].Number)
	assert.Equal(t, `<link href="sb/app.css">`, changes[0].Before)
	assert.Equal(t, `<link href="/fecredit/www.fecredit.com.vn/sb/app.css">`, changes[0].After)

	assert.Equal(t, 3, changes[1].Number)
	assert.Equal(t, `<a href="/fecredit/ve-chung-toi/">About</a>`, changes[1].After)
}
