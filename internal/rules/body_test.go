package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/commitgate/internal/engine"
)

func TestBodyMaxLength(t *testing.T) {
	r := &BodyMaxLength{}
	assert.Equal(t, "body:max-length", r.ID())

	long := strings.Repeat("a", 73)

	cases := []struct {
		name     string
		lines    []string
		want     engine.Status
		wantLine int
	}{
		{"short body", []string{"feat: x", "", "body", ""}, engine.StatusPass, 0},
		{"exactly 72", []string{"feat: x", "", strings.Repeat("a", 72), ""}, engine.StatusPass, 0},
		{"73 fails", []string{"feat: x", "", long, ""}, engine.StatusFail, 1},
		{"first offender reported", []string{"feat: x", "", "ok", long, long, ""}, engine.StatusFail, 2},
		{"72 multibyte runes", []string{"feat: x", "", strings.Repeat("é", 72), ""}, engine.StatusPass, 0},
		{"73 multibyte runes", []string{"feat: x", "", strings.Repeat("é", 73), ""}, engine.StatusFail, 1},
		{"title and trailer not counted", []string{strings.Repeat("t", 60), "", "body", strings.Repeat("x", 80)}, engine.StatusPass, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := r.Check(msg(tc.lines...))
			assert.Equal(t, tc.want, out.Status)
			if tc.want == engine.StatusFail {
				require.Equal(t, engine.BodyLineHint{Line: tc.wantLine}, out.Hint)
			} else {
				assert.Nil(t, out.Hint)
			}
		})
	}
}
