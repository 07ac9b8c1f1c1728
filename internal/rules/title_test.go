package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/commitgate/internal/engine"
)

func TestTitleMaxLength(t *testing.T) {
	r := &TitleMaxLength{}
	assert.Equal(t, "title:max-length", r.ID())

	cases := []struct {
		name  string
		title string
		want  engine.Status
	}{
		{"short", "feat: add login", engine.StatusPass},
		{"exactly 50", strings.Repeat("a", 50), engine.StatusPass},
		{"51", strings.Repeat("a", 51), engine.StatusFail},
		{"50 multibyte runes", strings.Repeat("é", 50), engine.StatusPass},
		{"51 multibyte runes", strings.Repeat("é", 51), engine.StatusFail},
		{"empty title", "", engine.StatusPass},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := r.Check(msg(tc.title, "", "body", ""))
			assert.Equal(t, tc.want, out.Status)
			if tc.want == engine.StatusFail {
				require.Equal(t, engine.MaxLengthHint{Limit: 50}, out.Hint)
			} else {
				assert.Nil(t, out.Hint)
			}
		})
	}
}

func TestCommitType(t *testing.T) {
	r := &CommitType{}
	assert.Equal(t, "title:commit-type", r.ID())

	pass := []string{
		"feat: add login",
		"fix: crash on empty input",
		"refactor: split parser",
		"style: gofmt",
		"docs: update readme",
		"test: cover parser",
		"chore: bump deps",
		"revert: feat: add login",
	}
	for _, title := range pass {
		t.Run(title, func(t *testing.T) {
			out := r.Check(msg(title, "", "body", ""))
			assert.Equal(t, engine.StatusPass, out.Status)
			assert.Nil(t, out.Hint)
		})
	}

	fail := []string{
		"add login",
		"feature: add login",
		"feat add login",
		"Feat: add login",
		" feat: add login",
		"",
	}
	for _, title := range fail {
		t.Run("reject "+title, func(t *testing.T) {
			out := r.Check(msg(title, "", "body", ""))
			require.Equal(t, engine.StatusFail, out.Status)
			hint, ok := out.Hint.(engine.CommitTypesHint)
			require.True(t, ok)
			assert.Contains(t, hint.Types, "feat")
			assert.Len(t, hint.Types, 8)
		})
	}
}
