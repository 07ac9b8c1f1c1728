package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/bartekus/commitgate/internal/engine"
	"github.com/bartekus/commitgate/internal/message"
	"github.com/bartekus/commitgate/internal/policy"
	"github.com/bartekus/commitgate/internal/rules"
	"github.com/bartekus/commitgate/internal/testutil/golden"
)

// plain returns a reporter that writes uncolored text to buf.
func plain(buf *bytes.Buffer) *Reporter {
	return New(buf, WithProfile(termenv.Ascii))
}

func renderVerdict(t *testing.T, lines ...string) string {
	t.Helper()
	var buf bytes.Buffer
	v := engine.New(rules.Registry).Evaluate(message.FromLines(lines))
	plain(&buf).Verdict(v)
	return buf.String()
}

func TestVerdictAllPass(t *testing.T) {
	got := renderVerdict(t, "feat: add x gh:42", "", "body line", "")
	golden.Check(t, golden.Dir(t), "all_pass", got)
}

func TestVerdictTrackerCatalog(t *testing.T) {
	got := renderVerdict(t, "feat: add x", "", "body line", "")
	golden.Check(t, golden.Dir(t), "fail_tracker", got)
}

func TestVerdictIssueNotRequired(t *testing.T) {
	got := renderVerdict(t, "chore: cleanup", "", "body", "")
	golden.Check(t, golden.Dir(t), "not_required", got)
}

func TestLeveledLines(t *testing.T) {
	var buf bytes.Buffer
	r := plain(&buf)

	r.OK("fine")
	r.Info("fyi")
	r.Warning("careful")
	r.Error("broken")

	want := "OK: fine\nINFO: fyi\nWARNING: careful\nERROR: broken\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestFailureRenderings(t *testing.T) {
	cases := []struct {
		name    string
		outcome engine.Outcome
		want    string
	}{
		{
			name:    "structural failure has no hint",
			outcome: engine.Outcome{Rule: "structure:title-and-body", Status: engine.StatusFail},
			want:    "ERROR: Title and Body are required\n",
		},
		{
			name: "title too long",
			outcome: engine.Outcome{
				Rule:   "title:max-length",
				Status: engine.StatusFail,
				Hint:   engine.MaxLengthHint{Limit: 50},
			},
			want: "ERROR: Title is too long:\nINFO: Max Length: 50\n",
		},
		{
			name:    "missing separator",
			outcome: engine.Outcome{Rule: "structure:separator", Status: engine.StatusFail},
			want:    "ERROR: A blank line is required between the title and body\n",
		},
		{
			name:    "missing trailing line",
			outcome: engine.Outcome{Rule: "structure:trailing-line", Status: engine.StatusFail},
			want:    "ERROR: A blank line is required at the end of the commit message\n",
		},
		{
			name: "long body line",
			outcome: engine.Outcome{
				Rule:   "body:max-length",
				Status: engine.StatusFail,
				Hint:   engine.BodyLineHint{Line: 3},
			},
			want: "ERROR: Commit Body lines are too long:\nINFO: Line 3\n",
		},
		{
			name: "bad commit type",
			outcome: engine.Outcome{
				Rule:   "title:commit-type",
				Status: engine.StatusFail,
				Hint:   engine.CommitTypesHint{Types: []string{"feat", "fix"}},
			},
			want: "ERROR: Title must start with a valid commit type\nINFO: Valid Commit Types: feat, fix\n",
		},
		{
			name: "tracker without number",
			outcome: engine.Outcome{
				Rule:   "title:issue-number",
				Status: engine.StatusFail,
				Hint:   engine.MissingIssueNumberHint{},
			},
			want: "ERROR: Issue Tracker is valid but no issue number provided.\n" +
				"INFO: An issue number must follow the tracker prefix, e.g. gh:123\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			plain(&buf).Verdict(engine.Verdict{Outcomes: []engine.Outcome{tc.outcome}})
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTrackerCatalogAlignment(t *testing.T) {
	var buf bytes.Buffer
	plain(&buf).trackerCatalog(policy.Trackers)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, "INFO: List of Valid Issue Trackers e.g:", lines[0])

	col := -1
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, hangIndent), "catalog lines are indented")
		i := strings.Index(line, "->")
		if col < 0 {
			col = i
		}
		assert.Equal(t, col, i, "arrows line up: %q", line)
	}
}

func TestSkipRendersNothing(t *testing.T) {
	var buf bytes.Buffer
	plain(&buf).Verdict(engine.Verdict{Outcomes: []engine.Outcome{
		{Rule: "title:issue-number", Status: engine.StatusSkip},
	}})
	assert.Empty(t, buf.String())
}

func TestUnknownRuleFallsBackToID(t *testing.T) {
	var buf bytes.Buffer
	plain(&buf).Verdict(engine.Verdict{Outcomes: []engine.Outcome{
		{Rule: "custom:rule", Status: engine.StatusPass},
		{Rule: "custom:rule", Status: engine.StatusFail},
	}})
	assert.Equal(t, "OK: custom:rule\nERROR: custom:rule\n", buf.String())
}

func TestLongMessagesWrapWithHangingIndent(t *testing.T) {
	var buf bytes.Buffer
	long := strings.Repeat("violation detail ", 10)
	plain(&buf).Error(long)

	out := strings.TrimRight(buf.String(), "\n")
	lines := strings.Split(out, "\n")
	assert.Greater(t, len(lines), 1, "expected the message to wrap")
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, hangIndent), "continuation line %q lacks indent", line)
	}
}

func TestColorProfileOverride(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, WithProfile(termenv.ANSI)).OK("fine")

	out := buf.String()
	assert.Contains(t, out, "\x1b[", "expected ANSI escape sequences")
	assert.Contains(t, out, "OK: fine")
}
