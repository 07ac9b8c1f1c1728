package rules

import (
	"strings"
	"unicode"

	"github.com/bartekus/commitgate/internal/engine"
	"github.com/bartekus/commitgate/internal/message"
	"github.com/bartekus/commitgate/internal/policy"
)

// IssueRequired announces whether the title's commit type demands an issue
// reference. It never fails; the hint tells the reporter which notice to
// print and IssueNumber performs the actual check.
type IssueRequired struct{}

func (r *IssueRequired) ID() string {
	return "title:issue-required"
}

func (r *IssueRequired) Check(msg message.Message) engine.Outcome {
	return engine.Outcome{
		Rule:   r.ID(),
		Status: engine.StatusPass,
		Hint:   engine.IssueCheckHint{Required: policy.RequiresIssueNumber(msg.Title())},
	}
}

// IssueNumber validates the issue reference in the title for commit types
// that require one, and skips otherwise.
//
// The title is scanned for each tracker prefix in catalog order; the first
// prefix found anywhere in the title wins, even mid-word. The issue number
// is the run of non-whitespace characters immediately after the prefix and
// must be all ASCII digits.
type IssueNumber struct{}

func (r *IssueNumber) ID() string {
	return "title:issue-number"
}

func (r *IssueNumber) Check(msg message.Message) engine.Outcome {
	title := msg.Title()
	if !policy.RequiresIssueNumber(title) {
		return engine.Outcome{Rule: r.ID(), Status: engine.StatusSkip}
	}

	token, found := issueToken(title)
	if !found {
		return engine.Outcome{
			Rule:   r.ID(),
			Status: engine.StatusFail,
			Hint:   engine.TrackerCatalogHint{Trackers: policy.Trackers},
		}
	}
	if !allDigits(token) {
		return engine.Outcome{
			Rule:   r.ID(),
			Status: engine.StatusFail,
			Hint:   engine.MissingIssueNumberHint{},
		}
	}
	return engine.Outcome{Rule: r.ID(), Status: engine.StatusPass}
}

// issueToken extracts the candidate issue number following the first
// recognized tracker prefix in the title.
func issueToken(title string) (token string, found bool) {
	for _, tr := range policy.Trackers {
		i := strings.Index(title, tr.Prefix)
		if i < 0 {
			continue
		}
		rest := title[i+len(tr.Prefix):]
		if j := strings.IndexFunc(rest, unicode.IsSpace); j >= 0 {
			rest = rest[:j]
		}
		return rest, true
	}
	return "", false
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
