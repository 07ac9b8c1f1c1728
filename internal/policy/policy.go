// Package policy holds the fixed commit message policy: length limits, the
// accepted conventional commit types, and the issue tracker catalog. The
// policy is compiled in; commitgate reads no configuration files.
package policy

import "strings"

const (
	// TitleMaxLen is the maximum title length in runes.
	TitleMaxLen = 50

	// BodyMaxLen is the maximum length of a single body line in runes.
	BodyMaxLen = 72

	// MinLines is the smallest well-formed message: title, separator,
	// one body line, trailing blank line.
	MinLines = 4
)

// CommitTypes lists the accepted conventional commit prefixes, in the order
// they are reported to the user.
var CommitTypes = []string{
	"feat",
	"fix",
	"refactor",
	"style",
	"docs",
	"test",
	"chore",
	"revert",
}

// IssueRequiredTypes are the commit types that must reference an issue.
var IssueRequiredTypes = []string{"feat", "fix"}

// Tracker maps a short issue tracker prefix (as it appears in a title,
// colon included) to the tracker's name.
type Tracker struct {
	Prefix string `json:"prefix" yaml:"prefix"`
	Name   string `json:"name" yaml:"name"`
}

// Trackers is the issue tracker catalog. Order matters: the first prefix
// found anywhere in a title wins and the rest are not considered.
var Trackers = []Tracker{
	{Prefix: "jr:", Name: "jira"},
	{Prefix: "gh:", Name: "github"},
	{Prefix: "gl:", Name: "gitlab"},
	{Prefix: "bb:", Name: "bitbucket"},
	{Prefix: "lp:", Name: "launchpad"},
}

// HasCommitType reports whether the title starts with one of the accepted
// commit types immediately followed by a colon.
func HasCommitType(title string) bool {
	for _, t := range CommitTypes {
		if strings.HasPrefix(title, t+":") {
			return true
		}
	}
	return false
}

// RequiresIssueNumber reports whether the title's commit type demands an
// issue tracker reference.
func RequiresIssueNumber(title string) bool {
	for _, t := range IssueRequiredTypes {
		if strings.HasPrefix(title, t+":") {
			return true
		}
	}
	return false
}

// Policy aggregates the static policy for display and serialization.
type Policy struct {
	TitleMaxLen        int       `json:"title_max_length" yaml:"title_max_length"`
	BodyMaxLen         int       `json:"body_max_length" yaml:"body_max_length"`
	MinLines           int       `json:"min_lines" yaml:"min_lines"`
	CommitTypes        []string  `json:"commit_types" yaml:"commit_types"`
	IssueRequiredTypes []string  `json:"issue_required_types" yaml:"issue_required_types"`
	Trackers           []Tracker `json:"issue_trackers" yaml:"issue_trackers"`
}

// Default returns the active policy.
func Default() Policy {
	return Policy{
		TitleMaxLen:        TitleMaxLen,
		BodyMaxLen:         BodyMaxLen,
		MinLines:           MinLines,
		CommitTypes:        CommitTypes,
		IssueRequiredTypes: IssueRequiredTypes,
		Trackers:           Trackers,
	}
}
