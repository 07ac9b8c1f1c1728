package engine

import "github.com/bartekus/commitgate/internal/policy"

// Hint is structured detail attached to an Outcome. The engine never looks
// inside a hint; the reporter type-switches on the concrete types below.
//
// The interface is sealed so the set of payload shapes stays closed.
type Hint interface {
	hint()
}

// MaxLengthHint reports the limit a line exceeded.
type MaxLengthHint struct {
	Limit int
}

// BodyLineHint identifies the first offending body line, 1-based within the
// body.
type BodyLineHint struct {
	Line int
}

// CommitTypesHint lists the accepted commit types.
type CommitTypesHint struct {
	Types []string
}

// TrackerCatalogHint lists the recognized issue trackers.
type TrackerCatalogHint struct {
	Trackers []policy.Tracker
}

// MissingIssueNumberHint marks a recognized tracker prefix with no issue
// number after it.
type MissingIssueNumberHint struct{}

// IssueCheckHint reports whether the commit type demands an issue reference.
type IssueCheckHint struct {
	Required bool
}

func (MaxLengthHint) hint()          {}
func (BodyLineHint) hint()           {}
func (CommitTypesHint) hint()        {}
func (TrackerCatalogHint) hint()     {}
func (MissingIssueNumberHint) hint() {}
func (IssueCheckHint) hint()         {}
