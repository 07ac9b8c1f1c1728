// Package rules implements the commit message checks.
package rules

import "github.com/bartekus/commitgate/internal/engine"

// Registry defines the canonical evaluation order. The structural check
// comes first: every later rule indexes into the message and relies on it
// having passed.
var Registry = []engine.Rule{
	&TitleAndBody{},
	&TitleMaxLength{},
	&SeparatorBlank{},
	&TrailingBlank{},
	&BodyMaxLength{},
	&CommitType{},
	&IssueRequired{},
	&IssueNumber{},
}
