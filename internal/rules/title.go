package rules

import (
	"unicode/utf8"

	"github.com/bartekus/commitgate/internal/engine"
	"github.com/bartekus/commitgate/internal/message"
	"github.com/bartekus/commitgate/internal/policy"
)

// TitleMaxLength bounds the title length. Lengths are counted in runes so
// multibyte characters are not penalized.
type TitleMaxLength struct{}

func (r *TitleMaxLength) ID() string {
	return "title:max-length"
}

func (r *TitleMaxLength) Check(msg message.Message) engine.Outcome {
	if utf8.RuneCountInString(msg.Title()) > policy.TitleMaxLen {
		return engine.Outcome{
			Rule:   r.ID(),
			Status: engine.StatusFail,
			Hint:   engine.MaxLengthHint{Limit: policy.TitleMaxLen},
		}
	}
	return engine.Outcome{Rule: r.ID(), Status: engine.StatusPass}
}

// CommitType requires the title to start with an accepted conventional
// commit type followed by a colon.
type CommitType struct{}

func (r *CommitType) ID() string {
	return "title:commit-type"
}

func (r *CommitType) Check(msg message.Message) engine.Outcome {
	if !policy.HasCommitType(msg.Title()) {
		return engine.Outcome{
			Rule:   r.ID(),
			Status: engine.StatusFail,
			Hint:   engine.CommitTypesHint{Types: policy.CommitTypes},
		}
	}
	return engine.Outcome{Rule: r.ID(), Status: engine.StatusPass}
}
