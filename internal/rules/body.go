package rules

import (
	"unicode/utf8"

	"github.com/bartekus/commitgate/internal/engine"
	"github.com/bartekus/commitgate/internal/message"
	"github.com/bartekus/commitgate/internal/policy"
)

// BodyMaxLength bounds every body line. The hint carries the 1-based
// position of the first offending line within the body.
type BodyMaxLength struct{}

func (r *BodyMaxLength) ID() string {
	return "body:max-length"
}

func (r *BodyMaxLength) Check(msg message.Message) engine.Outcome {
	for i, line := range msg.Body() {
		if utf8.RuneCountInString(line) > policy.BodyMaxLen {
			return engine.Outcome{
				Rule:   r.ID(),
				Status: engine.StatusFail,
				Hint:   engine.BodyLineHint{Line: i + 1},
			}
		}
	}
	return engine.Outcome{Rule: r.ID(), Status: engine.StatusPass}
}
