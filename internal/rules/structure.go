package rules

import (
	"strings"

	"github.com/bartekus/commitgate/internal/engine"
	"github.com/bartekus/commitgate/internal/message"
	"github.com/bartekus/commitgate/internal/policy"
)

// TitleAndBody requires the message to be long enough to hold a title, a
// separator, at least one body line and a trailing blank line. It runs first
// so the later rules can index the message positionally.
type TitleAndBody struct{}

func (r *TitleAndBody) ID() string {
	return "structure:title-and-body"
}

func (r *TitleAndBody) Check(msg message.Message) engine.Outcome {
	if msg.LineCount() < policy.MinLines {
		return engine.Outcome{Rule: r.ID(), Status: engine.StatusFail}
	}
	return engine.Outcome{Rule: r.ID(), Status: engine.StatusPass}
}

// SeparatorBlank requires a blank line between title and body.
type SeparatorBlank struct{}

func (r *SeparatorBlank) ID() string {
	return "structure:separator"
}

func (r *SeparatorBlank) Check(msg message.Message) engine.Outcome {
	if strings.TrimSpace(msg.Separator()) != "" {
		return engine.Outcome{Rule: r.ID(), Status: engine.StatusFail}
	}
	return engine.Outcome{Rule: r.ID(), Status: engine.StatusPass}
}

// TrailingBlank requires the message to end with a blank line.
type TrailingBlank struct{}

func (r *TrailingBlank) ID() string {
	return "structure:trailing-line"
}

func (r *TrailingBlank) Check(msg message.Message) engine.Outcome {
	if strings.TrimSpace(msg.Trailer()) != "" {
		return engine.Outcome{Rule: r.ID(), Status: engine.StatusFail}
	}
	return engine.Outcome{Rule: r.ID(), Status: engine.StatusPass}
}
