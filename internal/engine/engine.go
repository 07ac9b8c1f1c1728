package engine

import "github.com/bartekus/commitgate/internal/message"

// Engine evaluates rules in order.
type Engine struct {
	rules []Rule
}

// New creates an engine over the given rules. Order is evaluation order.
func New(rules []Rule) *Engine {
	return &Engine{rules: rules}
}

// Rules returns the rules in evaluation order.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// Evaluate checks the message against every rule in order and halts at the
// first failure. Skipped rules do not halt the run. The engine holds no
// state between evaluations.
func (e *Engine) Evaluate(msg message.Message) Verdict {
	var outcomes []Outcome
	for _, r := range e.rules {
		out := r.Check(msg)
		outcomes = append(outcomes, out)
		if out.Status == StatusFail {
			break
		}
	}
	return Verdict{Outcomes: outcomes}
}
