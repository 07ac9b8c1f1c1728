package engine

// Status represents the outcome of a rule check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusSkip Status = "skip"
)

// Outcome is the result of checking a single rule.
type Outcome struct {
	Rule   string
	Status Status
	// Hint carries structured detail about the check for the reporter.
	// Nil when the rule has nothing beyond its own identity to say.
	Hint Hint
}

// Verdict is the ordered outcome stream of an evaluation, truncated at the
// first failure.
type Verdict struct {
	Outcomes []Outcome
}

// OK reports whether no rule failed.
func (v Verdict) OK() bool {
	for _, o := range v.Outcomes {
		if o.Status == StatusFail {
			return false
		}
	}
	return true
}

// Failed returns the failing outcome, if any. By construction it is always
// the last outcome of the stream.
func (v Verdict) Failed() (Outcome, bool) {
	if n := len(v.Outcomes); n > 0 && v.Outcomes[n-1].Status == StatusFail {
		return v.Outcomes[n-1], true
	}
	return Outcome{}, false
}
