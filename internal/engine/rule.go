// Package engine runs an ordered sequence of commit message rules and stops
// at the first failure.
package engine

import "github.com/bartekus/commitgate/internal/message"

// Rule defines a single check over a parsed commit message.
//
// Rules are pure: they read the message and report an Outcome, nothing else.
type Rule interface {
	// ID returns the unique identifier (e.g. "title:max-length").
	ID() string

	// Check evaluates the rule against the message.
	Check(msg message.Message) Outcome
}
