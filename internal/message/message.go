// Package message parses a commit message file into an ordered line model.
//
// Lines are stored without their line terminator (the CR of a CRLF ending is
// dropped too), so length checks operate on what the author actually sees in
// the editor. The positional views follow git's commit message layout:
//
//	line 0      title
//	line 1      separator (blank)
//	lines 2..   body
//	last line   trailing blank line
//
// The views are total: on a message too short to have a given part they
// return the zero value. Callers that need the layout guaranteed must check
// LineCount first.
package message

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Options controls parsing.
type Options struct {
	// KeepComments retains lines whose first non-blank rune is '#'.
	// By default they are dropped, matching what git strips from the
	// message before recording the commit.
	KeepComments bool
}

// Message is an immutable, ordered view of a parsed commit message.
type Message struct {
	lines []string
}

// FromLines builds a Message from already-split lines. Lines must not carry
// line terminators.
func FromLines(lines []string) Message {
	return Message{lines: append([]string(nil), lines...)}
}

// Parse reads a commit message from r.
func Parse(r io.Reader, opts Options) (Message, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if !opts.KeepComments && isComment(line) {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return Message{}, fmt.Errorf("scan commit message: %w", err)
	}
	return Message{lines: lines}, nil
}

// ReadFile reads and parses the commit message at path.
func ReadFile(path string, opts Options) (Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return Message{}, fmt.Errorf("open commit message: %w", err)
	}
	defer f.Close()

	msg, err := Parse(f, opts)
	if err != nil {
		return Message{}, fmt.Errorf("read commit message %s: %w", path, err)
	}
	return msg, nil
}

func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// LineCount returns the number of lines in the message.
func (m Message) LineCount() int { return len(m.lines) }

// Lines returns a copy of all lines in order.
func (m Message) Lines() []string {
	return append([]string(nil), m.lines...)
}

// Line returns line i, or "" when i is out of range.
func (m Message) Line(i int) string {
	if i < 0 || i >= len(m.lines) {
		return ""
	}
	return m.lines[i]
}

// Title returns the first line.
func (m Message) Title() string { return m.Line(0) }

// Separator returns the second line, expected to be blank.
func (m Message) Separator() string { return m.Line(1) }

// Body returns the lines between the separator and the trailing line.
func (m Message) Body() []string {
	if len(m.lines) < 3 {
		return nil
	}
	return append([]string(nil), m.lines[2:len(m.lines)-1]...)
}

// Trailer returns the last line, expected to be blank.
func (m Message) Trailer() string {
	if len(m.lines) == 0 {
		return ""
	}
	return m.lines[len(m.lines)-1]
}
