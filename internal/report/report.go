// Package report renders rule outcomes as leveled, colored console lines.
//
// Colors ride on the lipgloss renderer bound to the output writer, so piped
// output degrades to plain text on its own.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"github.com/bartekus/commitgate/internal/engine"
	"github.com/bartekus/commitgate/internal/policy"
)

const (
	wrapWidth  = 72
	hangIndent = "        "
)

// statusStyles is the level palette: bright ANSI colors, bold.
type statusStyles struct {
	OK      lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

func newStatusStyles(ren *lipgloss.Renderer) statusStyles {
	return statusStyles{
		OK: ren.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true),

		Info: ren.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true),

		Warning: ren.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true),

		Error: ren.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true),
	}
}

// Reporter writes leveled outcome lines to a single writer.
type Reporter struct {
	w   io.Writer
	ren *lipgloss.Renderer
	st  statusStyles
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithProfile overrides the color profile detected from the writer.
func WithProfile(p termenv.Profile) Option {
	return func(r *Reporter) {
		r.ren.SetColorProfile(p)
	}
}

// New creates a Reporter for w.
func New(w io.Writer, opts ...Option) *Reporter {
	r := &Reporter{
		w:   w,
		ren: lipgloss.NewRenderer(w),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.st = newStatusStyles(r.ren)
	return r
}

// OK prints a pass line.
func (r *Reporter) OK(text string) { r.leveled(r.st.OK, "OK", text) }

// Info prints an informational line.
func (r *Reporter) Info(text string) { r.leveled(r.st.Info, "INFO", text) }

// Warning prints a warning line.
func (r *Reporter) Warning(text string) { r.leveled(r.st.Warning, "WARNING", text) }

// Error prints a violation line.
func (r *Reporter) Error(text string) { r.leveled(r.st.Error, "ERROR", text) }

func (r *Reporter) leveled(st lipgloss.Style, level, text string) {
	line := st.Render(level + ": " + text)
	fmt.Fprintln(r.w, hang(wordwrap.String(line, wrapWidth)))
}

// hang indents continuation lines so wrapped messages read as one block.
func hang(s string) string {
	lines := strings.Split(s, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = hangIndent + lines[i]
	}
	return strings.Join(lines, "\n")
}

// Verdict renders every outcome in evaluation order. Skipped rules print
// nothing.
func (r *Reporter) Verdict(v engine.Verdict) {
	for _, o := range v.Outcomes {
		r.outcome(o)
	}
}

func (r *Reporter) outcome(o engine.Outcome) {
	switch o.Status {
	case engine.StatusPass:
		r.pass(o)
	case engine.StatusFail:
		r.fail(o)
	case engine.StatusSkip:
	}
}

// passText maps rule IDs to their confirmation lines.
var passText = map[string]string{
	"structure:title-and-body": "Commit Message has a title and body.",
	"title:max-length":         "Title is within the maximum length.",
	"structure:separator":      "Commit Message has a blank line between title and body.",
	"structure:trailing-line":  "Commit message has a trailing line.",
	"body:max-length":          "Commit Body lines are within the maximum length.",
	"title:commit-type":        "Title starts with a valid commit type.",
	"title:issue-number":       "Commit Message has a valid issue number.",
}

// failText maps rule IDs to their violation lines. The issue-number rule is
// absent: its wording depends on the hint.
var failText = map[string]string{
	"structure:title-and-body": "Title and Body are required",
	"title:max-length":         "Title is too long:",
	"structure:separator":      "A blank line is required between the title and body",
	"structure:trailing-line":  "A blank line is required at the end of the commit message",
	"body:max-length":          "Commit Body lines are too long:",
	"title:commit-type":        "Title must start with a valid commit type",
}

func (r *Reporter) pass(o engine.Outcome) {
	if h, ok := o.Hint.(engine.IssueCheckHint); ok {
		if h.Required {
			r.Info("Commit type requires an issue number checking.....")
		} else {
			r.Info("Commit type does not require an issue number.")
		}
		return
	}
	text, ok := passText[o.Rule]
	if !ok {
		text = o.Rule
	}
	r.OK(text)
}

func (r *Reporter) fail(o engine.Outcome) {
	switch h := o.Hint.(type) {
	case engine.MaxLengthHint:
		r.Error(failText[o.Rule])
		r.Info(fmt.Sprintf("Max Length: %d", h.Limit))
	case engine.BodyLineHint:
		r.Error(failText[o.Rule])
		r.Info(fmt.Sprintf("Line %d", h.Line))
	case engine.CommitTypesHint:
		r.Error(failText[o.Rule])
		r.Info("Valid Commit Types: " + strings.Join(h.Types, ", "))
	case engine.TrackerCatalogHint:
		r.Error("Issue Tracker is not valid.")
		r.trackerCatalog(h.Trackers)
	case engine.MissingIssueNumberHint:
		r.Error("Issue Tracker is valid but no issue number provided.")
		r.Info("An issue number must follow the tracker prefix, e.g. gh:123")
	default:
		text, ok := failText[o.Rule]
		if !ok {
			text = o.Rule
		}
		r.Error(text)
	}
}

// trackerCatalog prints the recognized trackers as an aligned example block.
func (r *Reporter) trackerCatalog(trackers []policy.Tracker) {
	r.Info("List of Valid Issue Trackers e.g:")
	nameCol := 0
	for _, tr := range trackers {
		if len(tr.Name) > nameCol {
			nameCol = len(tr.Name)
		}
	}
	width := uint(len("for ") + nameCol + 1)
	for _, tr := range trackers {
		line := padding.String("for "+tr.Name, width) + "-> " + tr.Prefix + "123"
		fmt.Fprintln(r.w, hangIndent+r.st.Info.Render(line))
	}
}
