package errors

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// ansi holds the escape sequences used by Format.
var ansi = map[string]string{
	"red":    "\033[31m",
	"yellow": "\033[33m",
	"blue":   "\033[34m",
	"cyan":   "\033[36m",
	"white":  "\033[37m",
	"gray":   "\033[90m",
	"bold":   "\033[1m",
}

const ansiReset = "\033[0m"

// colorEnabled controls whether Format emits ANSI colors.
var colorEnabled = true

// DisableColors turns off ANSI color output.
func DisableColors() {
	colorEnabled = false
}

// EnableColors turns on ANSI color output.
func EnableColors() {
	colorEnabled = true
}

func paint(name, text string) string {
	if !colorEnabled {
		return text
	}
	return ansi[name] + text + ansiReset
}

func red(text string) string    { return paint("red", text) }
func yellow(text string) string { return paint("yellow", text) }
func blue(text string) string   { return paint("blue", text) }
func cyan(text string) string   { return paint("cyan", text) }
func white(text string) string  { return paint("white", text) }
func gray(text string) string   { return paint("gray", text) }
func bold(text string) string   { return paint("bold", text) }

// Format returns the error as a multi-line block for terminals: a headline,
// the rejected input, the document excerpt around the location, the detail
// and the hint.
func (e *MarkupError) Format() string {
	var b strings.Builder

	headline := red(bold("ERROR: "))
	if e.Code != "" {
		headline = red(bold("ERROR ")) + white(bold(e.Code+": "))
	}
	fmt.Fprintf(&b, "\n%s%s\n\n", headline, white(e.Message))

	if e.Input != "" {
		fmt.Fprintf(&b, "  %s%s\n\n", gray("input: "), yellow(strconv.Quote(e.Input)))
	}

	if e.Location != nil {
		fmt.Fprintf(&b, "  %s\n\n", cyan(e.Location.String()))
		if len(e.Context) > 0 {
			e.writeExcerpt(&b)
			b.WriteString("\n")
		}
	}

	if e.Detail != "" {
		for _, line := range wrapText(e.Detail, 70) {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		b.WriteString("\n")
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s%s\n", cyan("Hint: "), e.Suggestion)
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "  %s%s\n", gray("cause: "), blue(e.Wrapped.Error()))
	}
	return b.String()
}

// writeExcerpt prints the context lines with the failing line marked and a
// caret under the column.
func (e *MarkupError) writeExcerpt(b *strings.Builder) {
	first := max(e.Location.Line-len(e.Context)/2, 1)
	for i, line := range e.Context {
		n := first + i
		marker := "    "
		if n == e.Location.Line {
			marker = "  " + red("→ ")
		}
		fmt.Fprintf(b, "%s%4d%s%s\n", marker, n, gray(" │ "), line)
		if n == e.Location.Line && e.Location.Column > 0 {
			fmt.Fprintf(b, "       %s%s%s\n", gray("│ "), strings.Repeat(" ", e.Location.Column-1), red("^"))
		}
	}
}

// FormatCompact returns a compact single-line error format.
func (e *MarkupError) FormatCompact() string {
	var b strings.Builder

	if e.Location != nil {
		b.WriteString(e.Location.String())
		b.WriteString(": ")
	}
	b.WriteString(e.Error())

	return b.String()
}

type jsonError struct {
	Code       string    `json:"code,omitempty"`
	Category   Category  `json:"category"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	Input      string    `json:"input,omitempty"`
	Location   *Location `json:"location,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
	Cause      string    `json:"cause,omitempty"`
}

// FormatJSON returns the error as a JSON object.
func (e *MarkupError) FormatJSON() string {
	out := jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Input:      e.Input,
		Location:   e.Location,
		Suggestion: e.Suggestion,
	}
	if e.Wrapped != nil {
		out.Cause = e.Wrapped.Error()
	}
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(out)
	if err != nil {
		return fmt.Sprintf(`{"message":%q}`, e.Message)
	}
	return string(data)
}

// wrapText wraps text to the specified width.
func wrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	if len(text) <= width {
		return []string{text}
	}

	var lines []string
	var current strings.Builder

	for _, word := range strings.Fields(text) {
		if current.Len() > 0 && current.Len()+len(word)+1 > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	return lines
}

// PrintError prints err to stderr, as a Format block when it is coded.
func PrintError(err error) {
	var me *MarkupError
	if errors.As(err, &me) {
		fmt.Fprint(os.Stderr, me.Format())
		return
	}
	fmt.Fprintf(os.Stderr, "\n%s %s\n\n", red(bold("ERROR:")), err.Error())
}
