package errors

import (
	"bufio"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryPath     Category = "path"
	CategoryForm     Category = "form"
	CategoryDocument Category = "document"
	CategoryConfig   Category = "config"
	CategoryCLI      Category = "cli"
)

// Location represents a position inside an input document.
type Location struct {
	File   string `json:"file,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column,omitempty"`
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// MarkupError is a structured error carrying a stable code, the offending
// input and a hint for fixing it.
type MarkupError struct {
	// Code is a unique error identifier (e.g., "M001").
	Code string

	// Category is the error type (path, form, document, ...).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Input is the expression or value that was rejected.
	Input string

	// Location points into the document the input came from, if any.
	Location *Location

	// Context contains surrounding document lines.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *MarkupError) Error() string {
	msg := e.Message
	if e.Input != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Input)
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *MarkupError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a MarkupError with the same code, so package
// level sentinels match every instance created from them.
func (e *MarkupError) Is(target error) bool {
	t, ok := target.(*MarkupError)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// WithInput records the rejected input. It returns a copy so sentinels stay
// untouched.
func (e *MarkupError) WithInput(input string) *MarkupError {
	c := *e
	c.Input = input
	return &c
}

// WithLocation adds a document location to the error.
func (e *MarkupError) WithLocation(file string, line, column int) *MarkupError {
	e.Location = &Location{File: file, Line: line, Column: column}
	if file != "" {
		e.Context = readContextLines(file, line, 5)
	}
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *MarkupError) WithSuggestion(s string) *MarkupError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *MarkupError) WithDetail(d string) *MarkupError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *MarkupError) Wrap(err error) *MarkupError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a MarkupError from a registered error code.
func New(code string) *MarkupError {
	template, ok := registry[code]
	if !ok {
		return &MarkupError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &MarkupError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a new MarkupError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *MarkupError {
	return &MarkupError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a MarkupError.
func FromError(err error, code string) *MarkupError {
	if err == nil {
		return nil
	}
	if me, ok := err.(*MarkupError); ok {
		return me
	}
	return New(code).Wrap(err)
}

// Code returns the code of the first MarkupError in err's chain.
func Code(err error) string {
	for err != nil {
		if me, ok := err.(*MarkupError); ok {
			return me.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
