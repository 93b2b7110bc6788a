// Package errors provides structured, coded errors for the markup tools.
//
// Every error the path resolver, the document decoder or the configuration
// loader returns is a *MarkupError built from a registered code:
//   - path: malformed or unknown attribute expressions (M001-M002)
//   - form: form namespace problems (M003)
//   - document: YAML/JSON attribute documents (M010-M019)
//   - config: markup.yaml loading and validation (M020-M029)
//   - cli: command line usage (M030-M039)
//
// Errors compare by code, so a package level sentinel matches every error
// derived from it:
//
//	var ErrInvalidPath = errors.New("M001")
//
//	err := ErrInvalidPath.WithInput(". ..")
//	stderrors.Is(err, ErrInvalidPath) // true
//
// Format renders the error for a terminal:
//
//	ERROR M001: Attribute name must contain word characters only
//
//	  input: ". .."
//
//	  An attribute expression is an optional leading [index], a name made of
//	  letters, digits, underscores and dots, and an optional trailing [index].
//
//	  Hint: Use an expression like "title", "[0]title" or "tags[]".
package errors
