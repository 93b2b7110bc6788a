package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Attribute paths (M001-M009)
	// ============================================

	"M001": {
		Category:   CategoryPath,
		Message:    "Attribute name must contain word characters only",
		Detail:     "An attribute expression is an optional leading [index], a name made of letters, digits, underscores and dots, and an optional trailing [index].",
		Suggestion: "Use an expression like \"title\", \"[0]title\" or \"tags[]\".",
	},
	"M002": {
		Category:   CategoryPath,
		Message:    "Invalid attribute",
		Detail:     "The expression does not name an attribute the record exposes.",
		Suggestion: "Check the attribute name against the record's fields.",
	},
	"M003": {
		Category:   CategoryForm,
		Message:    "Form name cannot be empty for tabular inputs",
		Detail:     "An expression with a leading [index] binds one row of a repeated sub-record and needs a form name to namespace it.",
		Suggestion: "Give the record a non-empty FormName().",
	},

	// ============================================
	// Documents (M010-M019)
	// ============================================

	"M010": {
		Category: CategoryDocument,
		Message:  "Failed to decode attribute document",
		Detail:   "The document is not valid YAML or JSON.",
	},
	"M011": {
		Category:   CategoryDocument,
		Message:    "Unsupported document node",
		Detail:     "Attribute documents accept mappings, sequences and scalars only.",
		Suggestion: "Remove anchors, aliases and tagged nodes from the document.",
	},
	"M012": {
		Category: CategoryDocument,
		Message:  "Unknown tag builder",
		Detail:   "The requested tag has no builder.",
	},

	// ============================================
	// Configuration (M020-M029)
	// ============================================

	"M020": {
		Category: CategoryConfig,
		Message:  "Failed to read configuration file",
		Detail:   "The configuration file could not be opened.",
	},
	"M021": {
		Category: CategoryConfig,
		Message:  "Failed to parse configuration file",
		Detail:   "markup.yaml must be valid YAML (JSON is accepted as well).",
	},
	"M022": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},

	// ============================================
	// CLI (M030-M039)
	// ============================================

	"M030": {
		Category:   CategoryCLI,
		Message:    "No input given",
		Suggestion: "Pass a file argument or pipe the document on stdin.",
	},
}

// GetAllCodes returns all registered error codes in ascending order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
