package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Rule validates one attribute value.
type Rule interface {
	// Validate returns nil if value is valid, or a *ValidationError whose
	// message may contain the {attribute} placeholder.
	Validate(value any) error
}

// RuleFunc is a function that implements Rule.
type RuleFunc func(value any) error

func (f RuleFunc) Validate(value any) error {
	return f(value)
}

// ValidationError is a failed rule.
type ValidationError struct {
	Attribute string
	Message   string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func fail(msg string) error {
	return &ValidationError{Message: msg}
}

// Required rejects nil, blank strings and empty slices and maps.
func Required(msg string) Rule {
	if msg == "" {
		msg = "{attribute} cannot be blank."
	}
	return RuleFunc(func(value any) error {
		if isEmpty(value) {
			return fail(msg)
		}
		return nil
	})
}

// MaxLength limits strings to n characters. Empty values pass.
func MaxLength(n int, msg string) Rule {
	if msg == "" {
		msg = fmt.Sprintf("{attribute} should contain at most %d %s.", n, plural(n, "character"))
	}
	return lengthRule{check: func(l int) bool { return l <= n }, msg: msg}
}

// MinLength requires strings of at least n characters. Empty values pass.
func MinLength(n int, msg string) Rule {
	if msg == "" {
		msg = fmt.Sprintf("{attribute} should contain at least %d %s.", n, plural(n, "character"))
	}
	return lengthRule{check: func(l int) bool { return l >= n }, msg: msg}
}

type lengthRule struct {
	check func(int) bool
	msg   string
}

func (r lengthRule) Validate(value any) error {
	if isEmpty(value) {
		return nil
	}
	if !r.check(utf8.RuneCountInString(toString(value))) {
		return fail(r.msg)
	}
	return nil
}

// Pattern requires strings to match pattern. Empty values pass.
func Pattern(pattern, msg string) Rule {
	re := regexp.MustCompile(pattern)
	if msg == "" {
		msg = "{attribute} is invalid."
	}
	return RuleFunc(func(value any) error {
		if isEmpty(value) {
			return nil
		}
		if !re.MatchString(toString(value)) {
			return fail(msg)
		}
		return nil
	})
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email requires a plausible email address. Empty values pass.
func Email(msg string) Rule {
	if msg == "" {
		msg = "{attribute} is not a valid email address."
	}
	return RuleFunc(func(value any) error {
		if isEmpty(value) {
			return nil
		}
		if !emailPattern.MatchString(toString(value)) {
			return fail(msg)
		}
		return nil
	})
}

// Integer requires an integer or a string holding one. Empty values pass.
func Integer(msg string) Rule {
	if msg == "" {
		msg = "{attribute} must be an integer."
	}
	return RuleFunc(func(value any) error {
		if isEmpty(value) {
			return nil
		}
		switch v := value.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return nil
		case string:
			if _, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
				return nil
			}
		}
		return fail(msg)
	})
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []byte:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}
	return false
}

func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(value)
}

// parseRules turns a validate tag such as "required,max=100" into rules.
// It also reports the max length when one is declared.
func parseRules(tag string) ([]Rule, int, error) {
	if tag == "" {
		return nil, 0, nil
	}
	var rules []Rule
	maxLen := 0
	for _, rule := range strings.Split(tag, ",") {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}
		name, arg, _ := strings.Cut(rule, "=")
		switch name {
		case "required":
			rules = append(rules, Required(""))
		case "max", "maxlen":
			n, err := strconv.Atoi(arg)
			if err != nil {
				return nil, 0, fmt.Errorf("rule %q: %w", rule, err)
			}
			rules = append(rules, MaxLength(n, ""))
			maxLen = n
		case "min", "minlen":
			n, err := strconv.Atoi(arg)
			if err != nil {
				return nil, 0, fmt.Errorf("rule %q: %w", rule, err)
			}
			rules = append(rules, MinLength(n, ""))
		case "email":
			rules = append(rules, Email(""))
		case "int", "integer":
			rules = append(rules, Integer(""))
		case "pattern", "regex":
			if _, err := regexp.Compile(arg); err != nil {
				return nil, 0, fmt.Errorf("rule %q: %w", rule, err)
			}
			rules = append(rules, Pattern(arg, ""))
		default:
			return nil, 0, fmt.Errorf("unknown rule %q", name)
		}
	}
	return rules, maxLen, nil
}
