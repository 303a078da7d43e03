// Package validation checks raw request input against a declarative rule table.
//
// Every field of a rule set is checked in one pass and all failures are
// collected. Within a single field every rule runs and reports its own
// message, except that a failing implicit rule such as required stops the
// field. A rule that fails leaves the value as it was for the rules after it.
package validation

import (
	"context"
	"fmt"
	"strings"
)

// Presence controls when a field's rules run.
type Presence int

const (
	// Always checks the field whether or not its key is present.
	Always Presence = iota
	// Sometimes checks the field only when its key is present.
	Sometimes
)

// CheckFunc validates value and returns it, possibly converted, for the next
// rule of the field. A non-nil error aborts validation altogether.
type CheckFunc func(ctx context.Context, value any) (out any, ok bool, err error)

// Rule is a single named constraint. The name selects the message.
type Rule struct {
	Name string
	// Implicit rules also run when the value is null or absent.
	Implicit bool
	Check    CheckFunc
}

// Field is the ordered rule list for one input key.
type Field struct {
	Name     string
	Presence Presence
	Nullable bool
	Rules    []Rule
}

// Rules is a named field rule set with its "field.rule" message table.
type Rules struct {
	Fields   []Field
	Messages map[string]string
}

// Message returns the message for field and rule.
func (r Rules) Message(field, rule string) string {
	key := field + "." + rule
	if msg, ok := r.Messages[key]; ok {
		return msg
	}
	return key
}

// Fail returns the error list holding only the message of field's rule. It is
// used when a constraint is caught after validation passed, such as a unique
// index rejecting a concurrent insert.
func (r Rules) Fail(field, rule string) Errors {
	return Errors{}.add(field, r.Message(field, rule))
}

// Validate checks input against rules. It returns the normalized values of the
// present fields when everything passes, or the collected field errors
// otherwise. The error result is only set when a rule could not be evaluated.
func Validate(ctx context.Context, rules Rules, input map[string]any) (Values, Errors, error) {
	values := Values{}
	var errs Errors

	for _, field := range rules.Fields {
		raw, present := input[field.Name]
		if !present && field.Presence == Sometimes {
			continue
		}

		value := normalize(raw)
		if value == nil && field.Nullable {
			if present {
				values[field.Name] = nil
			}
			continue
		}

		failed := false
		for _, rule := range field.Rules {
			if value == nil && !rule.Implicit {
				continue
			}
			out, ok, err := rule.Check(ctx, value)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to check %s.%s: %w", field.Name, rule.Name, err)
			}
			if !ok {
				errs = errs.add(field.Name, rules.Message(field.Name, rule.Name))
				failed = true
				if rule.Implicit {
					break
				}
				continue
			}
			value = out
		}

		if !failed && present {
			values[field.Name] = value
		}
	}

	if len(errs) > 0 {
		return nil, errs, nil
	}
	return values, nil, nil
}

// normalize trims strings and turns empty strings into null.
func normalize(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}
