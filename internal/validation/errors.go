package validation

import (
	"bytes"
	"encoding/json"
)

// FieldError holds the messages collected for one field.
type FieldError struct {
	Field    string
	Messages []string
}

// Errors is an ordered list of field errors. It encodes to a JSON object
// keyed by field name, in rule set order.
type Errors []FieldError

func (e Errors) add(field, message string) Errors {
	for i := range e {
		if e[i].Field == field {
			e[i].Messages = append(e[i].Messages, message)
			return e
		}
	}
	return append(e, FieldError{Field: field, Messages: []string{message}})
}

// Get returns the messages for field.
func (e Errors) Get(field string) []string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Messages
		}
	}
	return nil
}

// Has reports whether field failed validation.
func (e Errors) Has(field string) bool {
	return len(e.Get(field)) > 0
}

// Count returns the total number of messages.
func (e Errors) Count() int {
	n := 0
	for _, fe := range e {
		n += len(fe.Messages)
	}
	return n
}

// First returns the first message, or an empty string.
func (e Errors) First() string {
	for _, fe := range e {
		if len(fe.Messages) > 0 {
			return fe.Messages[0]
		}
	}
	return ""
}

// MarshalJSON encodes the errors as {"field": ["message", ...], ...}.
func (e Errors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, fe := range e {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(fe.Field)
		if err != nil {
			return nil, err
		}
		msgs, err := json.Marshal(fe.Messages)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(msgs)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
