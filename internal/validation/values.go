package validation

// Values holds the normalized values of the fields that were present in the
// input and passed validation.
type Values map[string]any

// Has reports whether key was present.
func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// String returns the string value of key.
func (v Values) String(key string) (string, bool) {
	s, ok := v[key].(string)
	return s, ok
}

// NullableString returns the value of key as a pointer, nil for null, and
// whether key was present at all.
func (v Values) NullableString(key string) (*string, bool) {
	raw, present := v[key]
	if !present || raw == nil {
		return nil, present
	}
	s, ok := raw.(string)
	if !ok {
		return nil, present
	}
	return &s, true
}

// Int64 returns the integer value of key.
func (v Values) Int64(key string) (int64, bool) {
	n, ok := v[key].(int64)
	return n, ok
}
