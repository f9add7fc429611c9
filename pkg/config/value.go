package config

import "strings"

// Value is a resolved configuration setting. The raw form is always a
// string; "true" and "false" are read as booleans.
type Value struct {
	raw    string
	source string
}

// NewValue returns a value as if it had been read from source
func NewValue(raw, source string) Value {
	return Value{raw: raw, source: source}
}

// String returns the raw value
func (v Value) String() string {
	return v.raw
}

// Source names the layer the value came from ("default" for fallbacks)
func (v Value) Source() string {
	return v.source
}

// IsSet reports whether the value is non-empty
func (v Value) IsSet() bool {
	return v.raw != ""
}

// IsBool reports whether the value is the literal "true" or "false"
func (v Value) IsBool() bool {
	return v.raw == "true" || v.raw == "false"
}

// Bool reads the value as a boolean. "false" and the empty string are
// false; any other non-empty value is true.
func (v Value) Bool() bool {
	return v.raw != "" && v.raw != "false"
}

// Coerce returns a bool for "true"/"false" and the raw string otherwise
func (v Value) Coerce() interface{} {
	if v.IsBool() {
		return v.raw == "true"
	}
	return v.raw
}

// List splits the value on commas and spaces, dropping empty items.
// An unset value yields an empty list.
func (v Value) List() []string {
	return SplitList(v.raw)
}

// SplitList splits a comma and/or space separated list
func SplitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
}
