package dto

import (
	"bytes"
	"encoding/json"
)

// RoleList is an optional sequence of role tags decoded leniently: a missing,
// null or non-array value never fails the request body, it is recorded as not
// Valid so each operation can decide whether to default or reject.
type RoleList struct {
	Values []string
	Valid  bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *RoleList) UnmarshalJSON(data []byte) error {
	r.Valid = false
	r.Values = nil

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil
	}

	r.Values = values
	r.Valid = true
	return nil
}

// NonEmpty reports whether the value was a JSON array with at least one element.
func (r RoleList) NonEmpty() bool {
	return r.Valid && len(r.Values) > 0
}

// Or returns the decoded roles, or fallback when they are absent or unusable.
func (r RoleList) Or(fallback []string) []string {
	if r.NonEmpty() {
		return r.Values
	}
	out := make([]string, len(fallback))
	copy(out, fallback)
	return out
}
