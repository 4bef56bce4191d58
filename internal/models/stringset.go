package models

import (
	"encoding/json"
	"strings"
)

// StringSet is an insertion-ordered set of strings. The zero value is an empty set.
type StringSet struct {
	values []string
}

// NewStringSet builds a set from values, dropping blanks and duplicates.
func NewStringSet(values ...string) StringSet {
	var s StringSet
	for _, v := range values {
		s = s.With(v)
	}
	return s
}

// ParseStringSet splits a comma-joined list, trimming whitespace around each item.
func ParseStringSet(csv string) StringSet {
	if strings.TrimSpace(csv) == "" {
		return StringSet{}
	}
	return NewStringSet(strings.Split(csv, ",")...)
}

// Has reports whether v is a member of the set.
func (s StringSet) Has(v string) bool {
	for _, existing := range s.values {
		if existing == v {
			return true
		}
	}
	return false
}

// Len returns the number of members.
func (s StringSet) Len() int {
	return len(s.values)
}

// IsEmpty reports whether the set has no members.
func (s StringSet) IsEmpty() bool {
	return len(s.values) == 0
}

// Values returns a copy of the members in insertion order.
func (s StringSet) Values() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

// With returns a set that also contains v.
func (s StringSet) With(v string) StringSet {
	v = strings.TrimSpace(v)
	if v == "" || s.Has(v) {
		return s
	}
	values := make([]string, len(s.values), len(s.values)+1)
	copy(values, s.values)
	return StringSet{values: append(values, v)}
}

// Without returns a set that no longer contains v.
func (s StringSet) Without(v string) StringSet {
	values := make([]string, 0, len(s.values))
	for _, existing := range s.values {
		if existing != v {
			values = append(values, existing)
		}
	}
	return StringSet{values: values}
}

// Toggle adds v when absent and removes it when present.
func (s StringSet) Toggle(v string) StringSet {
	if s.Has(v) {
		return s.Without(v)
	}
	return s.With(v)
}

// Equal reports whether both sets hold the same members, ignoring order.
func (s StringSet) Equal(other StringSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, v := range s.values {
		if !other.Has(v) {
			return false
		}
	}
	return true
}

// String returns the comma-joined form used on the catalog wire.
func (s StringSet) String() string {
	return strings.Join(s.values, ",")
}

func (s StringSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

func (s *StringSet) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = NewStringSet(values...)
	return nil
}
