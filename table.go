package bmsconv

import (
	"fmt"
	"slices"
	"strings"
)

// Table is a set of conversion rules addressable by signal name
//
// A Table is immutable once built and safe for concurrent use
type Table struct {
	rules map[SignalName]Rule
}

// DefaultTable returns a table holding only the built-in rules
func DefaultTable() *Table {
	t := &Table{rules: make(map[SignalName]Rule, len(builtinRules))}
	for name, r := range builtinRules {
		t.rules[name] = r
	}
	return t
}

// NewTable builds a table of the built-in rules plus the supplied rules
//
// a supplied rule with the same name as a built-in (or an earlier supplied rule) replaces it
func NewTable(rules ...Rule) (*Table, error) {
	t := DefaultTable()
	for i, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		t.rules[r.Name] = r
	}
	return t, nil
}

// Rule retrieves the rule for a signal
func (t *Table) Rule(name SignalName) (result Rule, ok bool) {
	result, ok = t.rules[name]
	return result, ok
}

// Rules returns all rules sorted by signal name
func (t *Table) Rules() []Rule {
	result := make([]Rule, 0, len(t.rules))
	for _, r := range t.rules {
		result = append(result, r)
	}
	slices.SortFunc(result, func(a, b Rule) int {
		return strings.Compare(string(a.Name), string(b.Name))
	})
	return result
}

// Len returns the number of rules in the table
func (t *Table) Len() int {
	return len(t.rules)
}

// Encode converts an engineering value to the raw value for the named signal
//
// the input must fit the signal's raw width (as it would for the typed per-signal functions),
// the result wraps silently just like Rule.Encode
func (t *Table) Encode(name SignalName, value uint64) (uint64, error) {
	r, err := t.lookup(name)
	if err != nil {
		return 0, err
	}
	if !r.Fits(value) {
		return 0, fmt.Errorf("%w: %s value %d (max %d)", ErrValueTooWide, name, value, r.Width.Max())
	}
	return r.Encode(value), nil
}

// Decode converts a raw value for the named signal to its engineering value
func (t *Table) Decode(name SignalName, raw uint64) (float64, error) {
	r, err := t.lookup(name)
	if err != nil {
		return 0, err
	}
	if !r.Fits(raw) {
		return 0, fmt.Errorf("%w: %s raw %d (max %d)", ErrValueTooWide, name, raw, r.Width.Max())
	}
	return r.Decode(raw), nil
}

func (t *Table) lookup(name SignalName) (Rule, error) {
	if r, ok := t.rules[name]; ok {
		return r, nil
	}
	return Rule{}, fmt.Errorf("%w: %q", ErrUnknownSignal, name)
}
