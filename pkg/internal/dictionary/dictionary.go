package dictionary

import (
	"errors"
	"fmt"
	"sync"

	"github.com/joeydtaylor/foghorn/pkg/internal/types"
)

// Construction failures are surfaced immediately with one of these
// sentinels, wrapped with the offending key.
var (
	ErrMissingKey   = errors.New("missing key")
	ErrTypeMismatch = errors.New("type mismatch")
)

// Dictionary is an insertion-ordered named-field record. It backs declarative
// reporter construction and the field-set variant of report context.
type Dictionary struct {
	mu     sync.RWMutex
	order  []string
	values map[string]interface{}
}

// New constructs an empty dictionary.
func New() *Dictionary {
	return &Dictionary{values: make(map[string]interface{})}
}

// FromMap constructs a dictionary from a plain map. Iteration order of the
// map is not stable, so FromMap sorts nothing; callers that care about
// rendering order should use Set directly.
func FromMap(m map[string]interface{}) *Dictionary {
	d := New()
	for k, v := range m {
		d.Set(k, v)
	}
	return d
}

// Set stores a value under key, preserving first-insertion order.
func (d *Dictionary) Set(key string, value interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.values[key]; !ok {
		d.order = append(d.order, key)
	}
	d.values[key] = value
}

// Lookup returns the raw value for key; ok is false when absent.
func (d *Dictionary) Lookup(key string) (interface{}, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (d *Dictionary) Keys() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// String returns the value for key as a string.
func (d *Dictionary) String(key string) (string, error) {
	v, ok := d.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%q: %w", key, ErrMissingKey)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%q: expected string, got %T: %w", key, v, ErrTypeMismatch)
	}
	return s, nil
}

// Int returns the value for key as an int. Integer-valued numeric types are
// accepted; TOML decodes integers as int64.
func (d *Dictionary) Int(key string) (int, error) {
	v, ok := d.Lookup(key)
	if !ok {
		return 0, fmt.Errorf("%q: %w", key, ErrMissingKey)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, fmt.Errorf("%q: expected integer, got %T: %w", key, v, ErrTypeMismatch)
}

// StringOr returns the value for key, or def when the key is absent or not a
// string.
func (d *Dictionary) StringOr(key, def string) string {
	s, err := d.String(key)
	if err != nil {
		return def
	}
	return s
}

// IntOr returns the value for key, or def when the key is absent or not an
// integer.
func (d *Dictionary) IntOr(key string, def int) int {
	n, err := d.Int(key)
	if err != nil {
		return def
	}
	return n
}

var _ types.Dictionary = (*Dictionary)(nil)
