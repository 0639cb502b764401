package types

// Dictionary is a named-field configuration record with semantic-typed
// accessors, used both to construct reporters declaratively and as the
// field-set variant of a report's extra context.
type Dictionary interface {
	// Lookup returns the raw value for key; ok is false when absent.
	Lookup(key string) (interface{}, bool)
	// String returns the value for key as a string. It fails with a
	// missing-key error when absent and a type-mismatch error when the value
	// is not a string.
	String(key string) (string, error)
	// Int returns the value for key as an int, with the same failure
	// contract as String.
	Int(key string) (int, error)
	// StringOr returns the value for key, or def when absent.
	StringOr(key, def string) string
	// IntOr returns the value for key, or def when absent.
	IntOr(key string, def int) int
	// Keys returns the keys in insertion order.
	Keys() []string
	// Set stores a value under key, preserving first-insertion order.
	Set(key string, value interface{})
}
