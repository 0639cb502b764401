package builder

import (
	"github.com/joeydtaylor/foghorn/pkg/internal/dictionary"
	"github.com/joeydtaylor/foghorn/pkg/internal/types"
)

type Dictionary = types.Dictionary

// Configuration-record error sentinels, matchable with errors.Is.
var (
	ErrMissingKey   = dictionary.ErrMissingKey
	ErrTypeMismatch = dictionary.ErrTypeMismatch
)

// NewDictionary constructs an empty configuration record.
func NewDictionary() *dictionary.Dictionary {
	return dictionary.New()
}

// DictionaryFromMap constructs a record from a plain map.
func DictionaryFromMap(m map[string]interface{}) *dictionary.Dictionary {
	return dictionary.FromMap(m)
}

// DictionaryFromTOML loads a record from a TOML file.
func DictionaryFromTOML(path string) (*dictionary.Dictionary, error) {
	return dictionary.FromTOML(path)
}

// DictionaryFromTOMLString loads a record from TOML source text.
func DictionaryFromTOMLString(src string) (*dictionary.Dictionary, error) {
	return dictionary.FromTOMLString(src)
}
