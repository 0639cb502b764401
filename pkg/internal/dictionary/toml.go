package dictionary

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

// FromTOML loads a dictionary from a TOML file. Nested tables become nested
// dictionaries.
func FromTOML(path string) (*Dictionary, error) {
	var raw map[string]interface{}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return fromRaw(raw), nil
}

// FromTOMLString loads a dictionary from TOML source text.
func FromTOMLString(src string) (*Dictionary, error) {
	var raw map[string]interface{}
	if _, err := toml.Decode(src, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode toml: %w", err)
	}
	return fromRaw(raw), nil
}

// fromRaw converts the decoded map recursively, sorting keys so repeated
// loads of the same file render identically.
func fromRaw(raw map[string]interface{}) *Dictionary {
	d := New()
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch v := raw[k].(type) {
		case map[string]interface{}:
			d.Set(k, fromRaw(v))
		default:
			d.Set(k, v)
		}
	}
	return d
}
