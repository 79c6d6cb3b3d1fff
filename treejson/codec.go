package treejson

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/npillmayer/arbor"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Encode serializes a tree into its JSON wire format.
//
// Output is deterministic: records appear sorted by node id, and field order
// within records is fixed, so encoding the same tree twice yields identical
// bytes.
func Encode(t *arbor.Tree) ([]byte, error) {
	mapping := t.Export()
	out := []byte("{}")
	for _, id := range slices.Sorted(maps.Keys(mapping)) {
		raw, err := json.Marshal(mapping[id])
		if err != nil {
			return nil, fmt.Errorf("treejson: cannot marshal record %s: %w", id, err)
		}
		out, err = sjson.SetRawBytes(out, escapePath(id), raw)
		if err != nil {
			return nil, fmt.Errorf("treejson: cannot place record %s: %w", id, err)
		}
	}
	return out, nil
}

// Decode reconstructs a tree from its JSON wire format.
//
// Records with a data field which is not a JSON object are rejected with
// arbor.ErrInvalidData. Structural invariants of the result are not
// validated; see the package documentation.
func Decode(b []byte) (*arbor.Tree, error) {
	if !gjson.ValidBytes(b) {
		return nil, ErrInvalidJSON
	}
	doc := gjson.ParseBytes(b)
	if !doc.IsObject() {
		return nil, ErrNoMapping
	}
	mapping := make(map[string]map[string]any)
	var badRecord error
	doc.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			badRecord = fmt.Errorf("%w: record %q is not an object", ErrNoMapping, key.String())
			return false
		}
		rec := make(map[string]any, 4)
		for _, field := range [...]string{"id", "parent", "index", "data"} {
			if v := value.Get(field); v.Exists() {
				rec[field] = v.Value()
			}
		}
		mapping[key.String()] = rec
		return true
	})
	if badRecord != nil {
		return nil, badRecord
	}
	T().Debugf("treejson: decoded mapping with %d records", len(mapping))
	return arbor.FromMapping(mapping)
}

// escapePath protects characters which gjson/sjson paths treat specially, so
// that arbitrary node ids can serve as top-level object keys.
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '\\', '|', '#', '@':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
