package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Mapping field names of the flat export representation.
const (
	fieldID     = "id"
	fieldParent = "parent"
	fieldIndex  = "index"
	fieldData   = "data"
)

// Export flattens a tree into a language-agnostic mapping from node id to
// node record. Records are plain nested maps, holding the node's id, its
// parent (nil for children of the root), its sibling position and a shallow
// copy of its data, suitable for direct JSON encoding. The root is implicit
// and not part of the mapping.
//
// From a mapping produced by Export, FromMapping reconstructs an identical
// tree in any conformant implementation.
func (t *Tree) Export() map[string]map[string]any {
	out := make(map[string]map[string]any, len(t.store))
	for id, n := range t.store {
		var parent any // nil means child of root
		if !n.parent.IsRoot() {
			parent = n.parent.Name()
		}
		data := make(map[string]any, len(n.data))
		for k, v := range n.data {
			data[k] = v
		}
		out[id.Name()] = map[string]any{
			fieldID:     id.Name(),
			fieldParent: parent,
			fieldIndex:  n.index,
			fieldData:   data,
		}
	}
	return out
}

// FromMapping reconstructs a tree from a flat mapping as produced by Export.
//
// The node store is rebuilt record by record and the child index is derived
// by grouping the records by their parent field; the creation checks of
// Insert (duplicate ids, parent existence) are deliberately not re-run.
// FromMapping trusts its input to originate from a conformant Export: fed
// inconsistent data it will happily build an inconsistent tree. Callers
// sitting at a trust boundary should run Check on the result.
//
// A record whose data field is present but not a map is rejected with
// ErrInvalidData.
func FromMapping(m map[string]map[string]any) (*Tree, error) {
	t := NewTree()
	for key, rec := range m {
		id := MkID(key)
		if name, ok := rec[fieldID].(string); ok {
			id = MkID(name)
		}
		parent := Root
		if p, ok := rec[fieldParent].(string); ok {
			parent = MkID(p)
		}
		index, err := asInt(rec[fieldIndex])
		if err != nil {
			return nil, fmt.Errorf("%w: node %s", err, id)
		}
		data := make(map[string]any)
		if d, ok := rec[fieldData]; ok && d != nil {
			dm, ok := d.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: node %s", ErrInvalidData, id)
			}
			for k, v := range dm {
				data[k] = v
			}
		}
		t.store[id] = &node{id: id, parent: parent, index: index, data: data}
		t.childSet(parent)[id] = struct{}{}
	}
	return t, nil
}

// asInt accepts the integer representations a mapping may carry after having
// passed through a codec: Go ints and JSON-style float64.
func asInt(v any) (int, error) {
	switch i := v.(type) {
	case int:
		return i, nil
	case int64:
		return int(i), nil
	case float64:
		return int(i), nil
	case nil:
		return 0, fmt.Errorf("%w: missing index", ErrInvalidData)
	}
	return 0, fmt.Errorf("%w: index is not an integer", ErrInvalidData)
}
