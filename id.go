package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "github.com/google/uuid"

// NodeID identifies a node within a tree. It is a tagged variant: either the
// distinguished root marker or a user-supplied string id. The zero value
//
//	NodeID{}
//
// denotes the root, making uninitialized ids safe to use as a tree anchor.
//
// NodeID is comparable and may be used as a map key.
type NodeID struct {
	name string
	user bool
}

// Root is the identifier of the implicit root present in every tree.
var Root = NodeID{}

// MkID wraps a user-supplied string as a node identifier. User ids live in a
// namespace separate from the root marker, so any string is permitted,
// including the empty one.
func MkID(name string) NodeID {
	return NodeID{name: name, user: true}
}

// FreshID returns a new unique user identifier, for callers which do not care
// about the spelling of their node ids.
func FreshID() NodeID {
	return MkID(uuid.NewString())
}

// IsRoot reports whether id denotes the tree root.
func (id NodeID) IsRoot() bool {
	return !id.user
}

// Name returns the user-supplied string of a non-root id, or the empty string
// for the root.
func (id NodeID) Name() string {
	return id.name
}

func (id NodeID) String() string {
	if id.IsRoot() {
		return "#root"
	}
	return id.name
}
