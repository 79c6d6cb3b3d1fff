package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "errors"

var (
	// ErrNotFound signals that a referenced node id does not exist in the tree.
	ErrNotFound = errors.New("arbor: node not found")
	// ErrDuplicateID signals an attempt to create a node with an id already in use.
	ErrDuplicateID = errors.New("arbor: duplicate node id")
	// ErrInvalidOperation signals an operation which is not permitted on the
	// given node, e.g. moving the root or reparenting a node under one of its
	// own descendants.
	ErrInvalidOperation = errors.New("arbor: operation not permitted")
	// ErrInvalidData signals user data which is not a map.
	ErrInvalidData = errors.New("arbor: node data is not a map")
	// ErrHasChildren signals deletion with strategy DeleteRefuse on a node
	// which has children.
	ErrHasChildren = errors.New("arbor: node has children")
	// ErrInconsistent signals a tree whose structural invariants do not hold.
	// It is only ever returned by the Check validator.
	ErrInconsistent = errors.New("arbor: inconsistent tree structure")
)
