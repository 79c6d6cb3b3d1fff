/*
Package treejson translates between arbor trees and their JSON wire format.

The wire format is the JSON encoding of the flat mapping produced by
arbor's Export: a JSON object whose keys are node id strings and whose
values are records of the shape

	{"id": string, "parent": string|null, "index": integer, "data": object}

The root is implicit and never serialized. This exact shape is shared with
other implementations of the tree engine, so trees can round-trip between
them byte-compatibly.

Decoding trusts its input the same way arbor.FromMapping does: structural
invariants of the decoded tree are not validated. Run Check on the result
when decoding data of uncertain origin.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package treejson

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
