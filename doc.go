/*
Package arbor implements a generic, ordered, in-memory tree of identified nodes.

Trees

Every tree managed by this package has an implicit root. Clients create nodes
underneath the root (or underneath other nodes) by handing the tree a unique
string identifier. Nodes keep an ordered list of children: each child occupies
a zero-based position among its siblings, and positions are always dense, i.e.
the children of any parent are numbered 0…n-1 without gaps or duplicates.

Nodes may carry a payload of free-form map data. The root is special: it is
always present, carries no data, and can be neither moved nor deleted.

The engine supports creation of nodes at an arbitrary position among their
siblings, repositioning of a node within its siblings, reparenting of a node
(together with its whole subtree) under a different parent, including detection
of moves that would make a node its own ancestor, deletion with a choice of
child-handling strategies (refuse, cascade, reattach), deterministic
depth-first and breadth-first traversal, ancestry and depth queries, and
lossless export to (and import from) a flat, language-agnostic mapping, so
that trees produced by one implementation can be consumed by another.

All operations on a Tree are pure, synchronous state transitions without
internal concurrency. Mutations validate their preconditions before touching
any state, thus a failed operation leaves the tree untouched. Serializing
access from multiple goroutines is the caller's business; type Guard provides
a ready-made single-writer/multi-reader wrapper, including change notification
for subscribers.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package arbor

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
