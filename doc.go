/*
Package treemap offers ordered maps backed by self-balancing binary search trees.

# Tree Maps

A tree map stores key/value pairs in a binary search tree, ordered by key. This
gives ordered-map semantics on top of plain map semantics: besides get, set and
delete, clients may ask for the minimum or maximum key, for the smallest key
greater or equal to a given one, or iterate over a range of keys in ascending
order.

Binary search trees degenerate if keys arrive in (nearly) sorted order. Package
treemap therefore lets clients choose a balancing strategy at construction time:

	Strategy      |  Search      |  Insert      |  Delete
	--------------+--------------+--------------+-------------
	AVL           |  O(log n)    |  O(log n)    |  O(log n)
	RedBlack      |  O(log n)    |  O(log n)    |  O(log n)
	Splay         |  O(log n)*   |  O(log n)*   |  O(log n)*
	Unbalanced    |  O(n)        |  O(n)        |  O(n)

	(* amortized)

All strategies share one tree implementation. A strategy contributes three hooks,
called after an insertion, after a deletion, and after a read access. Each of
them may restructure the tree using the shared rotation primitives.

Splay trees move every accessed node to the root, even for reads. Clients should
therefore not consider a read on a splay tree as free of structural side effects.

# Positions

Clients may hold a Position, an opaque reference to an entry of a map. Positions
are validated against the map they are presented to. They stay valid across
rotations, but become invalid as soon as their entry is removed from the map.

# Concurrency

Maps are not safe for concurrent use. Clients have to serialize access to a map
themselves.

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
package treemap

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the treemap module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrKeyNotFound is flagged whenever a key is looked up or deleted which is not
// present in the map.
const ErrKeyNotFound = TreeError("key not found")

// ErrInvalidPosition is flagged whenever a position does not belong to the map
// it is presented to, or refers to an entry which has already been removed.
const ErrInvalidPosition = TreeError("invalid position")

// ErrInvariantViolation signals a broken structural invariant of a tree. It should
// never occur outside of tests; see Map.Check.
const ErrInvariantViolation = TreeError("tree invariant violated")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
