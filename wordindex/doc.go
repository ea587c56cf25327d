/*
Package wordindex builds word concordances on top of ordered tree maps.

An Index maps every word of a text to the number of its occurrences and to
the byte spans where it occurs. Words are found with the Unicode word
boundary rules of UAX #29. As the index is an ordered map, clients may
iterate over the words alphabetically, or ask for all words in a range or
with a common prefix.

Text may be added from strings, from HTML fragments (indexing their inner
text), or from text files. Files are read by a background goroutine which
broadcasts line fragments to the indexer, see Load.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package wordindex

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with the global core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
