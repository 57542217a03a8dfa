/*
Package symbols splits text into the atomic symbols a rope is built from.

A symbol is either a single rune or a grapheme cluster, i.e. a
“user perceived character” according to Unicode UAX#29. Ropes never look
into symbols, so the decision is made once, before a rope is built.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package symbols

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'splayrope'
func tracer() tracing.Trace {
	return tracing.Select("splayrope")
}
