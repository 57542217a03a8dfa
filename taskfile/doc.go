/*
Package taskfile reads cut-and-paste tasks from text files and writes results
back.

A task file looks like this:

	hlelowrold
	2
	1 1 2
	6 6 7

The first line holds the initial text, the second line the number n of
queries, followed by n lines of three whitespace-separated integers i j k.
Each query asks to cut the symbols [i…j] and paste them after position k of
the remaining text.

Results are written verbatim, without a trailing newline.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package taskfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'splayrope'
func tracer() tracing.Trace {
	return tracing.Select("splayrope")
}
