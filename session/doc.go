/*
Package session applies lists of cut-and-paste queries to a rope.

A Session owns a rope for the duration of a run. Queries are applied in
order by the goroutine calling Run; failures are handled according to a
Policy. For every query a session publishes an Event to its subscribers,
which receive them on channels of their own:

	sess := session.New(rope, session.Config{Policy: session.Skip})
	defer sess.Close()
	events := sess.Events(ctx, 16)
	go func() {
	    for ev := range events {
	        fmt.Println(ev)
	    }
	}()
	err := sess.Run(ctx, queries)

Measure wraps a complete run (or anything else) and reports elapsed time and
memory allocated.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package session

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'splayrope'
func tracer() tracing.Trace {
	return tracing.Select("splayrope")
}
