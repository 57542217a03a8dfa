package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/guiguan/caster"
	"github.com/npillmayer/splayrope"
)

// Policy tells a session what to do with a failing query.
type Policy int8

const (
	Abort Policy = iota // stop at the first failing query
	Skip                // leave the rope as it is and continue with the next query
)

func (p Policy) String() string {
	switch p {
	case Abort:
		return "abort"
	case Skip:
		return "skip"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy returns the policy for a name, either "abort" or "skip".
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(name) {
	case "abort", "":
		return Abort, nil
	case "skip":
		return Skip, nil
	}
	return Abort, fmt.Errorf("unknown error policy %q", name)
}

// Config configures a session.
type Config struct {
	Policy Policy
}

// Event reports the outcome of a single query.
type Event struct {
	Pos     int             // position of the query in the list
	Query   splayrope.Query // the query
	Elapsed time.Duration   // time spent applying the query
	Err     error           // nil on success
}

func (ev Event) String() string {
	if ev.Err != nil {
		return ev.Err.Error()
	}
	return fmt.Sprintf("query #%d %s: ok (%s)", ev.Pos, ev.Query, ev.Elapsed)
}

// Session applies queries to a rope.
type Session[S any] struct {
	rope    *splayrope.Rope[S]
	config  Config
	cast    *caster.Caster // publishes an Event for every query
	applied int
	failed  int
}

// New creates a session for a rope. Clients should call Close when done,
// which will close all event channels.
func New[S any](rope *splayrope.Rope[S], config Config) *Session[S] {
	if rope == nil {
		rope = &splayrope.Rope[S]{}
	}
	return &Session[S]{
		rope:   rope,
		config: config,
		cast:   caster.New(nil),
	}
}

// Rope returns the rope of the session.
func (s *Session[S]) Rope() *splayrope.Rope[S] {
	return s.rope
}

// Applied returns the number of queries applied successfully so far.
func (s *Session[S]) Applied() int {
	return s.applied
}

// Failed returns the number of failed queries so far.
func (s *Session[S]) Failed() int {
	return s.failed
}

// Events subscribes to the events of the session. Once ctx is done, no more
// events are delivered, and the returned channel is closed as soon as the
// subscription is dropped, at the latest when the session is closed. Events are
// published synchronously: a subscriber not reading its channel will
// eventually block Run, as soon as capacity is exhausted.
func (s *Session[S]) Events(ctx context.Context, capacity uint) <-chan Event {
	out := make(chan Event)
	sub, ok := s.cast.Sub(ctx, capacity)
	if !ok {
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for {
			select {
			case msg, ok := <-sub:
				if !ok {
					return
				}
				ev, ok := msg.(Event)
				if !ok {
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					drain(sub)
					return
				}
			case <-ctx.Done():
				drain(sub)
				return
			}
		}
	}()
	return out
}

// drain discards messages until sub is closed, so publishing never blocks on
// a cancelled subscriber.
func drain(sub <-chan interface{}) {
	for range sub {
	}
}

// Run applies queries in order. With policy Abort, Run stops at the first
// failing query and returns a *splayrope.QueryError for it. With policy Skip,
// failing queries leave the rope untouched and Run continues; all errors are
// returned joined together.
//
// Run checks ctx between queries and returns ctx.Err() if it is done.
func (s *Session[S]) Run(ctx context.Context, queries []splayrope.Query) error {
	tracer().Infof("session: applying %d queries to rope of length %d, policy=%s",
		len(queries), s.rope.Len(), s.config.Policy)
	var errs []error
	for pos, q := range queries {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		err := s.rope.CutAndPaste(q.I, q.J, q.K)
		ev := Event{Pos: pos, Query: q, Elapsed: time.Since(start)}
		if err != nil {
			s.failed++
			ev.Err = &splayrope.QueryError{Pos: pos, Query: q, Err: err}
			s.cast.Pub(ev)
			if s.config.Policy == Abort {
				tracer().Errorf("session: %v", ev.Err)
				return ev.Err
			}
			tracer().Infof("session: skipping %v", ev.Err)
			errs = append(errs, ev.Err)
			continue
		}
		s.applied++
		s.cast.Pub(ev)
	}
	tracer().Infof("session: %d queries applied, %d failed", s.applied, s.failed)
	return errors.Join(errs...)
}

// Close closes the session's event channels.
func (s *Session[S]) Close() {
	s.cast.Close()
}
