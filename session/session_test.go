package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splayrope"
)

func TestRunAbort(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splayrope")
	defer teardown()
	//
	sess := New(splayrope.FromString("abcdef"), Config{})
	defer sess.Close()
	err := sess.Run(context.Background(), []splayrope.Query{{I: 0, J: 1, K: 1}, {I: 5, J: 4, K: 0}, {I: 4, J: 5, K: 0}})
	var qerr *splayrope.QueryError
	if !errors.As(err, &qerr) || qerr.Pos != 1 {
		t.Fatalf("expected query #1 to fail, have %v", err)
	}
	if !errors.Is(err, splayrope.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, have %v", err)
	}
	if sess.Applied() != 1 || sess.Failed() != 1 {
		t.Errorf("expected 1 applied/1 failed, have %d/%d", sess.Applied(), sess.Failed())
	}
	if s := sess.Rope().String(); s != "cabdef" {
		t.Errorf("expected 'cabdef', have %q", s)
	}
}

func TestRunSkip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splayrope")
	defer teardown()
	//
	sess := New(splayrope.FromString("abcdef"), Config{Policy: Skip})
	defer sess.Close()
	queries := []splayrope.Query{{I: 0, J: 1, K: 1}, {I: 5, J: 4, K: 0}, {I: 0, J: 9, K: 0}, {I: 4, J: 5, K: 0}}
	err := sess.Run(context.Background(), queries)
	if !errors.Is(err, splayrope.ErrInvalidRange) || !errors.Is(err, splayrope.ErrRangeOutOfBounds) {
		t.Errorf("expected both failures to be reported, have %v", err)
	}
	if sess.Applied() != 2 || sess.Failed() != 2 {
		t.Errorf("expected 2 applied/2 failed, have %d/%d", sess.Applied(), sess.Failed())
	}
	if s := sess.Rope().String(); s != "efcabd" {
		t.Errorf("expected 'efcabd', have %q", s)
	}
	if err := sess.Rope().Check(); err != nil {
		t.Error(err)
	}
}

func TestRunEvents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splayrope")
	defer teardown()
	//
	sess := New(splayrope.FromString("hlelowrold"), Config{Policy: Skip})
	queries := []splayrope.Query{{I: 1, J: 1, K: 2}, {I: 3, J: 2, K: 0}, {I: 6, J: 6, K: 7}}
	events := sess.Events(context.Background(), uint(len(queries)))
	done := make(chan []Event)
	go func() {
		var evs []Event
		for ev := range events {
			evs = append(evs, ev)
		}
		done <- evs
	}()
	if err := sess.Run(context.Background(), queries); err == nil {
		t.Errorf("expected query #1 to fail")
	}
	sess.Close()
	evs := <-done
	if len(evs) != len(queries) {
		t.Fatalf("expected %d events, have %d", len(queries), len(evs))
	}
	for i, ev := range evs {
		if ev.Pos != i || ev.Query != queries[i] {
			t.Errorf("event %d reports query #%d %v", i, ev.Pos, ev.Query)
		}
		if (ev.Err != nil) != (i == 1) {
			t.Errorf("event %d: unexpected error state %v", i, ev.Err)
		}
		t.Logf("event: %s", ev)
	}
	if s := sess.Rope().String(); s != "helloworld" {
		t.Errorf("expected 'helloworld', have %q", s)
	}
}

func TestRunCancelled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splayrope")
	defer teardown()
	//
	sess := New(splayrope.FromString("abc"), Config{})
	defer sess.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sess.Run(ctx, []splayrope.Query{{I: 0, J: 0, K: 1}}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, have %v", err)
	}
	if sess.Applied() != 0 || sess.Rope().String() != "abc" {
		t.Errorf("cancelled run should not apply queries")
	}
}

func TestParsePolicy(t *testing.T) {
	for name, want := range map[string]Policy{"": Abort, "abort": Abort, "Skip": Skip} {
		if p, err := ParsePolicy(name); err != nil || p != want {
			t.Errorf("ParsePolicy(%q) = %v, %v", name, p, err)
		}
	}
	if _, err := ParsePolicy("retry"); err == nil {
		t.Errorf("expected unknown policy to fail")
	}
}

func TestMeasure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splayrope")
	defer teardown()
	//
	var sink []int
	st, err := Measure(func() error {
		sink = make([]int, 1<<16)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(sink) == 0 || st.Allocated < 8*(1<<16) {
		t.Errorf("expected at least 512 KiB allocated, have %s", st)
	}
	boom := errors.New("boom")
	if _, err := Measure(func() error { return boom }); err != boom {
		t.Errorf("Measure should pass through the error, have %v", err)
	}
	if formatBytes(1536) != "1.5 KiB" || formatBytes(12) != "12 B" {
		t.Errorf("unexpected byte formatting: %s, %s", formatBytes(1536), formatBytes(12))
	}
}

func TestEventsOfCancelledSubscriber(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splayrope")
	defer teardown()
	//
	sess := New(splayrope.FromString("abcdefgh"), Config{})
	ctx, cancel := context.WithCancel(context.Background())
	events := sess.Events(ctx, 2) // never read
	q := splayrope.Query{I: 0, J: 1, K: 3}
	done := make(chan error)
	go func() {
		err := sess.Run(context.Background(), []splayrope.Query{q, q, q})
		cancel()
		if err == nil {
			err = sess.Run(context.Background(), []splayrope.Query{q, q, q, q, q, q})
		}
		sess.Close()
		done <- err
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run/Close blocked by a cancelled subscriber")
	}
	for range events { // must be closed, possibly after a stale event
	}
	if sess.Applied() != 9 {
		t.Errorf("expected 9 queries applied, have %d", sess.Applied())
	}
}

func TestMeasurePeakHeap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splayrope")
	defer teardown()
	//
	const size = 64 << 20
	st, err := Measure(func() error {
		buf := make([]byte, size)
		for i := range buf {
			buf[i] = byte(i)
		}
		time.Sleep(20 * sampleInterval)
		if buf[size-1] != byte((size-1)&0xff) {
			return errors.New("buffer corrupted")
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if st.PeakHeap < size || st.PeakHeap < st.HeapInUse {
		t.Errorf("expected peak heap of at least 64 MiB, have %s", st)
	}
}
