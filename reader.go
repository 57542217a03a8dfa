package splayrope

import (
	"io"
	"strings"
)

// readerBatch is the number of symbols a reader fetches from a rope at a time.
const readerBatch = 4096

// Reader returns a reader for the text of a rope, i.e. the bytes of its
// symbols as written by String. Reading will re-shape the tree, but not change
// the sequence. Clients must not modify the rope while reading.
func (r *Rope[S]) Reader() io.Reader {
	return &ropeReader[S]{rope: r}
}

type ropeReader[S any] struct {
	rope   *Rope[S]
	cursor int    // next symbol to fetch
	buf    []byte // bytes fetched but not yet read
}

func (rr *ropeReader[S]) Read(p []byte) (n int, err error) {
	if len(rr.buf) == 0 {
		l := min(readerBatch, rr.rope.Len()-rr.cursor)
		if l <= 0 {
			return 0, io.EOF
		}
		syms, err := rr.rope.Report(rr.cursor, l)
		if err != nil {
			return 0, err
		}
		rr.cursor += l
		var sb strings.Builder
		for _, sym := range syms {
			writeSymbol(&sb, sym)
		}
		rr.buf = []byte(sb.String())
	}
	n = copy(p, rr.buf)
	rr.buf = rr.buf[n:]
	return n, nil
}
