package main

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splayrope"
	"github.com/npillmayer/splayrope/html"
	"github.com/npillmayer/splayrope/session"
	"github.com/npillmayer/splayrope/symbols"
	"github.com/npillmayer/splayrope/taskfile"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// options holds the settings of a single run.
type options struct {
	input      string
	output     string
	graphemes  bool
	html       bool
	onError    string
	measure    bool
	dot        string
	traceLevel string
	noColor    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "splaycut",
		Short: "Apply cut-and-paste queries to a text",
		Long: `splaycut reads a text and a list of cut-and-paste queries from an input file,
applies the queries in order and writes the resulting text to an output file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
				color.NoColor = true
			}
			return setupTracing(opts.traceLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd.Context(), opts, cmd.OutOrStdout())
			if err != nil {
				report(cmd.ErrOrStderr(), err)
			}
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "txt/input.txt", "task file to read")
	flags.StringVarP(&opts.output, "output", "o", "txt/output.txt", "file to write the resulting text to")
	flags.BoolVar(&opts.graphemes, "graphemes", false, "operate on grapheme clusters instead of code points")
	flags.BoolVar(&opts.html, "html", false, "treat the text as HTML and operate on its inner text")
	flags.StringVar(&opts.onError, "on-error", "abort", "what to do with failing queries: abort|skip")
	flags.BoolVar(&opts.measure, "measure", false, "report time and memory used for applying the queries")
	flags.StringVar(&opts.dot, "dot", "", "write the final splay tree in Graphviz DOT format to this file")
	flags.StringVar(&opts.traceLevel, "trace-level", "Error", "trace level: Error|Info|Debug")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable coloured output")
	return cmd
}

// run loads the task, applies its queries and writes the result.
func run(ctx context.Context, opts *options, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	policy, err := session.ParsePolicy(opts.onError)
	if err != nil {
		return err
	}
	task, err := taskfile.Load(opts.input)
	if err != nil {
		return err
	}
	text := task.Text
	if opts.html {
		if text, err = html.ExtractText(strings.NewReader(text)); err != nil {
			return err
		}
	}
	mode := symbols.RuneMode
	if opts.graphemes {
		mode = symbols.GraphemeMode
	}
	tracer().Infof("splaycut: %d queries on %s", len(task.Queries), mode)
	var result io.Reader
	switch mode {
	case symbols.GraphemeMode:
		result, err = apply(ctx, splayrope.Build(symbols.Graphemes(text)), task.Queries, policy, opts, out)
	default:
		result, err = apply(ctx, splayrope.Build(symbols.Runes(text)), task.Queries, policy, opts, out)
	}
	if err != nil && !isSkipped(err, policy) {
		return err
	}
	if werr := taskfile.WriteResult(opts.output, result); werr != nil {
		return werr
	}
	return err
}

// apply runs a session for a rope and returns a reader for the final text.
func apply[S any](ctx context.Context, rope *splayrope.Rope[S], queries []splayrope.Query,
	policy session.Policy, opts *options, out io.Writer) (io.Reader, error) {
	//
	sess := session.New(rope, session.Config{Policy: policy})
	var skipped chan struct{}
	if policy == session.Skip {
		skipped = make(chan struct{})
		events := sess.Events(ctx, 16)
		go func() {
			defer close(skipped)
			warn := color.New(color.FgYellow)
			for ev := range events {
				if ev.Err != nil {
					warn.Fprintf(out, "skipped %v\n", ev.Err)
				}
			}
		}()
	}
	stats, err := session.Measure(func() error {
		return sess.Run(ctx, queries)
	})
	sess.Close()
	if skipped != nil {
		<-skipped
	}
	if opts.measure {
		color.New(color.FgCyan).Fprintf(out, "%d queries applied, %d failed: %s\n",
			sess.Applied(), sess.Failed(), stats)
	}
	if opts.dot != "" {
		if derr := writeDot(opts.dot, sess.Rope()); derr != nil {
			return nil, derr
		}
	}
	return sess.Rope().Reader(), err
}

// isSkipped is true if err only reports queries skipped by policy Skip.
// The result of such a run is still written.
func isSkipped(err error, policy session.Policy) bool {
	var qerr *splayrope.QueryError
	return policy == session.Skip && errors.As(err, &qerr)
}

func writeDot[S any](name string, rope *splayrope.Rope[S]) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = splayrope.Rope2Dot(rope, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// tracer writes to trace with key 'splayrope'
func tracer() tracing.Trace {
	return tracing.Select("splayrope")
}

// report prints an error in red. Query errors are listed one per line.
func report(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			red.Fprintf(w, "error: %v\n", e)
		}
		return
	}
	red.Fprintf(w, "error: %v\n", err)
}
