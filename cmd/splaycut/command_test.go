package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splayrope"
)

func writeTask(t *testing.T, content string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(in, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return in, filepath.Join(dir, "out", "output.txt")
}

func readResult(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splayrope")
	defer teardown()
	color.NoColor = true
	//
	in, out := writeTask(t, "hlelowrold\n2\n1 1 2\n6 6 7\n")
	var sb strings.Builder
	opts := &options{input: in, output: out, onError: "abort", measure: true}
	if err := run(context.Background(), opts, &sb); err != nil {
		t.Fatal(err)
	}
	if s := readResult(t, out); s != "helloworld" {
		t.Errorf("expected 'helloworld', have %q", s)
	}
	if !strings.Contains(sb.String(), "2 queries applied, 0 failed") {
		t.Errorf("expected measurement report, have %q", sb.String())
	}
}

func TestRunAbortWritesNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splayrope")
	defer teardown()
	//
	in, out := writeTask(t, "example\n1\n3 2 1\n")
	opts := &options{input: in, output: out, onError: "abort"}
	err := run(context.Background(), opts, &strings.Builder{})
	if !errors.Is(err, splayrope.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, have %v", err)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("no output should have been written")
	}
}

func TestRunSkipWritesResult(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splayrope")
	defer teardown()
	color.NoColor = true
	//
	in, out := writeTask(t, "abcdef\n3\n0 1 1\n5 4 0\n4 5 0\n")
	var sb strings.Builder
	opts := &options{input: in, output: out, onError: "skip"}
	err := run(context.Background(), opts, &sb)
	if !errors.Is(err, splayrope.ErrInvalidRange) {
		t.Errorf("expected skipped query to be reported, have %v", err)
	}
	if s := readResult(t, out); s != "efcabd" {
		t.Errorf("expected 'efcabd', have %q", s)
	}
	if !strings.Contains(sb.String(), "skipped query #1") {
		t.Errorf("expected skipped query to be printed, have %q", sb.String())
	}
}

func TestRunGraphemesAndHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splayrope")
	defer teardown()
	//
	in, out := writeTask(t, "e\u0301ab\n1\n0 0 2\n")
	opts := &options{input: in, output: out, graphemes: true}
	if err := run(context.Background(), opts, &strings.Builder{}); err != nil {
		t.Fatal(err)
	}
	if s := readResult(t, out); s != "abe\u0301" {
		t.Errorf("expected accented e to move as a whole, have %q", s)
	}
	in, out = writeTask(t, "<p>hle<b>low</b>rold</p>\n2\n1 1 2\n6 6 7\n")
	opts = &options{input: in, output: out, html: true}
	if err := run(context.Background(), opts, &strings.Builder{}); err != nil {
		t.Fatal(err)
	}
	if s := readResult(t, out); s != "helloworld" {
		t.Errorf("expected 'helloworld', have %q", s)
	}
}

func TestRunDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splayrope")
	defer teardown()
	//
	in, out := writeTask(t, "rope\n0\n")
	dot := filepath.Join(t.TempDir(), "rope.dot")
	opts := &options{input: in, output: out, dot: dot}
	if err := run(context.Background(), opts, &strings.Builder{}); err != nil {
		t.Fatal(err)
	}
	if s := readResult(t, dot); !strings.HasPrefix(s, "strict digraph") {
		t.Errorf("expected DOT output, have %q", s)
	}
}

func TestRunInvalidPolicy(t *testing.T) {
	if err := run(context.Background(), &options{onError: "retry"}, &strings.Builder{}); err == nil {
		t.Errorf("expected invalid policy to be rejected")
	}
}

func TestFlagConfig(t *testing.T) {
	conf := flagConfig{"tracelevel.splayrope": "Debug", "n": "3", "b": true}
	conf.InitDefaults()
	if conf.GetString("tracing.adapter") != "go" || !conf.IsSet("tracelevel.root") {
		t.Errorf("defaults not set: %v", conf)
	}
	if conf.GetInt("n") != 3 || !conf.GetBool("b") || conf.GetString("missing") != "" {
		t.Errorf("unexpected config values: %v", conf)
	}
	if err := setupTracing("verbose"); err == nil {
		t.Errorf("expected unknown trace level to be rejected")
	}
}
