package taskfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/npillmayer/splayrope"
)

// maxLineLength limits the length of a single line of a task file, most
// notably the line holding the text.
const maxLineLength = 64 << 20

// Task is the content of a task file.
type Task struct {
	Text    string            // initial text
	Queries []splayrope.Query // cut-and-paste queries, in order
}

// ErrSyntax is wrapped by all errors reporting a malformed task file.
var ErrSyntax = errors.New("taskfile: syntax error")

// Load reads a task file.
func Load(name string) (*Task, error) {
	f, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	defer f.Close()
	task, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	tracer().Infof("loaded task file %s: %d bytes of text, %d queries",
		name, len(task.Text), len(task.Queries))
	return task, nil
}

// Parse reads a task from r. Leading and trailing white space of the text line
// is dropped.
func Parse(r io.Reader) (*Task, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	lineno := 0
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineno++
		return scanner.Text(), true
	}
	text, ok := next()
	if !ok {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: missing text line", ErrSyntax)
	}
	task := &Task{Text: strings.TrimSpace(text)}
	line, ok := next()
	if !ok {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: line 2: missing number of queries", ErrSyntax)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: line %d: invalid number of queries %q", ErrSyntax, lineno, line)
	}
	task.Queries = make([]splayrope.Query, 0, n)
	for len(task.Queries) < n {
		line, ok := next()
		if !ok {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: expected %d queries, found %d", ErrSyntax, n, len(task.Queries))
		}
		q, err := parseQuery(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineno, err)
		}
		task.Queries = append(task.Queries, q)
	}
	return task, nil
}

func parseQuery(line string) (splayrope.Query, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return splayrope.Query{}, fmt.Errorf("query needs 3 integers, have %q", line)
	}
	var ijk [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return splayrope.Query{}, fmt.Errorf("not an integer: %q", f)
		}
		ijk[i] = v
	}
	return splayrope.Query{I: ijk[0], J: ijk[1], K: ijk[2]}, nil
}

// WriteResult copies text to a file, verbatim. Missing directories are
// created.
func WriteResult(name string, text io.Reader) error {
	if dir := filepath.Dir(name); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	n, err := io.Copy(f, text)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	tracer().Infof("wrote %d bytes to %s", n, name)
	return nil
}
