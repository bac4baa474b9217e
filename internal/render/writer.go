package render

import "strings"

// SQLWriter is an append-only sink for SQL fragments. *strings.Builder, *bytes.Buffer
// and *bufio.Writer all satisfy it, so output can stream straight to its destination.
type SQLWriter interface {
	WriteString(s string) (int, error)
}

// errWriter remembers the first write failure and drops every write after it.
// Hooks may therefore ignore WriteString results.
type errWriter struct {
	w   SQLWriter
	err error
}

func (e *errWriter) WriteString(s string) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.WriteString(s)
	if err != nil {
		e.err = err
	}
	return n, err
}

// Run executes fn against w and returns the first error raised either by fn
// or by the underlying writer. Text already written is not rolled back.
func Run(w SQLWriter, fn func(SQLWriter) error) error {
	ew := &errWriter{w: w}
	if err := fn(ew); err != nil {
		return err
	}
	return ew.err
}

// String executes fn against an in-memory buffer. Nothing is returned on failure.
func String(fn func(SQLWriter) error) (string, error) {
	var sql strings.Builder
	if err := fn(&sql); err != nil {
		return "", err
	}
	return sql.String(), nil
}
