package transcribe

import (
	"bytes"
	"encoding/json"
	"io"
)

// Result is the single outcome of an invocation: either a transcript or an
// error message, never both.
type Result struct {
	Text  string
	Error string
	ok    bool
	err   error
}

func Success(text string) Result { return Result{Text: text, ok: true} }

func Failure(err error) Result { return Result{Error: err.Error(), err: err} }

func (r Result) OK() bool { return r.ok }

// Err is the error behind a failure, nil on success.
func (r Result) Err() error { return r.err }

func (r Result) ExitCode() int {
	if r.ok {
		return ExitSuccess
	}
	return ExitFailure
}

// Write emits the result as one JSON object on one line, e.g.
// {"text": "hello"} or {"error": "File not found: a.wav"}.
func (r Result) Write(w io.Writer) error {
	key, val := "error", r.Error
	if r.ok {
		key, val = "text", r.Text
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(val); err != nil {
		return err
	}

	line := make([]byte, 0, buf.Len()+len(key)+8)
	line = append(line, `{"`...)
	line = append(line, key...)
	line = append(line, `": `...)
	line = append(line, bytes.TrimRight(buf.Bytes(), "\n")...)
	line = append(line, "}\n"...)

	_, err := w.Write(line)
	return err
}
