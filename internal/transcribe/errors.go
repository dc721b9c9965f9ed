package transcribe

import (
	"errors"
	"fmt"
)

const (
	ExitSuccess = 0
	ExitFailure = 1 // missing argument, missing file or failed transcription
)

var (
	ErrNoAudio      = errors.New("No audio file provided")
	ErrFileNotFound = errors.New("File not found")
)

func fileNotFound(path string) error {
	return fmt.Errorf("%w: %s", ErrFileNotFound, path)
}

// TranscriptionError wraps any failure raised while loading the model or
// transcribing. Its message is the cause's message, unchanged.
type TranscriptionError struct {
	Err error
}

func (e *TranscriptionError) Error() string { return e.Err.Error() }

func (e *TranscriptionError) Unwrap() error { return e.Err }
