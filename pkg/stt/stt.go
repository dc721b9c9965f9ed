// Package stt defines the speech-to-text model service used by the CLI and
// its backends: a local whisper.cpp model and the OpenAI transcription API.
package stt

import (
	"context"
	"errors"
)

// DefaultModel is the model variant the CLI always asks for.
const DefaultModel = "base"

var (
	ErrModelNotFound = errors.New("model not found")
	ErrNoSamples     = errors.New("no audio samples provided")
)

type Segment struct {
	Text     string
	StartSec float64
	EndSec   float64
}

type Result struct {
	Text     string
	Segments []Segment
	Language string // detected or forced
}

// Model is a loaded speech recognition model. One call transcribes one file.
type Model interface {
	Transcribe(ctx context.Context, path string) (Result, error)
	Close() error
}

// Loader loads a model by variant name ("tiny", "base", ...).
type Loader interface {
	Load(ctx context.Context, name string) (Model, error)
}

type LoaderFunc func(ctx context.Context, name string) (Model, error)

func (f LoaderFunc) Load(ctx context.Context, name string) (Model, error) {
	return f(ctx, name)
}

type Options struct {
	Language      string // e.g. "auto", "en", "ru"
	TranslateToEn bool   // if true, translate non-EN -> EN
	Threads       int    // <=0 => NumCPU()
	InitialPrompt string // optional prefix prompt
}

func joinSegments(segs []Segment) string {
	n := 0
	for _, s := range segs {
		n += len(s.Text)
	}
	b := make([]byte, 0, n)
	for _, s := range segs {
		b = append(b, s.Text...)
	}
	return string(b)
}
