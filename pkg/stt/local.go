package stt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ModelDownloadURL is where the ggml whisper weights are published.
const ModelDownloadURL = "https://huggingface.co/ggerganov/whisper.cpp/tree/main"

// LocalLoader loads ggml whisper models from a directory on disk.
type LocalLoader struct {
	ModelsDir string
	Options   Options
}

func NewLocalLoader(modelsDir string, opt Options) *LocalLoader {
	return &LocalLoader{ModelsDir: modelsDir, Options: opt}
}

// DefaultModelsDir is <user cache dir>/whisper, the same place the Python
// whisper package caches its checkpoints.
func DefaultModelsDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "whisper"), nil
}

// ModelPath maps a variant name to its ggml file, e.g. base -> ggml-base.bin.
func (l *LocalLoader) ModelPath(name string) string {
	return filepath.Join(l.ModelsDir, "ggml-"+name+".bin")
}

func (l *LocalLoader) Load(ctx context.Context, name string) (Model, error) {
	if name == "" {
		return nil, errors.New("empty model name")
	}
	path := l.ModelPath(name)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %q at %s (download %s from %s)",
			ErrModelNotFound, name, path, filepath.Base(path), ModelDownloadURL)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return openWhisper(path, l.Options)
}
