// Package transcribe implements the transcribe command: one audio path in, one JSON
// line out.
package transcribe

import (
	"context"
	"fmt"
	"io"
	log "log/slog"
	"os"

	"voxscribe/pkg/stt"
)

// Run validates args, transcribes args[0] with the model loader and writes
// exactly one JSON line to stdout. It returns the process exit code.
func Run(ctx context.Context, args []string, loader stt.Loader, stdout io.Writer) int {
	res := run(ctx, args, loader)

	if err := res.Write(stdout); err != nil {
		log.Error("Failed to write result", "err", err)
		return ExitFailure
	}
	return res.ExitCode()
}

func run(ctx context.Context, args []string, loader stt.Loader) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Recovered panic", "panic", r)
			res = Failure(&TranscriptionError{Err: fmt.Errorf("%v", r)})
		}
	}()

	if len(args) == 0 {
		return Failure(ErrNoAudio)
	}

	path := args[0]
	if _, err := os.Stat(path); err != nil {
		log.Debug("Stat failed", "path", path, "err", err)
		return Failure(fileNotFound(path))
	}

	text, err := transcribe(ctx, loader, path)
	if err != nil {
		return Failure(&TranscriptionError{Err: err})
	}
	return Success(text)
}

func transcribe(ctx context.Context, loader stt.Loader, path string) (string, error) {
	log.Info("Loading model", "model", stt.DefaultModel)

	model, err := loader.Load(ctx, stt.DefaultModel)
	if err != nil {
		log.Error("Failed to load model", "err", err)
		return "", err
	}
	defer func() {
		if err := model.Close(); err != nil {
			log.Warn("Failed to close model", "err", err)
		}
	}()

	log.Info("Transcribing", "path", path)

	out, err := model.Transcribe(ctx, path)
	if err != nil {
		log.Error("Failed to transcribe", "path", path, "err", err)
		return "", err
	}

	log.Info("Transcribed", "chars", len(out.Text), "segments", len(out.Segments), "language", out.Language)
	return out.Text, nil
}
