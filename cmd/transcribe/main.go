package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	cli "github.com/spf13/pflag"

	"github.com/lmittmann/tint"
	log "log/slog"

	"voxscribe/internal/config"
	"voxscribe/internal/stdio"
	"voxscribe/internal/transcribe"
	"voxscribe/pkg/stt"
)

var logLevelMap = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

func main() {
	os.Exit(run(os.Args[1:]))
}

type options struct {
	envFile   *string
	logLevel  *string
	backend   *string
	modelsDir *string
}

func newFlagSet() (*cli.FlagSet, options) {
	flags := cli.NewFlagSet("transcribe", cli.ContinueOnError)
	flags.SetOutput(os.Stderr)
	flags.SetInterspersed(false)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: transcribe [--flag value ...] [--] <audio_file_path>")
		fmt.Fprintln(os.Stderr, "Flags must come before the path; use -- when the path starts with a dash.")
		flags.PrintDefaults()
		fmt.Fprintf(os.Stderr, "The local backend reads ggml-<model>.bin, see %s\n", stt.ModelDownloadURL)
	}

	opts := options{
		envFile:   flags.String("env", ".env", "Env file path"),
		logLevel:  flags.String("log", "", "Log level (debug|info|warn|error)"),
		backend:   flags.String("backend", "", "Model backend (local|openai)"),
		modelsDir: flags.String("models", "", "Directory holding ggml-<model>.bin files"),
	}
	return flags, opts
}

func run(argv []string) int {
	flags, opts := newFlagSet()

	flagArgs, paths := splitArgs(flags, argv)
	if err := flags.Parse(flagArgs); err != nil {
		return emit(err)
	}

	cfg, cfgErr := loadConfig(*opts.envFile)
	if *opts.logLevel != "" {
		cfg.LogLevel = strings.ToLower(*opts.logLevel)
	}
	if *opts.backend != "" {
		cfg.Backend = strings.ToLower(*opts.backend)
	}
	if *opts.modelsDir != "" {
		cfg.ModelsDir = *opts.modelsDir
	}
	if cfgErr == nil {
		cfgErr = cfg.Validate()
	}

	level, ok := logLevelMap[cfg.LogLevel]
	if !ok {
		level = log.LevelWarn
	}

	streams, err := stdio.Isolate(level == log.LevelDebug)
	if err != nil {
		streams = &stdio.Streams{Stdout: os.Stdout, Stderr: os.Stderr}
	}
	defer streams.Restore()

	prev := log.Default()
	defer log.SetDefault(prev)
	log.SetDefault(log.New(tint.NewHandler(streams.Stderr, &tint.Options{
		Level: level,
	})))
	if err != nil {
		log.Warn("Cannot isolate native output", "err", err)
	}

	// configuration problems surface as model load failures, after the
	// argument checks, so usage errors always win
	var loader stt.Loader
	if cfgErr != nil {
		loader = failingLoader(cfgErr)
	} else if loader, err = newLoader(cfg); err != nil {
		loader = failingLoader(err)
	}

	return transcribe.Run(context.Background(), paths, loader, streams.Stdout)
}

// splitArgs separates the leading "--name value" flags from the positional
// arguments. Only double-dash words before the first positional argument are
// flags, so "-clip.wav" or a trailing "--verbose" stay part of the paths.
func splitArgs(flags *cli.FlagSet, argv []string) (flagArgs, paths []string) {
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			return argv[:i], argv[i+1:]
		}
		if !strings.HasPrefix(arg, "--") {
			return argv[:i], argv[i:]
		}
		name := strings.TrimPrefix(arg, "--")
		if strings.Contains(name, "=") {
			continue
		}
		if f := flags.Lookup(name); f != nil && f.NoOptDefVal == "" && i+1 < len(argv) {
			i++ // value
		}
	}
	return argv, nil
}

func loadConfig(envFile string) (config.Config, error) {
	if err := config.LoadEnvFile(envFile); err != nil {
		cfg, _ := config.Load()
		return cfg, err
	}
	return config.Load()
}

func emit(err error) int {
	res := transcribe.Failure(err)
	if werr := res.Write(os.Stdout); werr != nil {
		fmt.Fprintln(os.Stderr, werr)
	}
	return res.ExitCode()
}
