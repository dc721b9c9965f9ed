// Package config reads the optional runtime settings of the transcriber from
// the environment, after an optional .env file has been applied.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendLocal  = "local"
	BackendOpenAI = "openai"
)

type Config struct {
	Backend   string // local | openai
	ModelsDir string // "" => stt.DefaultModelsDir()
	Language  string
	Threads   int
	Translate bool
	Prompt    string

	OpenAIKey   string
	OpenAIURL   string
	OpenAIModel string
	SocksProxy  string

	LogLevel string
}

// LoadEnvFile applies a dotenv file. A missing file is not an error:
// the environment may already carry everything.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load parses the environment. It does not call Validate, so callers can
// apply overrides first.
func Load() (Config, error) {
	cfg := Config{
		Backend:     strings.ToLower(env("WHISPER_BACKEND", BackendLocal)),
		ModelsDir:   env("WHISPER_MODELS_DIR", ""),
		Language:    env("WHISPER_LANGUAGE", "auto"),
		Prompt:      env("WHISPER_PROMPT", ""),
		OpenAIKey:   env("OPENAI_API_KEY", ""),
		OpenAIURL:   env("OPENAI_BASE_URL", ""),
		OpenAIModel: env("OPENAI_TRANSCRIBE_MODEL", ""),
		SocksProxy:  env("SOCKS_PROXY", ""),
		LogLevel:    strings.ToLower(env("LOG_LEVEL", "warn")),
	}

	var err error
	if v := env("WHISPER_THREADS", ""); v != "" {
		if cfg.Threads, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("invalid WHISPER_THREADS %q: %w", v, err)
		}
	}
	if v := env("WHISPER_TRANSLATE", ""); v != "" {
		if cfg.Translate, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("invalid WHISPER_TRANSLATE %q: %w", v, err)
		}
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendLocal, BackendOpenAI:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendLocal, BackendOpenAI)
	}
	if c.Threads < 0 {
		return fmt.Errorf("WHISPER_THREADS must be >= 0, got %d", c.Threads)
	}
	return nil
}

func env(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
