package main

import (
	"context"
	"fmt"
	log "log/slog"

	"voxscribe/internal/config"
	"voxscribe/internal/proxy"
	"voxscribe/pkg/stt"
)

func newLoader(cfg config.Config) (stt.Loader, error) {
	opt := stt.Options{
		Language:      cfg.Language,
		TranslateToEn: cfg.Translate,
		Threads:       cfg.Threads,
		InitialPrompt: cfg.Prompt,
	}

	switch cfg.Backend {
	case config.BackendOpenAI:
		httpClient, err := proxy.NewClient(cfg.SocksProxy, 0)
		if err != nil {
			return nil, err
		}
		log.Debug("Using openai backend", "proxy", cfg.SocksProxy, "model", cfg.OpenAIModel)
		return &stt.OpenAILoader{
			APIKey:     cfg.OpenAIKey,
			BaseURL:    cfg.OpenAIURL,
			Model:      cfg.OpenAIModel,
			HTTPClient: httpClient,
			Options:    opt,
		}, nil

	case config.BackendLocal:
		dir := cfg.ModelsDir
		if dir == "" {
			var err error
			if dir, err = stt.DefaultModelsDir(); err != nil {
				return nil, fmt.Errorf("resolve models dir: %w", err)
			}
		}
		log.Debug("Using local backend", "models", dir)
		return stt.NewLocalLoader(dir, opt), nil

	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

func failingLoader(err error) stt.Loader {
	return stt.LoaderFunc(func(context.Context, string) (stt.Model, error) {
		return nil, err
	})
}
