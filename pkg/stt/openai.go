package stt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// DefaultRemoteModel is the only whisper variant served by the OpenAI API;
// every local variant name maps onto it.
const DefaultRemoteModel = "whisper-1"

var ErrMissingAPIKey = errors.New("OPENAI_API_KEY not set")

// OpenAILoader hands out models backed by the OpenAI transcription endpoint.
type OpenAILoader struct {
	APIKey     string
	BaseURL    string
	Model      string // "" => DefaultRemoteModel
	HTTPClient *http.Client
	Options    Options
}

func (l *OpenAILoader) Load(_ context.Context, name string) (Model, error) {
	if name == "" {
		return nil, errors.New("empty model name")
	}
	if l.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	opts := []option.RequestOption{
		option.WithAPIKey(l.APIKey),
		option.WithMaxRetries(0),
	}
	if l.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(l.BaseURL))
	}
	if l.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(l.HTTPClient))
	}

	model := l.Model
	if model == "" {
		model = DefaultRemoteModel
	}

	return &openaiModel{
		client: openai.NewClient(opts...),
		model:  model,
		opt:    l.Options,
	}, nil
}

type openaiModel struct {
	client openai.Client
	model  string
	opt    Options
}

func (m *openaiModel) Transcribe(ctx context.Context, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	params := openai.AudioTranscriptionNewParams{
		File:  f,
		Model: openai.AudioModel(m.model),
	}
	if m.opt.Language != "" && m.opt.Language != "auto" {
		params.Language = openai.String(m.opt.Language)
	}
	if m.opt.InitialPrompt != "" {
		params.Prompt = openai.String(m.opt.InitialPrompt)
	}

	resp, err := m.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return Result{}, fmt.Errorf("transcription request: %w", err)
	}

	return Result{Text: resp.Text, Language: m.opt.Language}, nil
}

func (m *openaiModel) Close() error { return nil }
