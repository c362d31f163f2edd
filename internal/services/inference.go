package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"cvmatch/internal/config"
)

// GenerateOptions are the per-call generation parameters. A nil Temperature
// or TopP leaves the service default in place.
type GenerateOptions struct {
	MaxOutputTokens int32
	Temperature     *float32
	TopP            *float32
}

type InferenceClient interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

type inferenceClient struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewInferenceClient builds the client once at startup. The endpoint, API
// key, deployment identifier and API version all come from configuration.
func NewInferenceClient(ctx context.Context, cfg config.InferenceConfig, logger *zap.Logger) (InferenceClient, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("inference api key is required")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    strings.TrimSpace(cfg.Endpoint),
			APIVersion: strings.TrimSpace(cfg.APIVersion),
		},
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create inference client: %w", err)
	}

	model := strings.TrimSpace(cfg.Deployment)
	if model == "" {
		return nil, errors.New("inference deployment is required")
	}

	return &inferenceClient{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Generate performs a single synchronous completion call and returns the
// generated text verbatim. No retry, no streaming, no caching.
func (c *inferenceClient) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	genConfig := buildGenerateConfig(opts)

	c.logger.Debug("inference request",
		zap.String("model", c.model),
		zap.Int("prompt_length", len(prompt)),
	)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), genConfig)
	if err != nil {
		return "", &InferenceError{Cause: err}
	}

	if resp == nil {
		return "", &InferenceError{Cause: errors.New("nil response from service")}
	}

	text := resp.Text()
	if text == "" {
		return "", &InferenceError{Cause: errors.New("no text content in response")}
	}

	c.logger.Debug("inference response", zap.Int("response_length", len(text)))

	return text, nil
}

func buildGenerateConfig(opts GenerateOptions) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		MaxOutputTokens: opts.MaxOutputTokens,
		Temperature:     opts.Temperature,
		TopP:            opts.TopP,
	}
}
