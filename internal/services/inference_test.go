package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cvmatch/internal/config"
)

func TestNewInferenceClientRequiresAPIKey(t *testing.T) {
	_, err := NewInferenceClient(context.Background(), config.InferenceConfig{
		Deployment: "gemini-2.5-flash",
	}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key")
}

func TestNewInferenceClientRequiresDeployment(t *testing.T) {
	_, err := NewInferenceClient(context.Background(), config.InferenceConfig{
		APIKey:     "test-key",
		Deployment: "  ",
	}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deployment")
}

func TestBuildGenerateConfig(t *testing.T) {
	temperature := float32(0.4)
	topP := float32(1.0)

	cfg := buildGenerateConfig(GenerateOptions{
		MaxOutputTokens: 200,
		Temperature:     &temperature,
		TopP:            &topP,
	})

	assert.Equal(t, int32(200), cfg.MaxOutputTokens)
	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 0.4, float64(*cfg.Temperature), 0.001)
	require.NotNil(t, cfg.TopP)
	assert.InDelta(t, 1.0, float64(*cfg.TopP), 0.001)
}

func TestBuildGenerateConfigLeavesDefaultsUnset(t *testing.T) {
	cfg := buildGenerateConfig(GenerateOptions{MaxOutputTokens: 300})

	assert.Equal(t, int32(300), cfg.MaxOutputTokens)
	assert.Nil(t, cfg.Temperature)
	assert.Nil(t, cfg.TopP)
}
