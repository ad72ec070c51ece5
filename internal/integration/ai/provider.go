// Package ai integrates the configured large-language-model provider for
// transaction drafting.
package ai

import "context"

// GenerateConfig carries per-request generation settings.
type GenerateConfig struct {
	Temperature float32
	JSONOutput  bool
}

// Provider is one configured LLM backend.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string

	// Generate produces a completion for the prompt.
	Generate(ctx context.Context, prompt string, config GenerateConfig) (string, error)
}
