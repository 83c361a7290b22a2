// Package llm provides centralized LLM configuration and client abstractions.
// This package enables easy switching between providers and model tiers.
package llm

import (
	"fmt"
	"os"
)

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: short structured output, classification
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: question generation
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning: candidate assessment
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider (default)
	ProviderGemini Provider = "gemini"
	// ProviderGroq is the Groq provider, reached through the OpenAI-compatible API
	ProviderGroq Provider = "groq"
	// ProviderOpenAI is the OpenAI provider
	ProviderOpenAI Provider = "openai"
)

// groqBaseURL is Groq's OpenAI-compatible endpoint.
const groqBaseURL = "https://api.groq.com/openai/v1"

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
	// BaseURL overrides the provider endpoint (OpenAI-compatible providers only)
	BaseURL string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// DefaultGroqConfig returns the default Groq configuration
func DefaultGroqConfig() *Config {
	return &Config{
		Provider: ProviderGroq,
		BaseURL:  groqBaseURL,
		Models: map[ModelTier]string{
			TierLite:     "llama3-8b-8192",
			TierStandard: "llama3-70b-8192",
			TierAdvanced: "llama3-70b-8192",
		},
	}
}

// DefaultOpenAIConfig returns the default OpenAI configuration
func DefaultOpenAIConfig() *Config {
	return &Config{
		Provider: ProviderOpenAI,
		Models: map[ModelTier]string{
			TierLite:     "gpt-4o-mini",
			TierStandard: "gpt-4o-mini",
			TierAdvanced: "gpt-4o",
		},
	}
}

// ConfigFromEnv builds a configuration from the LLM_PROVIDER environment
// variable, defaulting to Gemini when unset.
func ConfigFromEnv() (*Config, error) {
	switch Provider(os.Getenv("LLM_PROVIDER")) {
	case ProviderGroq:
		return DefaultGroqConfig(), nil
	case ProviderOpenAI:
		return DefaultOpenAIConfig(), nil
	case ProviderGemini, "":
		return DefaultGeminiConfig(), nil
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER: %s", os.Getenv("LLM_PROVIDER"))
	}
}

// APIKeyFromEnv returns the API key for the configured provider, or an empty
// string if none is set. An empty key disables the generative path; callers
// fall back to the deterministic question bank.
func (c *Config) APIKeyFromEnv() string {
	switch c.Provider {
	case ProviderGroq:
		return os.Getenv("GROQ_API_KEY")
	case ProviderOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	default:
		return os.Getenv("GEMINI_API_KEY")
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return "" // No model configured
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string),
		BaseURL:  c.BaseURL,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}
