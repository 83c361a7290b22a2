package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain json", `{"key":"name"}`, `{"key":"name"}`},
		{"json fence", "```json\n{\"key\":\"name\"}\n```", `{"key":"name"}`},
		{"bare fence", "```\n{\"key\":\"name\"}\n```", `{"key":"name"}`},
		{"fence with language", "```javascript\n{\"key\":\"name\"}\n```", `{"key":"name"}`},
		{"surrounding whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestConfigGetModel_FallbackChain(t *testing.T) {
	cfg := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{TierLite: "lite-model"}}
	assert.Equal(t, "lite-model", cfg.GetModel(TierAdvanced))

	cfg = &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}
	assert.Equal(t, "", cfg.GetModel(TierStandard))
}

func TestConfigFromEnv_Providers(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "groq")
	cfg, err := ConfigFromEnv()
	assert.NoError(t, err)
	assert.Equal(t, ProviderGroq, cfg.Provider)
	assert.NotEmpty(t, cfg.BaseURL)

	t.Setenv("LLM_PROVIDER", "")
	cfg, err = ConfigFromEnv()
	assert.NoError(t, err)
	assert.Equal(t, ProviderGemini, cfg.Provider)

	t.Setenv("LLM_PROVIDER", "watson")
	_, err = ConfigFromEnv()
	assert.Error(t, err)
}
