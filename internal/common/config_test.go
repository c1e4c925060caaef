package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, ":8009", cfg.Server.HTTPAddr)
	assert.Equal(t, "OPENAI", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4", cfg.LLM.Model)
	assert.Equal(t, float32(0), cfg.LLM.Temperature)
	assert.Equal(t, 200, cfg.LLM.MaxTokens)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 10, cfg.Eval.HistoryExecutions)
	assert.Equal(t, "America/Sao_Paulo", cfg.Eval.Timezone)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("MONAI_LLM", "anthropic")
	t.Setenv("MONAI_LLM_MODEL", "claude-sonnet-4-5")
	t.Setenv("MONAI_HISTORY_EXECUTIONS", "20")
	t.Setenv("MONAI_HTTP_ADDR", ":9000")

	cfg := LoadConfig()

	// Provider is upper-cased on load.
	assert.Equal(t, "ANTHROPIC", cfg.LLM.Provider)
	assert.Equal(t, "claude-sonnet-4-5", cfg.LLM.Model)
	assert.Equal(t, 20, cfg.Eval.HistoryExecutions)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddr)
}

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{DSN: "postgres://localhost/monai"},
		Server:   ServerConfig{HTTPAddr: ":8009"},
		LLM:      LLMConfig{Provider: "OPENAI", APIKey: "k", MaxTokens: 200},
		Eval:     EvalConfig{HistoryExecutions: 10, Timezone: "America/Sao_Paulo"},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	missing := validConfig()
	missing.Database.DSN = ""
	assert.Error(t, missing.Validate())

	noKey := validConfig()
	noKey.LLM.APIKey = ""
	assert.Error(t, noKey.Validate())

	badProvider := validConfig()
	badProvider.LLM.Provider = "AZURE"
	assert.Error(t, badProvider.Validate())

	badHistory := validConfig()
	badHistory.Eval.HistoryExecutions = 0
	assert.Error(t, badHistory.Validate())
}
