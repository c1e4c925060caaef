package llm

import (
	"log/slog"

	"github.com/monailabs/monai/internal/common"
	"github.com/monailabs/monai/internal/llm/anthropic"
	"github.com/monailabs/monai/internal/llm/google"
	"github.com/monailabs/monai/internal/llm/openai"
)

// New binds the configured provider behind the Client contract. Called
// once at process start; the returned client is read-only afterwards
// and safe for concurrent use.
func New(cfg common.LLMConfig, logger *slog.Logger) (Client, error) {
	switch cfg.Provider {
	case "OPENAI":
		return openai.NewClient(openai.Config{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
			System:      SystemInstruction,
		}, logger), nil
	case "GOOGLE":
		return google.NewClient(google.Config{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
			System:      SystemInstruction,
		}, logger), nil
	case "ANTHROPIC":
		return anthropic.NewClient(anthropic.Config{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
			System:      SystemInstruction,
		}, logger), nil
	default:
		return nil, common.NewAppError("UNKNOWN_PROVIDER", "unknown inference provider: "+cfg.Provider, common.ErrInvalidInput)
	}
}
