package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monailabs/monai/internal/common"
)

func TestNew_KnownProviders(t *testing.T) {
	for _, provider := range []string{"OPENAI", "GOOGLE", "ANTHROPIC"} {
		t.Run(provider, func(t *testing.T) {
			c, err := New(common.LLMConfig{Provider: provider, APIKey: "k", Model: "m"}, nil)
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(common.LLMConfig{Provider: "AZURE"}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidInput))

	var appErr *common.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "UNKNOWN_PROVIDER", appErr.Code)
}
