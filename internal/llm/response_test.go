package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVerdict_PlainObject(t *testing.T) {
	v, err := ParseVerdict(`{"result": "true", "explain": "dentro do padrão histórico"}`)
	require.NoError(t, err)
	assert.Equal(t, "true", v.Result)
	assert.Equal(t, "dentro do padrão histórico", v.Explain)
}

func TestParseVerdict_FencedWithLabel(t *testing.T) {
	raw := "```json\n{\"result\": \"false\", \"explain\": \"queda abrupta na contagem\"}\n```"
	v, err := ParseVerdict(raw)
	require.NoError(t, err)
	assert.Equal(t, "false", v.Result)
	assert.Equal(t, "queda abrupta na contagem", v.Explain)
}

func TestParseVerdict_FencedWithoutLabel(t *testing.T) {
	raw := "```\n{\"result\": \"true\", \"explain\": \"ok\"}\n```"
	v, err := ParseVerdict(raw)
	require.NoError(t, err)
	assert.Equal(t, "true", v.Result)
}

func TestParseVerdict_SurroundingProse(t *testing.T) {
	raw := `Claro! Segue a avaliação solicitada:

{"result": "true", "explain": "valores consistentes com o histórico"}

Espero ter ajudado.`
	v, err := ParseVerdict(raw)
	require.NoError(t, err)
	assert.Equal(t, "true", v.Result)
	assert.Equal(t, "valores consistentes com o histórico", v.Explain)
}

func TestParseVerdict_Empty(t *testing.T) {
	_, err := ParseVerdict("   \n\t ")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestParseVerdict_NoBraces(t *testing.T) {
	_, err := ParseVerdict("os dados parecem consistentes com o histórico")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestParseVerdict_InvalidJSON(t *testing.T) {
	_, err := ParseVerdict(`{"result": "true", "explain": }`)
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestParseVerdict_MissingExplain(t *testing.T) {
	_, err := ParseVerdict(`{"result": "true"}`)
	assert.ErrorIs(t, err, ErrIncompleteResponse)
}

func TestParseVerdict_MissingResult(t *testing.T) {
	_, err := ParseVerdict(`{"explain": "sem conclusão"}`)
	assert.ErrorIs(t, err, ErrIncompleteResponse)
}

func TestParseVerdict_NonStringResult(t *testing.T) {
	_, err := ParseVerdict(`{"result": true, "explain": "tipo errado"}`)
	assert.ErrorIs(t, err, ErrIncompleteResponse)
}

func TestParseVerdict_ExtraKeysTolerated(t *testing.T) {
	v, err := ParseVerdict(`{"result": "false", "explain": "anomalia", "confidence": 0.9}`)
	require.NoError(t, err)
	assert.Equal(t, "false", v.Result)
}
