package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monailabs/monai/internal/common"
	"github.com/monailabs/monai/internal/llm"
)

func TestClassify_Consistent(t *testing.T) {
	c, err := Classify(llm.Verdict{Result: "true", Explain: "dentro do padrão"}, false)
	require.NoError(t, err)
	assert.True(t, c.Final)
	assert.False(t, c.Outlier)
	assert.False(t, c.Forced)
	assert.Equal(t, "dentro do padrão", c.Explanation)
}

func TestClassify_Anomalous(t *testing.T) {
	c, err := Classify(llm.Verdict{Result: "false", Explain: "queda abrupta"}, false)
	require.NoError(t, err)
	assert.False(t, c.Final)
	assert.True(t, c.Outlier)
	assert.Equal(t, "queda abrupta", c.Explanation)
}

func TestClassify_NormalizesCaseAndSpace(t *testing.T) {
	c, err := Classify(llm.Verdict{Result: "  TRUE \n", Explain: "ok"}, false)
	require.NoError(t, err)
	assert.True(t, c.Final)

	c, err = Classify(llm.Verdict{Result: "False", Explain: "anômalo"}, false)
	require.NoError(t, err)
	assert.False(t, c.Final)
}

func TestClassify_InvalidResult(t *testing.T) {
	_, err := Classify(llm.Verdict{Result: "maybe", Explain: "?"}, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrContract))
}

func TestClassify_ForceTrueOverridesAnomaly(t *testing.T) {
	c, err := Classify(llm.Verdict{Result: "false", Explain: "fora do padrão esperado"}, true)
	require.NoError(t, err)
	assert.True(t, c.Final)
	// Forced submissions are never flagged as outliers, so they stay
	// eligible for future history windows.
	assert.False(t, c.Outlier)
	assert.True(t, c.Forced)
	assert.True(t, strings.HasPrefix(c.Explanation, ForcedResultNote))
	assert.Contains(t, c.Explanation, "fora do padrão esperado")
}

func TestClassify_ForceTrueOnConsistent(t *testing.T) {
	c, err := Classify(llm.Verdict{Result: "true", Explain: "ok"}, true)
	require.NoError(t, err)
	assert.True(t, c.Final)
	assert.True(t, c.Forced)
	assert.True(t, strings.HasPrefix(c.Explanation, ForcedResultNote))
}

func TestClassify_ForceTrueDoesNotMaskInvalidResult(t *testing.T) {
	_, err := Classify(llm.Verdict{Result: "n/a", Explain: "?"}, true)
	assert.Error(t, err)
}
