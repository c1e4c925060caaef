package pipeline

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monailabs/monai/internal/entity"
)

func promptFixture() ([]string, []*entity.JobData, map[string]string, TemporalContext) {
	rules := []string{
		"Considere que os dados mais recentes do histórico têm maior peso na avaliação de consistência do novo envio.",
		"Se houver valores para 'max', o valor de 'max' deve ser maior que o valor de 'min'.",
	}
	at := time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)
	history := []*entity.JobData{
		{
			Attributes: map[string]string{"quantidade_linhas": "70210", "avg": "351"},
			ReceivedAt: at.Add(-24 * time.Hour),
			Weekday:    "Sunday",
			Month:      "March",
		},
		{
			Attributes: map[string]string{"quantidade_linhas": "69980", "avg": "349"},
			ReceivedAt: at.Add(-48 * time.Hour),
			Weekday:    "Saturday",
			Month:      "March",
		},
	}
	attrs := map[string]string{"quantidade_linhas": "70100", "avg": "350"}
	tc := TemporalContext{At: at, Weekday: "Monday", Month: "March", IsHoliday: false}
	return rules, history, attrs, tc
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	rules, history, attrs, tc := promptFixture()
	a := BuildPrompt(rules, history, attrs, tc)
	b := BuildPrompt(rules, history, attrs, tc)
	assert.Equal(t, a, b)
}

func TestBuildPrompt_NumbersRulesInOrder(t *testing.T) {
	rules, history, attrs, tc := promptFixture()
	p := BuildPrompt(rules, history, attrs, tc)

	first := strings.Index(p, "1. Considere que os dados mais recentes")
	second := strings.Index(p, "2. Se houver valores para 'max'")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
}

func TestBuildPrompt_HistoryMostRecentFirst(t *testing.T) {
	rules, history, attrs, tc := promptFixture()
	p := BuildPrompt(rules, history, attrs, tc)

	newer := strings.Index(p, "70210")
	older := strings.Index(p, "69980")
	require.NotEqual(t, -1, newer)
	require.NotEqual(t, -1, older)
	assert.Less(t, newer, older)
}

func TestBuildPrompt_ContainsSubmissionAndContract(t *testing.T) {
	rules, history, attrs, tc := promptFixture()
	p := BuildPrompt(rules, history, attrs, tc)

	assert.Contains(t, p, "Novo envio:")
	assert.Contains(t, p, `"quantidade_linhas":"70100"`)
	assert.Contains(t, p, "dia_da_semana=Monday")
	assert.Contains(t, p, `"result"`)
	assert.Contains(t, p, `"explain"`)
	assert.Contains(t, p, "objeto JSON")
}

func TestBuildPrompt_EmptyHistoryAndAttributes(t *testing.T) {
	_, _, _, tc := promptFixture()
	p := BuildPrompt(nil, nil, nil, tc)
	assert.Contains(t, p, "Regras obrigatórias:")
	assert.Contains(t, p, "atributos={}")
}
