package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/monailabs/monai/internal/entity"
)

// BuildPrompt renders the analysis request sent to the inference
// provider. The rendering is pure: the same rules, history, submission
// and temporal context always produce the same text, so an audit can
// reconstruct exactly what the model was asked. Attribute maps are
// serialized with encoding/json, which orders keys.
func BuildPrompt(rules []string, history []*entity.JobData, attributes map[string]string, tc TemporalContext) string {
	var b strings.Builder

	b.WriteString("Você é um analista de qualidade de dados responsável por avaliar envios periódicos de metadados de cargas de dados (contagem de linhas, tamanho de arquivo, resumos estatísticos). ")
	b.WriteString("Aplique análise exploratória de dados, detecção de anomalias, raciocínio sobre séries temporais e verificação de regras para decidir se o novo envio é consistente com o histórico.\n\n")

	b.WriteString("Regras obrigatórias:\n")
	for i, r := range rules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}

	b.WriteString("\nHistórico de execuções (da mais recente para a mais antiga):\n")
	for _, h := range history {
		fmt.Fprintf(&b, "- recebido_em=%s; dia_da_semana=%s; mes=%s; feriado=%t; atributos=%s\n",
			h.ReceivedAt.Format(time.RFC3339), h.Weekday, h.Month, h.IsHoliday, marshalAttributes(h.Attributes))
	}

	b.WriteString("\nNovo envio:\n")
	fmt.Fprintf(&b, "recebido_em=%s; dia_da_semana=%s; mes=%s; feriado=%t\natributos=%s\n",
		tc.At.Format(time.RFC3339), tc.Weekday, tc.Month, tc.IsHoliday, marshalAttributes(attributes))

	b.WriteString("\nResponda APENAS com um objeto JSON contendo exatamente duas chaves: ")
	b.WriteString(`"result" (a string "true" se o novo envio é consistente com o histórico, ou "false" se é anômalo) e "explain" (justificativa breve da decisão). `)
	b.WriteString("Nenhum outro conteúdo deve acompanhar o objeto JSON.\n")

	return b.String()
}

func marshalAttributes(attrs map[string]string) string {
	if len(attrs) == 0 {
		return "{}"
	}
	b, err := json.Marshal(attrs)
	if err != nil {
		return "{}"
	}
	return string(b)
}
