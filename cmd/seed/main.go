// Command seed loads the initial job, the statistical rule catalog and
// its groups into an empty database. Safe to point at a fresh database
// only; it does not check for existing rows.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/monailabs/monai/gen/ent"
	"github.com/monailabs/monai/internal/common"
	repo "github.com/monailabs/monai/internal/repository"
)

const lastValueOnly = "Ao aplicar esta regra, considere a avaliação do último dado recebido e não compare com o histórico. "

type seedRule struct {
	name        string
	description string
	text        string
	group       string
}

var seedRules = []seedRule{
	{"Validação de Média com Min e Max", "Verifica se o valor médio está dentro do intervalo definido pelos valores mínimo e máximo",
		lastValueOnly + "Se houver valores para 'avg', juntamente com 'min' e 'max', o valor de 'avg' deve estar dentro do intervalo definido pelos valores de 'min' e 'max'.", "math"},
	{"Validação de Média com Min e Max (mean)", "Verifica se o valor mean está dentro do intervalo definido pelos valores mínimo e máximo",
		lastValueOnly + "Se houver valores para 'mean', juntamente com 'min' e 'max', o valor de 'mean' deve estar dentro do intervalo definido pelos valores de 'min' e 'max'.", "math"},
	{"Validação de Máximo", "Verifica se o valor máximo é maior que o valor mínimo",
		lastValueOnly + "Se houver valores para 'max', o valor de 'max' deve ser maior que o valor de 'min'.", "math"},
	{"Validação de Desvio Padrão", "Verifica se o desvio padrão é menor que a diferença entre máximo e mínimo",
		lastValueOnly + "Se houver valores para 'std', juntamente com 'min' e 'max', o valor de 'std' deve ser menor que a diferença entre os valores de 'max' e 'min'.", "math"},
	{"Validação de Desvio Padrão (stdev)", "Verifica se o desvio padrão (stdev) é menor que a diferença entre máximo e mínimo",
		lastValueOnly + "Se houver valores para 'stdev', juntamente com 'min' e 'max', o valor de 'stdev' deve ser menor que a diferença entre os valores de 'max' e 'min'.", "math"},
	{"Validação de Contagem", "Verifica se o valor de contagem é maior que zero",
		lastValueOnly + "Se houver valores para 'count', o valor de 'count' deve ser maior que zero.", "count_sum"},
	{"Validação de Soma", "Verifica se o valor da soma é maior que zero",
		lastValueOnly + "Se houver valores para 'sum', o valor de 'sum' deve ser maior que zero.", "count_sum"},
	{"Validação de Mediana", "Verifica se a mediana está entre os valores mínimo e máximo",
		lastValueOnly + "Se houver valores para 'median', o valor de 'median' deve estar entre os valores de 'min' e 'max'.", "central"},
	{"Validação de Moda", "Verifica se a moda está entre os valores mínimo e máximo",
		lastValueOnly + "Se houver valores para 'mode', o valor de 'mode' deve estar entre os valores de 'min' e 'max'.", "central"},
	{"Validação de Variância", "Verifica se a variância é maior que zero",
		lastValueOnly + "Se houver valores para 'variance', o valor de 'variance' deve ser maior que zero.", "dispersion"},
	{"Validação de Assimetria", "Verifica se a assimetria é maior que zero",
		lastValueOnly + "Se houver valores para 'skewness', o valor de 'skewness' deve ser maior que zero.", "dispersion"},
	{"Validação de Curtose", "Verifica se a curtose é maior que zero",
		lastValueOnly + "Se houver valores para 'kurtosis', o valor de 'kurtosis' deve ser maior que zero.", "dispersion"},
	{"Validação de Amplitude", "Verifica se a amplitude é maior que zero",
		lastValueOnly + "Se houver valores para 'range', o valor de 'range' deve ser maior que zero.", "dispersion"},
	{"Validação de IQR", "Verifica se o IQR é maior que zero",
		lastValueOnly + "Se houver valores para 'iqr', o valor de 'iqr' deve ser maior que zero.", "dispersion"},
	{"Validação de MAD", "Verifica se o MAD é maior que zero",
		lastValueOnly + "Se houver valores para 'mad', o valor de 'mad' deve ser maior que zero.", "dispersion"},
	{"Validação de CV", "Verifica se o coeficiente de variação é maior que zero",
		lastValueOnly + "Se houver valores para 'cv', o valor de 'cv' deve ser maior que zero.", "dispersion"},
	{"Validação de Z-Score", "Verifica se o Z-Score é maior que zero",
		lastValueOnly + "Se houver valores para 'z_score', o valor de 'z_score' deve ser maior que zero.", "statistical"},
	{"Validação de P-Valor", "Verifica se o P-Valor é maior que zero",
		lastValueOnly + "Se houver valores para 'p_value', o valor de 'p_value' deve ser maior que zero.", "statistical"},
	{"Validação de Intervalo de Confiança", "Verifica se o intervalo de confiança é maior que zero",
		lastValueOnly + "Se houver valores para 'confidence_interval', o valor de 'confidence_interval' deve ser maior que zero.", "statistical"},
	{"Validação de Limite Superior", "Verifica se o limite superior é maior que zero",
		lastValueOnly + "Se houver valores para 'upper_bound', o valor de 'upper_bound' deve ser maior que zero.", "statistical"},
	{"Validação de Limite Inferior", "Verifica se o limite inferior é maior que zero",
		lastValueOnly + "Se houver valores para 'lower_bound', o valor de 'lower_bound' deve ser maior que zero.", "statistical"},
	{"Validação de Outliers", "Verifica se o número de outliers é maior que zero",
		lastValueOnly + "Se houver valores para 'outliers', o valor de 'outliers' deve ser maior que zero.", "statistical"},
	{"Validação de Percentis", "Verifica se os percentis são maiores que zero",
		lastValueOnly + "Se houver valores para 'percentiles', o valor de 'percentiles' deve ser maior que zero.", "percentile"},
	{"Validação de Decis", "Verifica se os decis são maiores que zero",
		lastValueOnly + "Se houver valores para 'deciles', o valor de 'deciles' deve ser maior que zero.", "percentile"},
	{"Validação de Quartis", "Verifica se os quartis são maiores que zero",
		lastValueOnly + "Se houver valores para 'quartiles', o valor de 'quartiles' deve ser maior que zero.", "percentile"},
}

var seedGroups = []struct {
	key         string
	name        string
	description string
}{
	{"math", "Validações Matemáticas Básicas", "Grupo de regras para validações matemáticas básicas como média, máximo, mínimo e desvio padrão"},
	{"count_sum", "Validações de Contagem e Soma", "Grupo de regras para validações de contagem e soma"},
	{"central", "Validações de Medidas de Tendência Central", "Grupo de regras para validações de medidas de tendência central"},
	{"dispersion", "Validações de Medidas de Dispersão", "Grupo de regras para validações de medidas de dispersão"},
	{"statistical", "Validações de Análise Estatística", "Grupo de regras para validações de análise estatística"},
	{"percentile", "Validações de Percentis", "Grupo de regras para validações de percentis"},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("MONAI_DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:         cfg.Database.DSN,
		MaxConns:    2,
		DialTimeout: cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	if err := run(ctx, entc, logger); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
	logger.Info("seed complete", "rules", len(seedRules), "groups", len(seedGroups))
}

func run(ctx context.Context, entc *ent.Client, logger *slog.Logger) error {
	jobs := repo.NewJobRepository(entc, logger)
	rules := repo.NewRuleRepository(entc, logger)
	groups := repo.NewRuleGroupRepository(entc, logger)

	job, err := jobs.Resolve(ctx,
		"Envio Diário Base Full - Banco Joelma",
		"BASEDIARIA.csv",
		"Job para envio diário da base full do Banco Joelma")
	if err != nil {
		return fmt.Errorf("create initial job: %w", err)
	}

	groupIDs := make(map[string]uuid.UUID, len(seedGroups))
	for _, g := range seedGroups {
		created, err := groups.Create(ctx, repo.SaveRuleGroupParams{
			Name:        g.name,
			Description: g.description,
		})
		if err != nil {
			return fmt.Errorf("create group %q: %w", g.name, err)
		}
		groupIDs[g.key] = created.ID
	}

	for _, r := range seedRules {
		created, err := rules.Create(ctx, repo.SaveRuleParams{
			Name:        r.name,
			Description: r.description,
			RuleText:    r.text,
		})
		if err != nil {
			return fmt.Errorf("create rule %q: %w", r.name, err)
		}
		if err := groups.AddRule(ctx, groupIDs[r.group], created.ID); err != nil {
			return fmt.Errorf("add rule %q to group %q: %w", r.name, r.group, err)
		}
	}

	// Only the basic-math group starts attached to the initial job.
	if err := jobs.AttachRuleGroup(ctx, job.ID, groupIDs["math"]); err != nil {
		return fmt.Errorf("attach math group: %w", err)
	}
	return nil
}
