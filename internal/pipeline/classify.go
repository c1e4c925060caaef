package pipeline

import (
	"strings"

	"github.com/monailabs/monai/internal/common"
	"github.com/monailabs/monai/internal/llm"
)

// ForcedResultNote prefixes the explanation whenever the caller's
// force_true override is applied.
const ForcedResultNote = "Resultado forçado pelo usuário. Justificativa original: "

// Classification is the normalized verdict that gets persisted.
type Classification struct {
	Final       bool
	Explanation string
	Outlier     bool
	Forced      bool
}

// Classify normalizes a validated verdict and applies the caller's
// override. This is the only place override policy lives, so audit
// records always distinguish inference results from forced ones.
func Classify(v llm.Verdict, forceTrue bool) (Classification, error) {
	result := strings.ToLower(strings.TrimSpace(v.Result))
	var final bool
	switch result {
	case "true":
		final = true
	case "false":
		final = false
	default:
		return Classification{}, common.NewAppError("INVALID_RESULT",
			"model returned an invalid result value: "+v.Result, common.ErrContract)
	}

	explanation := v.Explain
	if forceTrue {
		final = true
		explanation = ForcedResultNote + explanation
	}

	return Classification{
		Final:       final,
		Explanation: explanation,
		Outlier:     !final,
		Forced:      forceTrue,
	}, nil
}
