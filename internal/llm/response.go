package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Verdict is the two-key result contract the prompt demands.
type Verdict struct {
	Result  string `json:"result"`
	Explain string `json:"explain"`
}

// Response validation failures, each a distinct reportable condition.
var (
	ErrEmptyResponse      = fmt.Errorf("empty response from model")
	ErrMalformedResponse  = fmt.Errorf("malformed response: no JSON object found")
	ErrInvalidJSON        = fmt.Errorf("response is not valid JSON")
	ErrIncompleteResponse = fmt.Errorf("incomplete response: missing required key")
)

const verdictSchemaJSON = `{
	"type": "object",
	"required": ["result", "explain"],
	"properties": {
		"result":  {"type": "string"},
		"explain": {"type": "string"}
	}
}`

var verdictSchema = jsonschema.MustCompileString("verdict.json", verdictSchemaJSON)

// ParseVerdict extracts and validates the JSON verdict embedded in raw
// model output. Models wrap the object in code fences or prose despite
// instructions, so the parser tolerates surrounding noise: it strips
// fence markers and an optional leading "json" label, then takes the
// span from the first '{' to the last '}'.
func ParseVerdict(raw string) (Verdict, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Verdict{}, ErrEmptyResponse
	}

	s = stripFences(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return Verdict{}, ErrMalformedResponse
	}
	payload := s[start : end+1]

	var doc any
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return Verdict{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if err := verdictSchema.Validate(doc); err != nil {
		return Verdict{}, fmt.Errorf("%w: %v", ErrIncompleteResponse, err)
	}

	var v Verdict
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return Verdict{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return v, nil
}

func stripFences(s string) string {
	if strings.HasPrefix(s, "```") {
		s = strings.TrimSpace(s[3:])
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(s[:len(s)-3])
	}
	// an optional "json" label before the object
	if rest, ok := strings.CutPrefix(s, "json"); ok {
		s = strings.TrimSpace(rest)
	}
	return s
}
