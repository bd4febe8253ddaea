package utils

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractionError reports that no JSON object could be recovered from a
// model reply.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract json: %s", e.Reason)
}

// jsonStrategies are tried in order against the raw model reply. Each
// returns (object, true) on success. New fallbacks (e.g. balanced-brace
// scanning) append here.
var jsonStrategies = []func(string) (map[string]interface{}, bool){
	parseFenced,
	parseBraceSpan,
}

// ExtractJSONObject recovers a single JSON object from raw AI output.
// Models routinely wrap JSON in Markdown code fences or surround it with
// commentary, so a strict parse of the fence-stripped text is tried
// first, then a greedy first-{ to last-} substring of the original text.
// If neither yields an object the reply is unusable and an
// *ExtractionError is returned.
func ExtractJSONObject(raw string) (map[string]interface{}, error) {
	for _, try := range jsonStrategies {
		if obj, ok := try(raw); ok {
			return obj, nil
		}
	}
	return nil, &ExtractionError{Reason: "no valid JSON object in model reply"}
}

// parseFenced removes every ```json and ``` marker, trims, and parses
// what remains. Arrays, primitives and JSON null do not count as a
// result; they fall through to the next strategy.
func parseFenced(raw string) (map[string]interface{}, bool) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

// parseBraceSpan takes the greedy span from the first { to the last } of
// the ORIGINAL text and parses it. The span is deliberately not
// balance-matched: with multiple JSON fragments in one reply it can
// over-capture and fail, which is accepted over the cost of a recovery
// parser.
func parseBraceSpan(raw string) (map[string]interface{}, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, false
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}
