package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/prepdeck/interview-api/internal/dto"
	"github.com/tidwall/gjson"
)

// ErrMalformedVerdict means the model's output could not be salvaged into a
// valid verdict. Callers must not fall back to a partial or guessed verdict.
var ErrMalformedVerdict = errors.New("malformed verdict")

// ExtractVerdict parses the model's raw evaluation output into a verdict.
//
// Two-phase parse: first the trimmed text is parsed as-is; if that fails,
// the substring from the first '{' to the last '}' is parsed instead, which
// recovers payloads the model wrapped in prose or code fences. The verdict
// must carry a numeric composite_score and a numeric score for every
// expected dimension; a missing dimension is rejected, never defaulted.
func ExtractVerdict(raw string, expected []string) (*dto.EvaluationVerdict, error) {
	payload, err := salvageJSON(raw)
	if err != nil {
		return nil, err
	}

	root := gjson.Parse(payload)

	composite := root.Get("composite_score")
	if !composite.Exists() {
		return nil, fmt.Errorf("%w: composite_score is missing", ErrMalformedVerdict)
	}
	if composite.Type != gjson.Number {
		return nil, fmt.Errorf("%w: composite_score is not numeric", ErrMalformedVerdict)
	}

	dims := root.Get("dimension_scores")
	if !dims.Exists() || !dims.IsObject() {
		return nil, fmt.Errorf("%w: dimension_scores is missing or not an object", ErrMalformedVerdict)
	}

	scores := make(map[string]float64)
	badDim := ""
	dims.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Number {
			badDim = key.String()
			return false
		}
		scores[key.String()] = value.Float()
		return true
	})
	if badDim != "" {
		return nil, fmt.Errorf("%w: dimension %q has a non-numeric score", ErrMalformedVerdict, badDim)
	}

	for _, dim := range expected {
		if _, ok := scores[dim]; !ok {
			return nil, fmt.Errorf("%w: expected dimension %q is missing", ErrMalformedVerdict, dim)
		}
	}

	return &dto.EvaluationVerdict{
		CompositeScore:  composite.Float(),
		DimensionScores: scores,
		WhatWorkedWell:  root.Get("what_worked_well").String(),
		AreasToImprove:  root.Get("areas_to_improve").String(),
	}, nil
}

// salvageJSON returns the JSON object embedded in raw, trying a strict parse
// of the whole trimmed text before falling back to the first-{ to last-}
// substring.
func salvageJSON(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if isJSONObject(trimmed) {
		return trimmed, nil
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end <= start {
		return "", fmt.Errorf("%w: no JSON object found in model output", ErrMalformedVerdict)
	}
	candidate := trimmed[start : end+1]
	if !isJSONObject(candidate) {
		return "", fmt.Errorf("%w: embedded payload is not valid JSON", ErrMalformedVerdict)
	}
	return candidate, nil
}

func isJSONObject(s string) bool {
	var obj map[string]json.RawMessage
	return json.Unmarshal([]byte(s), &obj) == nil
}
