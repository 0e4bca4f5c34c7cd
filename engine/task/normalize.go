package task

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Normalizer converts a raw model completion into a typed Result. It is a
// pure function of its input. A non-nil error reports that a fallback was
// applied; the returned Result is always valid and must be used regardless.
type Normalizer func(raw string) (Result, error)

// normalizePlainText trusts the upstream text as-is.
func normalizePlainText(raw string) (Result, error) {
	return PlainText(raw), nil
}

// normalizeTags splits a comma-separated completion into at most MaxTags
// trimmed, non-empty tags. A shorter list is returned as-is, never padded.
func normalizeTags(raw string) (Result, error) {
	parts := strings.Split(raw, ",")
	tags := make(TagList, 0, MaxTags)
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
		if len(tags) == MaxTags {
			break
		}
	}
	return tags, nil
}

// normalizeGlossary parses the completion as a JSON array of term/definition
// objects, tolerating markdown code fences. Any parse or shape failure
// degrades to an empty list instead of an error reaching the caller.
func normalizeGlossary(raw string) (Result, error) {
	tree, err := parseJSONArray(raw)
	if err != nil {
		return GlossaryEntries{}, fmt.Errorf("glossary completion discarded: %w", err)
	}
	entries := make(GlossaryEntries, 0, len(tree))
	for i, element := range tree {
		term, okTerm := stringField(element, "term")
		definition, okDef := stringField(element, "definition")
		if !okTerm || !okDef {
			return GlossaryEntries{}, fmt.Errorf(
				"glossary completion discarded: element %d missing term or definition", i)
		}
		entries = append(entries, GlossaryEntry{Term: term, Definition: definition})
	}
	return entries, nil
}

// normalizeErrorList applies the glossary policy to error/correction pairs.
func normalizeErrorList(raw string) (Result, error) {
	tree, err := parseJSONArray(raw)
	if err != nil {
		return ErrorList{}, fmt.Errorf("error-list completion discarded: %w", err)
	}
	corrections := make(ErrorList, 0, len(tree))
	for i, element := range tree {
		errText, okErr := stringField(element, "error")
		correction, okCorr := stringField(element, "correction")
		if !okErr || !okCorr {
			return ErrorList{}, fmt.Errorf(
				"error-list completion discarded: element %d missing error or correction", i)
		}
		corrections = append(corrections, ErrorCorrection{Error: errText, Correction: correction})
	}
	return corrections, nil
}

// parseJSONArray strips markdown fences and decodes the completion into an
// untyped element list. Shape validation happens per element afterwards;
// the tree is never trusted implicitly.
func parseJSONArray(raw string) ([]any, error) {
	cleaned := StripCodeFence(raw)
	var tree any
	if err := json.Unmarshal([]byte(cleaned), &tree); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	elements, ok := tree.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON array, got %T", tree)
	}
	return elements, nil
}

func stringField(element any, field string) (string, bool) {
	object, ok := element.(map[string]any)
	if !ok {
		return "", false
	}
	value, ok := object[field].(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// StripCodeFence removes a surrounding markdown code fence, with or without
// a language tag, from a completion. Text without a fence is returned
// trimmed.
func StripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	// Drop an optional language tag on the opening fence line.
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		firstLine := strings.TrimSpace(trimmed[:idx])
		if firstLine != "" && !strings.ContainsAny(firstLine, "[{") {
			trimmed = trimmed[idx+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
