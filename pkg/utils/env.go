package utils

import (
	"errors"
	"sort"
	"strings"
)

// ParseEnvAssignments parses KEY=VALUE pairs separated by commas, semicolons,
// or newlines into a sorted slice of "KEY=VALUE" entries. Later duplicates win.
func ParseEnvAssignments(input string) ([]string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, nil
	}

	values := make(map[string]string)
	for _, part := range splitEnvInput(trimmed) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.New("invalid env var: " + part)
		}
		values[key] = strings.TrimSpace(value)
	}

	result := make([]string, 0, len(values))
	for k, v := range values {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)
	return result, nil
}

// MergeEnv overlays extra "KEY=VALUE" entries on base, replacing keys that
// already exist. Order of base is preserved.
func MergeEnv(base, extra []string) []string {
	overrides := make(map[string]string, len(extra))
	order := make([]string, 0, len(extra))
	for _, kv := range extra {
		key, _, _ := strings.Cut(kv, "=")
		if _, seen := overrides[key]; !seen {
			order = append(order, key)
		}
		overrides[key] = kv
	}

	merged := make([]string, 0, len(base)+len(extra))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if replacement, ok := overrides[key]; ok {
			merged = append(merged, replacement)
			delete(overrides, key)
			continue
		}
		merged = append(merged, kv)
	}
	for _, key := range order {
		if kv, ok := overrides[key]; ok {
			merged = append(merged, kv)
		}
	}
	return merged
}

func splitEnvInput(input string) []string {
	return strings.FieldsFunc(input, func(r rune) bool {
		switch r {
		case ',', ';', '\n':
			return true
		default:
			return false
		}
	})
}
