package mappers

import (
	"strconv"
	"strings"
)

// splitTags splits a comma-separated cell into a tag list, trimming
// whitespace and dropping empty values.
func splitTags(s string) []string {
	return splitOn(s, ",")
}

// splitList splits a pipe-separated cell into an array field value.
func splitList(s string) []string {
	return splitOn(s, "|")
}

func splitOn(s, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// parseNumber parses a numeric cell, preferring int over float.
// Falls back to the original string on failure so odd values like
// "call for pricing" survive the import.
func parseNumber(s string) any {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return trimmed
}

// parseBool normalises boolean-like cells ("TRUE", "1", "yes") to a
// bool. Unrecognised values are reported via ok=false.
func parseBool(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y":
		return true, true
	case "false", "0", "no", "n":
		return false, true
	default:
		return false, false
	}
}

// setString adds a trimmed string field to the data bag, skipping
// blanks so required-field validation sees genuinely missing values.
func setString(data map[string]any, key, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		data[key] = trimmed
	}
}

// setList adds a pipe-separated array field if non-empty.
func setList(data map[string]any, key, value string) {
	if list := splitList(value); len(list) > 0 {
		data[key] = list
	}
}

// setNumber adds a numeric field with string fallback if non-empty.
func setNumber(data map[string]any, key, value string) {
	if parsed := parseNumber(value); parsed != "" {
		data[key] = parsed
	}
}

// setBool adds a boolean field if the cell is recognisably boolean.
func setBool(data map[string]any, key, value string) {
	if b, ok := parseBool(value); ok {
		data[key] = b
	}
}

// contactInfo extracts the standard contact columns from a row.
func contactInfo(row map[string]string, keys ...string) map[string]string {
	info := make(map[string]string)
	for _, key := range keys {
		if value := strings.TrimSpace(row[key]); value != "" {
			info[key] = value
		}
	}
	return info
}
