package domain

import (
	"regexp"
	"strings"
	"sync"
)

// Structured-field filters use a word-boundary substring test rather
// than a naive contains: the requested value must start at a token
// boundary within the field text, so "Urology" never matches
// "Neurology". Trailing derivational suffixes of the value are ignored
// ("Urology" -> "Urolog") so the filter still reaches variant forms
// like "Urologic Surgery". Filter values are escaped before being
// embedded so user input cannot inject pattern syntax.

var (
	filterMu    sync.RWMutex
	filterCache = map[string]*regexp.Regexp{}
)

// valueSuffixes are stripped from the final word of a filter value
// before matching. Longest first.
var valueSuffixes = []string{"ical", "ies", "ic", "y", "s"}

// stemFilterValue trims one derivational suffix from the last word of
// the value, keeping at least four characters so short values stay
// literal.
func stemFilterValue(value string) string {
	words := strings.Fields(value)
	if len(words) == 0 {
		return value
	}
	last := words[len(words)-1]
	for _, suffix := range valueSuffixes {
		if trimmed := strings.TrimSuffix(last, suffix); trimmed != last && len(trimmed) >= 4 {
			words[len(words)-1] = trimmed
			break
		}
	}
	return strings.Join(words, " ")
}

// fieldFilterPattern compiles (and caches) the case-insensitive
// word-boundary pattern for a filter value.
func fieldFilterPattern(value string) (*regexp.Regexp, error) {
	filterMu.RLock()
	re, ok := filterCache[value]
	filterMu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(stemFilterValue(value)))
	if err != nil {
		return nil, err
	}

	filterMu.Lock()
	filterCache[value] = re
	filterMu.Unlock()
	return re, nil
}

// FieldFilterMatch reports whether value matches fieldText at a word
// boundary. Blank values match everything.
func FieldFilterMatch(fieldText, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return true
	}
	re, err := fieldFilterPattern(value)
	if err != nil {
		// QuoteMeta makes compilation failures practically impossible;
		// degrade to a plain case-insensitive contains if it happens.
		return strings.Contains(strings.ToLower(fieldText), strings.ToLower(value))
	}
	return re.MatchString(fieldText)
}

// MatchesFilters applies every (field, value) pair against the entry's
// entry_data using the word-boundary test. All pairs must match.
// A filter on a field the entry does not carry fails the match.
func (e *Entry) MatchesFilters(filters map[string]string) bool {
	for field, value := range filters {
		if strings.TrimSpace(value) == "" {
			continue
		}
		text := e.DataString(field)
		if text == "" {
			return false
		}
		if !FieldFilterMatch(text, value) {
			return false
		}
	}
	return true
}
