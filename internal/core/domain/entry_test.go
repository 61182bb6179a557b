package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntry_DataString(t *testing.T) {
	entry := Entry{
		EntryData: map[string]any{
			"specialty": "Cardiology",
			"languages": []string{"Spanish", "French"},
			"mixed":     []any{"a", 2},
			"price":     19.99,
			"nothing":   nil,
		},
	}

	assert.Equal(t, "Cardiology", entry.DataString("specialty"))
	assert.Equal(t, "Spanish, French", entry.DataString("languages"))
	assert.Equal(t, "a, 2", entry.DataString("mixed"))
	assert.Equal(t, "19.99", entry.DataString("price"))
	assert.Equal(t, "", entry.DataString("nothing"))
	assert.Equal(t, "", entry.DataString("missing"))
}

func TestEntry_HasAnyTag(t *testing.T) {
	entry := Entry{Tags: []string{"Spanish", "French"}}

	assert.True(t, entry.HasAnyTag([]string{"French"}))
	assert.True(t, entry.HasAnyTag([]string{"German", "spanish"}))
	assert.False(t, entry.HasAnyTag([]string{"German"}))
	assert.True(t, entry.HasAnyTag(nil), "empty tag list matches everything")
}

func TestEntry_SearchText(t *testing.T) {
	entry := Entry{
		Name: "Jane Smith",
		Tags: []string{"Spanish"},
		EntryData: map[string]any{
			"specialty": "Cardiology",
		},
	}

	text := entry.SearchText()
	assert.Contains(t, text, "Jane Smith")
	assert.Contains(t, text, "Spanish")
	assert.Contains(t, text, "Cardiology")
}

func TestParseSearchMode(t *testing.T) {
	assert.Equal(t, SearchModeExact, ParseSearchMode("exact"))
	assert.Equal(t, SearchModeFullText, ParseSearchMode("fulltext"))
	assert.Equal(t, SearchModeSubstring, ParseSearchMode("substring"))
	assert.Equal(t, SearchModeSubstring, ParseSearchMode(""), "defaults to substring")
	assert.Equal(t, SearchModeSubstring, ParseSearchMode("bogus"))
}

func TestSearchQuery_EffectiveLimit(t *testing.T) {
	assert.Equal(t, DefaultSearchLimit, SearchQuery{}.EffectiveLimit())
	assert.Equal(t, 5, SearchQuery{Limit: 5}.EffectiveLimit())
	assert.Equal(t, DefaultSearchLimit, SearchQuery{Limit: -1}.EffectiveLimit())
}
