package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldFilterMatch_WordBoundary(t *testing.T) {
	tests := []struct {
		name      string
		fieldText string
		value     string
		want      bool
	}{
		{"exact value", "Neurology", "Neurology", true},
		{"variant form reached", "Urologic Surgery", "Urology", true},
		{"token prefix match", "Urologic Surgery", "Urologic", true},
		{"partial word rejected", "Neurology", "Urology", false},
		{"case insensitive", "CARDIOLOGY", "cardiology", true},
		{"prefix within field", "Cardiology", "Cardio", true},
		{"mid-token rejected", "Cardiology", "diology", false},
		{"second word", "Internal Medicine", "Medicine", true},
		{"plural value", "Language Services", "services", true},
		{"short value stays literal", "Radiology", "Ray", false},
		{"blank value matches", "anything", "", true},
		{"regex metacharacters escaped", "C++ Programming", "C++", true},
		{"injection attempt", "Neurology", ".*", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FieldFilterMatch(tt.fieldText, tt.value))
		})
	}
}

func TestEntry_MatchesFilters(t *testing.T) {
	entry := Entry{
		Name: "Jane Smith",
		EntryData: map[string]any{
			"department": "Medicine",
			"specialty":  "Cardiology",
			"languages":  []string{"Spanish", "French"},
		},
	}

	t.Run("single match", func(t *testing.T) {
		assert.True(t, entry.MatchesFilters(map[string]string{"specialty": "Cardio"}))
	})

	t.Run("all filters must match", func(t *testing.T) {
		assert.True(t, entry.MatchesFilters(map[string]string{
			"specialty":  "Cardiology",
			"department": "Medicine",
		}))
		assert.False(t, entry.MatchesFilters(map[string]string{
			"specialty":  "Cardiology",
			"department": "Surgery",
		}))
	})

	t.Run("missing field fails", func(t *testing.T) {
		assert.False(t, entry.MatchesFilters(map[string]string{"gender": "female"}))
	})

	t.Run("array field rendered as text", func(t *testing.T) {
		assert.True(t, entry.MatchesFilters(map[string]string{"languages": "French"}))
	})

	t.Run("blank values ignored", func(t *testing.T) {
		assert.True(t, entry.MatchesFilters(map[string]string{"gender": "  "}))
	})

	t.Run("no filters", func(t *testing.T) {
		assert.True(t, entry.MatchesFilters(nil))
	})
}
