package mappers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"Spanish", "French"}, splitTags("Spanish, French"))
	assert.Equal(t, []string{"Spanish"}, splitTags("  Spanish  "))
	assert.Nil(t, splitTags(""))
	assert.Nil(t, splitTags("   "))
	assert.Equal(t, []string{"a", "b"}, splitTags("a,,b,"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"tablet", "capsule"}, splitList("tablet|capsule"))
	assert.Equal(t, []string{"tablet"}, splitList("tablet"))
	assert.Nil(t, splitList(""))
	// Commas are data inside pipe-separated cells, not separators.
	assert.Equal(t, []string{"Mon, Wed", "Fri"}, splitList("Mon, Wed|Fri"))
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, int64(42), parseNumber("42"))
	assert.Equal(t, 19.99, parseNumber("19.99"))
	assert.Equal(t, int64(-3), parseNumber(" -3 "))
	assert.Equal(t, "call for pricing", parseNumber("call for pricing"))
	assert.Equal(t, "", parseNumber("  "))
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in    string
		value bool
		ok    bool
	}{
		{"TRUE", true, true},
		{"true", true, true},
		{"1", true, true},
		{"yes", true, true},
		{"Y", true, true},
		{"FALSE", false, true},
		{"0", false, true},
		{"no", false, true},
		{"maybe", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		value, ok := parseBool(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.value, value, "input %q", tt.in)
	}
}

func TestContactInfo(t *testing.T) {
	row := map[string]string{
		"phone": "555-0101",
		"email": " jane@example.com ",
		"fax":   "555-0102",
	}
	info := contactInfo(row, "phone", "email", "location")
	assert.Equal(t, map[string]string{
		"phone": "555-0101",
		"email": "jane@example.com",
	}, info)
}
