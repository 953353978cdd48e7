package domain

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t ", ""},
		{"asterisk suffix", "Feudi Del Pisciotto*", "FEUDI DEL PISCIOTTO"},
		{"parentheses", "Tenute di Giulio (CB)", "TENUTE DI GIULIO CB"},
		{"collapses inner whitespace", "  ippolito   1845 ", "IPPOLITO 1845"},
		{"tabs and newlines", "Vite\tColte\n", "VITE COLTE"},
		{"space left by removed asterisk", "Santa * Tresa", "SANTA TRESA"},
		{"only decoration", "*()*", ""},
		{"accented letters uppercased", "prima pavé", "PRIMA PAVÉ"},
		{"already normalized", "VACCA", "VACCA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	idempotent := func(s string) bool {
		once := Normalize(s)
		return Normalize(once) == once
	}
	assert.NoError(t, quick.Check(idempotent, nil))

	for _, s := range []string{"a ( b ) c", "** x **", " (Vacca)  Barbaresco* ", "ß straße"} {
		assert.True(t, idempotent(s), "input %q", s)
	}
}

func TestSignificantWords(t *testing.T) {
	assert.Equal(t, []string{"FEUDI", "DEL", "PISCIOTTO"}, significantWords("FEUDI DEL PISCIOTTO"))
	assert.Equal(t, []string{"TENUTE", "GIULIO"}, significantWords("TENUTE DI GIULIO"))
	assert.Equal(t, []string{"SAN", "FRANCESCO"}, significantWords("SAN FRANCESCO DI"))
	assert.Equal(t, []string{"PAVÉ"}, significantWords("PAVÉ"))
	assert.Empty(t, significantWords("DI LA"))
	assert.Empty(t, significantWords(""))
}
