package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Hello World", "hello world"},
		{"collapses punctuation runs", "a--b__c!!d", "a b c d"},
		{"keeps digits", "report2024 v2", "report2024 v2"},
		{"empty", "", ""},
		{"only punctuation", "!!??..", " "},
		{"unicode collapses to single space", "résumé", "r sum "},
		{"leading and trailing", " semester ", " semester "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Hello, World!",
		"university_registrar_report.docx",
		"MIXED case 123 --- sym/bols",
		"éàü ünïcode",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}
