package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kgeyst.com/muse/pkg/muse/domain"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		label    string
		expected domain.Intent
		ok       bool
	}{
		{"generate_poem", domain.IntentGeneratePoem, true},
		{"  Trim_Poem ", domain.IntentTrimPoem, true},
		{`"recapitalize"`, domain.IntentRecapitalize, true},
		{"'decapitalize'.", domain.IntentDecapitalize, true},
		{`"generate_poem". `, domain.IntentGeneratePoem, true},
		{`"poem query."`, domain.IntentPoemQuery, true},
		{"generate a poem", domain.IntentGeneratePoem, true},
		{"poem generation", domain.IntentGeneratePoem, true},
		{"trimming poem", domain.IntentTrimPoem, true},
		{"capitalize text", domain.IntentRecapitalize, true},
		{"decapitalize text", domain.IntentDecapitalize, true},
		{"handle_poem_query", domain.IntentPoemQuery, true},
		{"general query", domain.IntentGeneralQuery, true},
		{"translate_poem", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			intent, ok := domain.ParseIntent(tt.label)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, intent)
		})
	}
}

func TestIntentSet(t *testing.T) {
	set := domain.NewIntentSet(domain.IntentGeneralQuery, domain.IntentDecapitalize, domain.IntentGeneratePoem, domain.IntentDecapitalize)

	assert.Len(t, set, 3)
	assert.True(t, set.Contains(domain.IntentDecapitalize))
	assert.False(t, set.Contains(domain.IntentTrimPoem))
	assert.Equal(t, []domain.Intent{domain.IntentGeneratePoem, domain.IntentDecapitalize, domain.IntentGeneralQuery}, set.Ordered())
	assert.Equal(t, []string{"generate_poem", "decapitalize", "general_query"}, set.Strings())
	assert.Empty(t, domain.NewIntentSet().Ordered())
}
