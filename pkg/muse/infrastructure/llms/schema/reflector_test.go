package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kgeyst.com/muse/pkg/muse/domain"
)

type reflectedSchema struct {
	Type                 string                       `json:"type"`
	Required             []string                     `json:"required"`
	AdditionalProperties *bool                        `json:"additionalProperties"`
	Properties           map[string]reflectedProperty `json:"properties"`
}

type reflectedProperty struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Enum        []string `json:"enum"`
	Items       *struct {
		Type string   `json:"type"`
		Enum []string `json:"enum"`
	} `json:"items"`
}

func reflect(t *testing.T, v any) reflectedSchema {
	data, err := json.Marshal(NewReflector().Reflect(v))
	require.NoError(t, err)
	var schema reflectedSchema
	require.NoError(t, json.Unmarshal(data, &schema))
	return schema
}

func TestReflector_ClassificationArguments(t *testing.T) {
	schema := reflect(t, domain.ClassificationArguments{})

	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"intents"}, schema.Required)
	require.NotNil(t, schema.AdditionalProperties)
	assert.False(t, *schema.AdditionalProperties)

	intents := schema.Properties["intents"]
	assert.Equal(t, "array", intents.Type)
	assert.NotEmpty(t, intents.Description)
	require.NotNil(t, intents.Items)
	assert.Equal(t, []string{
		"generate_poem", "trim_poem", "recapitalize", "decapitalize", "poem_query", "general_query",
	}, intents.Items.Enum)

	style := schema.Properties["style"]
	assert.Equal(t, "string", style.Type)
	assert.Contains(t, style.Enum, "haiku")
	assert.Len(t, schema.Properties["mood"].Enum, len(domain.AllMoods()))
	assert.Len(t, schema.Properties["purpose"].Enum, len(domain.AllPurposes()))
	assert.Len(t, schema.Properties["tone"].Enum, len(domain.AllTones()))
	assert.Empty(t, schema.Properties["theme"].Enum)
}

func TestReflector_PlainStruct(t *testing.T) {
	type arguments struct {
		Name string `json:"name"`
	}

	schema := reflect(t, arguments{})

	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"name"}, schema.Required)
	assert.Empty(t, schema.Properties["name"].Enum)
}
