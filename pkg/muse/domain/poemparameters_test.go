package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kgeyst.com/muse/pkg/muse/domain"
)

func TestEnumerations(t *testing.T) {
	assert.Len(t, domain.AllStyles(), 6)
	assert.Len(t, domain.AllMoods(), 5)
	assert.Len(t, domain.AllTones(), 6)
	assert.Len(t, domain.AllPurposes(), 27)

	style, ok := domain.ParseStyle(" Free Verse ")
	assert.True(t, ok)
	assert.Equal(t, domain.Style("free verse"), style)

	_, ok = domain.ParseMood("angry")
	assert.False(t, ok)

	purpose, ok := domain.ParsePurpose("a work anniversary")
	assert.True(t, ok)
	assert.Equal(t, domain.Purpose("a work anniversary"), purpose)
}

func TestParsePoemParameters_DropsUnknownValues(t *testing.T) {
	params := domain.ParsePoemParameters("haiku", "angry", "", "Playful")

	assert.Equal(t, domain.PoemParameters{Style: "haiku", Tone: "playful"}, params)
}

func TestPoemParameters_Validate(t *testing.T) {
	require.NoError(t, domain.DefaultPoemParameters.Validate())

	params := domain.DefaultPoemParameters
	params.Tone = "grumpy"
	err := params.Validate()
	assert.ErrorIs(t, err, domain.ErrInvalidPoemParameters)
	assert.Contains(t, err.Error(), "tone")

	assert.ErrorIs(t, domain.PoemParameters{}.Validate(), domain.ErrInvalidPoemParameters)
}

func TestPoemParameters_MergedWith(t *testing.T) {
	params := domain.PoemParameters{Style: "sonnet"}.MergedWith(domain.PoemParameters{Style: "haiku", Mood: "sad"})

	assert.Equal(t, domain.PoemParameters{Style: "sonnet", Mood: "sad"}, params)
	assert.True(t, domain.PoemParameters{}.IsEmpty())
	assert.False(t, params.IsEmpty())
}

func TestConversationState_SelectPoemParameters(t *testing.T) {
	state := domain.NewConversationState(nil)

	require.NoError(t, state.SelectPoemParameters(domain.PoemParameters{Style: "limerick", Mood: "happy"}))
	require.NoError(t, state.SelectPoemParameters(domain.PoemParameters{Mood: "nostalgic"}))
	assert.Equal(t, &domain.PoemParameters{Style: "limerick", Mood: "nostalgic"}, state.PendingPoemParameters)

	err := state.SelectPoemParameters(domain.PoemParameters{Purpose: "a haircut"})
	assert.ErrorIs(t, err, domain.ErrInvalidPoemParameters)
	assert.Equal(t, &domain.PoemParameters{Style: "limerick", Mood: "nostalgic"}, state.PendingPoemParameters)
}
