package domain

import (
	"context"
	"fmt"
	"strings"

	"kgeyst.com/muse/pkg/common"
)

const defaultGeneratorSystemPrompt = "You are a creative poet."

// PoemGenerator synthesizes a poem from a theme and the four poem parameters.
type PoemGenerator struct {
	languageModel LanguageModel
	systemPrompt  string
	temperature   float64
}

func NewPoemGenerator(languageModel LanguageModel, config *common.Config) *PoemGenerator {
	return &PoemGenerator{
		languageModel: languageModel,
		systemPrompt:  config.GetStringOrDefault(ConfigKeyGeneratorSystemPrompt, defaultGeneratorSystemPrompt),
		temperature:   config.GetFloatOrDefault(ConfigKeyLLMTemperature, 0),
	}
}

// Generate returns the raw generated text. Nothing but the parameters is validated: the poem itself is
// free-form.
func (g *PoemGenerator) Generate(ctx context.Context, themePrompt string, params PoemParameters) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}
	prompt := fmt.Sprintf(
		"Create a %s poem with a %s mood for %s in a %s tone:\n%s",
		params.Style,
		params.Mood,
		params.Purpose,
		params.Tone,
		themePrompt,
	)
	return completeText(ctx, g.languageModel, g.systemPrompt, prompt, DefaultCompleteOptions.WithTemperature(g.temperature))
}

// Source the name of the model which writes the poems (for attribution).
func (g *PoemGenerator) Source() string {
	return g.languageModel.Name()
}

// For every handler which expects plain text back.
func completeText(ctx context.Context, languageModel LanguageModel, systemPrompt, userPrompt string, options CompleteOptions) (string, error) {
	completion, err := languageModel.Complete(ctx, systemPrompt, userPrompt, options)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(completion.Text)
	if text == "" {
		return "", NewMalformedResponseError("empty text", completion.Text)
	}
	return text, nil
}
