package domain

import (
	"context"
	"fmt"
	"strings"

	"kgeyst.com/muse/pkg/common"
)

// NoPoemAvailableMessage is shown instead of acting on a poem which doesn't exist yet.
const NoPoemAvailableMessage = "No poem available."

const (
	defaultAnswererSystemPrompt = "You are a helpful assistant that analyzes poems."
	defaultGeneralSystemPrompt  = "You are a helpful assistant of a poetry app. Answer briefly."
)

// QueryAnswerer answers free-text questions, either about the current poem or in general.
type QueryAnswerer struct {
	languageModel       LanguageModel
	systemPrompt        string
	generalSystemPrompt string
}

func NewQueryAnswerer(languageModel LanguageModel, config *common.Config) *QueryAnswerer {
	return &QueryAnswerer{
		languageModel:       languageModel,
		systemPrompt:        config.GetStringOrDefault(ConfigKeyAnswererSystemPrompt, defaultAnswererSystemPrompt),
		generalSystemPrompt: config.GetStringOrDefault(ConfigKeyGeneralSystemPrompt, defaultGeneralSystemPrompt),
	}
}

// Answer returns NoPoemAvailableMessage without calling the model if `poem` is empty.
func (a *QueryAnswerer) Answer(ctx context.Context, poem, question string) (string, error) {
	if strings.TrimSpace(poem) == "" {
		return NoPoemAvailableMessage, nil
	}
	prompt := fmt.Sprintf(
		"Here is a poem:\n\n%s\n\nThe user has a question about the poem: %s\n\nAnswer the question in a helpful manner.",
		poem,
		question,
	)
	return completeText(ctx, a.languageModel, a.systemPrompt, prompt, DefaultCompleteOptions)
}

func (a *QueryAnswerer) AnswerGeneral(ctx context.Context, question string) (string, error) {
	return completeText(ctx, a.languageModel, a.generalSystemPrompt, question, DefaultCompleteOptions)
}

func (a *QueryAnswerer) Source() string {
	return a.languageModel.Name()
}
