package domain_test

import (
	"context"

	"kgeyst.com/muse/pkg/muse/domain"
)

type completeCall struct {
	systemPrompt string
	userPrompt   string
	options      domain.CompleteOptions
}

// fakeLanguageModel replies with `completions` (and fails with `errs`) by call index.
type fakeLanguageModel struct {
	completions []*domain.Completion
	errs        []error
	calls       []completeCall
}

func (f *fakeLanguageModel) Name() string {
	return "fake-model"
}

func (f *fakeLanguageModel) Complete(_ context.Context, systemPrompt, userPrompt string, options domain.CompleteOptions) (*domain.Completion, error) {
	index := len(f.calls)
	f.calls = append(f.calls, completeCall{systemPrompt: systemPrompt, userPrompt: userPrompt, options: options})
	if index < len(f.errs) && f.errs[index] != nil {
		return nil, f.errs[index]
	}
	if index < len(f.completions) {
		return f.completions[index], nil
	}
	return &domain.Completion{}, nil
}

type fakeSchemaReflector struct {
	reflected []any
}

func (f *fakeSchemaReflector) Reflect(v any) any {
	f.reflected = append(f.reflected, v)
	return map[string]any{"type": "object"}
}

type fakeClassifier struct {
	results []*domain.Classification
	errs    []error
	queries []string
}

func (f *fakeClassifier) Classify(_ context.Context, userQuery string) (*domain.Classification, error) {
	index := len(f.queries)
	f.queries = append(f.queries, userQuery)
	if index < len(f.errs) && f.errs[index] != nil {
		return nil, f.errs[index]
	}
	return f.results[index], nil
}

type generateCall struct {
	theme  string
	params domain.PoemParameters
}

type fakeGenerator struct {
	poems []string
	errs  []error
	calls []generateCall
}

func (f *fakeGenerator) Generate(_ context.Context, themePrompt string, params domain.PoemParameters) (string, error) {
	index := len(f.calls)
	f.calls = append(f.calls, generateCall{theme: themePrompt, params: params})
	if index < len(f.errs) && f.errs[index] != nil {
		return "", f.errs[index]
	}
	return f.poems[index], nil
}

func (f *fakeGenerator) Source() string {
	return "fake-poet"
}

type fakeAnswerer struct {
	answer   string
	errs     []error
	poems    []string
	general  []string
	attempts int
}

func (f *fakeAnswerer) Answer(_ context.Context, poem, _ string) (string, error) {
	index := f.attempts
	f.attempts++
	if index < len(f.errs) && f.errs[index] != nil {
		return "", f.errs[index]
	}
	f.poems = append(f.poems, poem)
	return f.answer, nil
}

func (f *fakeAnswerer) AnswerGeneral(_ context.Context, question string) (string, error) {
	index := f.attempts
	f.attempts++
	if index < len(f.errs) && f.errs[index] != nil {
		return "", f.errs[index]
	}
	f.general = append(f.general, question)
	return f.answer, nil
}

func (f *fakeAnswerer) Source() string {
	return "fake-critic"
}

func classification(intents ...domain.Intent) *domain.Classification {
	return &domain.Classification{Intents: domain.NewIntentSet(intents...)}
}
