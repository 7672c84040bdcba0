package logging

import (
	"context"
	"time"

	"go.uber.org/zap"

	"kgeyst.com/muse/pkg/common"
	"kgeyst.com/muse/pkg/muse/domain"
)

type languageModelDecorator struct {
	wrappedLanguageModel domain.LanguageModel
	logger               common.Logger
}

func NewLanguageModelDecorator(wrappedLanguageModel domain.LanguageModel, logger common.Logger) domain.LanguageModel {
	return &languageModelDecorator{
		wrappedLanguageModel: wrappedLanguageModel,
		logger:               logger,
	}
}

func (l *languageModelDecorator) Name() string {
	return l.wrappedLanguageModel.Name()
}

func (l *languageModelDecorator) Complete(ctx context.Context, systemPrompt, userPrompt string, options domain.CompleteOptions) (*domain.Completion, error) {
	l.logger.Log("completion requested",
		zap.String("model", l.Name()),
		zap.String("prompt", userPrompt),
		zap.Int("systemPromptSize", len(systemPrompt)),
		zap.Int("tools", len(options.Tools)),
	)
	t := time.Now()
	completion, err := l.wrappedLanguageModel.Complete(ctx, systemPrompt, userPrompt, options)
	took := time.Since(t)
	if err != nil {
		l.logger.Error("completion failed", err,
			zap.String("model", l.Name()),
			zap.Duration("took", took),
		)
		return nil, err
	}
	l.logger.Log("completion received",
		zap.String("model", l.Name()),
		zap.String("response", completion.Text),
		zap.Int("toolCalls", len(completion.ToolCalls)),
		zap.Duration("took", took),
	)
	return completion, nil
}
