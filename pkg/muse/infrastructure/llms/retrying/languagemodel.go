package retrying

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"kgeyst.com/muse/pkg/common"
	"kgeyst.com/muse/pkg/muse/domain"
)

type languageModelDecorator struct {
	wrappedLanguageModel domain.LanguageModel
	retryCount           int
	initialInterval      time.Duration
	logger               common.Logger
}

// NewLanguageModelDecorator repeats failed completions with exponential backoff, at most
// domain.ConfigKeyResponseRetryCount attempts in total. Only retryable provider errors are repeated.
func NewLanguageModelDecorator(wrappedLanguageModel domain.LanguageModel, config *common.Config, logger common.Logger) domain.LanguageModel {
	retryCount := config.GetIntOrDefault(domain.ConfigKeyResponseRetryCount, 3)
	if retryCount < 1 {
		retryCount = 1
	}
	return &languageModelDecorator{
		wrappedLanguageModel: wrappedLanguageModel,
		retryCount:           retryCount,
		initialInterval:      config.GetDurationOrDefault(domain.ConfigKeyResponseRetryInitialInterval, 500*time.Millisecond),
		logger:               logger,
	}
}

func (l *languageModelDecorator) Name() string {
	return l.wrappedLanguageModel.Name()
}

func (l *languageModelDecorator) Complete(ctx context.Context, systemPrompt, userPrompt string, options domain.CompleteOptions) (*domain.Completion, error) {
	exponentialBackOff := backoff.NewExponentialBackOff()
	exponentialBackOff.InitialInterval = l.initialInterval
	operation := func() (*domain.Completion, error) {
		completion, err := l.wrappedLanguageModel.Complete(ctx, systemPrompt, userPrompt, options)
		if err != nil && !domain.IsRetryable(err) {
			return nil, backoff.Permanent(err)
		}
		return completion, err
	}
	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(exponentialBackOff),
		backoff.WithMaxTries(uint(l.retryCount)),
		backoff.WithNotify(func(err error, next time.Duration) {
			l.logger.Error("completion failed, retrying", err,
				zap.String("model", l.Name()),
				zap.Duration("backoff", next),
			)
		}),
	)
}
