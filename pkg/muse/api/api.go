package api

import (
	"context"
	"errors"
	"fmt"

	"kgeyst.com/muse/pkg/common"
	"kgeyst.com/muse/pkg/muse/domain"
	"kgeyst.com/muse/pkg/muse/infrastructure/inmemory"
	"kgeyst.com/muse/pkg/muse/infrastructure/llms/anthropic"
	"kgeyst.com/muse/pkg/muse/infrastructure/llms/logging"
	"kgeyst.com/muse/pkg/muse/infrastructure/llms/openai"
	"kgeyst.com/muse/pkg/muse/infrastructure/llms/retrying"
	"kgeyst.com/muse/pkg/muse/infrastructure/llms/schema"
)

// See domain/config.go
const (
	ConfigKeyLogPath     = domain.ConfigKeyLogPath
	ConfigKeyLogLevel    = domain.ConfigKeyLogLevel
	ConfigKeyLLMProvider = domain.ConfigKeyLLMProvider
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

var ErrUnknownProvider = errors.New("unknown LLM provider")

// API is the entrypoint to Muse. It shouldn't contain any logic of its own; it glues all the components together
// and provides a public interface for domain.Router.
// This API can be used in various contexts: in an IRC chat, console input/output etc.
// Calls for the same conversation must not overlap; different conversations are independent.
type API interface {
	// Submit runs a turn for `query` in the conversation `conversationID` (created on first use) and returns
	// the transcript entries the turn appended, starting with the user's own entry. If a completion call
	// fails, the entries produced so far are returned along with the error, and the turn can be resumed with Retry.
	Submit(ctx context.Context, conversationID, query string) ([]domain.TranscriptEntry, error)
	// Retry resumes the last turn of the conversation at the step which failed. Returns domain.ErrNothingToRetry
	// if the last turn didn't fail.
	Retry(ctx context.Context, conversationID string) ([]domain.TranscriptEntry, error)
	// SelectPoemParameters remembers parameters for the next generated poem in the conversation. Empty fields keep
	// the previous selection.
	SelectPoemParameters(conversationID string, params domain.PoemParameters) error
	// Poem returns the current poem of the conversation; an empty string if there's none yet.
	Poem(conversationID string) string
	// Transcript returns a copy of the whole conversation log.
	Transcript(conversationID string) []domain.TranscriptEntry
	// ForgetConversation drops the conversation's state. The next submission starts from scratch.
	ForgetConversation(conversationID string)
	// ForgetAllConversations drops every conversation. Useful for debugging.
	ForgetAllConversations()
}

type api struct {
	router                 *domain.Router
	conversationRepository domain.ConversationRepository
}

// NewAPI builds the Completion Client chosen by ConfigKeyLLMProvider and the components around it.
func NewAPI(config *common.Config, logger common.Logger) (API, error) {
	languageModel, err := newLanguageModel(config)
	if err != nil {
		return nil, err
	}
	languageModel = logging.NewLanguageModelDecorator(languageModel, logger)
	languageModel = retrying.NewLanguageModelDecorator(languageModel, config, logger)
	return NewAPIWithLanguageModel(languageModel, config, logger), nil
}

// NewAPIWithLanguageModel uses an already constructed Completion Client (no decorators are added).
func NewAPIWithLanguageModel(languageModel domain.LanguageModel, config *common.Config, logger common.Logger) API {
	router := domain.NewRouter(
		domain.NewIntentClassifier(languageModel, schema.NewReflector(), config, logger),
		domain.NewPoemGenerator(languageModel, config),
		domain.NewQueryAnswerer(languageModel, config),
		config,
		logger,
	)
	return &api{
		router:                 router,
		conversationRepository: inmemory.NewConversationRepository(inmemory.NewIDGenerator()),
	}
}

func newLanguageModel(config *common.Config) (domain.LanguageModel, error) {
	provider := config.GetStringOrDefault(ConfigKeyLLMProvider, ProviderOpenAI)
	switch provider {
	case ProviderOpenAI:
		return openai.NewLanguageModel(config)
	case ProviderAnthropic:
		return anthropic.NewLanguageModel(config)
	}
	return nil, fmt.Errorf("%q: %w", provider, ErrUnknownProvider)
}

func (a *api) Submit(ctx context.Context, conversationID, query string) ([]domain.TranscriptEntry, error) {
	return a.router.Submit(ctx, a.conversationRepository.FindOrCreate(conversationID), query)
}

func (a *api) Retry(ctx context.Context, conversationID string) ([]domain.TranscriptEntry, error) {
	state := a.conversationRepository.Find(conversationID)
	if state == nil {
		return nil, domain.ErrNothingToRetry
	}
	return a.router.Retry(ctx, state)
}

func (a *api) SelectPoemParameters(conversationID string, params domain.PoemParameters) error {
	return a.conversationRepository.FindOrCreate(conversationID).SelectPoemParameters(params)
}

func (a *api) Poem(conversationID string) string {
	state := a.conversationRepository.Find(conversationID)
	if state == nil {
		return ""
	}
	return state.Poem()
}

func (a *api) Transcript(conversationID string) []domain.TranscriptEntry {
	state := a.conversationRepository.Find(conversationID)
	if state == nil {
		return nil
	}
	return append([]domain.TranscriptEntry(nil), state.Transcript...)
}

func (a *api) ForgetConversation(conversationID string) {
	a.conversationRepository.Remove(conversationID)
}

func (a *api) ForgetAllConversations() {
	a.conversationRepository.RemoveAll()
}
