package domain

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"kgeyst.com/muse/pkg/common"
)

// NoActionMessage is shown when the query matches no intent.
const NoActionMessage = "No action matched your query."

var ErrNothingToRetry = errors.New("nothing to retry")

type Classifier interface {
	Classify(ctx context.Context, userQuery string) (*Classification, error)
}

type Generator interface {
	Generate(ctx context.Context, themePrompt string, params PoemParameters) (string, error)
	Source() string
}

type Answerer interface {
	Answer(ctx context.Context, poem, question string) (string, error)
	AnswerGeneral(ctx context.Context, question string) (string, error)
	Source() string
}

type handlerOutput struct {
	content string
	// poem the new poem text, if the handler changes it
	poem   *string
	source string
}

type handler struct {
	// needsPoem the handler is skipped (with an informational entry) while there's no current poem
	needsPoem bool
	handle    func(ctx context.Context, state *ConversationState, current *turn) (handlerOutput, error)
}

// Router classifies every user submission once and runs one handler per recognized intent, in
// CanonicalIntentOrder, threading the poem through them. It keeps no state of its own: everything lives in
// the ConversationState passed by the caller, so one Router can serve many conversations.
type Router struct {
	classifier            Classifier
	generator             Generator
	answerer              Answerer
	defaultPoemParameters PoemParameters
	logger                common.Logger
	handlers              map[Intent]handler
}

func NewRouter(
	classifier Classifier,
	generator Generator,
	answerer Answerer,
	config *common.Config,
	logger common.Logger,
) *Router {
	r := &Router{
		classifier: classifier,
		generator:  generator,
		answerer:   answerer,
		defaultPoemParameters: ParsePoemParameters(
			config.GetString(ConfigKeyDefaultStyle),
			config.GetString(ConfigKeyDefaultMood),
			config.GetString(ConfigKeyDefaultPurpose),
			config.GetString(ConfigKeyDefaultTone),
		).MergedWith(DefaultPoemParameters),
		logger: logger,
	}
	r.handlers = map[Intent]handler{
		IntentGeneratePoem: {handle: r.generatePoem},
		IntentTrimPoem:     {needsPoem: true, handle: transformPoem(Trim, "trim")},
		IntentRecapitalize: {needsPoem: true, handle: transformPoem(ToUpper, "recapitalize")},
		IntentDecapitalize: {needsPoem: true, handle: transformPoem(ToLower, "decapitalize")},
		IntentPoemQuery:    {needsPoem: true, handle: r.answerPoemQuery},
		IntentGeneralQuery: {handle: r.answerGeneralQuery},
	}
	return r
}

// Submit runs a full turn for `query` and returns the transcript entries it appended (the user's entry first).
// On failure, the state is left in TurnPhaseFailed with everything completed so far kept; see Retry.
func (r *Router) Submit(ctx context.Context, state *ConversationState, query string) ([]TranscriptEntry, error) {
	start := len(state.Transcript)
	state.CompletedIntents = NewIntentSet()
	state.LastError = nil
	state.turn = &turn{query: query}
	state.appendEntry(RoleUser, query, "", "")
	r.logger.Log("turn started", zap.Int("transcriptSize", start))
	err := r.run(ctx, state)
	return newEntries(state, start), err
}

// Retry resumes a failed turn at the step which failed: classification is repeated only if it was
// the classification which failed, and intents completed before the failure are not repeated.
func (r *Router) Retry(ctx context.Context, state *ConversationState) ([]TranscriptEntry, error) {
	if state.Phase != TurnPhaseFailed || state.turn == nil {
		return nil, ErrNothingToRetry
	}
	start := len(state.Transcript)
	state.LastError = nil
	r.logger.Log("turn retried", zap.Strings("completedIntents", state.CompletedIntents.Strings()))
	err := r.run(ctx, state)
	return newEntries(state, start), err
}

func (r *Router) run(ctx context.Context, state *ConversationState) error {
	current := state.turn
	if current.classification == nil {
		state.Phase = TurnPhaseClassifying
		classification, err := r.classifier.Classify(ctx, current.query)
		if err != nil {
			return r.fail(state, "classify", err)
		}
		current.classification = classification
	}
	state.Phase = TurnPhaseDispatching
	intents := current.classification.Intents
	if len(intents) == 0 {
		r.logger.Log("no intent recognized")
		state.appendEntry(RoleSystem, NoActionMessage, "", "")
	}
	for _, intent := range CanonicalIntentOrder {
		if !intents.Contains(intent) || state.CompletedIntents.Contains(intent) {
			continue
		}
		h := r.handlers[intent]
		if h.needsPoem && !state.HasPoem() {
			r.logger.Log("intent skipped: no poem", zap.String("intent", string(intent)))
			state.appendEntry(RoleSystem, NoPoemAvailableMessage, intent, "")
			state.CompletedIntents.Add(intent)
			continue
		}
		r.logger.Log("dispatching intent", zap.String("intent", string(intent)))
		output, err := h.handle(ctx, state, current)
		if err != nil {
			return r.fail(state, string(intent), err)
		}
		if output.poem != nil {
			state.setPoem(*output.poem)
		}
		state.appendEntry(RoleSystem, output.content, intent, output.source)
		state.CompletedIntents.Add(intent)
	}
	state.Phase = TurnPhaseIdle
	state.turn = nil
	return nil
}

func (r *Router) fail(state *ConversationState, step string, err error) error {
	state.Phase = TurnPhaseFailed
	state.LastError = err
	r.logger.Error("turn failed", err,
		zap.String("step", step),
		zap.Bool("retryable", IsRetryable(err)),
		zap.Strings("completedIntents", state.CompletedIntents.Strings()),
	)
	return fmt.Errorf("%s: %w", step, err)
}

func (r *Router) generatePoem(ctx context.Context, state *ConversationState, current *turn) (handlerOutput, error) {
	params := current.classification.Parameters
	if state.PendingPoemParameters != nil {
		params = params.MergedWith(*state.PendingPoemParameters)
	}
	params = params.MergedWith(r.defaultPoemParameters)
	theme := current.classification.Theme
	if theme == "" {
		theme = current.query
	}
	poem, err := r.generator.Generate(ctx, theme, params)
	if err != nil {
		return handlerOutput{}, err
	}
	state.PendingPoemParameters = nil
	return handlerOutput{content: poem, poem: &poem, source: r.generator.Source()}, nil
}

func (r *Router) answerPoemQuery(ctx context.Context, state *ConversationState, current *turn) (handlerOutput, error) {
	answer, err := r.answerer.Answer(ctx, state.Poem(), current.query)
	if err != nil {
		return handlerOutput{}, err
	}
	return handlerOutput{content: answer, source: r.answerer.Source()}, nil
}

func (r *Router) answerGeneralQuery(ctx context.Context, _ *ConversationState, current *turn) (handlerOutput, error) {
	answer, err := r.answerer.AnswerGeneral(ctx, current.query)
	if err != nil {
		return handlerOutput{}, err
	}
	return handlerOutput{content: answer, source: r.answerer.Source()}, nil
}

func transformPoem(transform func(string) string, name string) func(context.Context, *ConversationState, *turn) (handlerOutput, error) {
	return func(_ context.Context, state *ConversationState, _ *turn) (handlerOutput, error) {
		poem := transform(state.Poem())
		return handlerOutput{content: poem, poem: &poem, source: name}, nil
	}
}

func newEntries(state *ConversationState, start int) []TranscriptEntry {
	return append([]TranscriptEntry(nil), state.Transcript[start:]...)
}
