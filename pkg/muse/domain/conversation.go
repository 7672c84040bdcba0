package domain

import "strconv"

type Role string

const (
	RoleUser   = Role("user")
	RoleSystem = Role("system")
)

// TranscriptEntry a single line of the conversation log. Insertion order is display order.
type TranscriptEntry struct {
	ID      string
	Role    Role
	Content string
	// Intent the intent which produced the entry; empty for user entries and "no action" notes
	Intent Intent
	// Source what produced the content: a model name, or a transformer name
	Source string
}

type TurnPhase int

const (
	// TurnPhaseIdle waiting for input
	TurnPhaseIdle = TurnPhase(iota)
	// TurnPhaseClassifying the Intent Classifier is running
	TurnPhaseClassifying
	// TurnPhaseDispatching handlers are running one after another
	TurnPhaseDispatching
	// TurnPhaseFailed a completion call failed; the turn can be retried from the failed step
	TurnPhaseFailed
)

func (p TurnPhase) String() string {
	switch p {
	case TurnPhaseIdle:
		return "idle"
	case TurnPhaseClassifying:
		return "classifying"
	case TurnPhaseDispatching:
		return "dispatching"
	case TurnPhaseFailed:
		return "failed"
	}
	return "unknown"
}

// IDGenerator produces unique transcript entry IDs.
type IDGenerator interface {
	NextID() string
}

// ConversationState is owned by exactly one session. The Router mutates it on every submission; nothing else
// should, except for SelectPoemParameters.
type ConversationState struct {
	// Transcript append-only
	Transcript []TranscriptEntry
	// CurrentPoem nil until a poem is generated
	CurrentPoem *string
	// CompletedIntents intents already actioned in the current turn
	CompletedIntents IntentSet
	// PendingPoemParameters selected by the user; consumed by the next generation
	PendingPoemParameters *PoemParameters
	Phase                 TurnPhase
	// LastError why the current turn failed (only in TurnPhaseFailed)
	LastError error

	turn        *turn
	idGenerator IDGenerator
}

// What the Router needs to resume a failed turn.
type turn struct {
	query          string
	classification *Classification
}

// NewConversationState `idGenerator` can be nil, in which case entry IDs are sequence numbers.
func NewConversationState(idGenerator IDGenerator) *ConversationState {
	return &ConversationState{
		CompletedIntents: NewIntentSet(),
		Phase:            TurnPhaseIdle,
		idGenerator:      idGenerator,
	}
}

func (s *ConversationState) HasPoem() bool {
	return s.CurrentPoem != nil
}

// Poem returns the current poem, or an empty string if there's none.
func (s *ConversationState) Poem() string {
	if s.CurrentPoem == nil {
		return ""
	}
	return *s.CurrentPoem
}

// SelectPoemParameters remembers the user's choice for the next generation. Empty fields keep the previous
// selection; non-empty ones must belong to their enumerations.
func (s *ConversationState) SelectPoemParameters(params PoemParameters) error {
	if err := params.MergedWith(DefaultPoemParameters).Validate(); err != nil {
		return err
	}
	if s.PendingPoemParameters != nil {
		params = params.MergedWith(*s.PendingPoemParameters)
	}
	s.PendingPoemParameters = &params
	return nil
}

func (s *ConversationState) setPoem(poem string) {
	s.CurrentPoem = &poem
}

func (s *ConversationState) appendEntry(role Role, content string, intent Intent, source string) {
	s.Transcript = append(s.Transcript, TranscriptEntry{
		ID:      s.nextID(),
		Role:    role,
		Content: content,
		Intent:  intent,
		Source:  source,
	})
}

func (s *ConversationState) nextID() string {
	if s.idGenerator == nil {
		return strconv.Itoa(len(s.Transcript) + 1)
	}
	return s.idGenerator.NextID()
}
