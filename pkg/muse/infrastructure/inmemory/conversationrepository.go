package inmemory

import (
	"sync"

	"kgeyst.com/muse/pkg/muse/domain"
)

type conversationRepository struct {
	mutex         sync.Mutex
	conversations map[string]*domain.ConversationState
	idGenerator   domain.IDGenerator
}

// NewConversationRepository new conversations get transcript entry IDs from `idGenerator`.
func NewConversationRepository(idGenerator domain.IDGenerator) domain.ConversationRepository {
	return &conversationRepository{
		conversations: make(map[string]*domain.ConversationState),
		idGenerator:   idGenerator,
	}
}

func (r *conversationRepository) FindOrCreate(conversationID string) *domain.ConversationState {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	state, ok := r.conversations[conversationID]
	if !ok {
		state = domain.NewConversationState(r.idGenerator)
		r.conversations[conversationID] = state
	}
	return state
}

func (r *conversationRepository) Find(conversationID string) *domain.ConversationState {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.conversations[conversationID]
}

func (r *conversationRepository) Remove(conversationID string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	delete(r.conversations, conversationID)
}

func (r *conversationRepository) RemoveAll() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.conversations = make(map[string]*domain.ConversationState)
}
