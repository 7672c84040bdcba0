package domain

// ConversationRepository keeps the state of every live conversation, keyed by an ID chosen by the front-end
// (a nick, a session name). States are never persisted beyond the process.
type ConversationRepository interface {
	// FindOrCreate returns the state for `conversationID`, creating an empty one on first use.
	FindOrCreate(conversationID string) *ConversationState
	// Find returns nil if there's no such conversation.
	Find(conversationID string) *ConversationState
	Remove(conversationID string)
	RemoveAll()
}
