package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kgeyst.com/muse/pkg/common"
	"kgeyst.com/muse/pkg/muse/domain"
)

// Runs jobs right away.
type syncEnqueuer struct {
	errs []error
}

func (s *syncEnqueuer) Enqueue(job common.Job) {
	s.errs = append(s.errs, job())
}

type fakeAPI struct {
	entries  []domain.TranscriptEntry
	err      error
	retryErr error
	calls    []string
	params   []domain.PoemParameters
}

func (f *fakeAPI) Submit(_ context.Context, conversationID, query string) ([]domain.TranscriptEntry, error) {
	f.calls = append(f.calls, conversationID+"/"+query)
	return f.entries, f.err
}

func (f *fakeAPI) Retry(_ context.Context, conversationID string) ([]domain.TranscriptEntry, error) {
	f.calls = append(f.calls, conversationID+"/retry")
	return f.entries, f.retryErr
}

func (f *fakeAPI) SelectPoemParameters(_ string, params domain.PoemParameters) error {
	f.params = append(f.params, params)
	return nil
}

func (f *fakeAPI) Poem(string) string {
	return ""
}

func (f *fakeAPI) Transcript(string) []domain.TranscriptEntry {
	return f.entries
}

func (f *fakeAPI) ForgetConversation(conversationID string) {
	f.calls = append(f.calls, conversationID+"/forget")
}

func (f *fakeAPI) ForgetAllConversations() {}

func TestAddressedQuery(t *testing.T) {
	tests := []struct {
		content string
		query   string
		ok      bool
	}{
		{"Muse, write a haiku", "write a haiku", true},
		{"muse: trim it", "trim it", true},
		{"MUSE retry", "retry", true},
		{"Muse,", "", false},
		{"Muse @someone", "", false},
		{"hello everyone", "", false},
		{"Musette, hi", "", false},
		{"Muse's poems are nice", "", false},
		{"Muse", "", false},
	}
	for _, test := range tests {
		t.Run(test.content, func(t *testing.T) {
			query, ok := addressedQuery("Muse", test.content)
			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.query, query)
		})
	}
}

func TestMessageHandler_SubmitsToSendersConversation(t *testing.T) {
	muse := &fakeAPI{entries: []domain.TranscriptEntry{
		{Role: domain.RoleUser, Content: "write a poem"},
		{Role: domain.RoleSystem, Content: "line one\n\nline two"},
	}}
	queue := &syncEnqueuer{}
	handler := newMessageHandler(muse, "Muse", queue)
	var replies []string

	consumed := !handler.handle(" alice ", "Muse, write a poem", func(line string) { replies = append(replies, line) })

	assert.True(t, consumed)
	assert.Equal(t, []string{"alice/write a poem"}, muse.calls)
	assert.Equal(t, []string{"alice: line one", "alice: line two"}, replies)
	assert.Equal(t, []error{nil}, queue.errs)
}

func TestMessageHandler_IgnoresOtherMessages(t *testing.T) {
	muse := &fakeAPI{}
	queue := &syncEnqueuer{}
	handler := newMessageHandler(muse, "Muse", queue)

	assert.True(t, handler.handle("alice", "hi bob", func(string) {}))
	assert.Empty(t, queue.errs)
	assert.Empty(t, muse.calls)
}

func TestMessageHandler_Failure(t *testing.T) {
	cause := &domain.ProviderError{Provider: "openai", StatusCode: 503, Retryable: true, Err: errors.New("unavailable")}
	muse := &fakeAPI{err: cause, entries: []domain.TranscriptEntry{{Role: domain.RoleUser, Content: "hi"}}}
	queue := &syncEnqueuer{}
	handler := newMessageHandler(muse, "Muse", queue)
	var replies []string

	handler.handle("alice", "Muse, hi", func(line string) { replies = append(replies, line) })

	assert.Equal(t, []string{"alice: " + borkedMessage, `alice: say "retry" to try again`}, replies)
	require.Len(t, queue.errs, 1)
	assert.ErrorIs(t, queue.errs[0], cause)
}

func TestMessageHandler_Commands(t *testing.T) {
	muse := &fakeAPI{retryErr: domain.ErrNothingToRetry}
	queue := &syncEnqueuer{}
	handler := newMessageHandler(muse, "Muse", queue)
	var replies []string
	reply := func(line string) { replies = append(replies, line) }

	handler.handle("alice", "Muse, retry", reply)
	handler.handle("alice", "Muse, forget", reply)
	handler.handle("alice", "Muse, poem", reply)
	handler.handle("alice", "Muse, style sonnet", reply)
	handler.handle("alice", "Muse, style of this poem?", reply)

	assert.Equal(t, []string{"alice/retry", "alice/forget", "alice/style of this poem?"}, muse.calls)
	assert.Equal(t, []domain.PoemParameters{{Style: "sonnet"}}, muse.params)
	assert.Equal(t, []string{
		"alice: nothing to retry",
		"alice: forgotten",
		"alice: " + domain.NoPoemAvailableMessage,
		"alice: the next poem's style: sonnet",
	}, replies)
}
