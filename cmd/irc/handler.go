package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kgeyst.com/muse/pkg/common"
	"kgeyst.com/muse/pkg/muse/api"
	"kgeyst.com/muse/pkg/muse/domain"
)

const borkedMessage = "I'm borked :("

// enqueuer a common.JobQueue in production.
type enqueuer interface {
	Enqueue(job common.Job)
}

// messageHandler turns channel messages addressed to the bot into turns of the sender's conversation. Turns run
// on a single job queue, so no conversation ever sees two overlapping turns.
type messageHandler struct {
	muse      api.API
	agentName string
	jobQueue  enqueuer
}

func newMessageHandler(muse api.API, agentName string, jobQueue enqueuer) *messageHandler {
	return &messageHandler{
		muse:      muse,
		agentName: agentName,
		jobQueue:  jobQueue,
	}
}

// handle returns false if the message was addressed to the bot (so that no other trigger should process it).
func (h *messageHandler) handle(from, content string, reply func(line string)) bool {
	what, ok := addressedQuery(h.agentName, content)
	if !ok {
		return true
	}
	who := strings.TrimSpace(from)
	h.jobQueue.Enqueue(func() error {
		lines, err := h.respond(who, what)
		for _, line := range lines {
			reply(who + ": " + line)
		}
		return err
	})
	return false
}

func (h *messageHandler) respond(who, what string) ([]string, error) {
	ctx := context.Background()
	command, argument, _ := strings.Cut(what, " ")
	switch strings.ToLower(command) {
	case "retry":
		entries, err := h.muse.Retry(ctx, who)
		if errors.Is(err, domain.ErrNothingToRetry) {
			return []string{"nothing to retry"}, nil
		}
		return responseLines(entries, err), err
	case "forget":
		h.muse.ForgetConversation(who)
		return []string{"forgotten"}, nil
	case "poem":
		poem := h.muse.Poem(who)
		if poem == "" {
			poem = domain.NoPoemAvailableMessage
		}
		return splitLines(poem), nil
	case "style", "mood", "purpose", "tone":
		var params domain.PoemParameters
		value := strings.TrimSpace(argument)
		switch strings.ToLower(command) {
		case "style":
			params.Style, _ = domain.ParseStyle(value)
		case "mood":
			params.Mood, _ = domain.ParseMood(value)
		case "purpose":
			params.Purpose, _ = domain.ParsePurpose(value)
		case "tone":
			params.Tone, _ = domain.ParseTone(value)
		}
		if params.IsEmpty() {
			// Not a known value: treat the message as an ordinary query ("style of this poem?").
			break
		}
		if err := h.muse.SelectPoemParameters(who, params); err != nil {
			return []string{err.Error()}, err
		}
		return []string{fmt.Sprintf("the next poem's %s: %s", strings.ToLower(command), value)}, nil
	}
	entries, err := h.muse.Submit(ctx, who, what)
	return responseLines(entries, err), err
}

// addressedQuery extracts the query from messages like "Muse, write a haiku".
func addressedQuery(agentName, content string) (string, bool) {
	if !strings.HasPrefix(strings.ToLower(content), strings.ToLower(agentName)) {
		return "", false
	}
	rest := content[len(agentName):]
	// "Musette, hi" isn't addressed to "Muse".
	if rest != "" && !strings.ContainsAny(rest[:1], ",: ") {
		return "", false
	}
	what := strings.TrimSpace(rest)
	what = strings.TrimSpace(strings.TrimLeft(what, ",:"))
	if what == "" || what[0] == '@' {
		return "", false
	}
	return what, true
}

// IRC messages are single-line.
func responseLines(entries []domain.TranscriptEntry, err error) []string {
	var lines []string
	for _, entry := range entries {
		if entry.Role == domain.RoleUser {
			continue
		}
		lines = append(lines, splitLines(entry.Content)...)
	}
	if err != nil {
		lines = append(lines, borkedMessage)
		if domain.IsRetryable(err) {
			lines = append(lines, `say "retry" to try again`)
		}
	}
	return lines
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
