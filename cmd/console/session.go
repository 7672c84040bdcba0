package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"kgeyst.com/muse/pkg/muse/api"
	"kgeyst.com/muse/pkg/muse/domain"
)

const helpText = `:style X, :mood X, :purpose X, :tone X   select a poem parameter for the next poem
:options                                  list the allowed parameter values
:retry                                    retry the last failed query
:poem                                     show the current poem
:log                                      show the whole conversation
:forget                                   start over
:quit                                     exit`

// One console session is one conversation.
type session struct {
	muse           api.API
	conversationID string
	out            io.Writer
}

func newSession(muse api.API, conversationID string, out io.Writer) *session {
	return &session{
		muse:           muse,
		conversationID: conversationID,
		out:            out,
	}
}

func (s *session) handle(ctx context.Context, line string) {
	if !strings.HasPrefix(line, ":") {
		entries, err := s.muse.Submit(ctx, s.conversationID, line)
		s.printEntries(entries)
		s.printError(err)
		return
	}
	command, argument, _ := strings.Cut(line[1:], " ")
	argument = strings.TrimSpace(argument)
	switch command {
	case "style", "mood", "purpose", "tone":
		s.selectPoemParameter(command, argument)
	case "options":
		s.printOptions()
	case "retry":
		entries, err := s.muse.Retry(ctx, s.conversationID)
		if errors.Is(err, domain.ErrNothingToRetry) {
			s.println("Nothing to retry.")
			return
		}
		s.printEntries(entries)
		s.printError(err)
	case "poem":
		poem := s.muse.Poem(s.conversationID)
		if poem == "" {
			poem = domain.NoPoemAvailableMessage
		}
		s.println(poem)
	case "log":
		for _, entry := range s.muse.Transcript(s.conversationID) {
			s.println(fmt.Sprintf("[%s] %s", entry.Role, entry.Content))
		}
	case "forget":
		s.muse.ForgetConversation(s.conversationID)
		s.println("Forgotten.")
	default:
		s.println(helpText)
	}
}

func (s *session) selectPoemParameter(name, value string) {
	var (
		params domain.PoemParameters
		ok     bool
	)
	switch name {
	case "style":
		params.Style, ok = domain.ParseStyle(value)
	case "mood":
		params.Mood, ok = domain.ParseMood(value)
	case "purpose":
		params.Purpose, ok = domain.ParsePurpose(value)
	case "tone":
		params.Tone, ok = domain.ParseTone(value)
	}
	if !ok {
		s.println(fmt.Sprintf("Unknown %s %q. See :options.", name, value))
		return
	}
	if err := s.muse.SelectPoemParameters(s.conversationID, params); err != nil {
		s.printError(err)
		return
	}
	s.println(fmt.Sprintf("The next poem's %s: %s.", name, value))
}

func (s *session) printOptions() {
	s.println("styles: " + joinValues(domain.AllStyles()))
	s.println("moods: " + joinValues(domain.AllMoods()))
	s.println("purposes: " + joinValues(domain.AllPurposes()))
	s.println("tones: " + joinValues(domain.AllTones()))
}

// The user's own entry is already on screen.
func (s *session) printEntries(entries []domain.TranscriptEntry) {
	for _, entry := range entries {
		if entry.Role == domain.RoleUser {
			continue
		}
		s.println(entry.Content)
		if entry.Intent == domain.IntentGeneratePoem {
			s.println(fmt.Sprintf("(an original creation by %s)", entry.Source))
		}
	}
}

func (s *session) printError(err error) {
	if err == nil {
		return
	}
	if domain.IsRetryable(err) {
		s.println(fmt.Sprintf("Error: %s. Type :retry to try again.", err))
		return
	}
	s.println(fmt.Sprintf("Error: %s.", err))
}

func (s *session) println(text string) {
	_, _ = fmt.Fprintln(s.out, text)
}

func joinValues[T ~string](values []T) string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		result = append(result, string(value))
	}
	return strings.Join(result, ", ")
}
