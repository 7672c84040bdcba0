package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPoemParameters = errors.New("invalid poem parameters")

type (
	Style   string
	Mood    string
	Tone    string
	Purpose string
)

var allStyles = []Style{"classic", "modern", "haiku", "free verse", "sonnet", "limerick"}

var allMoods = []Mood{"happy", "sad", "romantic", "inspirational", "nostalgic"}

var allTones = []Tone{"formal", "informal", "serious", "humorous", "sentimental", "playful"}

var allPurposes = []Purpose{
	"a gift", "personal reflection", "a celebration", "a memorial", "a story",
	"parents", "siblings", "lovers", "friends", "children",
	"colleagues", "a special occasion", "a wedding", "an anniversary",
	"a birthday", "a graduation", "a farewell", "encouragement",
	"appreciation", "apology", "condolence", "retirement",
	"a boss", "a team manager", "professional recognition", "a work anniversary", "leisure time",
}

func AllStyles() []Style     { return append([]Style(nil), allStyles...) }
func AllMoods() []Mood       { return append([]Mood(nil), allMoods...) }
func AllTones() []Tone       { return append([]Tone(nil), allTones...) }
func AllPurposes() []Purpose { return append([]Purpose(nil), allPurposes...) }

func ParseStyle(value string) (Style, bool)     { return parseEnum(value, allStyles) }
func ParseMood(value string) (Mood, bool)       { return parseEnum(value, allMoods) }
func ParseTone(value string) (Tone, bool)       { return parseEnum(value, allTones) }
func ParsePurpose(value string) (Purpose, bool) { return parseEnum(value, allPurposes) }

func parseEnum[T ~string](value string, all []T) (T, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range all {
		if string(candidate) == value {
			return candidate, true
		}
	}
	var zero T
	return zero, false
}

func isMember[T ~string](value T, all []T) bool {
	for _, candidate := range all {
		if candidate == value {
			return true
		}
	}
	return false
}

// PoemParameters steer the Poem Generator. An empty field means "not chosen yet".
type PoemParameters struct {
	Style   Style
	Mood    Mood
	Purpose Purpose
	Tone    Tone
}

// DefaultPoemParameters the first value of every enumeration.
var DefaultPoemParameters = PoemParameters{
	Style:   allStyles[0],
	Mood:    allMoods[0],
	Purpose: allPurposes[0],
	Tone:    allTones[0],
}

// ParsePoemParameters keeps only the fields which belong to their enumerations; the rest are left empty.
func ParsePoemParameters(style, mood, purpose, tone string) PoemParameters {
	var params PoemParameters
	params.Style, _ = ParseStyle(style)
	params.Mood, _ = ParseMood(mood)
	params.Purpose, _ = ParsePurpose(purpose)
	params.Tone, _ = ParseTone(tone)
	return params
}

// Validate requires every field to be set and to belong to its enumeration.
func (p PoemParameters) Validate() error {
	if !isMember(p.Style, allStyles) {
		return fmt.Errorf("%w: style %q", ErrInvalidPoemParameters, p.Style)
	}
	if !isMember(p.Mood, allMoods) {
		return fmt.Errorf("%w: mood %q", ErrInvalidPoemParameters, p.Mood)
	}
	if !isMember(p.Purpose, allPurposes) {
		return fmt.Errorf("%w: purpose %q", ErrInvalidPoemParameters, p.Purpose)
	}
	if !isMember(p.Tone, allTones) {
		return fmt.Errorf("%w: tone %q", ErrInvalidPoemParameters, p.Tone)
	}
	return nil
}

// MergedWith fills the empty fields of `p` from `fallback`.
func (p PoemParameters) MergedWith(fallback PoemParameters) PoemParameters {
	if p.Style == "" {
		p.Style = fallback.Style
	}
	if p.Mood == "" {
		p.Mood = fallback.Mood
	}
	if p.Purpose == "" {
		p.Purpose = fallback.Purpose
	}
	if p.Tone == "" {
		p.Tone = fallback.Tone
	}
	return p
}

func (p PoemParameters) IsEmpty() bool {
	return p == PoemParameters{}
}
