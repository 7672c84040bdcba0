package domain

import (
	"strings"

	"kgeyst.com/muse/pkg/common"
)

// Intent is a canonical label naming which action a user query requests.
type Intent string

const (
	IntentGeneratePoem = Intent("generate_poem")
	IntentTrimPoem     = Intent("trim_poem")
	IntentRecapitalize = Intent("recapitalize")
	IntentDecapitalize = Intent("decapitalize")
	IntentPoemQuery    = Intent("poem_query")
	IntentGeneralQuery = Intent("general_query")
)

// CanonicalIntentOrder is the fixed dispatch precedence. The classifier's output order never matters.
var CanonicalIntentOrder = []Intent{
	IntentGeneratePoem,
	IntentTrimPoem,
	IntentRecapitalize,
	IntentDecapitalize,
	IntentPoemQuery,
	IntentGeneralQuery,
}

// Phrasings models tend to produce instead of the canonical labels.
var intentAliases = map[string]Intent{
	"generate a poem":   IntentGeneratePoem,
	"generate poem":     IntentGeneratePoem,
	"poem generation":   IntentGeneratePoem,
	"write a poem":      IntentGeneratePoem,
	"trim a poem":       IntentTrimPoem,
	"trim poem":         IntentTrimPoem,
	"trim":              IntentTrimPoem,
	"trimming poem":     IntentTrimPoem,
	"capitalize":        IntentRecapitalize,
	"capitalize text":   IntentRecapitalize,
	"uppercase":         IntentRecapitalize,
	"decapitalize text": IntentDecapitalize,
	"lowercase":         IntentDecapitalize,
	"poem query":        IntentPoemQuery,
	"handle_poem_query": IntentPoemQuery,
	"general query":     IntentGeneralQuery,
}

func (i Intent) String() string {
	return string(i)
}

// ParseIntent maps a raw label returned by a language model onto the closed Intent vocabulary.
// Returns false for anything outside of it.
func ParseIntent(label string) (Intent, bool) {
	label = trimLabel(label)
	label = common.RemoveDoubleQuotesIfAny(label)
	label = common.RemoveSingleQuotesIfAny(label)
	label = strings.ToLower(trimLabel(label))
	for _, intent := range CanonicalIntentOrder {
		if label == string(intent) {
			return intent, true
		}
	}
	intent, ok := intentAliases[label]
	return intent, ok
}

// IntentSet is an unordered collection of intents; duplicates collapse.
type IntentSet map[Intent]struct{}

func NewIntentSet(intents ...Intent) IntentSet {
	set := make(IntentSet, len(intents))
	for _, intent := range intents {
		set.Add(intent)
	}
	return set
}

func (s IntentSet) Add(intent Intent) {
	s[intent] = struct{}{}
}

func (s IntentSet) Contains(intent Intent) bool {
	_, ok := s[intent]
	return ok
}

// Ordered returns the members in CanonicalIntentOrder.
func (s IntentSet) Ordered() []Intent {
	result := make([]Intent, 0, len(s))
	for _, intent := range CanonicalIntentOrder {
		if s.Contains(intent) {
			result = append(result, intent)
		}
	}
	return result
}

func (s IntentSet) Strings() []string {
	ordered := s.Ordered()
	result := make([]string, 0, len(ordered))
	for _, intent := range ordered {
		result = append(result, string(intent))
	}
	return result
}

func trimLabel(label string) string {
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(label), "."))
}
