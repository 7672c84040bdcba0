package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"kgeyst.com/muse/pkg/common"
)

const classifyToolName = "classify_query"

// ClassifierMode how the Intent Classifier asks the model for labels.
type ClassifierMode string

const (
	// ClassifierModeTools the model calls a function whose arguments carry the labels (structured output)
	ClassifierModeTools = ClassifierMode("tools")
	// ClassifierModeText the model replies with comma-separated labels (free text)
	ClassifierModeText = ClassifierMode("text")
)

const defaultClassifierSystemPrompt = "You are a poetic agent who analyzes the user query and then routes it to the available actions. " +
	"A query may ask for several actions at once."

// SchemaReflector produces a JSON Schema for the given Go value. Values which implement EnumProvider
// get their enumerations applied.
type SchemaReflector interface {
	Reflect(v any) any
}

// EnumProvider lists the allowed values of some JSON properties (for arrays: of their items).
type EnumProvider interface {
	JSONSchemaEnums() map[string][]string
}

// ClassificationArguments the arguments of the classification tool.
type ClassificationArguments struct {
	Intents []string `json:"intents" jsonschema_description:"Every action the user asks for. Use an empty list if none applies."`
	Theme   string   `json:"theme,omitempty" jsonschema_description:"What the requested poem should be about, if the user asks for a poem."`
	Style   string   `json:"style,omitempty" jsonschema_description:"The style of the requested poem, only if the user mentions one."`
	Mood    string   `json:"mood,omitempty" jsonschema_description:"The mood of the requested poem, only if the user mentions one."`
	Purpose string   `json:"purpose,omitempty" jsonschema_description:"Who or what the requested poem is for, only if the user mentions it."`
	Tone    string   `json:"tone,omitempty" jsonschema_description:"The tone of the requested poem, only if the user mentions one."`
}

func (ClassificationArguments) JSONSchemaEnums() map[string][]string {
	return map[string][]string{
		"intents": stringsOf(CanonicalIntentOrder),
		"style":   stringsOf(allStyles),
		"mood":    stringsOf(allMoods),
		"purpose": stringsOf(allPurposes),
		"tone":    stringsOf(allTones),
	}
}

func stringsOf[T ~string](values []T) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		result = append(result, string(value))
	}
	return result
}

// Classification the result of classifying a single user query.
type Classification struct {
	Intents IntentSet
	// Theme what the poem should be about; empty if the model didn't extract one
	Theme string
	// Parameters poem parameters mentioned in the query; fields are empty unless mentioned
	Parameters PoemParameters
}

// IntentClassifier maps a free-text query to a set of canonical intents.
type IntentClassifier struct {
	languageModel   LanguageModel
	schemaReflector SchemaReflector
	mode            ClassifierMode
	systemPrompt    string
	logger          common.Logger
}

func NewIntentClassifier(
	languageModel LanguageModel,
	schemaReflector SchemaReflector,
	config *common.Config,
	logger common.Logger,
) *IntentClassifier {
	mode := ClassifierMode(config.GetStringOrDefault(ConfigKeyClassifierMode, string(ClassifierModeTools)))
	if mode != ClassifierModeText {
		mode = ClassifierModeTools
	}
	return &IntentClassifier{
		languageModel:   languageModel,
		schemaReflector: schemaReflector,
		mode:            mode,
		systemPrompt:    config.GetStringOrDefault(ConfigKeyClassifierSystemPrompt, defaultClassifierSystemPrompt),
		logger:          logger,
	}
}

// Classify never returns labels outside the closed vocabulary. An empty set is a valid outcome.
// The underlying model is not deterministic: repeated calls with the same query may disagree.
func (c *IntentClassifier) Classify(ctx context.Context, userQuery string) (*Classification, error) {
	var (
		classification *Classification
		err            error
	)
	if c.mode == ClassifierModeText {
		classification, err = c.classifyWithText(ctx, userQuery)
	} else {
		classification, err = c.classifyWithTools(ctx, userQuery)
	}
	if err != nil {
		return nil, err
	}
	c.logger.Log("query classified",
		zap.String("mode", string(c.mode)),
		zap.Strings("intents", classification.Intents.Strings()),
	)
	return classification, nil
}

func (c *IntentClassifier) classifyWithTools(ctx context.Context, userQuery string) (*Classification, error) {
	tool := ToolDesc{
		Name:        classifyToolName,
		Description: "Classify the user's query into one or more actions and extract the poem details it mentions.",
		Parameters:  c.schemaReflector.Reflect(ClassificationArguments{}),
	}
	completion, err := c.languageModel.Complete(ctx, c.systemPrompt, userQuery, DefaultCompleteOptions.WithTools(tool))
	if err != nil {
		return nil, err
	}
	toolCall, ok := completion.ToolCall(classifyToolName)
	if !ok {
		return nil, NewMalformedResponseError("no classification tool call", completion.Text)
	}
	var arguments ClassificationArguments
	if err := json.Unmarshal([]byte(toolCall.Arguments), &arguments); err != nil {
		return nil, NewMalformedResponseError(fmt.Sprintf("classification arguments: %v", err), toolCall.Arguments)
	}
	classification := &Classification{
		Intents:    NewIntentSet(),
		Theme:      strings.TrimSpace(arguments.Theme),
		Parameters: ParsePoemParameters(arguments.Style, arguments.Mood, arguments.Purpose, arguments.Tone),
	}
	for _, label := range arguments.Intents {
		c.addLabel(classification.Intents, label)
	}
	return classification, nil
}

func (c *IntentClassifier) classifyWithText(ctx context.Context, userQuery string) (*Classification, error) {
	prompt := fmt.Sprintf(
		"Classify the following user query into one or more of these categories: %s.\n\nUser query: %s\n\nCategories (comma-separated if multiple):",
		strings.Join(stringsOf(CanonicalIntentOrder), ", "),
		userQuery,
	)
	completion, err := c.languageModel.Complete(ctx, c.systemPrompt, prompt, DefaultCompleteOptions)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(completion.Text)
	if text == "" {
		return nil, NewMalformedResponseError("empty classification", completion.Text)
	}
	classification := &Classification{Intents: NewIntentSet()}
	for _, label := range common.SplitAny(strings.ToLower(text), []string{",", "\n", ";", " and ", " then "}) {
		c.addLabel(classification.Intents, strings.TrimLeft(label, "-*• "))
	}
	return classification, nil
}

func (c *IntentClassifier) addLabel(intents IntentSet, label string) {
	intent, ok := ParseIntent(label)
	if !ok {
		c.logger.Log("discarded unknown intent label", zap.String("label", label))
		return
	}
	intents.Add(intent)
}
