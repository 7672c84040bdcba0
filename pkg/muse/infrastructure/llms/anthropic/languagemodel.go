package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"kgeyst.com/muse/pkg/common"
	"kgeyst.com/muse/pkg/muse/domain"
	llmcommon "kgeyst.com/muse/pkg/muse/infrastructure/llms/common"
)

const (
	providerName     = "anthropic"
	defaultModel     = string(anthropic.ModelClaudeSonnet4_5)
	defaultMaxTokens = 1000
	apiKeyEnv        = "ANTHROPIC_API_KEY"
)

type languageModel struct {
	client          anthropic.Client
	model           string
	maxTokens       int
	responseTimeout time.Duration
}

// NewLanguageModel a Completion Client for the Anthropic messages API.
func NewLanguageModel(config *common.Config) (domain.LanguageModel, error) {
	apiKey := config.GetStringOrEnv(domain.ConfigKeyLLMAPIKey, apiKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%s (set %s): %w", providerName, apiKeyEnv, llmcommon.ErrMissingAPIKey)
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL := config.GetString(domain.ConfigKeyLLMBaseURL); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &languageModel{
		client:          anthropic.NewClient(opts...),
		model:           config.GetStringOrDefault(domain.ConfigKeyLLMModel, defaultModel),
		maxTokens:       config.GetIntOrDefault(domain.ConfigKeyLLMMaxTokens, defaultMaxTokens),
		responseTimeout: config.GetDurationOrDefault(domain.ConfigKeyLLMResponseTimeout, time.Minute),
	}, nil
}

func (l *languageModel) Name() string {
	return l.model
}

func (l *languageModel) Complete(ctx context.Context, systemPrompt, userPrompt string, options domain.CompleteOptions) (*domain.Completion, error) {
	ctx, cancel := context.WithTimeout(ctx, l.responseTimeout)
	defer cancel()
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(l.model),
		MaxTokens: int64(options.MaxTokensOrDefault(l.maxTokens)),
		Messages: []anthropic.MessageParam{{
			Role:    anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(userPrompt)},
		}},
	}
	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Type: "text", Text: systemPrompt}}
	}
	if options.Temperature != 0 {
		params.Temperature = anthropic.Float(options.Temperature)
	}
	if len(options.Tools) > 0 {
		tools, err := convertTools(options.Tools)
		if err != nil {
			return nil, err
		}
		params.Tools = tools
		params.ToolChoice = anthropic.ToolChoiceUnionParam{OfAny: &anthropic.ToolChoiceAnyParam{}}
	}
	response, err := l.client.Messages.New(ctx, params)
	if err != nil {
		return nil, toProviderError(err)
	}
	var (
		text      strings.Builder
		toolCalls []domain.ToolCall
	)
	for _, block := range response.Content {
		switch block.Type {
		case "text":
			text.WriteString(block.Text)
		case "tool_use":
			toolCalls = append(toolCalls, domain.ToolCall{
				Name:      block.Name,
				Arguments: string(block.Input),
			})
		}
	}
	if text.Len() == 0 && len(toolCalls) == 0 {
		return nil, domain.NewMalformedResponseError("no text or tool_use blocks", response.RawJSON())
	}
	return &domain.Completion{Text: text.String(), ToolCalls: toolCalls}, nil
}

// The input schema is sent as separate "properties" and "required" fields.
type inputSchema struct {
	Properties map[string]any `json:"properties"`
	Required   []string       `json:"required"`
}

func convertTools(tools []domain.ToolDesc) ([]anthropic.ToolUnionParam, error) {
	result := make([]anthropic.ToolUnionParam, len(tools))
	for i, tool := range tools {
		var schema inputSchema
		if tool.Parameters != nil {
			data, err := json.Marshal(tool.Parameters)
			if err != nil {
				return nil, fmt.Errorf("tool %q parameters: %w", tool.Name, err)
			}
			if err := json.Unmarshal(data, &schema); err != nil {
				return nil, fmt.Errorf("tool %q parameters: %w", tool.Name, err)
			}
		}
		result[i] = anthropic.ToolUnionParam{
			OfTool: &anthropic.ToolParam{
				Name:        tool.Name,
				Description: anthropic.String(tool.Description),
				InputSchema: anthropic.ToolInputSchemaParam{
					Type:       "object",
					Properties: schema.Properties,
					Required:   schema.Required,
				},
			},
		}
	}
	return result, nil
}

func toProviderError(err error) error {
	var apiError *anthropic.Error
	if errors.As(err, &apiError) {
		return llmcommon.NewProviderError(providerName, apiError.StatusCode, err)
	}
	return llmcommon.NewProviderError(providerName, 0, err)
}
