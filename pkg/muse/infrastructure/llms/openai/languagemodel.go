package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"kgeyst.com/muse/pkg/common"
	"kgeyst.com/muse/pkg/muse/domain"
	llmcommon "kgeyst.com/muse/pkg/muse/infrastructure/llms/common"
)

const (
	providerName     = "openai"
	defaultModel     = "gpt-4-turbo"
	defaultMaxTokens = 1000
	apiKeyEnv        = "OPENAI_API_KEY"
)

type languageModel struct {
	client          openai.Client
	model           string
	maxTokens       int
	responseTimeout time.Duration
}

// NewLanguageModel a Completion Client for the OpenAI chat completions API (and compatible servers, see
// domain.ConfigKeyLLMBaseURL). The SDK's own retries are disabled: see the retrying decorator.
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
		client:          openai.NewClient(opts...),
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
	params := openai.ChatCompletionNewParams{
		Model: l.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		MaxCompletionTokens: openai.Int(int64(options.MaxTokensOrDefault(l.maxTokens))),
	}
	if options.Temperature != 0 {
		params.Temperature = openai.Float(options.Temperature)
	}
	if len(options.Tools) > 0 {
		tools, err := convertTools(options.Tools)
		if err != nil {
			return nil, err
		}
		params.Tools = tools
		params.ToolChoice = openai.ChatCompletionToolChoiceOptionUnionParam{OfAuto: openai.String("required")}
	}
	response, err := l.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, toProviderError(err)
	}
	if len(response.Choices) == 0 {
		return nil, domain.NewMalformedResponseError("no choices", response.RawJSON())
	}
	message := response.Choices[0].Message
	completion := &domain.Completion{Text: message.Content}
	for _, toolCall := range message.ToolCalls {
		completion.ToolCalls = append(completion.ToolCalls, domain.ToolCall{
			Name:      toolCall.Function.Name,
			Arguments: toolCall.Function.Arguments,
		})
	}
	if completion.Text == "" && len(completion.ToolCalls) == 0 {
		return nil, domain.NewMalformedResponseError("empty message", response.RawJSON())
	}
	return completion, nil
}

func convertTools(tools []domain.ToolDesc) ([]openai.ChatCompletionToolParam, error) {
	result := make([]openai.ChatCompletionToolParam, len(tools))
	for i, tool := range tools {
		var parameters shared.FunctionParameters
		if tool.Parameters != nil {
			data, err := json.Marshal(tool.Parameters)
			if err != nil {
				return nil, fmt.Errorf("tool %q parameters: %w", tool.Name, err)
			}
			if err := json.Unmarshal(data, &parameters); err != nil {
				return nil, fmt.Errorf("tool %q parameters: %w", tool.Name, err)
			}
		}
		result[i] = openai.ChatCompletionToolParam{
			Function: shared.FunctionDefinitionParam{
				Name:        tool.Name,
				Description: openai.String(tool.Description),
				Parameters:  parameters,
			},
		}
	}
	return result, nil
}

func toProviderError(err error) error {
	var apiError *openai.Error
	if errors.As(err, &apiError) {
		return llmcommon.NewProviderError(providerName, apiError.StatusCode, err)
	}
	return llmcommon.NewProviderError(providerName, 0, err)
}
