package domain

// A list of config keys supported by the core (front-end specific keys are declared next to the front-ends).

const (
	// ConfigKeyLogPath file path where to save the logs
	ConfigKeyLogPath = "logPath"
	// ConfigKeyLogLevel "debug" or "info"
	ConfigKeyLogLevel = "logLevel"
	// ConfigKeyLLMProvider "openai" or "anthropic"
	ConfigKeyLLMProvider = "llmProvider"
	// ConfigKeyLLMModel the model name as understood by the provider
	ConfigKeyLLMModel = "llmModel"
	// ConfigKeyLLMAPIKey the API key; usually taken from the environment instead
	ConfigKeyLLMAPIKey = "llmAPIKey"
	// ConfigKeyLLMBaseURL a custom API endpoint (proxies, compatible servers)
	ConfigKeyLLMBaseURL = "llmBaseURL"
	// ConfigKeyLLMMaxTokens the completion length limit
	ConfigKeyLLMMaxTokens = "llmMaxTokens"
	// ConfigKeyLLMTemperature how creative the poems are
	ConfigKeyLLMTemperature = "llmTemperature"
	// ConfigKeyLLMResponseTimeout when to give up on a single completion request, in milliseconds
	ConfigKeyLLMResponseTimeout = "llmResponseTimeout"
	// ConfigKeyResponseRetryCount how many times we should try to retrieve an answer from an LLM in case it fails
	// for a transient reason, before we finally return an error.
	ConfigKeyResponseRetryCount = "responseRetryCount"
	// ConfigKeyResponseRetryInitialInterval the first backoff interval between retries, in milliseconds
	ConfigKeyResponseRetryInitialInterval = "responseRetryInitialInterval"
	// ConfigKeyClassifierMode "tools" (function calling) or "text" (comma-separated labels)
	ConfigKeyClassifierMode = "classifierMode"
	// ConfigKeyClassifierSystemPrompt overrides the system prompt of the Intent Classifier
	ConfigKeyClassifierSystemPrompt = "classifierSystemPrompt"
	// ConfigKeyGeneratorSystemPrompt overrides the system prompt of the Poem Generator
	ConfigKeyGeneratorSystemPrompt = "generatorSystemPrompt"
	// ConfigKeyAnswererSystemPrompt overrides the system prompt used for questions about the poem
	ConfigKeyAnswererSystemPrompt = "answererSystemPrompt"
	// ConfigKeyGeneralSystemPrompt overrides the system prompt used for general questions
	ConfigKeyGeneralSystemPrompt = "generalSystemPrompt"
	// ConfigKeyDefaultStyle the style used when neither the query nor the user's selection specify one
	ConfigKeyDefaultStyle = "defaultStyle"
	// ConfigKeyDefaultMood see ConfigKeyDefaultStyle
	ConfigKeyDefaultMood = "defaultMood"
	// ConfigKeyDefaultPurpose see ConfigKeyDefaultStyle
	ConfigKeyDefaultPurpose = "defaultPurpose"
	// ConfigKeyDefaultTone see ConfigKeyDefaultStyle
	ConfigKeyDefaultTone = "defaultTone"
)
