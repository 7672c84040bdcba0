package domain

var DefaultCompleteOptions = CompleteOptions{}

type CompleteOptions struct {
	// Temperature how creative the output is; 0 means the provider's default
	Temperature float64
	// MaxTokens the completion length limit; 0 means the provider client's default
	MaxTokens int
	// Tools if not empty, the model is expected to reply with a call to one of them
	Tools []ToolDesc
}

func (c CompleteOptions) WithTemperature(value float64) CompleteOptions {
	c.Temperature = value
	return c
}

func (c CompleteOptions) WithMaxTokens(value int) CompleteOptions {
	c.MaxTokens = value
	return c
}

func (c CompleteOptions) WithTools(tools ...ToolDesc) CompleteOptions {
	c.Tools = tools
	return c
}

func (c CompleteOptions) TemperatureOrDefault(defaultValue float64) float64 {
	if c.Temperature == 0.0 {
		return defaultValue
	}
	return c.Temperature
}

func (c CompleteOptions) MaxTokensOrDefault(defaultValue int) int {
	if c.MaxTokens <= 0 {
		return defaultValue
	}
	return c.MaxTokens
}
