package common

// RemoveSingleQuotesIfAny strips one pair of surrounding single quotes.
func RemoveSingleQuotesIfAny(str string) string {
	// Sometimes, the model returns a label as "'Hello'"
	if len(str) >= 2 && str[0] == '\'' && str[len(str)-1] == '\'' {
		str = str[1 : len(str)-1]
	}
	return str
}

// RemoveDoubleQuotesIfAny strips one pair of surrounding double quotes.
func RemoveDoubleQuotesIfAny(str string) string {
	// Sometimes, the model returns a label as "\"Hello\""
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}
	return str
}
