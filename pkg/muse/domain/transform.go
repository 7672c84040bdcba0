package domain

import "strings"

// Trim merges each pair of consecutive lines into one, separated by a single space. A trailing unpaired line
// is kept as is. Empty and single-line input is returned unchanged.
func Trim(poem string) string {
	lines := strings.Split(poem, "\n")
	if len(lines) < 2 {
		return poem
	}
	trimmed := make([]string, 0, (len(lines)+1)/2)
	for i := 0; i < len(lines); i += 2 {
		if i+1 < len(lines) {
			trimmed = append(trimmed, lines[i]+" "+lines[i+1])
		} else {
			trimmed = append(trimmed, lines[i])
		}
	}
	return strings.Join(trimmed, "\n")
}

func ToUpper(text string) string {
	return strings.ToUpper(text)
}

func ToLower(text string) string {
	return strings.ToLower(text)
}
