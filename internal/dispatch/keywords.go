package dispatch

import (
	"errors"
	"strings"
)

var ErrNoKeywords = errors.New("Please enter at least one keyword")

// ParseKeywords splits free-form input on newlines, trims each line and drops
// the blank ones.
func ParseKeywords(input string) ([]string, error) {
	var keywords []string
	for _, line := range strings.Split(input, "\n") {
		if kw := strings.TrimSpace(line); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	if len(keywords) == 0 {
		return nil, ErrNoKeywords
	}
	return keywords, nil
}

// CleanKeywords applies the same trimming to an already split list.
func CleanKeywords(keywords []string) ([]string, error) {
	return ParseKeywords(strings.Join(keywords, "\n"))
}
