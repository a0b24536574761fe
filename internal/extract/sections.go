// Package extract recovers per-channel sections from free-text model replies by
// splitting on literal headers. Segmentation is best-effort: a header that shows
// up out of order, partially, or inside another section's body is split wrongly
// and is left that way.
package extract

import (
	"fmt"
	"strings"
)

const (
	HEADER_TWITTER   = "Twitter Post:"
	HEADER_LINKEDIN  = "LinkedIn Post:"
	HEADER_INSTAGRAM = "Instagram Post:"
)

// SocialHeaders is the header order the social-posts prompt asks the model for.
var SocialHeaders = []string{HEADER_TWITTER, HEADER_LINKEDIN, HEADER_INSTAGRAM}

// Extract maps every header to the trimmed text that follows its first
// occurrence, up to its own next occurrence or the first occurrence of the
// following header. Only when the following header is absent from raw does the
// next later header that is present end the section instead. A following header
// that occurs only earlier in raw leaves the section running to end-of-text. A
// header missing from raw maps to Placeholder(header).
func Extract(raw string, headers []string) map[string]string {
	sections := make(map[string]string, len(headers))
	for i, header := range headers {
		_, after, found := strings.Cut(raw, header)
		if !found || header == "" {
			sections[header] = Placeholder(header)
			continue
		}

		body, _, _ := strings.Cut(after, header)
		for _, next := range headers[i+1:] {
			if next == "" || !strings.Contains(raw, next) {
				continue
			}
			if before, _, cut := strings.Cut(body, next); cut {
				body = before
			}
			break
		}
		sections[header] = strings.TrimSpace(body)
	}
	return sections
}

// Label turns "LinkedIn Post:" into "LinkedIn".
func Label(header string) string {
	label := strings.TrimSpace(header)
	label = strings.TrimSuffix(label, ":")
	label = strings.TrimSuffix(label, " Post")
	return strings.TrimSpace(label)
}

// Placeholder is the text used in place of a section the model did not produce.
func Placeholder(header string) string {
	return fmt.Sprintf("Error generating %s content", Label(header))
}
