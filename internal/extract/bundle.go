package extract

import "github.com/spacesedan/researchflow/internal/models"

// SocialBundle extracts the Twitter, LinkedIn and Instagram sections of raw.
func SocialBundle(raw string) models.ContentBundle {
	return Bundle(raw, SocialHeaders)
}

// Bundle extracts headers from raw and keeps them in header order.
func Bundle(raw string, headers []string) models.ContentBundle {
	sections := Extract(raw, headers)
	bundle := models.ContentBundle{Channels: make([]models.ChannelContent, 0, len(headers))}
	for _, h := range headers {
		bundle.Channels = append(bundle.Channels, models.ChannelContent{
			Label: Label(h),
			Text:  sections[h],
		})
	}
	return bundle
}

// Misses counts the sections of b that hold a placeholder.
func Misses(b models.ContentBundle) int {
	n := 0
	for _, c := range b.Channels {
		if c.Text == Placeholder(c.Label) {
			n++
		}
	}
	return n
}
