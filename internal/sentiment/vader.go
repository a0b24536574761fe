// Package sentiment labels news articles with a VADER compound score.
package sentiment

import (
	"html"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
	"github.com/spacesedan/researchflow/internal/models"
)

const (
	POSITIVE_THRESHOLD = 0.20
	NEGATIVE_THRESHOLD = -0.20

	LABEL_POSITIVE = "positive"
	LABEL_NEGATIVE = "negative"
	LABEL_NEUTRAL  = "neutral"
)

var (
	analyzer    = govader.NewSentimentIntensityAnalyzer()
	stripPolicy = bluemonday.StrictPolicy()

	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	// NewsAPI truncates content with a "[+1234 chars]" marker.
	truncationPattern = regexp.MustCompile(`\[\+\d+ chars\]`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText renders markdown and strips every tag, leaving the words.
func ConvertMarkdownToText(input string) string {
	input = RemoveLinks(input)
	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := html.UnescapeString(stripPolicy.Sanitize(string(rendered)))
	return strings.Join(strings.Fields(plainText), " ")
}

func AnalyzeWithVADER(text string) (float64, string) {
	plainText := ConvertMarkdownToText(text)

	score := analyzer.PolarityScores(plainText).Compound
	return score, Label(score)
}

func Label(score float64) string {
	switch {
	case score >= POSITIVE_THRESHOLD:
		return LABEL_POSITIVE
	case score <= NEGATIVE_THRESHOLD:
		return LABEL_NEGATIVE
	default:
		return LABEL_NEUTRAL
	}
}

// AnalyzeArticle scores the article's title, description and content together.
// It returns nil when the article carries no text.
func AnalyzeArticle(a models.Article) *models.Sentiment {
	parts := make([]string, 0, 3)
	for _, s := range []string{a.Title, a.Description, truncationPattern.ReplaceAllString(a.Content, "")} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return nil
	}

	score, label := AnalyzeWithVADER(strings.Join(parts, "\n\n"))
	return &models.Sentiment{Score: score, Label: label}
}
