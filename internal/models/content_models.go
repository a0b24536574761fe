package models

import "time"

type OutputFormat string

const (
	FormatMarkdown OutputFormat = "markdown"
	FormatPlain    OutputFormat = "plain"
)

// PersonaConfig is the fixed system-level guidance sent with every prompt of a kind.
type PersonaConfig struct {
	Description  string       `json:"description"`
	Instructions []string     `json:"instructions"`
	Format       OutputFormat `json:"format"`
}

// ChannelContent is one channel's slice of a generated social bundle.
type ChannelContent struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// ContentBundle keeps channels in header order.
type ContentBundle struct {
	Channels []ChannelContent `json:"channels"`
}

// Get returns the text for a channel label, or "" when the label is unknown.
func (b ContentBundle) Get(label string) string {
	for _, c := range b.Channels {
		if c.Label == label {
			return c.Text
		}
	}
	return ""
}

type LinkedInPost struct {
	Angle string `json:"angle"`
	Text  string `json:"text"`
}

// ArticleContent is everything generated for one news article.
type ArticleContent struct {
	Article         Article        `json:"article"`
	Sentiment       *Sentiment     `json:"sentiment,omitempty"`
	SocialPosts     ContentBundle  `json:"social_posts"`
	ContentIdeas    string         `json:"content_ideas"`
	MainLinkedIn    LinkedInPost   `json:"main_linkedin"`
	AltLinkedInPost []LinkedInPost `json:"alt_linkedin_posts"`
}

type Sentiment struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// ResearchReport is the outcome of one "Start Research" action.
type ResearchReport struct {
	ID            string           `json:"id" dynamodbav:"id"`
	Keywords      []string         `json:"keywords" dynamodbav:"keywords"`
	Limit         int              `json:"limit" dynamodbav:"limit"`
	SearchResults []SearchResult   `json:"search_results" dynamodbav:"search_results"`
	ContentIdeas  string           `json:"content_ideas" dynamodbav:"content_ideas"`
	Articles      []ArticleContent `json:"articles" dynamodbav:"articles"`
	Warnings      []string         `json:"warnings" dynamodbav:"warnings"`
	CreatedAt     time.Time        `json:"created_at" dynamodbav:"created_at"`
}
