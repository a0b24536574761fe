// Package prompts holds the fixed prompt templates and personas sent to the model.
// Payload text is substituted verbatim; nothing is escaped or validated.
package prompts

import (
	"fmt"
	"strings"

	"github.com/spacesedan/researchflow/internal/models"
)

type TemplateKind string

const (
	ContentIdeas TemplateKind = "content-ideas"
	SocialPosts  TemplateKind = "social-posts"
	ArticleIdeas TemplateKind = "article-ideas"
	LinkedInPost TemplateKind = "linkedin-post"
)

// Kinds lists every template kind in a stable order.
var Kinds = []TemplateKind{ContentIdeas, SocialPosts, ArticleIdeas, LinkedInPost}

// Payload carries the slot values. Zero values render as empty strings.
type Payload struct {
	Title       string
	Description string
	URL         string
	Keywords    []string
	Angle       string
}

// ArticlePayload fills the article slots from a news article.
func ArticlePayload(a models.Article) Payload {
	return Payload{
		Title:       a.Title,
		Description: a.Description,
		URL:         a.URL,
	}
}

// Build renders the template for kind.
func Build(kind TemplateKind, payload Payload) (string, error) {
	switch kind {
	case ContentIdeas:
		return fmt.Sprintf(contentIdeasPrompt, strings.Join(payload.Keywords, ", ")), nil
	case SocialPosts:
		return fmt.Sprintf(socialPostsPrompt, payload.Title, payload.Description), nil
	case ArticleIdeas:
		return fmt.Sprintf(articleIdeasPrompt, payload.Title, payload.Description, payload.URL), nil
	case LinkedInPost:
		return fmt.Sprintf(linkedInPostPrompt, payload.Title, payload.Description, payload.Angle), nil
	default:
		return "", fmt.Errorf("[PromptBuilder] unknown template kind %q", kind)
	}
}

// SearchQuery is the natural-language request handed to the search agent.
func SearchQuery(keyword string) string {
	return fmt.Sprintf(searchQueryPrompt, keyword)
}

// SystemMessage flattens a persona into the system text sent with a prompt.
func SystemMessage(p models.PersonaConfig) string {
	var b strings.Builder
	b.WriteString(p.Description)
	if len(p.Instructions) > 0 {
		b.WriteString("\n\nInstructions:\n")
		for _, instruction := range p.Instructions {
			b.WriteString("- ")
			b.WriteString(instruction)
			b.WriteString("\n")
		}
	}
	if p.Format == models.FormatMarkdown {
		b.WriteString("\nUse markdown to format your answers.")
	}
	return strings.TrimSpace(b.String())
}
