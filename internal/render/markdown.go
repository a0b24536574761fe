// Package render turns reports into markdown for download and model markdown
// into sanitized HTML for the dashboard.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
	"github.com/spacesedan/researchflow/internal/models"
	"github.com/spacesedan/researchflow/internal/prompts"
)

const NO_RESULTS_MESSAGE = "No results found."
const NO_ARTICLES_MESSAGE = "No news articles found."

var htmlPolicy = bluemonday.UGCPolicy()

// HTML renders untrusted model markdown and strips anything unsafe.
func HTML(markdown string) template.HTML {
	unsafe := blackfriday.Run([]byte(markdown))
	return template.HTML(htmlPolicy.SanitizeBytes(unsafe))
}

// StructureGuide is the LinkedIn post outline as a markdown list.
func StructureGuide() string {
	var b strings.Builder
	for _, step := range prompts.LinkedInStructure {
		fmt.Fprintf(&b, "- %s\n", step)
	}
	return b.String()
}

// Markdown writes the whole report as one markdown document.
func Markdown(r models.ResearchReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Research: %s\n\n", strings.Join(r.Keywords, ", "))
	if !r.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "_Generated %s_\n\n", r.CreatedAt.UTC().Format("2006-01-02 15:04 MST"))
	}

	if len(r.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Search Results\n\n")
	if len(r.SearchResults) == 0 {
		b.WriteString(NO_RESULTS_MESSAGE + "\n\n")
	}
	for i, result := range r.SearchResults {
		writeResult(&b, i+1, result)
	}

	b.WriteString("## Content Ideas\n\n")
	b.WriteString(strings.TrimSpace(r.ContentIdeas))
	b.WriteString("\n\n")

	b.WriteString("## News Articles\n\n")
	if len(r.Articles) == 0 {
		b.WriteString(NO_ARTICLES_MESSAGE + "\n")
	}
	for i, a := range r.Articles {
		writeArticle(&b, i+1, a)
	}

	return b.String()
}

// writeResult omits a "No title" title, an empty link and an empty snippet.
func writeResult(b *strings.Builder, idx int, r models.SearchResult) {
	fmt.Fprintf(b, "### Result %d\n\n", idx)
	if r.Title != "" && r.Title != models.MISSING_RESULT_TITLE {
		fmt.Fprintf(b, "%s\n\n", r.Title)
	}
	if r.Link != "" {
		fmt.Fprintf(b, "[%s](%s)\n\n", r.Link, r.Link)
	}
	if r.Snippet != "" {
		fmt.Fprintf(b, "%s\n\n", r.Snippet)
	}
}

func writeArticle(b *strings.Builder, idx int, a models.ArticleContent) {
	fmt.Fprintf(b, "### Article %d: %s\n\n", idx, a.Article.Title)
	if a.Article.URL != "" {
		fmt.Fprintf(b, "<%s>\n\n", a.Article.URL)
	}
	if a.Sentiment != nil {
		fmt.Fprintf(b, "Sentiment: %s (%.2f)\n\n", a.Sentiment.Label, a.Sentiment.Score)
	}

	b.WriteString("#### Social Media Posts\n\n")
	for _, c := range a.SocialPosts.Channels {
		fmt.Fprintf(b, "**%s**\n\n%s\n\n", c.Label, c.Text)
	}

	b.WriteString("#### Content Ideas\n\n")
	fmt.Fprintf(b, "%s\n\n", strings.TrimSpace(a.ContentIdeas))

	b.WriteString("#### LinkedIn Posts\n\n")
	fmt.Fprintf(b, "Post structure:\n\n%s\n", StructureGuide())
	fmt.Fprintf(b, "**%s**\n\n%s\n\n", a.MainLinkedIn.Angle, a.MainLinkedIn.Text)
	for i, post := range a.AltLinkedInPost {
		fmt.Fprintf(b, "**Alternative %d: %s**\n\n%s\n\n", i+1, post.Angle, post.Text)
	}
}
