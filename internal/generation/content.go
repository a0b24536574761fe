// Package generation turns keywords and news articles into marketing content by
// filling a prompt template, sending it with the matching persona and, for
// social posts, splitting the reply into channels.
package generation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spacesedan/researchflow/internal/extract"
	"github.com/spacesedan/researchflow/internal/models"
	"github.com/spacesedan/researchflow/internal/monitoring"
	"github.com/spacesedan/researchflow/internal/prompts"
)

const (
	CONTENT_IDEAS_FALLBACK = "Failed to generate content ideas."
	ARTICLE_IDEAS_FALLBACK = "Failed to generate content ideas from this article."
	LINKEDIN_POST_FALLBACK = "Failed to generate LinkedIn post."
)

type Generator interface {
	Generate(ctx context.Context, persona models.PersonaConfig, prompt string) (string, error)
}

// Service makes one generation call per content piece, serially. A failed call
// degrades to that piece's fallback text and never aborts the caller.
type Service struct {
	Generator Generator
}

func NewService(generator Generator) *Service {
	return &Service{Generator: generator}
}

func (s *Service) generate(ctx context.Context, kind prompts.TemplateKind, payload prompts.Payload) (string, error) {
	persona, ok := prompts.Persona(kind)
	if !ok {
		return "", fmt.Errorf("[ContentService] no persona for %q", kind)
	}
	prompt, err := prompts.Build(kind, payload)
	if err != nil {
		return "", err
	}

	text, err := s.Generator.Generate(ctx, persona, prompt)
	if err != nil {
		slog.Error("[ContentService] Generation failed",
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()))
		monitoring.RecordGeneration(string(kind), "error")
		return "", err
	}
	monitoring.RecordGeneration(string(kind), "ok")
	return text, nil
}

// ContentIdeas asks for five content ideas covering all keywords.
func (s *Service) ContentIdeas(ctx context.Context, keywords []string) string {
	text, err := s.generate(ctx, prompts.ContentIdeas, prompts.Payload{Keywords: keywords})
	if err != nil {
		return CONTENT_IDEAS_FALLBACK
	}
	return text
}

// SocialPosts generates the three channel posts for an article. When the call
// fails every channel carries its placeholder.
func (s *Service) SocialPosts(ctx context.Context, article models.Article) models.ContentBundle {
	raw, err := s.generate(ctx, prompts.SocialPosts, prompts.ArticlePayload(article))
	if err != nil {
		raw = ""
	}

	bundle := extract.SocialBundle(raw)
	if misses := extract.Misses(bundle); misses > 0 {
		slog.Warn("[ContentService] Social post reply was missing headers",
			slog.String("title", article.Title),
			slog.Int("missing", misses))
		monitoring.RecordExtractionMisses(misses)
	}
	return bundle
}

func (s *Service) ArticleIdeas(ctx context.Context, article models.Article) string {
	text, err := s.generate(ctx, prompts.ArticleIdeas, prompts.ArticlePayload(article))
	if err != nil {
		return ARTICLE_IDEAS_FALLBACK
	}
	return text
}

func (s *Service) LinkedInPost(ctx context.Context, article models.Article, angle string) models.LinkedInPost {
	payload := prompts.ArticlePayload(article)
	payload.Angle = angle

	text, err := s.generate(ctx, prompts.LinkedInPost, payload)
	if err != nil {
		text = LINKEDIN_POST_FALLBACK
	}
	return models.LinkedInPost{Angle: angle, Text: text}
}

// ArticleContent runs the full per-article fan-out: social posts, article
// ideas, the main LinkedIn post and one post per alternative angle.
func (s *Service) ArticleContent(ctx context.Context, article models.Article) models.ArticleContent {
	content := models.ArticleContent{
		Article:      article,
		SocialPosts:  s.SocialPosts(ctx, article),
		ContentIdeas: s.ArticleIdeas(ctx, article),
		MainLinkedIn: s.LinkedInPost(ctx, article, prompts.MAIN_ARTICLE_ANGLE),
	}
	for _, angle := range prompts.AlternativeAngles {
		content.AltLinkedInPost = append(content.AltLinkedInPost, s.LinkedInPost(ctx, article, angle))
	}
	return content
}
