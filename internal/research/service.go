// Package research runs one complete research pass: search, content ideas,
// news and the per-article content fan-out, then archives the report.
package research

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spacesedan/researchflow/config"
	"github.com/spacesedan/researchflow/internal/db"
	"github.com/spacesedan/researchflow/internal/dispatch"
	"github.com/spacesedan/researchflow/internal/models"
	"github.com/spacesedan/researchflow/internal/monitoring"
	"github.com/spacesedan/researchflow/internal/sentiment"
)

const (
	ARCHIVE_FAILED_WARNING = "Report could not be archived; it will not be available for download later."
)

type Searcher interface {
	Dispatch(ctx context.Context, keywords []string, limit int) ([]models.SearchResult, []string)
	FetchNews(ctx context.Context, keywords []string) ([]models.Article, []string)
}

type ContentGenerator interface {
	ContentIdeas(ctx context.Context, keywords []string) string
	ArticleContent(ctx context.Context, article models.Article) models.ArticleContent
}

// Publisher announces finished reports to downstream consumers.
type Publisher interface {
	PublishReport(ctx context.Context, report models.ResearchReport) error
}

type Service struct {
	Search    Searcher
	Content   ContentGenerator
	Store     db.ReportStore
	Publisher Publisher
	Sentiment bool

	now   func() time.Time
	newID func() string
}

func NewService(search Searcher, content ContentGenerator, store db.ReportStore) *Service {
	return &Service{
		Search:  search,
		Content: content,
		Store:   store,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Run researches keywords and returns the finished report. Only empty keyword
// input and a cancelled context are errors; every upstream failure degrades to
// a warning or fallback text inside the report.
func (s *Service) Run(ctx context.Context, keywords []string, limit int) (models.ResearchReport, error) {
	keywords, err := dispatch.CleanKeywords(keywords)
	if err != nil {
		return models.ResearchReport{}, err
	}
	limit = config.ClampLimit(limit)

	start := s.now()
	report := models.ResearchReport{
		ID:        s.newID(),
		Keywords:  keywords,
		Limit:     limit,
		CreatedAt: start.UTC(),
		Articles:  []models.ArticleContent{},
		Warnings:  []string{},
	}
	slog.Info("[Research] Starting research run",
		slog.String("id", report.ID),
		slog.Any("keywords", keywords),
		slog.Int("limit", limit))

	results, warnings := s.Search.Dispatch(ctx, keywords, limit)
	report.SearchResults = results
	report.Warnings = append(report.Warnings, warnings...)

	report.ContentIdeas = s.Content.ContentIdeas(ctx, keywords)

	articles, warnings := s.Search.FetchNews(ctx, keywords)
	report.Warnings = append(report.Warnings, warnings...)
	if len(articles) > limit {
		articles = articles[:limit]
	}

	for _, article := range articles {
		if err := ctx.Err(); err != nil {
			monitoring.RecordRun("cancelled", s.now().Sub(start))
			return report, err
		}
		content := s.Content.ArticleContent(ctx, article)
		if s.Sentiment {
			content.Sentiment = sentiment.AnalyzeArticle(article)
		}
		report.Articles = append(report.Articles, content)
	}

	s.archive(ctx, &report)

	monitoring.RecordRun("ok", s.now().Sub(start))
	slog.Info("[Research] Research run complete",
		slog.String("id", report.ID),
		slog.Int("results", len(report.SearchResults)),
		slog.Int("articles", len(report.Articles)),
		slog.Int("warnings", len(report.Warnings)))
	return report, nil
}

func (s *Service) archive(ctx context.Context, report *models.ResearchReport) {
	if s.Store != nil {
		if err := s.Store.SaveReport(ctx, *report); err != nil {
			slog.Error("[Research] Failed to archive report",
				slog.String("id", report.ID),
				slog.String("error", err.Error()))
			report.Warnings = append(report.Warnings, ARCHIVE_FAILED_WARNING)
		}
	}

	if s.Publisher != nil {
		if err := s.Publisher.PublishReport(ctx, *report); err != nil {
			slog.Error("[Research] Failed to publish report",
				slog.String("id", report.ID),
				slog.String("error", err.Error()))
		}
	}
}
