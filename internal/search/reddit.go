package search

import (
	"context"
	"strings"

	"github.com/spacesedan/researchflow/internal/models"
)

const (
	REDDIT_WEB_URL      = "https://www.reddit.com"
	REDDIT_SNIPPET_SIZE = 300
)

// PostSearcher is the slice of the reddit client this backend uses.
type PostSearcher interface {
	SearchPosts(ctx context.Context, query string, limit int) ([]models.RedditAPIChildData, error)
}

// Reddit surfaces discussion threads instead of web pages.
type Reddit struct {
	Client     PostSearcher
	MaxResults int
}

func NewReddit(client PostSearcher) *Reddit {
	return &Reddit{Client: client, MaxResults: DEFAULT_MAX_RESULTS}
}

func (r *Reddit) Name() string { return "Reddit" }

func (r *Reddit) Search(ctx context.Context, query string) (models.AgentResponse, error) {
	posts, err := r.Client.SearchPosts(ctx, query, r.MaxResults)
	if err != nil {
		return models.AgentResponse{}, err
	}

	items := make([]models.ResultItem, 0, len(posts))
	for _, p := range posts {
		snippet := strings.TrimSpace(p.Selftext)
		if snippet == "" {
			snippet = "r/" + p.Subreddit
		}
		if runes := []rune(snippet); len(runes) > REDDIT_SNIPPET_SIZE {
			snippet = string(runes[:REDDIT_SNIPPET_SIZE]) + "..."
		}
		items = append(items, models.NewResultItem(p.Title, REDDIT_WEB_URL+p.Permalink, snippet))
	}
	return models.ListResponse(items), nil
}
