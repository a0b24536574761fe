package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/spacesedan/researchflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	table  string
	items  map[string]map[string]types.AttributeValue
	putErr error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.table = aws.ToString(in.TableName)
	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[id]}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	out := &dynamodb.ScanOutput{}
	for _, item := range f.items {
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func sampleReport(id string, created time.Time) models.ResearchReport {
	return models.ResearchReport{
		ID:       id,
		Keywords: []string{"electric vehicles"},
		Limit:    3,
		SearchResults: []models.SearchResult{
			{Title: "EV sales", Link: "https://example.com", Snippet: "up"},
		},
		ContentIdeas: "## Ideas",
		Articles: []models.ArticleContent{{
			Article:      models.Article{Title: "a", Description: "d", Content: "c", URL: "https://a"},
			Sentiment:    &models.Sentiment{Score: 0.5, Label: "positive"},
			SocialPosts:  models.ContentBundle{Channels: []models.ChannelContent{{Label: "Twitter", Text: "tw"}}},
			ContentIdeas: "ideas",
			MainLinkedIn: models.LinkedInPost{Angle: "Main article theme", Text: "li"},
		}},
		Warnings:  []string{"Search failed for x: timeout"},
		CreatedAt: created,
	}
}

func TestDynamoReportStore_RoundTrip(t *testing.T) {
	fake := newFakeDynamo()
	store := NewDynamoReportStore(fake, "")
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	report := sampleReport("r-1", created)

	require.NoError(t, store.SaveReport(context.Background(), report))
	assert.Equal(t, REPORTS_TABLE_NAME, fake.table)
	assert.Contains(t, fake.items["r-1"], "expires_at")

	got, err := store.GetReport(context.Background(), "r-1")
	require.NoError(t, err)
	assert.True(t, created.Equal(got.CreatedAt))
	assert.Equal(t, report.Keywords, got.Keywords)
	assert.Equal(t, report.SearchResults, got.SearchResults)
	assert.Equal(t, report.Warnings, got.Warnings)
	require.Len(t, got.Articles, 1)
	assert.Equal(t, report.Articles[0].Article, got.Articles[0].Article)
	assert.Equal(t, "positive", got.Articles[0].Sentiment.Label)
	assert.Equal(t, "tw", got.Articles[0].SocialPosts.Get("Twitter"))
}

func TestDynamoReportStore_NotFound(t *testing.T) {
	_, err := NewDynamoReportStore(newFakeDynamo(), "Reports").GetReport(context.Background(), "missing")
	assert.True(t, IsNotFound(err))
}

func TestDynamoReportStore_PutError(t *testing.T) {
	fake := newFakeDynamo()
	fake.putErr = errors.New("throttled")
	err := NewDynamoReportStore(fake, "Reports").SaveReport(context.Background(), sampleReport("r", time.Now()))
	assert.ErrorContains(t, err, "throttled")
}

func TestDynamoReportStore_ListNewestFirst(t *testing.T) {
	store := NewDynamoReportStore(newFakeDynamo(), "Reports")
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveReport(context.Background(), sampleReport("old", base)))
	require.NoError(t, store.SaveReport(context.Background(), sampleReport("new", base.Add(2*time.Hour))))
	require.NoError(t, store.SaveReport(context.Background(), sampleReport("mid", base.Add(time.Hour))))

	reports, err := store.ListReports(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "new", reports[0].ID)
	assert.Equal(t, "mid", reports[1].ID)
}

func TestMemoryReportStore(t *testing.T) {
	store := NewMemoryReportStore()
	ctx := context.Background()

	_, err := store.GetReport(ctx, "x")
	assert.ErrorIs(t, err, ErrReportNotFound)

	require.NoError(t, store.SaveReport(ctx, sampleReport("a", time.Unix(100, 0))))
	require.NoError(t, store.SaveReport(ctx, sampleReport("b", time.Unix(200, 0))))

	got, err := store.GetReport(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)

	reports, err := store.ListReports(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "b", reports[0].ID)
	assert.Len(t, reports, 2)
}
