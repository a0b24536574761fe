package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/spacesedan/researchflow/internal/models"
)

const (
	REPORTS_TABLE_NAME = "Reports"
	REPORT_TTL         = 7 * 24 * time.Hour
)

// DynamoDBAPI is the subset of *dynamodb.Client the report store calls.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	dynamodb.ScanAPIClient
}

// DynamoReportStore keeps one item per report, keyed by "id", expiring after
// REPORT_TTL through the table's "expires_at" TTL attribute.
type DynamoReportStore struct {
	Client DynamoDBAPI
	Table  string
}

func NewDynamoReportStore(client DynamoDBAPI, table string) *DynamoReportStore {
	if table == "" {
		table = REPORTS_TABLE_NAME
	}
	return &DynamoReportStore{Client: client, Table: table}
}

func (s *DynamoReportStore) SaveReport(ctx context.Context, report models.ResearchReport) error {
	item, err := attributevalue.MarshalMap(report)
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to marshal report %s: %w", report.ID, err)
	}
	expirationTime := report.CreatedAt.Add(REPORT_TTL).Unix()
	item["expires_at"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(expirationTime, 10)}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.Table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to store report %s: %w", report.ID, err)
	}

	slog.Info("[DynamoDB] Stored report", slog.String("id", report.ID))
	return nil
}

func (s *DynamoReportStore) GetReport(ctx context.Context, id string) (models.ResearchReport, error) {
	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return models.ResearchReport{}, fmt.Errorf("[DynamoDB] Failed to get report %s: %w", id, err)
	}
	if len(out.Item) == 0 {
		return models.ResearchReport{}, ErrReportNotFound
	}

	var report models.ResearchReport
	if err := attributevalue.UnmarshalMap(out.Item, &report); err != nil {
		return models.ResearchReport{}, fmt.Errorf("[DynamoDB] Failed to unmarshal report %s: %w", id, err)
	}
	return report, nil
}

// ListReports scans the table and returns at most limit reports, newest first.
func (s *DynamoReportStore) ListReports(ctx context.Context, limit int) ([]models.ResearchReport, error) {
	var reports []models.ResearchReport
	paginator := dynamodb.NewScanPaginator(s.Client, &dynamodb.ScanInput{
		TableName: aws.String(s.Table),
	})

	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] Scan for reports failed: %w", err)
		}
		var page []models.ResearchReport
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			slog.Error("[DynamoDB] Unable to unmarshal report page", slog.String("error", err.Error()))
			return nil, err
		}
		reports = append(reports, page...)
	}

	return newestFirst(reports, limit), nil
}

func newestFirst(reports []models.ResearchReport, limit int) []models.ResearchReport {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}
	if reports == nil {
		reports = []models.ResearchReport{}
	}
	return reports
}

// IsNotFound reports whether err means the report does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrReportNotFound)
}
