package repository

import (
	"context"
	"time"

	"aviniti_tools/internal/domain/entities"
	"aviniti_tools/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSubmissionsTableName = "ai_submissions"
	submissionsLeadIDIndex      = "lead_id-index"
)

type submissionItem struct {
	ID               string `dynamodbav:"id"`
	Tool             string `dynamodbav:"tool"`
	LeadID           string `dynamodbav:"lead_id,omitempty"`
	RequestRaw       string `dynamodbav:"request_raw,omitempty"`
	ResponseRaw      string `dynamodbav:"response_raw,omitempty"`
	ProcessingTimeMs int64  `dynamodbav:"processing_time_ms"`
	Model            string `dynamodbav:"model"`
	Locale           string `dynamodbav:"locale"`
	Status           string `dynamodbav:"status"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// SubmissionDynamoRepository persists AISubmission entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: lead_id-index (PK: lead_id)

type SubmissionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAISubmissionRepository = (*SubmissionDynamoRepository)(nil)

func NewSubmissionDynamoRepository(ddb *dynamodb.Client) *SubmissionDynamoRepository {
	return &SubmissionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AI_SUBMISSIONS_TABLE", defaultSubmissionsTableName),
	}
}

func (r *SubmissionDynamoRepository) Create(ctx context.Context, s entities.AISubmission) (entities.AISubmission, error) {
	it := toSubmissionItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.AISubmission{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.AISubmission{}, err
	}
	return s, nil
}

func (r *SubmissionDynamoRepository) GetByID(ctx context.Context, id string) (entities.AISubmission, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AISubmission{}, err
	}
	if len(out.Item) == 0 {
		return entities.AISubmission{}, nil
	}

	var it submissionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AISubmission{}, err
	}
	return fromSubmissionItem(it), nil
}

func (r *SubmissionDynamoRepository) ListByLeadID(ctx context.Context, leadID string) ([]entities.AISubmission, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(submissionsLeadIDIndex),
		KeyConditionExpression: aws.String("lead_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: leadID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.AISubmission, 0, len(out.Items))
	for _, raw := range out.Items {
		var it submissionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSubmissionItem(it))
	}
	return items, nil
}

func toSubmissionItem(s entities.AISubmission) submissionItem {
	return submissionItem{
		ID:               s.ID,
		Tool:             string(s.Tool),
		LeadID:           s.LeadID,
		RequestRaw:       string(s.Request),
		ResponseRaw:      string(s.Response),
		ProcessingTimeMs: s.ProcessingTimeMs,
		Model:            s.Model,
		Locale:           s.Locale,
		Status:           string(s.Status),
		CreatedAt:        s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSubmissionItem(it submissionItem) entities.AISubmission {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.AISubmission{
		ID:               it.ID,
		Tool:             entities.ToolSlug(it.Tool),
		LeadID:           it.LeadID,
		Request:          []byte(it.RequestRaw),
		Response:         []byte(it.ResponseRaw),
		ProcessingTimeMs: it.ProcessingTimeMs,
		Model:            it.Model,
		Locale:           it.Locale,
		Status:           entities.SubmissionStatus(it.Status),
		CreatedAt:        createdAt,
	}
}
