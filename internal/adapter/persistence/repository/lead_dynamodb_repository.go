package repository

import (
	"context"
	"strings"
	"time"

	"aviniti_tools/internal/domain/entities"
	"aviniti_tools/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLeadsTableName = "leads"

type leadItem struct {
	ID          string `dynamodbav:"id"`
	Email       string `dynamodbav:"email,omitempty"`
	Name        string `dynamodbav:"name,omitempty"`
	Phone       string `dynamodbav:"phone,omitempty"`
	Whatsapp    string `dynamodbav:"whatsapp,omitempty"`
	Source      string `dynamodbav:"source"`
	Locale      string `dynamodbav:"locale"`
	ProjectType string `dynamodbav:"project_type,omitempty"`
	Features    string `dynamodbav:"features,omitempty"`
	Description string `dynamodbav:"description,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Features are stored as a comma-joined string so the table stays usable
// from ad-hoc console queries; the list is bounded and ids never contain
// commas.

type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	it := toLeadItem(l)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:          l.ID,
		Email:       l.Email,
		Name:        l.Name,
		Phone:       l.Phone,
		Whatsapp:    l.Whatsapp,
		Source:      string(l.Source),
		Locale:      l.Locale,
		ProjectType: l.ProjectType,
		Features:    strings.Join(l.Features, ","),
		Description: l.Description,
		CreatedAt:   l.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	var features []string
	if it.Features != "" {
		features = strings.Split(it.Features, ",")
	}
	return entities.Lead{
		ID:          it.ID,
		Email:       it.Email,
		Name:        it.Name,
		Phone:       it.Phone,
		Whatsapp:    it.Whatsapp,
		Source:      entities.ToolSlug(it.Source),
		Locale:      it.Locale,
		ProjectType: it.ProjectType,
		Features:    features,
		Description: it.Description,
		CreatedAt:   createdAt,
	}
}
