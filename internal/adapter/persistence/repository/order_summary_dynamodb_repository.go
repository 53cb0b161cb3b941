package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrderSummariesTableName = "order_summaries"
	orderSummariesSessionIDIndex   = "session_id-index"
)

type orderSummaryItem struct {
	ID          string   `dynamodbav:"id"`
	SessionID   string   `dynamodbav:"session_id"`
	CreatedAt   string   `dynamodbav:"created_at"`
	FastTrack   bool     `dynamodbav:"fast_track"`
	Status      string   `dynamodbav:"status,omitempty"`
	AccountIDs  []string `dynamodbav:"account_ids,omitempty"`
	SummaryJSON string   `dynamodbav:"summary_json"`
}

// OrderSummaryDynamoRepository keeps an audit copy of every created order.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: session_id-index (PK: session_id)
type OrderSummaryDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IOrderSummaryRepository = (*OrderSummaryDynamoRepository)(nil)

func NewOrderSummaryDynamoRepository(ddb *dynamodb.Client, tableName string) *OrderSummaryDynamoRepository {
	return newOrderSummaryRepository(ddb, tableName)
}

func newOrderSummaryRepository(ddb dynamoAPI, tableName string) *OrderSummaryDynamoRepository {
	return &OrderSummaryDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultOrderSummariesTableName),
	}
}

func (r *OrderSummaryDynamoRepository) Save(ctx context.Context, s entities.OrderSummary) error {
	it, err := toOrderSummaryItem(s)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

// GetByID returns the zero summary when the id is unknown.
func (r *OrderSummaryDynamoRepository) GetByID(ctx context.Context, id string) (entities.OrderSummary, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrderSummary{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrderSummary{}, nil
	}

	var it orderSummaryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrderSummary{}, err
	}
	return fromOrderSummaryItem(it)
}

func (r *OrderSummaryDynamoRepository) ListBySessionID(ctx context.Context, sessionID string) ([]entities.OrderSummary, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(orderSummariesSessionIDIndex),
		KeyConditionExpression: aws.String("session_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: sessionID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.OrderSummary, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderSummaryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		s, err := fromOrderSummaryItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, nil
}

func toOrderSummaryItem(s entities.OrderSummary) (orderSummaryItem, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return orderSummaryItem{}, err
	}
	it := orderSummaryItem{
		ID:          s.ID,
		SessionID:   s.SessionID,
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339Nano),
		FastTrack:   s.FastTrack,
		AccountIDs:  s.AccountIDs,
		SummaryJSON: string(raw),
	}
	if s.Transaction != nil {
		it.Status = s.Transaction.Status
	}
	return it, nil
}

func fromOrderSummaryItem(it orderSummaryItem) (entities.OrderSummary, error) {
	var s entities.OrderSummary
	if err := json.Unmarshal([]byte(it.SummaryJSON), &s); err != nil {
		return entities.OrderSummary{}, err
	}
	if s.ID == "" {
		s.ID = it.ID
	}
	if s.SessionID == "" {
		s.SessionID = it.SessionID
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt, _ = time.Parse(time.RFC3339Nano, it.CreatedAt)
	}
	return s, nil
}
