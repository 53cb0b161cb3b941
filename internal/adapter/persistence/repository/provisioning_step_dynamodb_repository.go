package repository

import (
	"context"
	"time"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProvisioningStepsTableName = "provisioning_steps"

type provisioningStepsItem struct {
	Channel   string     `dynamodbav:"channel"`
	Kind      string     `dynamodbav:"kind"`
	EntityID  string     `dynamodbav:"entity_id"`
	Steps     []stepItem `dynamodbav:"steps"`
	UpdatedAt string     `dynamodbav:"updated_at"`
}

type stepItem struct {
	ID          string         `dynamodbav:"id"`
	Label       string         `dynamodbav:"label"`
	Status      string         `dynamodbav:"status"`
	Description string         `dynamodbav:"description,omitempty"`
	Context     map[string]any `dynamodbav:"context,omitempty"`
	UpdatedAt   string         `dynamodbav:"updated_at"`
}

// ProvisioningStepDynamoRepository stores the merged step list of each tracked
// entity, one item per "<kind>.<id>" channel.
//
// Table requirements:
//   - PK: channel (string)
type ProvisioningStepDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IStepStore = (*ProvisioningStepDynamoRepository)(nil)

func NewProvisioningStepDynamoRepository(ddb *dynamodb.Client, tableName string) *ProvisioningStepDynamoRepository {
	return newProvisioningStepRepository(ddb, tableName)
}

func newProvisioningStepRepository(ddb dynamoAPI, tableName string) *ProvisioningStepDynamoRepository {
	return &ProvisioningStepDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultProvisioningStepsTableName),
		now:       time.Now,
	}
}

// Get returns nil for an entity that has no steps yet.
func (r *ProvisioningStepDynamoRepository) Get(ctx context.Context, ref entities.EntityRef) ([]entities.ProvisioningStep, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"channel": &types.AttributeValueMemberS{Value: ref.Channel()},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it provisioningStepsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	steps := make([]entities.ProvisioningStep, 0, len(it.Steps))
	for _, s := range it.Steps {
		steps = append(steps, fromStepItem(s))
	}
	return steps, nil
}

func (r *ProvisioningStepDynamoRepository) Put(ctx context.Context, ref entities.EntityRef, steps []entities.ProvisioningStep) error {
	it := provisioningStepsItem{
		Channel:   ref.Channel(),
		Kind:      string(ref.Kind),
		EntityID:  ref.ID,
		Steps:     make([]stepItem, 0, len(steps)),
		UpdatedAt: r.now().UTC().Format(time.RFC3339Nano),
	}
	for _, s := range steps {
		it.Steps = append(it.Steps, toStepItem(s))
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

func toStepItem(s entities.ProvisioningStep) stepItem {
	it := stepItem{
		ID:          s.ID,
		Label:       s.Label,
		Status:      string(s.Status),
		Description: s.Description,
		Context:     s.Context,
	}
	if !s.UpdatedAt.IsZero() {
		it.UpdatedAt = s.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromStepItem(it stepItem) entities.ProvisioningStep {
	updated, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ProvisioningStep{
		ID:          it.ID,
		Label:       it.Label,
		Status:      entities.StepStatus(it.Status),
		Description: it.Description,
		Context:     it.Context,
		UpdatedAt:   updated,
	}
}
