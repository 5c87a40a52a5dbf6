package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/domain/money"
	"orcamentos_rtv/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultVersionsTableName = "versions"

// versionItem keeps the payload as a JSON document so legacy blobs written
// before schema_version existed can still be read and migrated.
type versionItem struct {
	BudgetID      string `dynamodbav:"budget_id"`
	VersionNumber int    `dynamodbav:"version_number"`
	ID            string `dynamodbav:"id"`
	Payload       string `dynamodbav:"payload"`
	TotalGeneral  int64  `dynamodbav:"total_general"`
	Autosave      bool   `dynamodbav:"autosave"`
	CreatedBy     string `dynamodbav:"created_by,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// VersionDynamoRepository stores immutable budget versions.
//
// Table requirements:
//   - PK: budget_id (string)
//   - SK: version_number (number)
//
// Items are only ever written with attribute_not_exists, so a version can
// never be overwritten.
type VersionDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IVersionRepository = (*VersionDynamoRepository)(nil)

func NewVersionDynamoRepository(ddb *dynamodb.Client, tableName string) *VersionDynamoRepository {
	return &VersionDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultVersionsTableName),
	}
}

func (r *VersionDynamoRepository) Append(ctx context.Context, v entities.Version) (entities.Version, error) {
	it, err := toVersionItem(v)
	if err != nil {
		return entities.Version{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Version{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#version_number)"),
		ExpressionAttributeNames: map[string]string{
			"#version_number": "version_number",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Version{}, interfaces.ErrVersionConflict
		}
		return entities.Version{}, err
	}
	return v, nil
}

// ListByBudgetID returns every version, oldest first.
func (r *VersionDynamoRepository) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.Version, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("budget_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: budgetID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	versions := make([]entities.Version, 0, len(raw))
	for _, item := range raw {
		v, err := decodeVersion(item)
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, nil
}

func (r *VersionDynamoRepository) GetLatest(ctx context.Context, budgetID string) (entities.Version, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("budget_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: budgetID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
		ConsistentRead:   aws.Bool(true),
	})
	if err != nil {
		return entities.Version{}, err
	}
	if len(out.Items) == 0 {
		return entities.Version{}, nil
	}
	return decodeVersion(out.Items[0])
}

func decodeVersion(item map[string]types.AttributeValue) (entities.Version, error) {
	var it versionItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Version{}, err
	}
	return fromVersionItem(it)
}

func toVersionItem(v entities.Version) (versionItem, error) {
	payload, err := json.Marshal(v.Payload)
	if err != nil {
		return versionItem{}, err
	}
	return versionItem{
		BudgetID:      v.BudgetID,
		VersionNumber: v.VersionNumber,
		ID:            v.ID,
		Payload:       string(payload),
		TotalGeneral:  v.TotalGeneral.Cents(),
		Autosave:      v.Autosave,
		CreatedBy:     v.CreatedBy,
		CreatedAt:     formatTime(v.CreatedAt),
	}, nil
}

func fromVersionItem(it versionItem) (entities.Version, error) {
	payload, err := entities.MigratePayload([]byte(it.Payload))
	if err != nil {
		return entities.Version{}, fmt.Errorf("budget %s version %d: %w", it.BudgetID, it.VersionNumber, err)
	}
	return entities.Version{
		ID:            it.ID,
		BudgetID:      it.BudgetID,
		VersionNumber: it.VersionNumber,
		Payload:       payload,
		TotalGeneral:  money.FromCents(it.TotalGeneral),
		Autosave:      it.Autosave,
		CreatedBy:     it.CreatedBy,
		CreatedAt:     parseTime(it.CreatedAt),
	}, nil
}
