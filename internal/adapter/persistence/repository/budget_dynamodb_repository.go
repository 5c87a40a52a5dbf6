package repository

import (
	"context"
	"fmt"
	"strconv"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBudgetsTableName = "budgets"
	budgetsClientIDIndex    = "client_id-index"
	budgetSequencePrefix    = "#seq-"
)

type budgetItem struct {
	ID            string `dynamodbav:"id"`
	DisplayID     string `dynamodbav:"display_id"`
	Type          string `dynamodbav:"type"`
	ClientID      string `dynamodbav:"client_id"`
	ProductID     string `dynamodbav:"product_id,omitempty"`
	Title         string `dynamodbav:"title,omitempty"`
	Status        string `dynamodbav:"status"`
	LatestVersion int    `dynamodbav:"latest_version"`
	CreatedBy     string `dynamodbav:"created_by,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI client_id-index: client_id (string)
//
// The yearly display sequence lives in the same table under "#seq-{year}"
// items, which carry no display_id and are filtered out of scans.
type BudgetDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client, tableName string) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
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
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	if it.DisplayID == "" {
		return entities.Budget{}, nil
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) List(ctx context.Context, f interfaces.BudgetFilter) ([]entities.Budget, error) {
	names := map[string]string{"#display_id": "display_id"}
	values := map[string]types.AttributeValue{}
	filter := "attribute_exists(#display_id)"
	if f.Status != "" {
		filter += " AND #status = :status"
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(f.Status)}
	}

	var (
		raw []map[string]types.AttributeValue
		err error
	)
	if f.ClientID != "" {
		names["#client_id"] = "client_id"
		values[":client_id"] = &types.AttributeValueMemberS{Value: f.ClientID}
		raw, err = queryAll(ctx, r.ddb, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(budgetsClientIDIndex),
			KeyConditionExpression:    aws.String("#client_id = :client_id"),
			FilterExpression:          aws.String(filter),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		})
	} else {
		in := &dynamodb.ScanInput{
			TableName:                aws.String(r.tableName),
			FilterExpression:         aws.String(filter),
			ExpressionAttributeNames: names,
		}
		if len(values) > 0 {
			in.ExpressionAttributeValues = values
		}
		raw, err = scanAll(ctx, r.ddb, in)
	}
	if err != nil {
		return nil, err
	}

	var items []budgetItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Budget, 0, len(items))
	for _, it := range items {
		out = append(out, fromBudgetItem(it))
	}
	return out, nil
}

func (r *BudgetDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

// SetLatestVersion never moves the pointer backwards.
func (r *BudgetDynamoRepository) SetLatestVersion(ctx context.Context, id string, versionNumber int) (entities.Budget, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #latest_version = :version, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":version":    &types.AttributeValueMemberN{Value: strconv.Itoa(versionNumber)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#latest_version": "latest_version",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	}, "#latest_version < :version")
}

// NextSequence atomically increments the display counter of the year.
func (r *BudgetDynamoRepository) NextSequence(ctx context.Context, year int) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              idKey(fmt.Sprintf("%s%d", budgetSequencePrefix, year)),
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	var counter struct {
		Seq int `dynamodbav:"seq"`
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &counter); err != nil {
		return 0, err
	}
	if counter.Seq == 0 {
		return 0, fmt.Errorf("sequence counter for %d returned no value", year)
	}
	return counter.Seq, nil
}

func (r *BudgetDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
	conditions ...string,
) (entities.Budget, error) {
	now := formatTime(timeNow())
	updateExpr, values, names := build(now)

	cond := "attribute_exists(#id)"
	for _, c := range conditions {
		cond += " AND " + c
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			if len(conditions) > 0 {
				return r.GetByID(ctx, id)
			}
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Budget{}, nil
	}
	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	return budgetItem{
		ID:            b.ID,
		DisplayID:     b.DisplayID,
		Type:          string(b.Type),
		ClientID:      b.ClientID,
		ProductID:     b.ProductID,
		Title:         b.Title,
		Status:        string(b.Status),
		LatestVersion: b.LatestVersion,
		CreatedBy:     b.CreatedBy,
		CreatedAt:     formatTime(b.CreatedAt),
		UpdatedAt:     formatTime(b.UpdatedAt),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	return entities.Budget{
		ID:            it.ID,
		DisplayID:     it.DisplayID,
		Type:          entities.BudgetCategory(it.Type),
		ClientID:      it.ClientID,
		ProductID:     it.ProductID,
		Title:         it.Title,
		Status:        entities.BudgetStatus(it.Status),
		LatestVersion: it.LatestVersion,
		CreatedBy:     it.CreatedBy,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
