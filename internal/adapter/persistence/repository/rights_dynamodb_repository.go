package repository

import (
	"context"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRightsTableName = "rights"
	rightsClientIDIndex    = "client_id-index"
)

type rightsItem struct {
	ID           string `dynamodbav:"id"`
	ClientID     string `dynamodbav:"client_id"`
	ClientName   string `dynamodbav:"client_name,omitempty"`
	ProductID    string `dynamodbav:"product_id,omitempty"`
	ProductName  string `dynamodbav:"product_name,omitempty"`
	Title        string `dynamodbav:"title"`
	CRT          string `dynamodbav:"crt,omitempty"`
	FirstAirDate string `dynamodbav:"first_air_date,omitempty"`
	ExpireDate   string `dynamodbav:"expire_date,omitempty"`
	StatusLabel  string `dynamodbav:"status_label,omitempty"`
	Renewed      bool   `dynamodbav:"renewed"`
	Notified30   bool   `dynamodbav:"notified_30"`
	Notified15   bool   `dynamodbav:"notified_15"`
	Notified0    bool   `dynamodbav:"notified_0"`

	Renewal *renewalItem `dynamodbav:"renewal,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type renewalItem struct {
	RenewedAt          string `dynamodbav:"renewed_at"`
	RenewedBy          string `dynamodbav:"renewed_by"`
	PreviousExpireDate string `dynamodbav:"previous_expire_date,omitempty"`
	Notes              string `dynamodbav:"notes,omitempty"`
}

// RightsDynamoRepository persists RightsRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
type RightsDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IRightsRepository = (*RightsDynamoRepository)(nil)

func NewRightsDynamoRepository(ddb *dynamodb.Client, tableName string) *RightsDynamoRepository {
	return &RightsDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultRightsTableName),
	}
}

func (r *RightsDynamoRepository) Create(ctx context.Context, rec entities.RightsRecord) (entities.RightsRecord, error) {
	if err := r.put(ctx, rec, "attribute_not_exists(#id)"); err != nil {
		return entities.RightsRecord{}, err
	}
	return rec, nil
}

// Update replaces the whole record. A missing record yields a zero value.
func (r *RightsDynamoRepository) Update(ctx context.Context, rec entities.RightsRecord) (entities.RightsRecord, error) {
	if err := r.put(ctx, rec, "attribute_exists(#id)"); err != nil {
		if isConditionFailed(err) {
			return entities.RightsRecord{}, nil
		}
		return entities.RightsRecord{}, err
	}
	return rec, nil
}

func (r *RightsDynamoRepository) put(ctx context.Context, rec entities.RightsRecord, condition string) error {
	av, err := attributevalue.MarshalMap(toRightsItem(rec))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *RightsDynamoRepository) GetByID(ctx context.Context, id string) (entities.RightsRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RightsRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.RightsRecord{}, nil
	}

	var it rightsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RightsRecord{}, err
	}
	return fromRightsItem(it), nil
}

// List queries the client index when a client is given and scans otherwise.
// The product filter is applied server side.
func (r *RightsDynamoRepository) List(ctx context.Context, f interfaces.RightsFilter) ([]entities.RightsRecord, error) {
	var (
		filter *string
		names  map[string]string
		values = map[string]types.AttributeValue{}
	)
	if f.ProductID != "" {
		filter = aws.String("#product_id = :product_id")
		names = map[string]string{"#product_id": "product_id"}
		values[":product_id"] = &types.AttributeValueMemberS{Value: f.ProductID}
	}

	var (
		raw []map[string]types.AttributeValue
		err error
	)
	if f.ClientID != "" {
		values[":client_id"] = &types.AttributeValueMemberS{Value: f.ClientID}
		raw, err = queryAll(ctx, r.ddb, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(rightsClientIDIndex),
			KeyConditionExpression:    aws.String("client_id = :client_id"),
			FilterExpression:          filter,
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		})
	} else {
		in := &dynamodb.ScanInput{
			TableName:                aws.String(r.tableName),
			FilterExpression:         filter,
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

	var items []rightsItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, err
	}
	out := make([]entities.RightsRecord, 0, len(items))
	for _, it := range items {
		out = append(out, fromRightsItem(it))
	}
	return out, nil
}

func toRightsItem(rec entities.RightsRecord) rightsItem {
	it := rightsItem{
		ID:           rec.ID,
		ClientID:     rec.ClientID,
		ClientName:   rec.ClientName,
		ProductID:    rec.ProductID,
		ProductName:  rec.ProductName,
		Title:        rec.Title,
		CRT:          rec.CRT,
		FirstAirDate: formatTimePtr(rec.FirstAirDate),
		ExpireDate:   formatTimePtr(rec.ExpireDate),
		StatusLabel:  rec.StatusLabel,
		Renewed:      rec.Renewed,
		Notified30:   rec.Notified30,
		Notified15:   rec.Notified15,
		Notified0:    rec.Notified0,
		CreatedAt:    formatTime(rec.CreatedAt),
		UpdatedAt:    formatTime(rec.UpdatedAt),
	}
	if rec.Renewal != nil {
		it.Renewal = &renewalItem{
			RenewedAt:          formatTime(rec.Renewal.RenewedAt),
			RenewedBy:          rec.Renewal.RenewedBy,
			PreviousExpireDate: formatTimePtr(rec.Renewal.PreviousExpireDate),
			Notes:              rec.Renewal.Notes,
		}
	}
	return it
}

func fromRightsItem(it rightsItem) entities.RightsRecord {
	rec := entities.RightsRecord{
		ID:           it.ID,
		ClientID:     it.ClientID,
		ClientName:   it.ClientName,
		ProductID:    it.ProductID,
		ProductName:  it.ProductName,
		Title:        it.Title,
		CRT:          it.CRT,
		FirstAirDate: parseTimePtr(it.FirstAirDate),
		ExpireDate:   parseTimePtr(it.ExpireDate),
		StatusLabel:  it.StatusLabel,
		Renewed:      it.Renewed,
		Notified30:   it.Notified30,
		Notified15:   it.Notified15,
		Notified0:    it.Notified0,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
	if it.Renewal != nil {
		rec.Renewal = &entities.RenewalInfo{
			RenewedAt:          parseTime(it.Renewal.RenewedAt),
			RenewedBy:          it.Renewal.RenewedBy,
			PreviousExpireDate: parseTimePtr(it.Renewal.PreviousExpireDate),
			Notes:              it.Renewal.Notes,
		}
	}
	return rec
}
