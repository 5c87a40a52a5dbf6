package repository

import (
	"context"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultSuppliersTableName = "suppliers"

type supplierItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Contact   string `dynamodbav:"contact,omitempty"`
	Email     string `dynamodbav:"email,omitempty"`
	Category  string `dynamodbav:"category,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// SupplierDynamoRepository persists the supplier directory.
type SupplierDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ISupplierRepository = (*SupplierDynamoRepository)(nil)

func NewSupplierDynamoRepository(ddb *dynamodb.Client, tableName string) *SupplierDynamoRepository {
	return &SupplierDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultSuppliersTableName),
	}
}

func (r *SupplierDynamoRepository) Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	av, err := attributevalue.MarshalMap(supplierItem{
		ID:        s.ID,
		Name:      s.Name,
		Contact:   s.Contact,
		Email:     s.Email,
		Category:  string(s.Category),
		CreatedAt: formatTime(s.CreatedAt),
	})
	if err != nil {
		return entities.Supplier{}, err
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
		return entities.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierDynamoRepository) List(ctx context.Context) ([]entities.Supplier, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}

	var items []supplierItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Supplier, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Supplier{
			ID:        it.ID,
			Name:      it.Name,
			Contact:   it.Contact,
			Email:     it.Email,
			Category:  entities.BudgetCategory(it.Category),
			CreatedAt: parseTime(it.CreatedAt),
		})
	}
	return out, nil
}
