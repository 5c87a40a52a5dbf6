package repository

import (
	"context"
	"fmt"
	"sort"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/domain/money"
	"orcamentos_rtv/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultFinanceEventsTableName = "finance_events"
	financeClientNameIndex        = "client_name-index"

	// BatchWriteItem accepts at most 25 requests per call.
	batchWriteLimit     = 25
	maxUnprocessedRetry = 5
)

type financeEventItem struct {
	ID               string `dynamodbav:"id"`
	ImportID         string `dynamodbav:"import_id"`
	ClientName       string `dynamodbav:"client_name"`
	AP               string `dynamodbav:"ap,omitempty"`
	Description      string `dynamodbav:"description,omitempty"`
	SupplierName     string `dynamodbav:"supplier_name,omitempty"`
	SupplierValue    int64  `dynamodbav:"supplier_value"`
	HonorarioPercent string `dynamodbav:"honorario_percent"`
	AgencyHonorario  int64  `dynamodbav:"agency_honorario"`
	Total            int64  `dynamodbav:"total"`
	SourceRow        int    `dynamodbav:"source_row"`
	ImportedBy       string `dynamodbav:"imported_by,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// FinanceEventDynamoRepository stores imported finance sheet rows.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_name-index (PK: client_name)
type FinanceEventDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IFinanceEventRepository = (*FinanceEventDynamoRepository)(nil)

func NewFinanceEventDynamoRepository(ddb *dynamodb.Client, tableName string) *FinanceEventDynamoRepository {
	return &FinanceEventDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultFinanceEventsTableName),
	}
}

func (r *FinanceEventDynamoRepository) CreateBatch(ctx context.Context, events []entities.FinanceEvent) error {
	for start := 0; start < len(events); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(events))

		reqs := make([]types.WriteRequest, 0, end-start)
		for _, e := range events[start:end] {
			av, err := attributevalue.MarshalMap(toFinanceEventItem(e))
			if err != nil {
				return err
			}
			reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}
		if err := r.writeChunk(ctx, reqs); err != nil {
			return err
		}
	}
	return nil
}

func (r *FinanceEventDynamoRepository) writeChunk(ctx context.Context, reqs []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{r.tableName: reqs}
	for attempt := 0; attempt < maxUnprocessedRetry; attempt++ {
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return err
		}
		if len(out.UnprocessedItems[r.tableName]) == 0 {
			return nil
		}
		pending = out.UnprocessedItems
	}
	return fmt.Errorf("finance events: %d rows left unprocessed", len(pending[r.tableName]))
}

// List returns the events of one client, or every event when clientName is
// empty, ordered by import time and sheet row.
func (r *FinanceEventDynamoRepository) List(ctx context.Context, clientName string) ([]entities.FinanceEvent, error) {
	var (
		raw []map[string]types.AttributeValue
		err error
	)
	if clientName != "" {
		raw, err = queryAll(ctx, r.ddb, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(financeClientNameIndex),
			KeyConditionExpression: aws.String("client_name = :client_name"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":client_name": &types.AttributeValueMemberS{Value: clientName},
			},
		})
	} else {
		raw, err = scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	}
	if err != nil {
		return nil, err
	}

	var items []financeEventItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, err
	}
	out := make([]entities.FinanceEvent, 0, len(items))
	for _, it := range items {
		out = append(out, fromFinanceEventItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].SourceRow < out[j].SourceRow
	})
	return out, nil
}

func toFinanceEventItem(e entities.FinanceEvent) financeEventItem {
	return financeEventItem{
		ID:               e.ID,
		ImportID:         e.ImportID,
		ClientName:       e.ClientName,
		AP:               e.AP,
		Description:      e.Description,
		SupplierName:     e.SupplierName,
		SupplierValue:    e.SupplierValue.Cents(),
		HonorarioPercent: e.HonorarioPercent.String(),
		AgencyHonorario:  e.AgencyHonorario.Cents(),
		Total:            e.Total.Cents(),
		SourceRow:        e.SourceRow,
		ImportedBy:       e.ImportedBy,
		CreatedAt:        formatTime(e.CreatedAt),
	}
}

func fromFinanceEventItem(it financeEventItem) entities.FinanceEvent {
	pct, err := decimal.NewFromString(it.HonorarioPercent)
	if err != nil {
		pct = decimal.Zero
	}
	return entities.FinanceEvent{
		ID:               it.ID,
		ImportID:         it.ImportID,
		ClientName:       it.ClientName,
		AP:               it.AP,
		Description:      it.Description,
		SupplierName:     it.SupplierName,
		SupplierValue:    money.FromCents(it.SupplierValue),
		HonorarioPercent: pct,
		AgencyHonorario:  money.FromCents(it.AgencyHonorario),
		Total:            money.FromCents(it.Total),
		SourceRow:        it.SourceRow,
		ImportedBy:       it.ImportedBy,
		CreatedAt:        parseTime(it.CreatedAt),
	}
}
