package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/domain/money"
	"orcamentos_rtv/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// fakeDynamo records inputs and answers with canned outputs.
type fakeDynamo struct {
	putErr    error
	getItem   map[string]types.AttributeValue
	updateOut *dynamodb.UpdateItemOutput
	updateErr error
	queryOut  []map[string]types.AttributeValue
	scanOut   []map[string]types.AttributeValue
	batchFn   func(in *dynamodb.BatchWriteItemInput) *dynamodb.BatchWriteItemOutput

	puts    []*dynamodb.PutItemInput
	updates []*dynamodb.UpdateItemInput
	queries []*dynamodb.QueryInput
	scans   []*dynamodb.ScanInput
	batches []*dynamodb.BatchWriteItemInput
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.getItem}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut == nil {
		return &dynamodb.UpdateItemOutput{}, nil
	}
	return f.updateOut, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	return &dynamodb.QueryOutput{Items: f.queryOut}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scans = append(f.scans, in)
	return &dynamodb.ScanOutput{Items: f.scanOut}, nil
}

func (f *fakeDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	f.batches = append(f.batches, in)
	if f.batchFn != nil {
		return f.batchFn(in), nil
	}
	return &dynamodb.BatchWriteItemOutput{}, nil
}

func mustMarshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestVersionRepository_AppendConflict(t *testing.T) {
	fake := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{Message: aws.String("exists")}}
	repo := &VersionDynamoRepository{ddb: fake, tableName: "versions"}

	_, err := repo.Append(context.Background(), entities.Version{
		ID:            "v-2",
		BudgetID:      "b-1",
		VersionNumber: 2,
		Payload: entities.Payload{
			SchemaVersion: 1,
			Type:          entities.CategoryClosedCaption,
			Mode:          entities.ModeSummed,
			ClosedCaption: &entities.ClosedCaptionPayload{},
		},
	})
	if !errors.Is(err, interfaces.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
	if got := aws.ToString(fake.puts[0].ConditionExpression); got != "attribute_not_exists(#version_number)" {
		t.Fatalf("unexpected condition %q", got)
	}
}

func TestVersionRepository_GetLatestMigratesLegacyPayload(t *testing.T) {
	legacy := `{"tipo":"imagem","imagens":[{"id":"a","nome":"Praia","licencas":[{"id":"l1","nome":"Web","preco":"1.200,00"}],"licencaEscolhida":"l1"}]}`
	fake := &fakeDynamo{queryOut: []map[string]types.AttributeValue{
		mustMarshal(t, versionItem{
			BudgetID:      "b-1",
			VersionNumber: 4,
			ID:            "v-4",
			Payload:       legacy,
			TotalGeneral:  126000,
			CreatedAt:     "2025-03-01T12:00:00Z",
		}),
	}}
	repo := &VersionDynamoRepository{ddb: fake, tableName: "versions"}

	v, err := repo.GetLatest(context.Background(), "b-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.VersionNumber != 4 || v.TotalGeneral != money.Money(126000) {
		t.Fatalf("unexpected version: %+v", v)
	}
	if v.Payload.SchemaVersion != entities.CurrentPayloadSchema || v.Payload.Image == nil {
		t.Fatalf("payload was not migrated: %+v", v.Payload)
	}
	if aws.ToBool(fake.queries[0].ScanIndexForward) {
		t.Fatalf("latest version must be read newest first")
	}
	if aws.ToInt32(fake.queries[0].Limit) != 1 {
		t.Fatalf("expected limit 1")
	}
}

func TestVersionRepository_GetLatestEmpty(t *testing.T) {
	repo := &VersionDynamoRepository{ddb: &fakeDynamo{}, tableName: "versions"}

	v, err := repo.GetLatest(context.Background(), "b-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ID != "" {
		t.Fatalf("expected zero version, got %+v", v)
	}
}

func TestBudgetRepository_NextSequence(t *testing.T) {
	fake := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{
		Attributes: map[string]types.AttributeValue{
			"seq": &types.AttributeValueMemberN{Value: "7"},
		},
	}}
	repo := &BudgetDynamoRepository{ddb: fake, tableName: "budgets"}

	seq, err := repo.NextSequence(context.Background(), 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seq != 7 {
		t.Fatalf("expected 7, got %d", seq)
	}
	key := fake.updates[0].Key["id"].(*types.AttributeValueMemberS)
	if key.Value != "#seq-2025" {
		t.Fatalf("unexpected counter key %q", key.Value)
	}
}

func TestBudgetRepository_GetByIDSkipsCounterItems(t *testing.T) {
	fake := &fakeDynamo{getItem: map[string]types.AttributeValue{
		"id":  &types.AttributeValueMemberS{Value: "#seq-2025"},
		"seq": &types.AttributeValueMemberN{Value: "3"},
	}}
	repo := &BudgetDynamoRepository{ddb: fake, tableName: "budgets"}

	b, err := repo.GetByID(context.Background(), "#seq-2025")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID != "" {
		t.Fatalf("counter item must not be returned as a budget: %+v", b)
	}
}

func TestBudgetRepository_ListByClientUsesIndex(t *testing.T) {
	fake := &fakeDynamo{queryOut: []map[string]types.AttributeValue{
		mustMarshal(t, budgetItem{ID: "b-1", DisplayID: "ORC-2025-0001", Type: "film", ClientID: "c-1", Status: "draft"}),
	}}
	repo := &BudgetDynamoRepository{ddb: fake, tableName: "budgets"}

	got, err := repo.List(context.Background(), interfaces.BudgetFilter{ClientID: "c-1", Status: entities.BudgetStatusDraft})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].DisplayID != "ORC-2025-0001" {
		t.Fatalf("unexpected budgets: %+v", got)
	}
	if aws.ToString(fake.queries[0].IndexName) != budgetsClientIDIndex {
		t.Fatalf("expected query on %s", budgetsClientIDIndex)
	}
	if !strings.Contains(aws.ToString(fake.queries[0].FilterExpression), "#status = :status") {
		t.Fatalf("status filter missing: %s", aws.ToString(fake.queries[0].FilterExpression))
	}
	if len(fake.scans) != 0 {
		t.Fatalf("did not expect a scan")
	}
}

func TestClientRepository_UpdateHonorario(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		fake := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{
			Attributes: mustMarshal(t, clientItem{ID: "c-1", Name: "Acme", HonorarioPercent: "12.5"}),
		}}
		repo := &ClientDynamoRepository{ddb: fake, tableName: "clients"}

		p := decimal.RequireFromString("12.5")
		c, err := repo.UpdateHonorario(context.Background(), "c-1", &p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.HonorarioPercent == nil || !c.HonorarioPercent.Equal(p) {
			t.Fatalf("unexpected honorario: %v", c.HonorarioPercent)
		}
		if strings.Contains(aws.ToString(fake.updates[0].UpdateExpression), "REMOVE") {
			t.Fatalf("set must not remove the attribute")
		}
	})

	t.Run("clear", func(t *testing.T) {
		fake := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{
			Attributes: mustMarshal(t, clientItem{ID: "c-1", Name: "Acme"}),
		}}
		repo := &ClientDynamoRepository{ddb: fake, tableName: "clients"}

		c, err := repo.UpdateHonorario(context.Background(), "c-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.HonorarioPercent != nil {
			t.Fatalf("expected no honorario, got %v", c.HonorarioPercent)
		}
		if !strings.Contains(aws.ToString(fake.updates[0].UpdateExpression), "REMOVE #honorario_percent") {
			t.Fatalf("expected REMOVE, got %s", aws.ToString(fake.updates[0].UpdateExpression))
		}
	})

	t.Run("missing client", func(t *testing.T) {
		fake := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{}}
		repo := &ClientDynamoRepository{ddb: fake, tableName: "clients"}

		c, err := repo.UpdateHonorario(context.Background(), "nope", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "" {
			t.Fatalf("expected zero client")
		}
	})
}

func TestRightsRepository_RoundTrip(t *testing.T) {
	expire := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	prev := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	rec := entities.RightsRecord{
		ID:         "r-1",
		ClientID:   "c-1",
		Title:      "Verão 30s",
		ExpireDate: &expire,
		Renewed:    true,
		Notified30: true,
		Renewal: &entities.RenewalInfo{
			RenewedAt:          time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
			RenewedBy:          "ana@agencia.com.br",
			PreviousExpireDate: &prev,
		},
	}

	got := fromRightsItem(toRightsItem(rec))
	if got.ExpireDate == nil || !got.ExpireDate.Equal(expire) {
		t.Fatalf("expire date lost: %v", got.ExpireDate)
	}
	if got.FirstAirDate != nil {
		t.Fatalf("expected nil first air date")
	}
	if got.Renewal == nil || got.Renewal.PreviousExpireDate == nil || !got.Renewal.PreviousExpireDate.Equal(prev) {
		t.Fatalf("renewal lost: %+v", got.Renewal)
	}
	if !got.Notified30 || got.Notified15 {
		t.Fatalf("notification flags changed: %+v", got)
	}
}

func TestRightsRepository_UpdateMissing(t *testing.T) {
	fake := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{}}
	repo := &RightsDynamoRepository{ddb: fake, tableName: "rights"}

	got, err := repo.Update(context.Background(), entities.RightsRecord{ID: "r-9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "" {
		t.Fatalf("expected zero record")
	}
	if aws.ToString(fake.puts[0].ConditionExpression) != "attribute_exists(#id)" {
		t.Fatalf("update must require an existing record")
	}
}

func TestFinanceEventRepository_CreateBatch(t *testing.T) {
	events := make([]entities.FinanceEvent, 30)
	for i := range events {
		events[i] = entities.FinanceEvent{ID: string(rune('a' + i)), ClientName: "Acme", SourceRow: i + 1}
	}

	t.Run("chunks of 25", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := &FinanceEventDynamoRepository{ddb: fake, tableName: "finance_events"}

		if err := repo.CreateBatch(context.Background(), events); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fake.batches) != 2 {
			t.Fatalf("expected 2 batch calls, got %d", len(fake.batches))
		}
		if n := len(fake.batches[0].RequestItems["finance_events"]); n != 25 {
			t.Fatalf("first chunk has %d requests", n)
		}
		if n := len(fake.batches[1].RequestItems["finance_events"]); n != 5 {
			t.Fatalf("second chunk has %d requests", n)
		}
	})

	t.Run("retries unprocessed items", func(t *testing.T) {
		calls := 0
		fake := &fakeDynamo{batchFn: func(in *dynamodb.BatchWriteItemInput) *dynamodb.BatchWriteItemOutput {
			calls++
			if calls == 1 {
				return &dynamodb.BatchWriteItemOutput{UnprocessedItems: map[string][]types.WriteRequest{
					"finance_events": in.RequestItems["finance_events"][:2],
				}}
			}
			return &dynamodb.BatchWriteItemOutput{}
		}}
		repo := &FinanceEventDynamoRepository{ddb: fake, tableName: "finance_events"}

		if err := repo.CreateBatch(context.Background(), events[:3]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fake.batches) != 2 {
			t.Fatalf("expected a retry, got %d calls", len(fake.batches))
		}
		if n := len(fake.batches[1].RequestItems["finance_events"]); n != 2 {
			t.Fatalf("retry should only resend unprocessed rows, sent %d", n)
		}
	})

	t.Run("gives up", func(t *testing.T) {
		fake := &fakeDynamo{batchFn: func(in *dynamodb.BatchWriteItemInput) *dynamodb.BatchWriteItemOutput {
			return &dynamodb.BatchWriteItemOutput{UnprocessedItems: in.RequestItems}
		}}
		repo := &FinanceEventDynamoRepository{ddb: fake, tableName: "finance_events"}

		if err := repo.CreateBatch(context.Background(), events[:1]); err == nil {
			t.Fatalf("expected error")
		}
		if len(fake.batches) != maxUnprocessedRetry {
			t.Fatalf("expected %d attempts, got %d", maxUnprocessedRetry, len(fake.batches))
		}
	})
}

func TestFinanceEventRepository_ListOrder(t *testing.T) {
	fake := &fakeDynamo{scanOut: []map[string]types.AttributeValue{
		mustMarshal(t, financeEventItem{ID: "1", ClientName: "Acme", SourceRow: 2, HonorarioPercent: "10", CreatedAt: "2025-01-01T00:00:00Z"}),
		mustMarshal(t, financeEventItem{ID: "2", ClientName: "Acme", SourceRow: 1, HonorarioPercent: "bad", CreatedAt: "2025-01-01T00:00:00Z"}),
		mustMarshal(t, financeEventItem{ID: "3", ClientName: "Beta", SourceRow: 1, HonorarioPercent: "5", CreatedAt: "2025-02-01T00:00:00Z"}),
	}}
	repo := &FinanceEventDynamoRepository{ddb: fake, tableName: "finance_events"}

	got, err := repo.List(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	if strings.Join(ids, ",") != "3,2,1" {
		t.Fatalf("unexpected order %v", ids)
	}
	if !got[1].HonorarioPercent.IsZero() {
		t.Fatalf("malformed percent should decode as zero")
	}
}
