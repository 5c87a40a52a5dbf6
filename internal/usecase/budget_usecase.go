package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/usecase/interfaces"
	"orcamentos_rtv/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound          = errors.New("budget not found")
	ErrInvalidBudgetID         = errors.New("invalid budget id")
	ErrInvalidBudgetType       = errors.New("invalid budget type")
	ErrInvalidBudgetStatus     = errors.New("invalid budget status")
	ErrPayloadTypeMismatch     = errors.New("payload type does not match budget type")
	ErrNoVersions              = errors.New("budget has no saved version")
	ErrVersionConflict         = errors.New("budget was saved concurrently, retry")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)

const maxAppendAttempts = 3

type CreateBudgetInput struct {
	Type      entities.BudgetCategory
	ClientID  string
	ProductID string
	Title     string
	CreatedBy string
}

type SaveVersionInput struct {
	BudgetID  string
	Payload   entities.Payload
	Autosave  bool
	CreatedBy string
}

// BudgetTotals is a version priced with the rates in effect for its client.
type BudgetTotals struct {
	Budget  entities.Budget  `json:"budget"`
	Version entities.Version `json:"version"`
	PricedPayload
}

type BudgetOptions struct {
	DisplayIDPrefix string
	Locale          string
}

// IBudgetUseCase exposes budget operations.
//
//   - budgets start as draft and only change status on explicit request
//   - every save appends a new immutable Version (autosave included)
//   - totals and exports always use the latest version
type IBudgetUseCase interface {
	CreateBudget(ctx context.Context, in CreateBudgetInput) (entities.Budget, error)
	GetBudget(ctx context.Context, id string) (entities.Budget, error)
	ListBudgets(ctx context.Context, f interfaces.BudgetFilter) ([]entities.Budget, error)
	SetStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error)
	SaveVersion(ctx context.Context, in SaveVersionInput) (BudgetTotals, error)
	ListVersions(ctx context.Context, budgetID string) ([]entities.Version, error)
	LatestVersion(ctx context.Context, budgetID string) (entities.Version, error)
	Totals(ctx context.Context, budgetID string) (BudgetTotals, error)
	Export(ctx context.Context, budgetID string, format interfaces.ExportFormat) (interfaces.ExportedFile, error)
}

type BudgetUseCase struct {
	budgets   interfaces.IBudgetRepository
	versions  interfaces.IVersionRepository
	clients   interfaces.IClientRepository
	products  interfaces.IProductRepository
	pricer    *PricingUseCase
	exporters map[interfaces.ExportFormat]interfaces.IBudgetExporter
	opts      BudgetOptions
	log       *logger.Logger
	now       func() time.Time
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(
	budgets interfaces.IBudgetRepository,
	versions interfaces.IVersionRepository,
	clients interfaces.IClientRepository,
	products interfaces.IProductRepository,
	pricer *PricingUseCase,
	exporters []interfaces.IBudgetExporter,
	opts BudgetOptions,
	log *logger.Logger,
) *BudgetUseCase {
	if log == nil {
		log = logger.Nop()
	}
	if opts.DisplayIDPrefix == "" {
		opts.DisplayIDPrefix = "ORC"
	}
	byFormat := make(map[interfaces.ExportFormat]interfaces.IBudgetExporter, len(exporters))
	for _, e := range exporters {
		byFormat[e.Format()] = e
	}
	return &BudgetUseCase{
		budgets:   budgets,
		versions:  versions,
		clients:   clients,
		products:  products,
		pricer:    pricer,
		exporters: byFormat,
		opts:      opts,
		log:       log,
		now:       utcNow,
	}
}

func (u *BudgetUseCase) CreateBudget(ctx context.Context, in CreateBudgetInput) (entities.Budget, error) {
	if !in.Type.IsValid() {
		return entities.Budget{}, ErrInvalidBudgetType
	}
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return entities.Budget{}, ErrInvalidClientID
	}

	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Budget{}, err
	}
	if client.ID == "" {
		return entities.Budget{}, ErrClientNotFound
	}

	productID := strings.TrimSpace(in.ProductID)
	if productID != "" {
		product, err := u.products.GetByID(ctx, productID)
		if err != nil {
			return entities.Budget{}, err
		}
		if product.ID == "" {
			return entities.Budget{}, ErrProductNotFound
		}
		if product.ClientID != client.ID {
			return entities.Budget{}, ErrProductClientMismatch
		}
	}

	now := u.now()
	seq, err := u.budgets.NextSequence(ctx, now.Year())
	if err != nil {
		return entities.Budget{}, err
	}

	b := entities.Budget{
		ID:        uuid.NewString(),
		DisplayID: FormatDisplayID(u.opts.DisplayIDPrefix, now.Year(), seq),
		Type:      in.Type,
		ClientID:  client.ID,
		ProductID: productID,
		Title:     strings.TrimSpace(in.Title),
		Status:    entities.BudgetStatusDraft,
		CreatedBy: strings.TrimSpace(in.CreatedBy),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.budgets.Create(ctx, b)
}

// FormatDisplayID renders the human budget number, e.g. ORC-2025-0042.
func FormatDisplayID(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, seq)
}

func (u *BudgetUseCase) GetBudget(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.budgets.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) ListBudgets(ctx context.Context, f interfaces.BudgetFilter) ([]entities.Budget, error) {
	f.ClientID = strings.TrimSpace(f.ClientID)
	if f.Status != "" && !f.Status.IsValid() {
		return nil, ErrInvalidBudgetStatus
	}
	return u.budgets.List(ctx, f)
}

func (u *BudgetUseCase) SetStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	if !status.IsValid() {
		return entities.Budget{}, ErrInvalidBudgetStatus
	}

	updated, err := u.budgets.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return updated, nil
}

// SaveVersion prices the payload and appends it as the next version.
func (u *BudgetUseCase) SaveVersion(ctx context.Context, in SaveVersionInput) (BudgetTotals, error) {
	b, err := u.GetBudget(ctx, in.BudgetID)
	if err != nil {
		return BudgetTotals{}, err
	}

	payload := in.Payload.Normalize()
	if payload.Type == "" {
		payload.Type = b.Type
	}
	if payload.Type != b.Type {
		return BudgetTotals{}, ErrPayloadTypeMismatch
	}

	priced, err := u.pricer.price(ctx, b.ClientID, payload, nil)
	if err != nil {
		return BudgetTotals{}, err
	}

	v := entities.Version{
		BudgetID:     b.ID,
		Payload:      payload,
		TotalGeneral: priced.Summary.Combined.Total,
		Autosave:     in.Autosave,
		CreatedBy:    strings.TrimSpace(in.CreatedBy),
	}
	saved, err := u.appendVersion(ctx, v)
	if err != nil {
		return BudgetTotals{}, err
	}

	if updated, err := u.budgets.SetLatestVersion(ctx, b.ID, saved.VersionNumber); err != nil {
		u.log.Error(ctx, "failed to update budget latest version", err, map[string]any{
			"budget_id": b.ID,
			"version":   saved.VersionNumber,
		})
		b.LatestVersion = saved.VersionNumber
	} else if updated.ID != "" {
		b = updated
	}

	u.log.Info(ctx, "budget version saved", map[string]any{
		"budget_id":     b.ID,
		"version":       saved.VersionNumber,
		"autosave":      saved.Autosave,
		"total_general": saved.TotalGeneral.Cents(),
	})
	return BudgetTotals{Budget: b, Version: saved, PricedPayload: priced}, nil
}

func (u *BudgetUseCase) appendVersion(ctx context.Context, v entities.Version) (entities.Version, error) {
	for attempt := 1; attempt <= maxAppendAttempts; attempt++ {
		latest, err := u.versions.GetLatest(ctx, v.BudgetID)
		if err != nil {
			return entities.Version{}, err
		}

		v.ID = uuid.NewString()
		v.VersionNumber = latest.VersionNumber + 1
		v.CreatedAt = u.now()

		saved, err := u.versions.Append(ctx, v)
		if err == nil {
			return saved, nil
		}
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Version{}, err
		}
		u.log.Warn(ctx, "version number taken, retrying", map[string]any{
			"budget_id": v.BudgetID,
			"version":   v.VersionNumber,
			"attempt":   attempt,
		})
	}
	return entities.Version{}, ErrVersionConflict
}

func (u *BudgetUseCase) ListVersions(ctx context.Context, budgetID string) ([]entities.Version, error) {
	b, err := u.GetBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	return u.versions.ListByBudgetID(ctx, b.ID)
}

func (u *BudgetUseCase) LatestVersion(ctx context.Context, budgetID string) (entities.Version, error) {
	b, err := u.GetBudget(ctx, budgetID)
	if err != nil {
		return entities.Version{}, err
	}
	return u.latestOf(ctx, b)
}

func (u *BudgetUseCase) latestOf(ctx context.Context, b entities.Budget) (entities.Version, error) {
	v, err := u.versions.GetLatest(ctx, b.ID)
	if err != nil {
		return entities.Version{}, err
	}
	if v.ID == "" {
		return entities.Version{}, ErrNoVersions
	}
	return v, nil
}

// Totals prices the latest version with the client's current rates.
func (u *BudgetUseCase) Totals(ctx context.Context, budgetID string) (BudgetTotals, error) {
	b, err := u.GetBudget(ctx, budgetID)
	if err != nil {
		return BudgetTotals{}, err
	}
	v, err := u.latestOf(ctx, b)
	if err != nil {
		return BudgetTotals{}, err
	}

	priced, err := u.pricer.price(ctx, b.ClientID, v.Payload, nil)
	if err != nil {
		return BudgetTotals{}, err
	}
	return BudgetTotals{Budget: b, Version: v, PricedPayload: priced}, nil
}

func (u *BudgetUseCase) Export(ctx context.Context, budgetID string, format interfaces.ExportFormat) (interfaces.ExportedFile, error) {
	exporter, ok := u.exporters[interfaces.ExportFormat(strings.ToLower(string(format)))]
	if !ok {
		return interfaces.ExportedFile{}, ErrUnsupportedExportFormat
	}

	totals, err := u.Totals(ctx, budgetID)
	if err != nil {
		return interfaces.ExportedFile{}, err
	}

	doc := interfaces.BudgetDocument{
		Budget:      totals.Budget,
		Version:     totals.Version,
		Summary:     totals.Summary,
		Breakdown:   totals.Breakdown,
		Locale:      u.opts.Locale,
		GeneratedAt: u.now(),
	}
	if doc.Client, err = u.clients.GetByID(ctx, totals.Budget.ClientID); err != nil {
		return interfaces.ExportedFile{}, err
	}
	if totals.Budget.ProductID != "" {
		if doc.Product, err = u.products.GetByID(ctx, totals.Budget.ProductID); err != nil {
			return interfaces.ExportedFile{}, err
		}
	}

	return exporter.Export(ctx, doc)
}
