package routes

import (
	"context"

	"github.com/redis/go-redis/v9"

	"orcamentos_rtv/internal/adapter/http/middleware"
	"orcamentos_rtv/internal/adapter/persistence/repository"
	"orcamentos_rtv/internal/config"
	"orcamentos_rtv/internal/infrastructure/auth"
	"orcamentos_rtv/internal/infrastructure/cache"
	"orcamentos_rtv/internal/infrastructure/database"
	"orcamentos_rtv/internal/infrastructure/export"
	"orcamentos_rtv/internal/infrastructure/importer"
	"orcamentos_rtv/internal/infrastructure/metadata"
	"orcamentos_rtv/internal/infrastructure/notifier"
	"orcamentos_rtv/internal/usecase"
	"orcamentos_rtv/internal/usecase/interfaces"
	"orcamentos_rtv/pkg/logger"
)

func newVerifier(cfg *config.Config) middleware.TokenVerifier {
	return auth.NewVerifier(cfg.Auth)
}

// buildUseCases connects DynamoDB (and Redis when configured) and builds the
// use cases. Redis backs the metadata cache and the rights sweep lock. The returned func releases the connections.
func buildUseCases(ctx context.Context, cfg *config.Config, log *logger.Logger) (UseCases, func(), error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.Dynamo)
	if err != nil {
		return UseCases{}, nil, err
	}

	clientRepo := repository.NewClientDynamoRepository(ddb, cfg.Dynamo.ClientsTable)
	productRepo := repository.NewProductDynamoRepository(ddb, cfg.Dynamo.ProductsTable)
	supplierRepo := repository.NewSupplierDynamoRepository(ddb, cfg.Dynamo.SuppliersTable)
	budgetRepo := repository.NewBudgetDynamoRepository(ddb, cfg.Dynamo.BudgetsTable)
	versionRepo := repository.NewVersionDynamoRepository(ddb, cfg.Dynamo.VersionsTable)
	rightsRepo := repository.NewRightsDynamoRepository(ddb, cfg.Dynamo.RightsTable)
	financeRepo := repository.NewFinanceEventDynamoRepository(ddb, cfg.Dynamo.FinanceEventsTable)

	closeFn := func() {}
	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb, err = cache.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Warn(ctx, "redis unavailable, metadata cache and sweep lock disabled", map[string]any{"error": err.Error()})
		} else {
			closeFn = func() { _ = rdb.Close() }
		}
	}

	pricingUseCase := usecase.NewPricingUseCase(clientRepo, cfg.Pricing.Defaults(), log)
	exporters := []interfaces.IBudgetExporter{
		export.NewPDFExporter(),
		export.NewCSVExporter(),
		export.NewXLSXExporter(),
	}

	var rightsNotifier interfaces.IRightsNotifier
	if cfg.Features.RightsNotifications {
		rightsNotifier = notifier.NewLogNotifier(log)
	}
	rightsUseCase := usecase.NewRightsUseCase(rightsRepo, clientRepo, productRepo, rightsNotifier, log)
	if rdb != nil {
		rightsUseCase.WithLocker(cache.NewRedisLocker(rdb, cfg.Redis.SweepLockTTL))
	}

	uc := UseCases{
		Clients:   usecase.NewClientUseCase(clientRepo, productRepo),
		Suppliers: usecase.NewSupplierUseCase(supplierRepo),
		Budgets: usecase.NewBudgetUseCase(budgetRepo, versionRepo, clientRepo, productRepo, pricingUseCase, exporters, usecase.BudgetOptions{
			DisplayIDPrefix: cfg.Pricing.DisplayIDPrefix,
			Locale:          cfg.Pricing.Locale,
		}, log),
		Pricing: pricingUseCase,
		Rights:  rightsUseCase,
	}
	if cfg.Features.FinanceModule {
		uc.Finance = usecase.NewFinanceEventUseCase(financeRepo, importer.NewFinanceSheetParser(), log)
	}

	if cfg.Features.MediaMetadata {
		var provider interfaces.IMediaMetadataProvider = metadata.NewScraper(cfg.Metadata)
		if rdb != nil {
			provider = cache.NewMetadataProvider(provider, rdb, cfg.Redis.MetadataCacheTTL, log)
		}
		uc.Metadata = usecase.NewMetadataUseCase(provider)
	}
	return uc, closeFn, nil
}
