package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	request "orcamentos_rtv/internal/adapter/http/dto/request"
	"orcamentos_rtv/internal/adapter/http/handlers"
	"orcamentos_rtv/internal/adapter/http/middleware"
	"orcamentos_rtv/internal/config"
	"orcamentos_rtv/internal/domain/access"
	"orcamentos_rtv/internal/usecase"
	"orcamentos_rtv/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// UseCases groups what the HTTP layer serves. Finance and Metadata may be
// nil when their feature flag is off.
type UseCases struct {
	Clients   usecase.IClientUseCase
	Suppliers usecase.ISupplierUseCase
	Budgets   usecase.IBudgetUseCase
	Pricing   usecase.IPricingUseCase
	Rights    usecase.IRightsUseCase
	Finance   usecase.IFinanceEventUseCase
	Metadata  usecase.IMetadataUseCase
}

type RouterOptions struct {
	Config   *config.Config
	Log      *logger.Logger
	Verifier middleware.TokenVerifier
	Policy   *access.Policy
	// Registry receives the HTTP metrics; nil disables /metrics.
	Registry *prometheus.Registry
}

// NewRouter builds the gin engine with every route enabled by the feature
// flags.
func NewRouter(opts RouterOptions, uc UseCases) *gin.Engine {
	request.RegisterValidators()
	cfg := opts.Config

	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		opts.Log.Error(c.Request.Context(), "recovered from panic", fmt.Errorf("%v", recovered), nil)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.RequestLogger(opts.Log))
	router.Use(middleware.CORS(cfg.App, cfg.CORS))
	if opts.Registry != nil {
		router.Use(middleware.NewHTTPMetrics(opts.Registry).Handler())
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("")
	authed.Use(middleware.Authenticate(opts.Verifier, opts.Policy, middleware.AuthOptions{
		Disabled: cfg.Auth.Disabled,
		DevEmail: cfg.Auth.DevEmail,
	}))

	addMeRoutes(authed, handlers.NewMeHandler(cfg.Features))
	addClientRoutes(authed, handlers.NewClientHandler(uc.Clients), handlers.NewSupplierHandler(uc.Suppliers))
	addBudgetRoutes(authed, handlers.NewBudgetHandler(uc.Budgets, cfg.Pricing.Locale))
	addPricingRoutes(authed, handlers.NewPricingHandler(uc.Pricing, cfg.Pricing.Locale, opts.Log))
	addRightsRoutes(authed, handlers.NewRightsHandler(uc.Rights), cfg.Features.RightsNotifications)

	if cfg.Features.FinanceModule && uc.Finance != nil {
		addFinanceRoutes(authed, handlers.NewFinanceEventHandler(uc.Finance))
	}
	if cfg.Features.MediaMetadata && uc.Metadata != nil {
		addMediaRoutes(authed, handlers.NewMetadataHandler(uc.Metadata))
	}
	return router
}

// Run wires the service and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	uc, closeFn, err := buildUseCases(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeFn()

	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	router := NewRouter(RouterOptions{
		Config:   cfg,
		Log:      log,
		Verifier: newVerifier(cfg),
		Policy:   access.NewPolicy(cfg.Access.PolicyConfig()),
		Registry: registry,
	}, uc)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "http server listening", map[string]any{"addr": srv.Addr, "env": cfg.App.Env})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info(shutdownCtx, "shutting down http server", nil)
	return srv.Shutdown(shutdownCtx)
}
