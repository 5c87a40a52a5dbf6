package routes

import (
	"github.com/gin-gonic/gin"

	"orcamentos_rtv/internal/adapter/http/handlers"
	"orcamentos_rtv/internal/adapter/http/middleware"
	"orcamentos_rtv/internal/domain/access"
)

const (
	PathMe        = "/me"
	PathClients   = "/clients"
	PathSuppliers = "/suppliers"
	PathBudgets   = "/budgets"
	PathPricing   = "/pricing"
	PathRights    = "/rights"
	PathFinance   = "/finance"
	PathMedia     = "/media"
)

var (
	canReadBudgets  = middleware.RequireCapability(access.BudgetRead)
	canWriteBudgets = middleware.RequireCapability(access.BudgetWrite)
	canWriteClients = middleware.RequireCapability(access.ClientsWrite)
	canReadRights   = middleware.RequireCapability(access.RightsRead)
	canWriteRights  = middleware.RequireCapability(access.RightsWrite)
	canReadFinance  = middleware.RequireCapability(access.FinanceRead)
	canEditFinance  = middleware.RequireCapability(access.FinanceEdit)
)

func addMeRoutes(rg *gin.RouterGroup, h *handlers.MeHandler) {
	rg.GET(PathMe, h.Me)
}

func addClientRoutes(rg *gin.RouterGroup, clients *handlers.ClientHandler, suppliers *handlers.SupplierHandler) {
	c := rg.Group(PathClients)
	{
		c.GET("", canReadBudgets, clients.ListClients)
		c.POST("", canWriteClients, clients.CreateClient)
		c.GET("/:id", canReadBudgets, clients.GetClient)
		c.PATCH("/:id/honorario", canWriteClients, clients.UpdateHonorario)
		c.GET("/:id/products", canReadBudgets, clients.ListProducts)
		c.POST("/:id/products", canWriteClients, clients.CreateProduct)
	}

	s := rg.Group(PathSuppliers)
	{
		s.GET("", canReadBudgets, suppliers.ListSuppliers)
		s.POST("", canWriteClients, suppliers.CreateSupplier)
	}
}

func addBudgetRoutes(rg *gin.RouterGroup, h *handlers.BudgetHandler) {
	b := rg.Group(PathBudgets)
	{
		b.GET("", canReadBudgets, h.ListBudgets)
		b.POST("", canWriteBudgets, h.CreateBudget)
		b.GET("/:id", canReadBudgets, h.GetBudget)
		b.PATCH("/:id/status", canWriteBudgets, h.SetStatus)
		b.GET("/:id/versions", canReadBudgets, h.ListVersions)
		b.POST("/:id/versions", canWriteBudgets, h.SaveVersion)
		b.GET("/:id/versions/latest", canReadBudgets, h.LatestVersion)
		b.GET("/:id/totals", canReadBudgets, h.Totals)
		b.GET("/:id/export", canReadBudgets, h.Export)
	}
}

func addPricingRoutes(rg *gin.RouterGroup, h *handlers.PricingHandler) {
	p := rg.Group(PathPricing, canReadBudgets)
	{
		p.GET("/rates", h.Rates)
		p.POST("/preview", h.Preview)
		p.POST("/selection", h.SelectionTotal)
	}
}

func addRightsRoutes(rg *gin.RouterGroup, h *handlers.RightsHandler, notifications bool) {
	r := rg.Group(PathRights)
	{
		r.GET("", canReadRights, h.ListRecords)
		r.POST("", canWriteRights, h.CreateRecord)
		r.GET("/kpis", canReadRights, h.KPIs)
		r.GET("/:id", canReadRights, h.GetRecord)
		r.POST("/:id/renew", canWriteRights, h.Renew)
		r.PATCH("/:id/status-label", canWriteRights, h.SetStatusLabel)
		if notifications {
			r.POST("/notifications/sweep", canWriteRights, h.SweepNotifications)
		}
	}
}

func addFinanceRoutes(rg *gin.RouterGroup, h *handlers.FinanceEventHandler) {
	f := rg.Group(PathFinance + "/events")
	{
		f.GET("", canReadFinance, h.ListEvents)
		f.POST("/import", canEditFinance, h.ImportText)
		f.POST("/upload", canEditFinance, h.ImportFile)
	}
}

func addMediaRoutes(rg *gin.RouterGroup, h *handlers.MetadataHandler) {
	rg.GET(PathMedia+"/metadata", canReadBudgets, h.Fetch)
}
