package handlers

import (
	"time"

	"salestrack/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Router wires every route. Login and health are open; everything else sits
// behind bearer-token auth, and catalog writes behind the admin role.
func (h *Handler) Router() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     h.Cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", h.Health)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/users", h.CreateMerchandiser)
		if h.Cfg.AllowAdminSignup {
			authGroup.POST("/register", h.RegisterAdmin)
		}
		authGroup.GET("/users", middleware.RequireAuth(h.Tokens, h.Store), h.ListUsers)
	}

	api := r.Group("/api")
	api.Use(middleware.RequireAuth(h.Tokens, h.Store))
	{
		api.GET("/retail-partners", h.ListRetailPartners)
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)

		api.GET("/inventory", h.ListInventory)
		api.POST("/inventory", h.CreateInventory)
		api.GET("/inventory/summary", h.InventorySummary)
		api.GET("/inventory/details-by-store", h.InventoryDetailsByStore)
		api.GET("/inventory/details-by-store/:id", h.InventoryDetailsForStore)

		api.GET("/daily-sales-reports", h.ListReports)
		api.POST("/daily-sales-reports", h.CreateReport)
		api.DELETE("/daily-sales-reports/:id", h.DeleteReport)

		// ADMIN ONLY
		admin := api.Group("/")
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.POST("/retail-partners", h.CreateRetailPartner)
			admin.POST("/products", h.CreateProduct)
		}
	}

	return r
}
