package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/medsupply/erp-api/internal/middleware"
	"github.com/medsupply/erp-api/internal/roles"
)

// SetupRoutes registers every route. /auth is public; everything under
// /api passes AuthMiddleware first, then per-group role gates. Owners pass
// every gate via the allow-list predicate.
func (h *Handler) SetupRoutes(r *gin.Engine) {
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", h.Register)
		authRoutes.POST("/login", h.Login)
	}

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/profile", h.GetProfile)
		api.PUT("/profile", h.UpdateProfile)
		api.GET("/dashboard", h.Dashboard)
		api.POST("/uploads/profile-photo", h.UploadProfilePhoto)

		admin := api.Group("/admin", middleware.RequireRoles(roles.Admin))
		{
			admin.GET("/users", h.ListUsers)
			admin.POST("/users", h.CreateUser)
			admin.PUT("/users/:id", h.UpdateUser)
			admin.DELETE("/users/:id", h.DeleteUser)
		}

		api.GET("/inventory", h.ListInventory)
		api.GET("/inventory/summary", h.InventorySummary)
		inventory := api.Group("/inventory", middleware.RequireRoles(roles.Admin, roles.Distributor))
		{
			inventory.POST("", h.CreateInventoryItem)
			inventory.PUT("/:id", h.UpdateInventoryItem)
			inventory.DELETE("/:id", h.DeleteInventoryItem)
		}

		api.POST("/orders", h.CreateOrder)
		api.GET("/orders", h.ListOrders)
		api.GET("/orders/:id", h.GetOrder)
		deliverer := api.Group("/orders", middleware.RequireRoles(roles.Deliverer))
		{
			deliverer.PATCH("/:id/status", h.UpdateOrderStatus)
			deliverer.POST("/:id/pickup-photo", h.UploadPickupPhoto)
		}

		api.GET("/returns", h.ListReturns)
		api.GET("/returns/:id", h.GetReturn)
		api.POST("/returns", middleware.RequireRoles(roles.Admin, roles.Doctor), h.CreateReturn)
		api.PUT("/returns/:id", middleware.RequireRoles(roles.Admin, roles.Doctor), h.UpdateReturn)
		returnAdmin := api.Group("/returns", middleware.RequireRoles(roles.Admin))
		{
			returnAdmin.PATCH("/:id/approve", h.ApproveReturn)
			returnAdmin.PATCH("/:id/reject", h.RejectReturn)
		}
		api.PATCH("/returns/:id/use", middleware.RequireRoles(roles.Admin, roles.Distributor), h.MarkReturnUsed)

		suppliers := api.Group("/suppliers", middleware.RequireRoles(roles.Admin, roles.Distributor, roles.Accountant))
		{
			suppliers.GET("", h.ListSuppliers)
			suppliers.POST("", h.CreateSupplier)
			suppliers.PUT("/:id", h.UpdateSupplier)
			suppliers.DELETE("/:id", h.DeleteSupplier)
		}

		purchases := api.Group("/purchases", middleware.RequireRoles(roles.Admin, roles.Distributor, roles.Accountant))
		{
			purchases.GET("", h.ListPurchases)
			purchases.POST("", h.CreatePurchase)
			purchases.PUT("/:id", h.UpdatePurchase)
			purchases.DELETE("/:id", h.DeletePurchase)
		}

		invoices := api.Group("/invoices", middleware.RequireRoles(roles.Admin, roles.Accountant))
		{
			invoices.GET("", h.ListInvoices)
			invoices.GET("/:id", h.GetInvoice)
			invoices.POST("", h.CreateInvoice)
		}

		ledger := api.Group("/ledger", middleware.RequireRoles(roles.Accountant))
		{
			ledger.GET("", h.ListLedgerEntries)
			ledger.POST("", h.CreateLedgerEntry)
		}
		generalLedger := api.Group("/general-ledger", middleware.RequireRoles(roles.Accountant))
		{
			generalLedger.GET("", h.ListGeneralLedgerEntries)
			generalLedger.POST("", h.CreateGeneralLedgerEntry)
		}

		history := api.Group("/history", middleware.RequireRoles(roles.Admin, roles.Accountant))
		{
			history.GET("", h.ListHistory)
			history.PATCH("/:id/enable", h.SetHistoryEnabled(true))
			history.PATCH("/:id/disable", h.SetHistoryEnabled(false))
			history.PATCH("/:id/remove", h.RemoveHistory)
		}
	}
}
