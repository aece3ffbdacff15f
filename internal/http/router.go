package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nguyenlong0920/ecommerce-admin/internal/http/handlers"
	"github.com/nguyenlong0920/ecommerce-admin/internal/http/middleware"
	"github.com/nguyenlong0920/ecommerce-admin/internal/modules/admins"
	"github.com/nguyenlong0920/ecommerce-admin/internal/modules/categories"
	"github.com/nguyenlong0920/ecommerce-admin/internal/modules/orders"
	"github.com/nguyenlong0920/ecommerce-admin/internal/modules/products"
	"github.com/nguyenlong0920/ecommerce-admin/internal/modules/settings"
	"github.com/nguyenlong0920/ecommerce-admin/internal/storage"
)

type RouterCfg struct {
	SessionCookieName string
	SessionSecure     bool
	SessionTTL        time.Duration
	AuthGatewayToken  string
}

func NewRouter(l *slog.Logger, db *gorm.DB, store storage.Storage, cfg RouterCfg) *gin.Engine {
	if cfg.SessionCookieName == "" {
		cfg.SessionCookieName = "admin_session"
	}
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = 24 * time.Hour
	}

	sessions := middleware.SessionCfg{
		DB:         db,
		CookieName: cfg.SessionCookieName,
		Secure:     cfg.SessionSecure,
		TTL:        cfg.SessionTTL,
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(l))
	r.Use(middleware.Recovery(l))
	r.Use(middleware.ErrorHandler(l))
	r.Use(middleware.SessionMiddleware(sessions))

	adminsSvc := admins.NewService(db)
	ordersRepo := orders.NewRepo(db)

	authH := handlers.NewAuthHandler(sessions, adminsSvc, cfg.AuthGatewayToken)
	adminsH := handlers.NewAdminsHandler(adminsSvc)
	categoriesH := handlers.NewCategoriesHandler(categories.NewService(db))
	productsH := handlers.NewProductsHandler(products.NewService(db), store)
	ordersH := handlers.NewOrdersHandler(ordersRepo)
	settingsH := handlers.NewSettingsHandler(settings.NewRepo(db))
	uploadH := handlers.NewUploadHandler(store)
	dashboardH := handlers.NewDashboardHandler(ordersRepo)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// session issuance is guarded by the gateway token, not by a session
	api.POST("/auth/login", authH.Login)

	protected := api.Group("")
	protected.Use(middleware.RequireAdmin())
	{
		protected.POST("/auth/logout", authH.Logout)
		protected.GET("/auth/me", authH.Me)

		protected.GET("/admins", adminsH.List)
		protected.POST("/admins", adminsH.Create)
		protected.PUT("/admins", adminsH.Update)
		protected.DELETE("/admins", adminsH.Delete)

		protected.GET("/categories", categoriesH.List)
		protected.POST("/categories", categoriesH.Create)
		protected.PUT("/categories", categoriesH.Update)
		protected.DELETE("/categories", categoriesH.Delete)

		protected.GET("/products", productsH.List)
		protected.POST("/products", productsH.Create)
		protected.PUT("/products", productsH.Update)
		protected.DELETE("/products", productsH.Delete)

		protected.GET("/orders", ordersH.List)

		protected.GET("/settings", settingsH.Get)
		protected.PUT("/settings", settingsH.Put)

		protected.POST("/upload", uploadH.Post)

		protected.GET("/dashboard", dashboardH.Get)
	}

	return r
}
