package router

import (
	"github.com/h1mzy0ti/Expense-Tracker-API/internal/config"
	"github.com/h1mzy0ti/Expense-Tracker-API/internal/handler"
	"github.com/h1mzy0ti/Expense-Tracker-API/internal/middleware"
	"github.com/h1mzy0ti/Expense-Tracker-API/internal/store"
	"github.com/h1mzy0ti/Expense-Tracker-API/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the gin engine and the API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	util.RegisterTagName()

	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	users := store.NewUserStore(db)
	expenses := store.NewExpenseStore(db)

	authHandler := handler.NewAuthHandler(users, cfg.JWT)
	r.POST("/signup/", authHandler.Signup)
	r.POST("/login/", authHandler.Login)
	r.POST("/refresh/", authHandler.Refresh)

	protected := r.Group("")
	protected.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret, users),
		middleware.AuditMiddleware(db),
	)

	protected.POST("/logout/", authHandler.Logout)
	protected.GET("/me", handler.GetMe)

	expenseHandler := handler.NewExpenseHandler(expenses)
	protected.POST("/expenses/", expenseHandler.Create)
	protected.GET("/expenses/", expenseHandler.List)
	protected.GET("/expenses/analytics/", expenseHandler.Analytics)

	exportHandler := handler.NewExportHandler(expenses)
	protected.GET("/expenses/export/csv", exportHandler.ExportCSV)
	protected.GET("/expenses/export/xlsx", exportHandler.ExportXLSX)

	return r
}
