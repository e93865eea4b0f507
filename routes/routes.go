package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/configs"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/controllers"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/middlewares"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/mailer"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/repository"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, mail mailer.Mailer) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	earningRepo := repository.NewEarningRepository(db)

	// Services
	authSvc := services.NewAuthService(db, userRepo, mail, cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	tableSvc := services.NewTableService(tableRepo)
	orderSvc := services.NewOrderService(db, orderRepo, earningRepo)
	perfSvc := services.NewPerformanceService(db, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	categoryCtrl := controllers.NewCategoryController(menuRepo)
	dishCtrl := controllers.NewDishController(menuRepo)
	tableCtrl := controllers.NewTableController(tableRepo, tableSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	itemCtrl := controllers.NewOrderItemController(orderRepo)
	earningCtrl := controllers.NewEarningController(earningRepo, perfSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Accounts (public)
	u := r.Group("/user")
	{
		u.POST("/register/", authCtrl.Register)
		u.POST("/token/", authCtrl.Token)
		u.POST("/token/refresh/", authCtrl.Refresh)
		u.POST("/password-reset/", authCtrl.PasswordReset)
		u.POST("/otp-verification/", authCtrl.VerifyOTP)
		u.POST("/password-change/", authCtrl.PasswordChange)
	}

	// Accounts (protected)
	uAuth := r.Group("/user", auth)
	{
		uAuth.GET("/profile/", authCtrl.Profile)
		uAuth.PUT("/profile/", authCtrl.UpdateProfile)
	}

	// Menu
	categories := r.Group("/categories", auth)
	{
		categories.GET("/", categoryCtrl.List)
		categories.POST("/", categoryCtrl.Create)
		categories.GET("/:id/", categoryCtrl.Detail)
		categories.PUT("/:id/", categoryCtrl.Update)
		categories.DELETE("/:id/", categoryCtrl.Delete)
	}
	dishes := r.Group("/dishes", auth)
	{
		dishes.GET("/", dishCtrl.List)
		dishes.POST("/", dishCtrl.Create)
		dishes.GET("/:id/", dishCtrl.Detail)
		dishes.PUT("/:id/", dishCtrl.Update)
		dishes.DELETE("/:id/", dishCtrl.Delete)
	}

	// Tables
	tables := r.Group("/tables", auth)
	{
		tables.GET("/", tableCtrl.List)
		tables.POST("/", tableCtrl.Create)
		tables.GET("/:id/", tableCtrl.Detail)
		tables.PUT("/:id/", tableCtrl.Update)
		tables.DELETE("/:id/", tableCtrl.Delete)
		tables.POST("/:id/book/", tableCtrl.Book)
		tables.POST("/:id/free/", tableCtrl.Free)
	}

	// Orders
	orders := r.Group("/orders", auth)
	{
		orders.GET("/", orderCtrl.List)
		orders.POST("/", orderCtrl.Create)
		orders.GET("/:id/", orderCtrl.Detail)
		orders.PUT("/:id/", orderCtrl.Update)
		orders.DELETE("/:id/", orderCtrl.Delete)
	}
	items := r.Group("/order-items", auth)
	{
		items.GET("/", itemCtrl.List)
		items.POST("/", itemCtrl.Create)
		items.GET("/:id/", itemCtrl.Detail)
		items.PUT("/:id/", itemCtrl.Update)
		items.DELETE("/:id/", itemCtrl.Delete)
	}

	// Earnings (staff only, read-only)
	earnings := r.Group("/earnings", auth, middlewares.StaffOnly())
	{
		earnings.GET("/", earningCtrl.List)
		earnings.GET("/performance/", earningCtrl.Performance)
		earnings.GET("/:id/", earningCtrl.Detail)
	}
}
