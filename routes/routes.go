package routes

import (
	"foodfront/configs"
	"foodfront/controllers"
	"foodfront/middlewares"
	"foodfront/repository"
	"foodfront/services"
	"foodfront/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.Hub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo)
	orderSvc := services.NewOrderService(db, orderRepo, hub)

	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, cfg.SimulateInterval)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Catalog (public)
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)

	// Orders (user)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders/:id", orderCtrl.Detail)
	}

	// Push channel
	r.GET("/ws/orders", hub.HandleWebSocket)
}
