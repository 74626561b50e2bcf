package router

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/antlers07/kitchen-chatbot/config"
	"github.com/antlers07/kitchen-chatbot/controllers"
	"github.com/antlers07/kitchen-chatbot/middlewares"
	"github.com/antlers07/kitchen-chatbot/services"
)

func SetupRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.Default()

	// Middleware must be attached before any route is registered or gin
	// never runs it for those routes.
	rateLimiter := middlewares.NewRateLimiter(cfg.RateLimit, 1)
	r.Use(rateLimiter.RateLimit())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	orderSvc := services.NewOrderService(db, cfg)

	webhookCtrl := controllers.NewWebhookController(orderSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	healthCtrl := controllers.NewHealthController(db, cfg.DBTimeout)

	r.GET("/", healthCtrl.Root)
	r.GET("/health", healthCtrl.Health)

	r.POST("/webhook", webhookCtrl.Handle)

	r.GET("/orders", orderCtrl.ListRecent)

	// Status updates come from the kitchen display page, unauthenticated.
	updates := r.Group("/")
	updates.Use(middlewares.NewStrictRateLimiter())
	{
		updates.POST("/orders/status", orderCtrl.UpdateStatus)
	}

	// Static chat widget, replies are simulated client-side.
	workDir, _ := os.Getwd()
	r.StaticFile("/chat", filepath.Join(workDir, "static", "chat.html"))

	return r
}
