package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/antlers07/kitchen-chatbot/utils"
)

type HealthController struct {
	DB      *gorm.DB
	Timeout time.Duration
}

func NewHealthController(db *gorm.DB, timeout time.Duration) *HealthController {
	return &HealthController{DB: db, Timeout: timeout}
}

// Root -> static service metadata.
func (hc *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":   "kitchen-chatbot-backend",
		"status": "running",
		"routes": []string{
			"POST /webhook",
			"GET /health",
			"GET /orders",
			"POST /orders/status",
			"GET /chat",
		},
	})
}

// Health pings the store and downgrades to a degraded payload instead of
// failing when it is unreachable.
func (hc *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), hc.Timeout)
	defer cancel()

	sqlDB, err := hc.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		utils.ErrorLogger.Printf("health: database unreachable: %v", err)
		c.JSON(http.StatusOK, gin.H{"status": "degraded", "database": "disconnected"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "connected"})
}
