package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/antlers07/kitchen-chatbot/config"
	"github.com/antlers07/kitchen-chatbot/database"
	"github.com/antlers07/kitchen-chatbot/router"
)

// The per-IP limiter has to be attached before routes are registered, so it
// is exercised here through the full router rather than in isolation.
func TestRateLimiterThrottlesThroughRouter(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:ratelimit?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := config.Config{
		OrdersLimit: 20,
		RateLimit:   2,
		DBTimeout:   5 * time.Second,
	}
	r := router.SetupRouter(db, cfg)

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		req, _ := http.NewRequest("GET", "/health", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	for _, code := range codes[2:] {
		assert.Equal(t, http.StatusTooManyRequests, code)
	}
}

// A different client must not be affected by another IP's budget.
func TestRateLimiterIsPerIP(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:ratelimit_ip?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := config.Config{
		OrdersLimit: 20,
		RateLimit:   1,
		DBTimeout:   5 * time.Second,
	}
	r := router.SetupRouter(db, cfg)

	for i, addr := range []string{"203.0.113.1:1000", "203.0.113.2:1000"} {
		req, _ := http.NewRequest("GET", "/health", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "client %d should get its own budget", i+1)
	}
}
