package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/antlers07/kitchen-chatbot/config"
	"github.com/antlers07/kitchen-chatbot/database"
	"github.com/antlers07/kitchen-chatbot/models"
	"github.com/antlers07/kitchen-chatbot/router"
	"github.com/antlers07/kitchen-chatbot/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// TestEndToEndIntake runs the main flow through the full router:
// 1. Place an order through the webhook
// 2. Read it back from /orders
// 3. Move it to Ready via /orders/status
// 4. Confirm the health check stays green
func TestEndToEndIntake(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:integration?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := config.Config{
		OrdersLimit: 20,
		RateLimit:   50,
		DBTimeout:   5 * time.Second,
	}
	r := router.SetupRouter(db, cfg)

	// 1. Webhook intake
	event := map[string]interface{}{
		"queryResult": map[string]interface{}{
			"intent": map[string]interface{}{"displayName": "Receive Order"},
			"parameters": map[string]interface{}{
				"table_number": "5",
				"food_items": []map[string]interface{}{
					{"id": "12", "name": "Chicken Rice", "quantity": 2, "price": 8.99},
				},
			},
		},
	}
	body, _ := json.Marshal(event)
	req, _ := http.NewRequest("POST", "/webhook", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var hookResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &hookResp))
	assert.Contains(t, hookResp["fulfillmentText"].(string), "table 5")

	var order models.Order
	assert.NoError(t, db.First(&order).Error)

	// 2. Listing
	req, _ = http.NewRequest("GET", "/orders", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var listResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Equal(t, float64(1), listResp["count"])

	// 3. Status update
	update, _ := json.Marshal(map[string]interface{}{
		"orderId": order.ID,
		"status":  models.OrderStatusReady,
	})
	req, _ = http.NewRequest("POST", "/orders/status", bytes.NewBuffer(update))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Order
	assert.NoError(t, db.First(&updated, order.ID).Error)
	assert.Equal(t, models.OrderStatusReady, updated.Status)
	fmt.Println("order", updated.ID, "is", updated.Status)

	// 4. Health
	req, _ = http.NewRequest("GET", "/health", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var health map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "connected", health["database"])
}
