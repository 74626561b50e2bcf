// Package dialogflow carries the webhook request and response envelopes for
// the conversational platform. The request shape is declared once here, with
// binding tags, and checked at the boundary.
package dialogflow

// Intent display names the webhook knows how to handle.
const (
	IntentReceiveOrder  = "Receive Order"
	IntentUpdateStatus  = "Update Preparation Status"
	IntentShowOrders    = "Show Current Orders"
	IntentCompleteOrder = "Complete Order"
	IntentDailySummary  = "Daily Summary"
)

type WebhookRequest struct {
	QueryResult QueryResult `json:"queryResult" binding:"required"`
}

type QueryResult struct {
	Intent     Intent     `json:"intent"`
	Parameters Parameters `json:"parameters"`
}

type Intent struct {
	DisplayName string `json:"displayName"`
}

// Parameters holds the union of parameters across the handled intents.
// Dialogflow leaves unfilled slots empty rather than omitting them.
type Parameters struct {
	TableNumber string     `json:"table_number"`
	FoodItems   []FoodItem `json:"food_items" binding:"omitempty,dive"`
	OrderID     float64    `json:"order_id"`
	Status      string     `json:"status"`
}

// FoodItem is one requested line. The id arrives as text and must be an
// integer key into the menu catalog; quantity and price are passed through
// verbatim, the caller is trusted for both.
type FoodItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name,omitempty"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type WebhookResponse struct {
	FulfillmentText     string    `json:"fulfillmentText"`
	FulfillmentMessages []Message `json:"fulfillmentMessages,omitempty"`
}

type Message struct {
	Text *Text `json:"text,omitempty"`
}

type Text struct {
	Text []string `json:"text"`
}

// NewResponse wraps a reply string into the full fulfillment envelope,
// mirroring the text into fulfillmentMessages for rich clients.
func NewResponse(text string) WebhookResponse {
	return WebhookResponse{
		FulfillmentText: text,
		FulfillmentMessages: []Message{
			{Text: &Text{Text: []string{text}}},
		},
	}
}
