package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/antlers07/kitchen-chatbot/dialogflow"
	"github.com/antlers07/kitchen-chatbot/services"
	"github.com/antlers07/kitchen-chatbot/utils"
)

// Reply strings for the conversational contract. The webhook always answers
// HTTP 200 with one of these; raw errors never reach the platform.
const (
	replyAskTable      = "Which table should I place this order for?"
	replyAskItems      = "What would you like to order?"
	replyNumericIDs    = "Sorry, item ids must be numeric. Please pick items from the menu and try again."
	replyApology       = "Sorry, something went wrong on our side. Please try again in a moment."
	replyNotHandled    = "Intent not handled."
	replyAskWhichOrder = "Which order should I update, and to what status?"
	replyAskWhichDone  = "Which order number is done?"
)

type WebhookController struct {
	Orders *services.OrderService
}

func NewWebhookController(orders *services.OrderService) *WebhookController {
	return &WebhookController{Orders: orders}
}

// Handle dispatches an intent event. Whatever happens inside, the caller
// gets a 200 with a fulfillment text.
func (wc *WebhookController) Handle(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			utils.ErrorLogger.Printf("webhook: recovered from panic: %v", r)
			c.JSON(http.StatusOK, dialogflow.NewResponse(replyApology))
		}
	}()

	var req dialogflow.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorLogger.Printf("webhook: malformed intent event: %v", err)
		c.JSON(http.StatusOK, dialogflow.NewResponse(replyApology))
		return
	}

	switch req.QueryResult.Intent.DisplayName {
	case dialogflow.IntentReceiveOrder:
		wc.receiveOrder(c, req.QueryResult.Parameters)
	case dialogflow.IntentUpdateStatus:
		wc.updateStatus(c, req.QueryResult.Parameters)
	case dialogflow.IntentShowOrders:
		wc.showOrders(c)
	case dialogflow.IntentCompleteOrder:
		wc.completeOrder(c, req.QueryResult.Parameters)
	case dialogflow.IntentDailySummary:
		wc.dailySummary(c)
	default:
		c.JSON(http.StatusOK, dialogflow.NewResponse(replyNotHandled))
	}
}

func (wc *WebhookController) receiveOrder(c *gin.Context, params dialogflow.Parameters) {
	items := make([]services.IntakeItem, 0, len(params.FoodItems))
	for _, fi := range params.FoodItems {
		items = append(items, services.IntakeItem{
			ID:       fi.ID,
			Name:     fi.Name,
			Quantity: fi.Quantity,
			Price:    fi.Price,
		})
	}

	table, err := wc.Orders.ValidateIntake(params.TableNumber, items)
	switch {
	case errors.Is(err, services.ErrMissingTable):
		c.JSON(http.StatusOK, dialogflow.NewResponse(replyAskTable))
		return
	case errors.Is(err, services.ErrNoItems):
		c.JSON(http.StatusOK, dialogflow.NewResponse(replyAskItems))
		return
	}

	orderID, err := wc.Orders.PlaceOrder(c.Request.Context(), table, items)
	switch {
	case err == nil:
		reply := fmt.Sprintf("Got it! Your order for table %s has been placed. Your order number is %d.", table, orderID)
		c.JSON(http.StatusOK, dialogflow.NewResponse(reply))
	case errors.Is(err, services.ErrInvalidItemID):
		c.JSON(http.StatusOK, dialogflow.NewResponse(replyNumericIDs))
	default:
		utils.ErrorLogger.Printf("webhook: failed to save order for table %s: %v", table, err)
		c.JSON(http.StatusOK, dialogflow.NewResponse(replyApology))
	}
}

func (wc *WebhookController) updateStatus(c *gin.Context, params dialogflow.Parameters) {
	orderID := uint(params.OrderID)
	status := strings.TrimSpace(params.Status)
	if orderID == 0 || status == "" {
		c.JSON(http.StatusOK, dialogflow.NewResponse(replyAskWhichOrder))
		return
	}

	err := wc.Orders.UpdateStatus(c.Request.Context(), orderID, status)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dialogflow.NewResponse(
			fmt.Sprintf("Order #%d status updated to %s.", orderID, status)))
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusOK, dialogflow.NewResponse(
			fmt.Sprintf("Order #%d was not found.", orderID)))
	default:
		utils.ErrorLogger.Printf("webhook: failed to update order #%d: %v", orderID, err)
		c.JSON(http.StatusOK, dialogflow.NewResponse(replyApology))
	}
}

func (wc *WebhookController) completeOrder(c *gin.Context, params dialogflow.Parameters) {
	orderID := uint(params.OrderID)
	if orderID == 0 {
		c.JSON(http.StatusOK, dialogflow.NewResponse(replyAskWhichDone))
		return
	}

	err := wc.Orders.CompleteOrder(c.Request.Context(), orderID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dialogflow.NewResponse(
			fmt.Sprintf("Order #%d has been completed and removed from the kitchen queue.", orderID)))
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusOK, dialogflow.NewResponse(
			fmt.Sprintf("Order #%d was not found.", orderID)))
	default:
		utils.ErrorLogger.Printf("webhook: failed to complete order #%d: %v", orderID, err)
		c.JSON(http.StatusOK, dialogflow.NewResponse(replyApology))
	}
}

func (wc *WebhookController) dailySummary(c *gin.Context) {
	total, pending, err := wc.Orders.DailySummary(c.Request.Context())
	if err != nil {
		utils.ErrorLogger.Printf("webhook: failed to build daily summary: %v", err)
		c.JSON(http.StatusOK, dialogflow.NewResponse(replyApology))
		return
	}
	c.JSON(http.StatusOK, dialogflow.NewResponse(fmt.Sprintf(
		"Daily summary:\nTotal orders: %d\nCompleted: %d\nPending: %d",
		total, total-pending, pending)))
}

func (wc *WebhookController) showOrders(c *gin.Context) {
	orders, err := wc.Orders.PendingOrders(c.Request.Context())
	if err != nil {
		utils.ErrorLogger.Printf("webhook: failed to list pending orders: %v", err)
		c.JSON(http.StatusOK, dialogflow.NewResponse(replyApology))
		return
	}
	if len(orders) == 0 {
		c.JSON(http.StatusOK, dialogflow.NewResponse("No current orders in the queue."))
		return
	}

	lines := make([]string, 0, len(orders)+1)
	lines = append(lines, "Current orders:")
	for _, o := range orders {
		lines = append(lines, fmt.Sprintf("#%d (Table %s): %d items [%s]", o.ID, o.TableNumber, len(o.Items), o.Status))
	}
	c.JSON(http.StatusOK, dialogflow.NewResponse(strings.Join(lines, "\n")))
}
