package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antlers07/kitchen-chatbot/services"
	"github.com/antlers07/kitchen-chatbot/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// ListRecent -> newest orders with their items, capped at the configured
// limit.
func (oc *OrderController) ListRecent(c *gin.Context) {
	orders, err := oc.Orders.RecentOrders(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// UpdateStatus -> set the status of one order (kitchen display client).
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	type reqBody struct {
		OrderID uint   `json:"orderId" binding:"required"`
		Status  string `json:"status" binding:"required"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	err := oc.Orders.UpdateStatus(c.Request.Context(), body.OrderID, body.Status)
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case err != nil:
		utils.RespondError(c, http.StatusInternalServerError, err)
	default:
		utils.RespondJSON(c, http.StatusOK, "Order status updated successfully", nil)
	}
}
