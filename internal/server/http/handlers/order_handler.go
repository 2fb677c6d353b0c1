package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/grubtruck/grubtruck/internal/domain/model"
	"github.com/grubtruck/grubtruck/internal/server/http/dto"
)

// pickupTimeLayouts lists accepted pickup timestamp formats, from full
// RFC3339 down to the zone-less values browser datetime-local inputs submit.
var pickupTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parsePickupTime(value string) (time.Time, bool) {
	for _, layout := range pickupTimeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// OrderHandler manages checkout and order tracking endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/v1/order/new. The caller's cart becomes an
// immutable order and is emptied in the same transaction.
func (h *OrderHandler) Place(c *gin.Context) {
	principal := CurrentPrincipal(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	pickup, ok := parsePickupTime(req.ScheduledPickupTime)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid scheduledPickupTime"})
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), principal.UserID, pickup)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// MyOrders handles GET /api/v1/order/myOrders.
func (h *OrderHandler) MyOrders(c *gin.Context) {
	principal := CurrentPrincipal(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	orders, err := h.facade.MyOrders(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Details handles GET /api/v1/order/details/:orderId. Customers see only
// their own orders.
func (h *OrderHandler) Details(c *gin.Context) {
	principal := CurrentPrincipal(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	order, err := h.facade.OrderForCustomer(c.Request.Context(), orderID, principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// TruckOrders handles GET /api/v1/order/truckOrders.
func (h *OrderHandler) TruckOrders(c *gin.Context) {
	truckID, ok := ownerTruckID(c)
	if !ok {
		return
	}

	orders, err := h.facade.TruckOrders(c.Request.Context(), truckID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// TruckOrderDetails handles GET /api/v1/order/truckOwner/:orderId. Owners see
// only orders placed against their own truck.
func (h *OrderHandler) TruckOrderDetails(c *gin.Context) {
	truckID, ok := ownerTruckID(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	order, err := h.facade.OrderForTruck(c.Request.Context(), orderID, truckID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// UpdateStatus handles PUT /api/v1/order/updateStatus/:orderId.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	truckID, ok := ownerTruckID(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	var estimate *time.Time
	if req.EstimatedEarliestPickup != "" {
		ts, ok := parsePickupTime(req.EstimatedEarliestPickup)
		if !ok {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid estimatedEarliestPickup"})
			return
		}
		estimate = &ts
	}

	if err := h.facade.UpdateOrderStatus(c.Request.Context(), orderID, truckID, model.OrderStatus(req.OrderStatus), estimate); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Order status updated"})
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}
	return dto.OrderResponse{
		OrderID:                 order.ID,
		TruckID:                 order.TruckID,
		TruckName:               order.TruckName,
		CustomerName:            order.CustomerName,
		TotalPrice:              order.TotalPrice,
		OrderStatus:             string(order.Status),
		ScheduledPickupTime:     order.ScheduledPickupTime,
		EstimatedEarliestPickup: order.EstimatedEarliestPickup,
		CreatedAt:               order.CreatedAt,
		Items:                   items,
	}
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, toOrderResponse(order))
	}
	return response
}
