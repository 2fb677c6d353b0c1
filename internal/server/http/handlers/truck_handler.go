package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grubtruck/grubtruck/internal/domain/model"
	"github.com/grubtruck/grubtruck/internal/server/http/dto"
)

// TruckHandler manages truck discovery and owner truck settings.
type TruckHandler struct {
	facade TruckFacade
}

// NewTruckHandler constructs TruckHandler.
func NewTruckHandler(facade TruckFacade) *TruckHandler {
	return &TruckHandler{facade: facade}
}

// Browse handles GET /api/v1/trucks/view. Only open trucks are listed.
func (h *TruckHandler) Browse(c *gin.Context) {
	trucks, err := h.facade.OpenTrucks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.TruckResponse, 0, len(trucks))
	for _, t := range trucks {
		response = append(response, toTruckResponse(t))
	}
	c.JSON(http.StatusOK, response)
}

// MyTruck handles GET /api/v1/trucks/myTruck.
func (h *TruckHandler) MyTruck(c *gin.Context) {
	principal := CurrentPrincipal(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	truck, err := h.facade.MyTruck(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTruckResponse(*truck))
}

// UpdateOrderStatus handles PUT /api/v1/trucks/updateOrderStatus.
func (h *TruckHandler) UpdateOrderStatus(c *gin.Context) {
	truckID, ok := ownerTruckID(c)
	if !ok {
		return
	}

	var req dto.UpdateTruckOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	if err := h.facade.SetTruckOrderStatus(c.Request.Context(), truckID, model.TruckOrderStatus(req.OrderStatus)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Truck order status updated"})
}

func toTruckResponse(truck model.Truck) dto.TruckResponse {
	return dto.TruckResponse{
		TruckID:     truck.ID,
		TruckName:   truck.Name,
		TruckStatus: string(truck.TruckStatus),
		OrderStatus: string(truck.OrderStatus),
	}
}
