package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/grubtruck/grubtruck/internal/domain/model"
	"github.com/grubtruck/grubtruck/internal/server/http/dto"
)

// MenuHandler manages catalog endpoints for owners and customers.
type MenuHandler struct {
	facade MenuFacade
}

// NewMenuHandler constructs MenuHandler.
func NewMenuHandler(facade MenuFacade) *MenuHandler {
	return &MenuHandler{facade: facade}
}

// Create handles POST /api/v1/menuItem/new.
func (h *MenuHandler) Create(c *gin.Context) {
	truckID, ok := ownerTruckID(c)
	if !ok {
		return
	}

	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	item, err := h.facade.CreateMenuItem(c.Request.Context(), truckID, req.Name, req.Category, req.Price, req.Description, model.ItemStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuItemResponse(*item))
}

// OwnMenu handles GET /api/v1/menuItem/view. The owner sees unavailable
// items too.
func (h *MenuHandler) OwnMenu(c *gin.Context) {
	truckID, ok := ownerTruckID(c)
	if !ok {
		return
	}

	items, err := h.facade.OwnMenu(c.Request.Context(), truckID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuItemResponses(items))
}

// Get handles GET /api/v1/menuItem/view/:itemId.
func (h *MenuHandler) Get(c *gin.Context) {
	truckID, ok := ownerTruckID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	item, err := h.facade.MenuItem(c.Request.Context(), itemID, truckID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuItemResponse(*item))
}

// Update handles PUT /api/v1/menuItem/edit/:itemId.
func (h *MenuHandler) Update(c *gin.Context) {
	truckID, ok := ownerTruckID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	if err := h.facade.UpdateMenuItem(c.Request.Context(), truckID, itemID, req.Name, req.Category, req.Price, req.Description, model.ItemStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Menu item updated"})
}

// Delete handles DELETE /api/v1/menuItem/delete/:itemId. Deletion is
// logical: the item is marked unavailable so historical orders keep their
// snapshots intact.
func (h *MenuHandler) Delete(c *gin.Context) {
	truckID, ok := ownerTruckID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	if err := h.facade.DeleteMenuItem(c.Request.Context(), truckID, itemID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Menu item deleted"})
}

// TruckMenu handles GET /api/v1/menuItem/truck/:truckId. Customers see
// available items only.
func (h *MenuHandler) TruckMenu(c *gin.Context) {
	truckID, ok := pathID(c, "truckId")
	if !ok {
		return
	}

	items, err := h.facade.TruckMenu(c.Request.Context(), truckID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuItemResponses(items))
}

// TruckMenuByCategory handles GET /api/v1/menuItem/truck/:truckId/category/:category.
func (h *MenuHandler) TruckMenuByCategory(c *gin.Context) {
	truckID, ok := pathID(c, "truckId")
	if !ok {
		return
	}

	items, err := h.facade.TruckMenuByCategory(c.Request.Context(), truckID, c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuItemResponses(items))
}

// pathID parses a positive integer path parameter, responding 400 on junk.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

func toMenuItemResponse(item model.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ItemID:      item.ID,
		TruckID:     item.TruckID,
		Name:        item.Name,
		Category:    item.Category,
		Price:       item.Price,
		Description: item.Description,
		Status:      string(item.Status),
	}
}

func toMenuItemResponses(items []model.MenuItem) []dto.MenuItemResponse {
	response := make([]dto.MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toMenuItemResponse(item))
	}
	return response
}
