package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grubtruck/grubtruck/internal/domain/model"
	"github.com/grubtruck/grubtruck/internal/server/http/dto"
)

// CartHandler manages the customer's cart.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Add handles POST /api/v1/cart/new.
func (h *CartHandler) Add(c *gin.Context) {
	principal := CurrentPrincipal(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.AddCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	line, err := h.facade.AddToCart(c.Request.Context(), principal.UserID, req.ItemID, req.Quantity, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartLineResponse(*line))
}

// View handles GET /api/v1/cart/view.
func (h *CartHandler) View(c *gin.Context) {
	principal := CurrentPrincipal(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	lines, err := h.facade.Cart(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.CartLineResponse, 0, len(lines))
	for _, line := range lines {
		response = append(response, toCartLineResponse(line))
	}
	c.JSON(http.StatusOK, response)
}

// Edit handles PUT /api/v1/cart/edit/:cartId.
func (h *CartHandler) Edit(c *gin.Context) {
	principal := CurrentPrincipal(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}
	cartID, ok := pathID(c, "cartId")
	if !ok {
		return
	}

	var req dto.EditCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	if err := h.facade.UpdateCartQuantity(c.Request.Context(), principal.UserID, cartID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Cart updated"})
}

// Delete handles DELETE /api/v1/cart/delete/:cartId.
func (h *CartHandler) Delete(c *gin.Context) {
	principal := CurrentPrincipal(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}
	cartID, ok := pathID(c, "cartId")
	if !ok {
		return
	}

	if err := h.facade.RemoveCartLine(c.Request.Context(), principal.UserID, cartID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Cart item removed"})
}

func toCartLineResponse(line model.CartLine) dto.CartLineResponse {
	return dto.CartLineResponse{
		CartID:   line.ID,
		ItemID:   line.ItemID,
		ItemName: line.ItemName,
		Quantity: line.Quantity,
		Price:    line.Price,
	}
}
