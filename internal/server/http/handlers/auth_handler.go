package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grubtruck/grubtruck/internal/domain/model"
	"github.com/grubtruck/grubtruck/internal/server/http/dto"
	"github.com/grubtruck/grubtruck/internal/server/http/middleware"
)

// AuthHandler processes registration, login and account lookup.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/v1/user.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	login := req.Login
	if login == "" {
		login = req.Email
	}
	token, err := h.facade.Register(c.Request.Context(), login, req.Password, model.Role(req.Role), req.TruckName)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Registration successful"})
}

// Login handles POST /api/v1/user/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	login := req.Login
	if login == "" {
		login = req.Email
	}
	token, err := h.facade.Authenticate(c.Request.Context(), login, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Login successful"})
}

// Me handles GET /api/v1/user/me.
func (h *AuthHandler) Me(c *gin.Context) {
	principal := CurrentPrincipal(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	usr, err := h.facade.User(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		UserID:  usr.ID,
		Login:   usr.Login,
		Role:    string(usr.Role),
		TruckID: usr.TruckID,
	})
}
