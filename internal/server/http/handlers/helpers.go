package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/grubtruck/grubtruck/internal/domain/errors"
	"github.com/grubtruck/grubtruck/internal/domain/model"
	"github.com/grubtruck/grubtruck/internal/server/http/dto"
	"github.com/grubtruck/grubtruck/internal/server/http/middleware"
)

// CurrentPrincipal extracts the resolved identity from context. Returns nil
// on routes that skipped AuthRequired.
func CurrentPrincipal(c *gin.Context) *model.Principal {
	val, ok := c.Get(middleware.PrincipalContextKey)
	if !ok {
		return nil
	}
	principal, _ := val.(*model.Principal)
	return principal
}

// ownerTruckID returns the truck owned by the caller. Owner routes are
// guarded by RoleRequired, so a missing truck means a broken account.
func ownerTruckID(c *gin.Context) (int64, bool) {
	principal := CurrentPrincipal(c)
	if principal == nil || principal.TruckID == nil {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Forbidden"})
		return 0, false
	}
	return *principal.TruckID, true
}

// respondError maps domain errors onto the shared HTTP error taxonomy.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidInput),
		errors.Is(err, domainErrors.ErrConflictingTruck),
		errors.Is(err, domainErrors.ErrEmptyCart),
		errors.Is(err, domainErrors.ErrTruckUnavailable),
		errors.Is(err, domainErrors.ErrInvalidStatus),
		errors.Is(err, domainErrors.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid login or password"})
	case errors.Is(err, domainErrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "already exists"})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
	}
}
