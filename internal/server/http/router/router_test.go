package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/grubtruck/grubtruck/internal/domain/model"
	"github.com/grubtruck/grubtruck/internal/server/http/handlers"
	"github.com/grubtruck/grubtruck/internal/server/http/middleware"
	testhelpers "github.com/grubtruck/grubtruck/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.PlatformFacadeStub{}
	resolver := testhelpers.ResolverStub{Principal: &model.Principal{UserID: 1, Role: model.RoleCustomer}}
	engine := Setup(facade, resolver, logger)

	body, _ := json.Marshal(map[string]string{"login": "user", "password": "pass", "role": "customer"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/user", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/trucks/view", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for trucks, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/cart/view", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}

	// Customer tokens must not reach owner routes.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/trucks/myTruck", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for customer on owner route, got %d", resp.Code)
	}
}

func TestSetupOwnerRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	truckID := int64(5)
	facade := testhelpers.PlatformFacadeStub{}
	resolver := testhelpers.ResolverStub{Principal: &model.Principal{UserID: 2, Role: model.RoleTruckOwner, TruckID: &truckID}}
	engine := Setup(facade, resolver, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/order/truckOrders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for truck orders, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/order/new", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for owner on customer route, got %d", resp.Code)
	}
}

var _ handlers.PlatformFacade = (*testhelpers.PlatformFacadeStub)(nil)
var _ middleware.PrincipalResolver = testhelpers.ResolverStub{}
