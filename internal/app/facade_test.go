package app

import (
	"context"
	"testing"
	"time"

	domainErrors "github.com/grubtruck/grubtruck/internal/domain/errors"
	"github.com/grubtruck/grubtruck/internal/domain/model"
	testhelpers "github.com/grubtruck/grubtruck/internal/test"
	"github.com/grubtruck/grubtruck/internal/usecase"
)

type facadeStubs struct {
	users  *testhelpers.UserRepositoryStub
	trucks *testhelpers.TruckRepositoryStub
	menu   *testhelpers.MenuRepositoryStub
	carts  *testhelpers.CartRepositoryStub
	orders *testhelpers.OrderRepositoryStub
}

func newFacade() (*PlatformFacade, *facadeStubs) {
	stubs := &facadeStubs{
		users:  testhelpers.NewUserRepositoryStub(),
		trucks: &testhelpers.TruckRepositoryStub{},
		menu:   &testhelpers.MenuRepositoryStub{},
		carts:  &testhelpers.CartRepositoryStub{},
		orders: &testhelpers.OrderRepositoryStub{},
	}

	authUC := usecase.NewAuthUseCase(stubs.users, stubs.trucks, testhelpers.HasherStub{}, testhelpers.StrategyStub{})
	truckUC := usecase.NewTruckUseCase(stubs.trucks)
	menuUC := usecase.NewMenuUseCase(stubs.menu)
	cartUC := usecase.NewCartUseCase(stubs.carts)
	orderUC := usecase.NewOrderUseCase(stubs.orders)

	facade := NewPlatformFacade(authUC, truckUC, menuUC, cartUC, orderUC)
	return facade, stubs
}

func TestPlatformFacadeAuth(t *testing.T) {
	facade, stubs := newFacade()
	ctx := context.Background()

	token, err := facade.Register(ctx, "user", "pass", model.RoleCustomer, "")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	stored, err := stubs.users.GetByLogin(ctx, "user")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}

	if _, err := facade.Authenticate(ctx, "user", "pass"); err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}

	principal, err := facade.Resolve(ctx, "token")
	if err != nil {
		t.Fatalf("resolve returned error: %v", err)
	}
	if principal.UserID != stored.ID {
		t.Fatalf("unexpected principal %+v", principal)
	}

	usr, err := facade.User(ctx, stored.ID)
	if err != nil || usr.Login != "user" {
		t.Fatalf("unexpected user %+v %v", usr, err)
	}
}

func TestPlatformFacadeTrucksAndMenu(t *testing.T) {
	facade, stubs := newFacade()
	ctx := context.Background()

	if _, err := facade.Register(ctx, "owner", "pass", model.RoleTruckOwner, "Taco Cart"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	trucks, err := facade.OpenTrucks(ctx)
	if err != nil || len(trucks) != 1 {
		t.Fatalf("unexpected open trucks %+v %v", trucks, err)
	}
	truckID := trucks[0].ID

	mine, err := facade.MyTruck(ctx, trucks[0].OwnerID)
	if err != nil || mine.ID != truckID {
		t.Fatalf("unexpected my truck %+v %v", mine, err)
	}

	if err := facade.SetTruckOrderStatus(ctx, truckID, model.TruckOrdersUnavailable); err != nil {
		t.Fatalf("set status returned error: %v", err)
	}
	if len(stubs.trucks.UpdateCalls) != 1 {
		t.Fatalf("expected one truck status call, got %d", len(stubs.trucks.UpdateCalls))
	}

	item, err := facade.CreateMenuItem(ctx, truckID, "Burrito", "mains", 9.5, nil, "")
	if err != nil {
		t.Fatalf("create item returned error: %v", err)
	}
	if err := facade.UpdateMenuItem(ctx, truckID, item.ID, "Burrito", "mains", 10.0, nil, model.ItemStatusAvailable); err != nil {
		t.Fatalf("update item returned error: %v", err)
	}
	mains, err := facade.TruckMenuByCategory(ctx, truckID, "Mains")
	if err != nil || len(mains) != 1 {
		t.Fatalf("unexpected category menu %+v %v", mains, err)
	}
	if err := facade.DeleteMenuItem(ctx, truckID, item.ID); err != nil {
		t.Fatalf("delete item returned error: %v", err)
	}
	if len(stubs.menu.Deleted) != 1 {
		t.Fatalf("expected logical delete recorded, got %+v", stubs.menu.Deleted)
	}
}

func TestPlatformFacadeCartAndOrders(t *testing.T) {
	facade, stubs := newFacade()
	ctx := context.Background()

	line, err := facade.AddToCart(ctx, 1, 3, 2, 4.5)
	if err != nil {
		t.Fatalf("add to cart returned error: %v", err)
	}

	lines, err := facade.Cart(ctx, 1)
	if err != nil || len(lines) != 1 {
		t.Fatalf("unexpected cart %+v %v", lines, err)
	}

	if err := facade.UpdateCartQuantity(ctx, 1, line.ID, 3); err != nil {
		t.Fatalf("update quantity returned error: %v", err)
	}
	if err := facade.RemoveCartLine(ctx, 1, line.ID); err != nil {
		t.Fatalf("remove line returned error: %v", err)
	}

	pickup := time.Now().Add(time.Hour)
	order, err := facade.PlaceOrder(ctx, 1, pickup)
	if err != nil || order.Status != model.OrderStatusPending {
		t.Fatalf("unexpected place result %+v %v", order, err)
	}

	if _, err := facade.PlaceOrder(ctx, 1, time.Now().Add(-time.Hour)); err != domainErrors.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for past pickup, got %v", err)
	}

	stubs.orders.Orders = []model.Order{{ID: 1, CustomerID: 1, TruckID: 5}}
	if _, err := facade.MyOrders(ctx, 1); err != nil {
		t.Fatalf("my orders returned error: %v", err)
	}
	if _, err := facade.TruckOrders(ctx, 5); err != nil {
		t.Fatalf("truck orders returned error: %v", err)
	}
	if _, err := facade.OrderForCustomer(ctx, 1, 1); err != nil {
		t.Fatalf("order for customer returned error: %v", err)
	}
	if _, err := facade.OrderForTruck(ctx, 1, 5); err != nil {
		t.Fatalf("order for truck returned error: %v", err)
	}

	if err := facade.UpdateOrderStatus(ctx, 1, 5, model.OrderStatusPreparing, nil); err != nil {
		t.Fatalf("update status returned error: %v", err)
	}
	if len(stubs.orders.UpdateCalls) != 1 {
		t.Fatalf("expected one status call, got %d", len(stubs.orders.UpdateCalls))
	}
}
