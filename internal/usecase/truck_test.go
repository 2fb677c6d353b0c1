package usecase

import (
	"context"
	"testing"

	domainErrors "github.com/grubtruck/grubtruck/internal/domain/errors"
	"github.com/grubtruck/grubtruck/internal/domain/model"
	testhelpers "github.com/grubtruck/grubtruck/internal/test"
)

func TestTruckUseCaseBrowseFiltersClosed(t *testing.T) {
	repo := &testhelpers.TruckRepositoryStub{Trucks: []model.Truck{
		{ID: 1, Name: "Taco Cart", TruckStatus: model.TruckStatusActive, OrderStatus: model.TruckOrdersAvailable},
		{ID: 2, Name: "Closed Grill", TruckStatus: model.TruckStatusActive, OrderStatus: model.TruckOrdersUnavailable},
		{ID: 3, Name: "Retired", TruckStatus: model.TruckStatusInactive, OrderStatus: model.TruckOrdersAvailable},
	}}
	uc := NewTruckUseCase(repo)

	trucks, err := uc.Browse(context.Background())
	if err != nil {
		t.Fatalf("browse returned error: %v", err)
	}
	if len(trucks) != 1 || trucks[0].Name != "Taco Cart" {
		t.Fatalf("expected only the open truck, got %+v", trucks)
	}
}

func TestTruckUseCaseMyTruck(t *testing.T) {
	repo := &testhelpers.TruckRepositoryStub{Trucks: []model.Truck{
		{ID: 1, OwnerID: 7, Name: "Taco Cart", TruckStatus: model.TruckStatusActive, OrderStatus: model.TruckOrdersUnavailable},
	}}
	uc := NewTruckUseCase(repo)
	ctx := context.Background()

	// Owners see their truck even while it is closed to new orders.
	truck, err := uc.MyTruck(ctx, 7)
	if err != nil {
		t.Fatalf("my truck returned error: %v", err)
	}
	if truck.ID != 1 {
		t.Fatalf("unexpected truck %+v", truck)
	}

	if _, err := uc.MyTruck(ctx, 8); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound for ownerless account, got %v", err)
	}
}

func TestTruckUseCaseSetOrderStatus(t *testing.T) {
	repo := &testhelpers.TruckRepositoryStub{}
	uc := NewTruckUseCase(repo)
	ctx := context.Background()

	if err := uc.SetOrderStatus(ctx, 1, model.TruckOrdersUnavailable); err != nil {
		t.Fatalf("set status returned error: %v", err)
	}
	if len(repo.UpdateCalls) != 1 || repo.UpdateCalls[0].Status != model.TruckOrdersUnavailable {
		t.Fatalf("unexpected update calls %+v", repo.UpdateCalls)
	}

	if err := uc.SetOrderStatus(ctx, 1, model.TruckOrderStatus("paused")); err != domainErrors.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
