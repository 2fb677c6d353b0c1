package dto

import "time"

// PlaceOrderRequest checks out the caller's cart. The pickup time arrives as
// a string because browsers submit datetime-local values without a zone.
type PlaceOrderRequest struct {
	ScheduledPickupTime string `json:"scheduledPickupTime"`
}

// UpdateOrderStatusRequest advances the order status; the pickup estimate is
// optional and shares the pickup time format.
type UpdateOrderStatusRequest struct {
	OrderStatus             string `json:"orderStatus"`
	EstimatedEarliestPickup string `json:"estimatedEarliestPickup"`
}

// OrderItemResponse describes one snapshotted line of an order.
type OrderItemResponse struct {
	Name     string  `json:"itemName"`
	Price    float64 `json:"price"`
	Quantity int32   `json:"quantity"`
}

// OrderResponse describes one order with its item snapshots.
type OrderResponse struct {
	OrderID                 int64               `json:"orderId"`
	TruckID                 int64               `json:"truckId"`
	TruckName               string              `json:"truckName"`
	CustomerName            string              `json:"customerName"`
	TotalPrice              float64             `json:"totalPrice"`
	OrderStatus             string              `json:"orderStatus"`
	ScheduledPickupTime     time.Time           `json:"scheduledPickupTime"`
	EstimatedEarliestPickup *time.Time          `json:"estimatedEarliestPickup,omitempty"`
	CreatedAt               time.Time           `json:"createdAt"`
	Items                   []OrderItemResponse `json:"items"`
}
