package dto

// TruckResponse describes one truck visible to the caller.
type TruckResponse struct {
	TruckID     int64  `json:"truckId"`
	TruckName   string `json:"truckName"`
	TruckStatus string `json:"truckStatus"`
	OrderStatus string `json:"orderStatus"`
}

// UpdateTruckOrderStatusRequest flips the accept-new-orders flag.
type UpdateTruckOrderStatusRequest struct {
	OrderStatus string `json:"orderStatus"`
}
