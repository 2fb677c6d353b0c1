package dto

// MenuItemRequest describes create/edit payload for a menu item.
type MenuItemRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

// MenuItemResponse describes one menu item.
type MenuItemResponse struct {
	ItemID      int64   `json:"itemId"`
	TruckID     int64   `json:"truckId"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
}
