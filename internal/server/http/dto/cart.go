package dto

// AddCartRequest describes the add-to-cart payload. Price is the price the
// client saw in the catalog at the time of the add.
type AddCartRequest struct {
	ItemID   int64   `json:"itemId"`
	Quantity int32   `json:"quantity"`
	Price    float64 `json:"price"`
}

// EditCartRequest changes the quantity of an existing line.
type EditCartRequest struct {
	Quantity int32 `json:"quantity"`
}

// CartLineResponse describes one cart line joined with its item name.
type CartLineResponse struct {
	CartID   int64   `json:"cartId"`
	ItemID   int64   `json:"itemId"`
	ItemName string  `json:"itemName"`
	Quantity int32   `json:"quantity"`
	Price    float64 `json:"price"`
}
