package transport

// Pointer fields separate "absent" from an explicit zero; defaults apply
// only when the key is missing.
type CreateOrderRequest struct {
	ProductID   *int64   `json:"product_id"`
	ProductName *string  `json:"product_name"`
	Quantity    *int     `json:"quantity"`
	Total       *float64 `json:"total"`
}

type UpdateStatusRequest struct {
	Status *string `json:"status"`
}
