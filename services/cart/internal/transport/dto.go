package transport

import (
	"encoding/json"
	"fmt"
)

// FlexID canonicalizes the product key to a string whether the client sent a
// JSON string or a bare number. The cart stores string keys only.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("productId must be a string or number: %w", err)
	}
	*f = FlexID(n.String())
	return nil
}

type AddItemRequest struct {
	ProductID   FlexID   `json:"productId"`
	ProductName string   `json:"productName"`
	Price       *float64 `json:"price"`
	Quantity    int      `json:"quantity"`
}

type UpdateItemRequest struct {
	Quantity *int `json:"quantity"`
}
