package queries

import (
	"time"

	"storefront/internal/core/domain/model/order"
)

// OrderResponse is the read model shared by the order listing and single-order
// queries. It flattens the aggregate into plain fields for presentation.
type OrderResponse struct {
	OrderNumber   string       `json:"orderNumber"`
	Status        string       `json:"status"`
	OrderType     string       `json:"orderType"`
	FirstName     string       `json:"firstName"`
	LastName      string       `json:"lastName"`
	Phone1        string       `json:"phone1"`
	Phone2        string       `json:"phone2,omitempty"`
	Region        string       `json:"region"`
	SubRegion     string       `json:"subRegion"`
	Items         []order.Item `json:"items"`
	CartTotal     float64      `json:"cartTotal"`
	ShippingPrice float64      `json:"shippingPrice"`
	GrandTotal    float64      `json:"grandTotal"`
	Date          time.Time    `json:"date"`
}

func newOrderResponse(aggregate *order.Order) OrderResponse {
	customer := aggregate.Customer()
	destination := aggregate.Destination()

	return OrderResponse{
		OrderNumber:   aggregate.OrderNumber(),
		Status:        aggregate.Status().String(),
		OrderType:     aggregate.OrderType().String(),
		FirstName:     customer.FirstName(),
		LastName:      customer.LastName(),
		Phone1:        customer.Phone1(),
		Phone2:        customer.Phone2(),
		Region:        destination.Region(),
		SubRegion:     destination.SubRegion(),
		Items:         aggregate.Items(),
		CartTotal:     aggregate.CartTotal(),
		ShippingPrice: aggregate.ShippingPrice(),
		GrandTotal:    aggregate.GrandTotal(),
		Date:          aggregate.Date(),
	}
}
