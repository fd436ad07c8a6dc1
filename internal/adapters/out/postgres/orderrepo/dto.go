// Package orderrepo provides data transfer objects and mapping functions for
// order persistence in the relational backend. It implements the repository
// pattern for the order aggregate, handling the conversion between the domain
// model and its database representation.
package orderrepo

import (
	"encoding/json"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Orders are addressed by their business order number; the item snapshot is
// stored as a jsonb document since items are never queried individually.
type OrderDTO struct {
	OrderNumber   string `gorm:"primaryKey"`
	Status        string `gorm:"index"`
	OrderType     string
	FirstName     string
	LastName      string
	Phone1        string
	Phone2        string
	Region        string
	SubRegion     string
	Items         []byte `gorm:"type:jsonb"`
	CartTotal     float64
	ShippingPrice float64
	GrandTotal    float64
	Date          time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items, err := json.Marshal(aggregate.Items())
	if err != nil {
		return OrderDTO{}, err
	}

	customer := aggregate.Customer()
	destination := aggregate.Destination()

	return OrderDTO{
		OrderNumber:   aggregate.OrderNumber(),
		Status:        aggregate.Status().String(),
		OrderType:     aggregate.OrderType().String(),
		FirstName:     customer.FirstName(),
		LastName:      customer.LastName(),
		Phone1:        customer.Phone1(),
		Phone2:        customer.Phone2(),
		Region:        destination.Region(),
		SubRegion:     destination.SubRegion(),
		Items:         items,
		CartTotal:     aggregate.CartTotal(),
		ShippingPrice: aggregate.ShippingPrice(),
		GrandTotal:    aggregate.GrandTotal(),
		Date:          aggregate.Date(),
	}, nil
}

// toDomain converts a database DTO back to an order aggregate.
// Reconstructs the complete aggregate with its stored totals using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	orderType, err := kernel.ParseOrderType(dto.OrderType)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.FirstName, dto.LastName, dto.Phone1, dto.Phone2)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewDestination(dto.Region, dto.SubRegion)
	if err != nil {
		return nil, err
	}

	var items []order.Item
	if err = json.Unmarshal(dto.Items, &items); err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.OrderNumber,
		status,
		orderType,
		customer,
		destination,
		items,
		dto.CartTotal,
		dto.ShippingPrice,
		dto.GrandTotal,
		dto.Date,
	)
}
