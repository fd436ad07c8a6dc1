// Package orderrepo provides the document mapping and repository for order
// persistence in the MongoDB backend.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderDocument represents the stored shape of an order aggregate.
// The _id is assigned by the store on insert; all lookups go through the
// business order number, which carries a unique index.
type OrderDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	OrderNumber   string             `bson:"orderNumber"`
	Status        string             `bson:"status"`
	OrderType     string             `bson:"orderType"`
	FirstName     string             `bson:"firstName"`
	LastName      string             `bson:"lastName"`
	Phone1        string             `bson:"phone1"`
	Phone2        string             `bson:"phone2,omitempty"`
	Region        string             `bson:"region"`
	SubRegion     string             `bson:"subRegion"`
	Items         []order.Item       `bson:"items"`
	CartTotal     float64            `bson:"cartTotal"`
	ShippingPrice float64            `bson:"shippingPrice"`
	GrandTotal    float64            `bson:"grandTotal"`
	Date          time.Time          `bson:"date"`
}

// fromDomain converts an order aggregate to its document representation.
// The _id is left empty so the store assigns it on insert.
func fromDomain(aggregate *order.Order) OrderDocument {
	customer := aggregate.Customer()
	destination := aggregate.Destination()

	return OrderDocument{
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

// toDomain converts a stored document back to an order aggregate.
func toDomain(doc OrderDocument) (*order.Order, error) {
	status, err := order.ParseStatus(doc.Status)
	if err != nil {
		return nil, err
	}

	orderType, err := kernel.ParseOrderType(doc.OrderType)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(doc.FirstName, doc.LastName, doc.Phone1, doc.Phone2)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewDestination(doc.Region, doc.SubRegion)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		doc.OrderNumber,
		status,
		orderType,
		customer,
		destination,
		doc.Items,
		doc.CartTotal,
		doc.ShippingPrice,
		doc.GrandTotal,
		doc.Date,
	)
}
