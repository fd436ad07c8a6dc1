package orderrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOrderRepository implements ports.OrderRepository on a MongoDB
// collection.
type MongoOrderRepository struct {
	collection *mongo.Collection
}

// NewMongoOrderRepository creates a repository over the given collection and
// ensures the unique index on the order number.
func NewMongoOrderRepository(ctx context.Context, collection *mongo.Collection) (*MongoOrderRepository, error) {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "orderNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}

	return &MongoOrderRepository{collection: collection}, nil
}

// Add inserts a freshly placed order. The store assigns the document id.
func (r *MongoOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	_, err := r.collection.InsertOne(ctx, fromDomain(aggregate))
	return err
}

// GetAll retrieves every stored order, most recent first.
func (r *MongoOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "orderNumber", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := make([]*order.Order, 0)
	for cursor.Next(ctx) {
		var doc OrderDocument
		if err = cursor.Decode(&doc); err != nil {
			return nil, err
		}

		aggregate, restoreErr := toDomain(doc)
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, aggregate)
	}

	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// Get retrieves an order by its order number.
func (r *MongoOrderRepository) Get(ctx context.Context, orderNumber string) (*order.Order, error) {
	var doc OrderDocument
	err := r.collection.FindOne(ctx, bson.M{"orderNumber": orderNumber}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("orderNumber", orderNumber)
		}
		return nil, err
	}

	return toDomain(doc)
}

// UpdateStatus changes the status of the given order and nothing else.
func (r *MongoOrderRepository) UpdateStatus(ctx context.Context, orderNumber string, status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"orderNumber": orderNumber},
		bson.M{"$set": bson.M{"status": status.String()}})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return errs.NewObjectNotFoundError("orderNumber", orderNumber)
	}

	return nil
}

// Delete removes the given order permanently.
func (r *MongoOrderRepository) Delete(ctx context.Context, orderNumber string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"orderNumber": orderNumber})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return errs.NewObjectNotFoundError("orderNumber", orderNumber)
	}

	return nil
}
