// Package sequencerepo provides the document-store implementation of the
// durable order number sequence. A $inc upsert on a single counter document
// draws the next value atomically across concurrent checkouts.
package sequencerepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// sequenceName identifies the storefront's order counter document.
const sequenceName = "orders"

// counterDocument is the stored shape of a named counter.
type counterDocument struct {
	Name  string `bson:"name"`
	Value int64  `bson:"value"`
}

// MongoSequenceRepository implements ports.SequenceRepository on a MongoDB
// collection. A value handed out is consumed even when the surrounding
// checkout later fails.
type MongoSequenceRepository struct {
	collection *mongo.Collection
}

// NewMongoSequenceRepository creates a repository over the given collection.
func NewMongoSequenceRepository(collection *mongo.Collection) *MongoSequenceRepository {
	return &MongoSequenceRepository{collection: collection}
}

// Next atomically increments and returns the counter. The first draw returns 1.
func (r *MongoSequenceRepository) Next(ctx context.Context) (int64, error) {
	var doc counterDocument
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"name": sequenceName},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, err
	}

	return doc.Value, nil
}
