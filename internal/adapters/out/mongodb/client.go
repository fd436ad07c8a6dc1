// Package mongodb provides the document-store implementation of the order
// persistence ports. Orders live in a single collection addressed by their
// business order number; document identifiers are assigned by the store.
//
// Mutations in this backend are atomic per call, so the unit of work here is
// a no-op coordinator: command handlers keep the same Begin/Commit/Rollback
// choreography across all storage backends.
package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect establishes a MongoDB client connection and verifies it with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return client, nil
}
