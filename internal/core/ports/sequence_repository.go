package ports

import "context"

// SequenceRepository is the durable counter behind order number generation.
//
// Next is drawn outside the order's own transaction, before the order is
// persisted, so a consumed value is never returned even when the submission
// later fails. That keeps generated numbers unique at the price of visible
// gaps in the sequence.
//
// The shared backends implement Next atomically; the local single-device
// backend uses a plain read-increment-write, which is safe there because a
// single process owns the file.
type SequenceRepository interface {
	// Next consumes and returns the next value of the order sequence,
	// starting at 1.
	Next(ctx context.Context) (int64, error)
}
