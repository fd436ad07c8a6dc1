// Package sequencerepo provides the relational implementation of the durable
// order number sequence. A single-row upsert draws the next value atomically,
// so concurrent checkouts never observe the same number.
package sequencerepo

import (
	"context"

	"gorm.io/gorm"
)

// sequenceName identifies the storefront's order counter row.
const sequenceName = "orders"

// SequenceDTO represents the database structure for named counters.
type SequenceDTO struct {
	Name  string `gorm:"primaryKey"`
	Value int64
}

// TableName specifies the database table name for sequence counters.
func (SequenceDTO) TableName() string {
	return "order_sequences"
}

// GormSequenceRepository implements ports.SequenceRepository using GORM.
// Each draw is its own committed statement: a value handed out is consumed
// even when the surrounding checkout later fails.
type GormSequenceRepository struct {
	db *gorm.DB
}

// NewGormSequenceRepository creates a new GORM sequence repository.
func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

// Next atomically increments and returns the counter. The first draw returns 1.
func (r *GormSequenceRepository) Next(ctx context.Context) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO order_sequences (name, value)
		VALUES (?, 1)
		ON CONFLICT (name)
		DO UPDATE SET value = order_sequences.value + 1
		RETURNING value
	`, sequenceName).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}
