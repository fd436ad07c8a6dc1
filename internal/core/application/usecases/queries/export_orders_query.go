package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrExportOrdersQueryIsNotConstructed = errors.New(
		"ExportOrdersQuery must be created via NewExportOrdersQuery constructor",
	)
)

// ExportOrdersQuery produces a CSV snapshot of the order board.
// It accepts the same filters as ListOrdersQuery so the export matches exactly
// what the operator sees on screen.
type ExportOrdersQuery struct { //nolint:recvcheck //using for validation
	search    string
	orderType kernel.OrderType
	region    string

	guard guard.ConstructorGuard
}

// NewExportOrdersQuery creates a query to export orders as CSV.
// Filter semantics match NewListOrdersQuery.
func NewExportOrdersQuery(search string, orderType kernel.OrderType, region string) (ExportOrdersQuery, error) {
	q := ExportOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setOrderType(orderType),
		q.setRegion(region),
	); err != nil {
		return ExportOrdersQuery{}, err
	}

	q.search = search

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ExportOrdersQuery) Validate() error {
	return q.guard.Validate(ErrExportOrdersQueryIsNotConstructed)
}

// Search returns the free-text filter, empty when unset.
func (q ExportOrdersQuery) Search() string {
	return q.search
}

// OrderType returns the delivery mode filter, UnknownOrderType when unset.
func (q ExportOrdersQuery) OrderType() kernel.OrderType {
	return q.orderType
}

// Region returns the region filter, empty when unset.
func (q ExportOrdersQuery) Region() string {
	return q.region
}

func (q *ExportOrdersQuery) setOrderType(orderType kernel.OrderType) error {
	if orderType != kernel.UnknownOrderType {
		if err := orderType.Validate(); err != nil {
			return err
		}
	}
	q.orderType = orderType
	return nil
}

func (q *ExportOrdersQuery) setRegion(region string) error {
	if region != "" {
		if err := kernel.ValidateRegion(region); err != nil {
			return err
		}
	}
	q.region = region
	return nil
}

// ExportOrdersQueryResponse carries the rendered CSV document and the
// suggested download filename.
type ExportOrdersQueryResponse struct {
	Filename string
	Content  []byte
}
