package queries

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"storefront/internal/core/ports"
)

var exportHeader = []string{
	"Order Number",
	"Customer",
	"Phone",
	"Region",
	"Sub-region",
	"Type",
	"Grand Total",
	"Status",
	"Date",
}

// ExportOrdersQueryHandler renders the order board as a CSV document.
// Rows follow the board's most-recent-first order.
//
// Example:
//
//	handler := NewExportOrdersQueryHandler(repo)
//	query, _ := NewExportOrdersQuery("", kernel.UnknownOrderType, "")
//
//	export, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	err = os.WriteFile(export.Filename, export.Content, 0o644)
type ExportOrdersQueryHandler struct {
	repo ports.OrderRepository
}

// NewExportOrdersQueryHandler creates a handler for CSV exports.
func NewExportOrdersQueryHandler(repo ports.OrderRepository) ExportOrdersQueryHandler {
	return ExportOrdersQueryHandler{repo: repo}
}

// Handle executes the export.
// The filename carries the export date, orders-YYYY-MM-DD.csv.
func (h ExportOrdersQueryHandler) Handle(
	ctx context.Context,
	query ExportOrdersQuery,
) (ExportOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ExportOrdersQueryResponse{}, err
	}

	listQuery, err := NewListOrdersQuery(query.Search(), query.OrderType(), query.Region())
	if err != nil {
		return ExportOrdersQueryResponse{}, err
	}

	orders, err := NewListOrdersQueryHandler(h.repo).Handle(ctx, listQuery)
	if err != nil {
		return ExportOrdersQueryResponse{}, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err = writer.Write(exportHeader); err != nil {
		return ExportOrdersQueryResponse{}, err
	}

	for _, row := range orders {
		record := []string{
			row.OrderNumber,
			fullName(row),
			row.Phone1,
			row.Region,
			row.SubRegion,
			row.OrderType,
			fmt.Sprintf("%.2f", row.GrandTotal),
			row.Status,
			row.Date.Format("2006-01-02"),
		}
		if err = writer.Write(record); err != nil {
			return ExportOrdersQueryResponse{}, err
		}
	}

	writer.Flush()
	if err = writer.Error(); err != nil {
		return ExportOrdersQueryResponse{}, err
	}

	return ExportOrdersQueryResponse{
		Filename: fmt.Sprintf("orders-%s.csv", time.Now().Format("2006-01-02")),
		Content:  buf.Bytes(),
	}, nil
}

func fullName(row OrderResponse) string {
	if row.LastName == "" {
		return row.FirstName
	}
	return row.FirstName + " " + row.LastName
}
