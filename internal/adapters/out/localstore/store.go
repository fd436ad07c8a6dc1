// Package localstore provides a single-file JSON implementation of the order
// persistence ports for single-device deployments. The whole store is one
// document holding the order list and the order number counter; every mutation
// rewrites the file atomically under a process-wide lock.
//
// This backend trades durability guarantees for zero infrastructure: unlike
// the relational and document backends, the counter draw is not isolated from
// other processes touching the same file.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

// orderRecord is the stored shape of an order aggregate.
// DocID is assigned by the store on insert; all lookups go through the
// business order number.
type orderRecord struct {
	DocID         string       `json:"docId"`
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

// document is the whole store file. Orders are kept in insertion order,
// oldest first.
type document struct {
	Orders  []orderRecord `json:"orders"`
	Counter int64         `json:"counter"`
}

// Store implements ports.OrderRepository and ports.SequenceRepository over a
// single JSON file. Safe for concurrent use within one process.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore opens the store at the given path, creating an empty file and any
// missing parent directories on first use.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	s := &Store{path: path}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = s.save(document{Orders: []orderRecord{}}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) load() (document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return document{}, err
	}

	var doc document
	if err = json.Unmarshal(raw, &doc); err != nil {
		return document{}, err
	}

	return doc, nil
}

// save writes the document through a temp file and rename, so a crash mid-write
// never leaves a truncated store behind.
func (s *Store) save(doc document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}

// Add persists a freshly placed order. The store assigns the document id.
func (s *Store) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	doc.Orders = append(doc.Orders, fromDomain(aggregate))
	return s.save(doc)
}

// GetAll retrieves every stored order, most recent first.
func (s *Store) GetAll(_ context.Context) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(doc.Orders))
	for i := len(doc.Orders) - 1; i >= 0; i-- {
		aggregate, restoreErr := toDomain(doc.Orders[i])
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

// Get retrieves an order by its order number.
func (s *Store) Get(_ context.Context, orderNumber string) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, record := range doc.Orders {
		if record.OrderNumber == orderNumber {
			return toDomain(record)
		}
	}

	return nil, errs.NewObjectNotFoundError("orderNumber", orderNumber)
}

// UpdateStatus changes the status of the given order and nothing else.
func (s *Store) UpdateStatus(_ context.Context, orderNumber string, status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	for i := range doc.Orders {
		if doc.Orders[i].OrderNumber == orderNumber {
			doc.Orders[i].Status = status.String()
			return s.save(doc)
		}
	}

	return errs.NewObjectNotFoundError("orderNumber", orderNumber)
}

// Delete removes the given order permanently.
func (s *Store) Delete(_ context.Context, orderNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	for i := range doc.Orders {
		if doc.Orders[i].OrderNumber == orderNumber {
			doc.Orders = append(doc.Orders[:i], doc.Orders[i+1:]...)
			return s.save(doc)
		}
	}

	return errs.NewObjectNotFoundError("orderNumber", orderNumber)
}

// Next increments and returns the order counter. The first draw returns 1.
// A value handed out is consumed even when the surrounding checkout fails.
func (s *Store) Next(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return 0, err
	}

	doc.Counter++
	if err = s.save(doc); err != nil {
		return 0, err
	}

	return doc.Counter, nil
}

func fromDomain(aggregate *order.Order) orderRecord {
	customer := aggregate.Customer()
	destination := aggregate.Destination()

	return orderRecord{
		DocID:         uuid.NewString(),
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

func toDomain(record orderRecord) (*order.Order, error) {
	status, err := order.ParseStatus(record.Status)
	if err != nil {
		return nil, err
	}

	orderType, err := kernel.ParseOrderType(record.OrderType)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(record.FirstName, record.LastName, record.Phone1, record.Phone2)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewDestination(record.Region, record.SubRegion)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		record.OrderNumber,
		status,
		orderType,
		customer,
		destination,
		record.Items,
		record.CartTotal,
		record.ShippingPrice,
		record.GrandTotal,
		record.Date,
	)
}
