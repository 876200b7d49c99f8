package services

import (
	"fmt"
	"log"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/validation"
)

// EventPublisher publishes product lifecycle events. Implementations must be
// safe for concurrent use; the RabbitMQ client in pkg/rabbitmq satisfies this.
type EventPublisher interface {
	PublishProductEvent(action string, product *models.Product) error
}

// ProductService owns the validated CRUD operations over products. Every
// operation validates its input before touching storage, and storage faults
// are wrapped so handlers can tell them apart from client errors.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher
}

// NewProductService creates a new ProductService. The publisher may be nil,
// in which case no events are emitted.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// ListProducts retrieves all products, ordered by id ascending. An empty
// catalog yields an empty slice, not an error.
func (s *ProductService) ListProducts() ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetProduct retrieves a single product by a raw id value.
func (s *ProductService) GetProduct(rawID interface{}) (*models.Product, error) {
	id, err := validation.ID(rawID)
	if err != nil {
		return nil, err
	}
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// CreateProduct validates the payload and inserts a new product. The stored
// record, including the generated id, is returned.
func (s *ProductService) CreateProduct(payload map[string]interface{}) (*models.Product, error) {
	product, err := validation.Product(payload)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	if product.ID == 0 {
		// Storage reported no generated identifier for the insert.
		return nil, validation.NewError("failed to add")
	}
	s.publish("product.created", product)
	return product, nil
}

// UpdateProduct validates the payload and replaces every mutable field of
// the identified product. An omitted description is stored as the empty
// string; this is a whole-record replace, not a patch. Both PUT entry points
// (id in the route, id in the body) resolve here.
func (s *ProductService) UpdateProduct(rawID interface{}, payload map[string]interface{}) (*models.Product, error) {
	id, err := validation.ID(rawID)
	if err != nil {
		return nil, err
	}
	product, err := validation.Product(payload)
	if err != nil {
		return nil, err
	}
	product.ID = id
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	s.publish("product.updated", product)
	return product, nil
}

// DeleteProduct removes a product by a raw id value. Hard delete; the id is
// never reused by storage.
func (s *ProductService) DeleteProduct(rawID interface{}) error {
	id, err := validation.ID(rawID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	// The deleted event carries the id only; the row is gone and the delete
	// stays a single storage call.
	s.publish("product.deleted", &models.Product{ID: id})
	return nil
}

// publish emits a lifecycle event. Publishing is best-effort: failures are
// logged and never surfaced to the caller.
func (s *ProductService) publish(action string, product *models.Product) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishProductEvent(action, product); err != nil {
		log.Printf("Failed to publish %s event for product %d: %v", action, product.ID, err)
	}
}
