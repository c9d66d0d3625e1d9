package repo

import (
	"context"
	"errors"
	"time"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

// ProductRepository is the store contract the inventory engine is written against.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByTitle(ctx context.Context, title string) (models.Product, error)
	Filter(ctx context.Context, pf ProductFilter) ([]models.Product, int, error)
	Create(ctx context.Context, p models.Product) (models.Product, error)
	Update(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error)
	Delete(ctx context.Context, id string) error
	// RecordSale decrements stock, bumps units sold and appends a ledger entry priced at the
	// current unit price, all or nothing. When the stock guard fails it returns
	// ErrInsufficientStock together with the product as currently stored.
	RecordSale(ctx context.Context, id string, quantity int, at time.Time) (models.Product, error)
}

var (
	// ErrProductNotFound is returned when a product id does not resolve.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a sale would take stock below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrDuplicatedValueUnique is returned on unique constraint violations.
	ErrDuplicatedValueUnique = errors.New("unique constraint violation")
)
