// Package inventory validates and applies every stock-affecting operation on products.
package inventory

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-dashboard/internal/alert"
	"github.com/rogerio-castellano/inventory-dashboard/internal/analytics"
	"github.com/rogerio-castellano/inventory-dashboard/internal/apperr"
	"github.com/rogerio-castellano/inventory-dashboard/internal/metrics"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
	"github.com/rogerio-castellano/inventory-dashboard/internal/repo"
)

// Invalidator drops derived views after a mutation. analytics.Service implements it.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type Engine struct {
	products    repo.ProductRepository
	invalidator Invalidator
	alerts      alert.Recorder
	metrics     *metrics.Metrics
	log         *zap.Logger
	now         func() time.Time
}

type Option func(*Engine)

func WithInvalidator(inv Invalidator) Option { return func(e *Engine) { e.invalidator = inv } }
func WithAlerts(rec alert.Recorder) Option   { return func(e *Engine) { e.alerts = rec } }
func WithMetrics(m *metrics.Metrics) Option  { return func(e *Engine) { e.metrics = m } }
func WithClock(now func() time.Time) Option  { return func(e *Engine) { e.now = now } }

func NewEngine(products repo.ProductRepository, log *zap.Logger, opts ...Option) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		products: products,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.metrics == nil {
		e.metrics = metrics.New()
	}
	return e
}

// SaleResult is what a successful RecordSale hands back.
type SaleResult struct {
	ProductID         string         `json:"product_id"`
	QuantityAvailable int            `json:"quantity_available"`
	UnitsSold         int            `json:"units_sold"`
	Sale              models.Sale    `json:"sale"`
	Product           models.Product `json:"product"`
}

// storeError turns repository failures into the public taxonomy.
func storeError(op, id string, err error) error {
	switch {
	case errors.Is(err, repo.ErrProductNotFound):
		return &apperr.NotFoundError{Op: op, ID: id}
	case apperr.IsValidation(err):
		return err
	default:
		return &apperr.StoreUnavailableError{Op: op, Err: err}
	}
}

func (e *Engine) afterMutation(ctx context.Context, op string) {
	e.metrics.ProductMutations.WithLabelValues(op).Inc()
	if e.invalidator == nil {
		return
	}
	if err := e.invalidator.Invalidate(ctx); err != nil {
		e.log.Warn("analytics invalidation failed", zap.String("op", op), zap.Error(err))
	}
}

// Create validates the input and stores a new product with an empty ledger.
func (e *Engine) Create(ctx context.Context, in CreateInput) (models.Product, error) {
	const op = "create product"

	in = in.normalized()
	if errs := in.validate(op); len(errs) > 0 {
		return models.Product{}, errs
	}

	created, err := e.products.Create(ctx, models.Product{
		Title:             in.Title,
		Summary:           in.Summary,
		Department:        in.Department,
		UnitPrice:         in.UnitPrice,
		QuantityAvailable: in.QuantityAvailable,
		Status:            in.Status,
		Images:            in.Images,
	})
	if err != nil {
		e.log.Error("create product failed", zap.Error(err))
		return models.Product{}, storeError(op, "", err)
	}

	e.log.Info("product created",
		zap.String("product_id", created.ID),
		zap.String("title", created.Title),
		zap.String("department", created.Department),
		zap.Int("quantity_available", created.QuantityAvailable),
	)
	e.afterMutation(ctx, "create")
	return created, nil
}

// Edit applies a validated partial update. Units sold and the ledger are never touched.
func (e *Engine) Edit(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error) {
	const op = "edit product"

	patch = normalizePatch(patch)
	if errs := validatePatch(op, patch); len(errs) > 0 {
		return models.Product{}, errs
	}

	if patch.Empty() {
		return e.GetByID(ctx, id)
	}

	updated, err := e.products.Update(ctx, id, patch)
	if err != nil {
		return models.Product{}, storeError(op, id, err)
	}

	e.log.Info("product edited", zap.String("product_id", id))
	e.afterMutation(ctx, "edit")
	return updated, nil
}

// Delete removes the product together with its ledger. Deleting twice yields NotFoundError.
func (e *Engine) Delete(ctx context.Context, id string) error {
	const op = "delete product"

	if err := e.products.Delete(ctx, id); err != nil {
		return storeError(op, id, err)
	}

	e.log.Info("product deleted", zap.String("product_id", id))
	e.afterMutation(ctx, "delete")
	return nil
}

// RecordSale sells quantity units of a product. The whole check-decrement-append runs as a
// single atomic store operation; a sale larger than the stock is rejected, never partially filled.
func (e *Engine) RecordSale(ctx context.Context, id string, quantity int) (SaleResult, error) {
	const op = "record sale"

	if quantity <= 0 {
		e.metrics.SaleRejections.WithLabelValues("invalid_quantity").Inc()
		return SaleResult{}, apperr.Validation(op, "quantity", "must be a positive integer")
	}

	p, err := e.products.RecordSale(ctx, id, quantity, e.now())
	if errors.Is(err, repo.ErrInsufficientStock) {
		e.metrics.SaleRejections.WithLabelValues("insufficient_stock").Inc()
		e.log.Warn("sale rejected: insufficient stock",
			zap.String("product_id", id),
			zap.Int("requested", quantity),
			zap.Int("available", p.QuantityAvailable),
		)
		return SaleResult{}, &apperr.InsufficientStockError{ProductID: id, Requested: quantity, Available: p.QuantityAvailable}
	}
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			e.metrics.SaleRejections.WithLabelValues("not_found").Inc()
		}
		return SaleResult{}, storeError(op, id, err)
	}

	res := SaleResult{
		ProductID:         p.ID,
		QuantityAvailable: p.QuantityAvailable,
		UnitsSold:         p.UnitsSold,
		Product:           p,
	}
	if n := len(p.Sales); n > 0 {
		res.Sale = p.Sales[n-1]
	}

	e.metrics.SalesRecorded.Inc()
	e.metrics.UnitsSold.Add(float64(quantity))
	e.log.Info("sale recorded",
		zap.String("product_id", p.ID),
		zap.Int("quantity", quantity),
		zap.Float64("price_at_sale", res.Sale.PriceAtSale),
		zap.Int("quantity_available", p.QuantityAvailable),
		zap.Int("units_sold", p.UnitsSold),
	)
	e.raiseStockAlert(ctx, p)
	e.afterMutation(ctx, "sale")
	return res, nil
}

func (e *Engine) raiseStockAlert(ctx context.Context, p models.Product) {
	level, due := alert.Level(p.QuantityAvailable, analytics.DashboardLowStockMax)
	if !due {
		return
	}

	e.metrics.StockAlerts.WithLabelValues(level).Inc()
	e.log.Warn("stock alert",
		zap.String("product_id", p.ID),
		zap.String("title", p.Title),
		zap.String("level", level),
		zap.Int("quantity_available", p.QuantityAvailable),
	)
	if e.alerts == nil {
		return
	}
	a := models.StockAlert{
		ProductID:         p.ID,
		Title:             p.Title,
		Department:        p.Department,
		QuantityAvailable: p.QuantityAvailable,
		Level:             level,
		At:                e.now(),
	}
	if err := e.alerts.Record(ctx, a); err != nil {
		e.log.Warn("stock alert not recorded", zap.String("product_id", p.ID), zap.Error(err))
	}
}

// RecentAlerts returns the latest stock alerts, newest first.
func (e *Engine) RecentAlerts(ctx context.Context, limit int) ([]models.StockAlert, error) {
	if e.alerts == nil {
		return []models.StockAlert{}, nil
	}
	alerts, err := e.alerts.Recent(ctx, limit)
	if err != nil {
		return nil, &apperr.StoreUnavailableError{Op: "list stock alerts", Err: err}
	}
	return alerts, nil
}

func (e *Engine) ListAll(ctx context.Context) ([]models.Product, error) {
	products, err := e.products.GetAll(ctx)
	if err != nil {
		return nil, storeError("list products", "", err)
	}
	return products, nil
}

func (e *Engine) GetByID(ctx context.Context, id string) (models.Product, error) {
	p, err := e.products.GetByID(ctx, id)
	if err != nil {
		return models.Product{}, storeError("get product", id, err)
	}
	return p, nil
}

// Search filters and paginates the product list.
func (e *Engine) Search(ctx context.Context, pf repo.ProductFilter) ([]models.Product, int, error) {
	const op = "search products"

	if pf.Limit != nil && *pf.Limit <= 0 {
		return nil, 0, apperr.Validation(op, "limit", "must be greater than zero")
	}
	if pf.Offset != nil && *pf.Offset < 0 {
		return nil, 0, apperr.Validation(op, "offset", "must be zero or positive")
	}
	if pf.Status != "" && !pf.Status.Valid() {
		return nil, 0, apperr.Validation(op, "status", "must be active or inactive")
	}

	products, total, err := e.products.Filter(ctx, pf)
	if err != nil {
		return nil, 0, storeError(op, "", err)
	}
	return products, total, nil
}
