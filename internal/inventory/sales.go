package inventory

import (
	"context"

	"github.com/rogerio-castellano/inventory-dashboard/internal/apperr"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
	"github.com/rogerio-castellano/inventory-dashboard/internal/repo"
)

const defaultSalesLimit = 100

// ListSales returns a page of a product's ledger, newest sale first, and the number of
// sales matching the date range.
func (e *Engine) ListSales(ctx context.Context, id string, sf SaleFilter) ([]models.Sale, int, error) {
	const op = "list sales"

	if err := sf.validate(op); err != nil {
		return nil, 0, err
	}

	p, err := e.products.GetByID(ctx, id)
	if err != nil {
		return nil, 0, storeError(op, id, err)
	}

	matched := []models.Sale{}
	for i := len(p.Sales) - 1; i >= 0; i-- {
		if sf.matches(p.Sales[i]) {
			matched = append(matched, p.Sales[i])
		}
	}

	limit := defaultSalesLimit
	if sf.Limit != nil {
		limit = min(*sf.Limit, defaultSalesLimit)
	}
	return repo.Paginate(matched, sf.Offset, &limit), len(matched), nil
}

// ExportSales returns the whole filtered ledger, oldest sale first, without pagination.
func (e *Engine) ExportSales(ctx context.Context, id string, sf SaleFilter) ([]models.Sale, error) {
	const op = "export sales"

	sf.Offset, sf.Limit = nil, nil
	if err := sf.validate(op); err != nil {
		return nil, err
	}

	p, err := e.products.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(op, id, err)
	}

	out := []models.Sale{}
	for _, s := range p.Sales {
		if sf.matches(s) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (sf SaleFilter) validate(op string) error {
	if sf.Since != nil && sf.Until != nil && sf.Since.After(*sf.Until) {
		return apperr.Validation(op, "since", "must not be after until")
	}
	if sf.Limit != nil && *sf.Limit <= 0 {
		return apperr.Validation(op, "limit", "must be greater than zero")
	}
	if sf.Offset != nil && *sf.Offset < 0 {
		return apperr.Validation(op, "offset", "must be zero or positive")
	}
	return nil
}

func (sf SaleFilter) matches(s models.Sale) bool {
	if sf.Since != nil && s.Date.Before(*sf.Since) {
		return false
	}
	if sf.Until != nil && s.Date.After(*sf.Until) {
		return false
	}
	return true
}
