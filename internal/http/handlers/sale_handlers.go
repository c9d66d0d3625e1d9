package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-dashboard/internal/apperr"
	"github.com/rogerio-castellano/inventory-dashboard/internal/inventory"
)

// RecordSaleHandler godoc
// @Summary Record a sale
// @Description Atomically checks stock, decrements it and appends a ledger entry priced at the current unit price
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param sale body SaleRequest true "Units sold"
// @Success 201 {object} inventory.SaleResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Insufficient stock"
// @Failure 503 {object} ErrorResponse
// @Router /products/{id}/sales [post]
func (s *Server) RecordSaleHandler(w http.ResponseWriter, r *http.Request) {
	var req SaleRequest
	if err := readJSON(w, r, &req); err != nil {
		s.badRequest(w, "record sale", "body", err.Error())
		return
	}

	res, err := s.engine.RecordSale(r.Context(), chi.URLParam(r, "id"), req.Quantity)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusCreated, res)
}

func saleFilterFromQuery(r *http.Request, op string) (inventory.SaleFilter, error) {
	var sf inventory.SaleFilter
	var err error
	if sf.Since, err = queryTime(r, "since"); err != nil {
		return sf, apperr.Validation(op, "since", err.Error())
	}
	if sf.Until, err = queryTime(r, "until"); err != nil {
		return sf, apperr.Validation(op, "until", err.Error())
	}
	if sf.Offset, err = queryInt(r, "offset"); err != nil {
		return sf, apperr.Validation(op, "offset", err.Error())
	}
	if sf.Limit, err = queryInt(r, "limit"); err != nil {
		return sf, apperr.Validation(op, "limit", err.Error())
	}
	return sf, nil
}

// GetSalesHandler godoc
// @Summary Get a product's sales ledger
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param since query string false "Sales from this timestamp (RFC3339)"
// @Param until query string false "Sales until this timestamp (RFC3339)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination (max 100)"
// @Success 200 {object} SalesSearchResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id}/sales [get]
func (s *Server) GetSalesHandler(w http.ResponseWriter, r *http.Request) {
	sf, err := saleFilterFromQuery(r, "list sales")
	if err != nil {
		s.fail(w, err)
		return
	}

	sales, total, err := s.engine.ListSales(r.Context(), chi.URLParam(r, "id"), sf)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, SalesSearchResult{Data: sales, Meta: Meta{TotalCount: total}})
}

// ExportSalesHandler godoc
// @Summary Export a product's sales ledger
// @Tags sales
// @Produce text/csv
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param format query string false "csv (default) or json"
// @Param since query string false "Sales from this timestamp (RFC3339)"
// @Param until query string false "Sales until this timestamp (RFC3339)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id}/sales/export [get]
func (s *Server) ExportSalesHandler(w http.ResponseWriter, r *http.Request) {
	const op = "export sales"

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "json" {
		s.badRequest(w, op, "format", "must be csv or json")
		return
	}

	sf, err := saleFilterFromQuery(r, op)
	if err != nil {
		s.fail(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	sales, err := s.engine.ExportSales(r.Context(), id, sf)
	if err != nil {
		s.fail(w, err)
		return
	}

	filename := fmt.Sprintf("sales_%s.%s", id, format)
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	if format == "json" {
		s.respond(w, http.StatusOK, sales)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"date", "quantity", "price_at_sale", "amount"})
	for _, sale := range sales {
		_ = cw.Write([]string{
			sale.Date.UTC().Format(time.RFC3339),
			strconv.Itoa(sale.Quantity),
			strconv.FormatFloat(sale.PriceAtSale, 'f', 2, 64),
			strconv.FormatFloat(sale.Amount(), 'f', 2, 64),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		s.log.Warn("failed to write CSV export", zap.String("product_id", id), zap.Error(err))
	}
}
