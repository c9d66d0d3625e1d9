package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/inventory-dashboard/internal/inventory"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
	"github.com/rogerio-castellano/inventory-dashboard/internal/repo"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product with an empty sales ledger
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body inventory.CreateInput true "Product to add"
// @Success 201 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /products [post]
func (s *Server) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req inventory.CreateInput
	if err := readJSON(w, r, &req); err != nil {
		s.badRequest(w, "create product", "body", err.Error())
		return
	}

	created, err := s.engine.Create(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusCreated, created)
}

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Product
// @Failure 503 {object} ErrorResponse
// @Router /products [get]
func (s *Server) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.engine.ListAll(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, products)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (s *Server) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	product, err := s.engine.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, product)
}

// UpdateProductHandler godoc
// @Summary Edit a product
// @Description Partial update; omitted fields are left unchanged. Units sold and the sales ledger cannot be edited.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param patch body models.ProductPatch true "Fields to change"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [patch]
func (s *Server) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	var patch models.ProductPatch
	if err := readJSON(w, r, &patch); err != nil {
		s.badRequest(w, "edit product", "body", err.Error())
		return
	}

	updated, err := s.engine.Edit(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, updated)
}

// DeleteProductHandler godoc
// @Summary Delete a product and its sales ledger
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [delete]
func (s *Server) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// FilterProductsHandler godoc
// @Summary Search products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param title query string false "Title contains (case-insensitive)"
// @Param department query string false "Department"
// @Param status query string false "active or inactive"
// @Param minPrice query number false "Minimum unit price"
// @Param maxPrice query number false "Maximum unit price"
// @Param minQty query int false "Minimum quantity available"
// @Param maxQty query int false "Maximum quantity available"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {object} ErrorResponse
// @Router /products/search [get]
func (s *Server) FilterProductsHandler(w http.ResponseWriter, r *http.Request) {
	const op = "search products"

	q := r.URL.Query()
	pf := repo.ProductFilter{
		Title:      q.Get("title"),
		Department: q.Get("department"),
		Status:     models.Status(q.Get("status")),
	}

	var err error
	for name, dst := range map[string]**float64{"minPrice": &pf.MinPrice, "maxPrice": &pf.MaxPrice} {
		if *dst, err = queryFloat(r, name); err != nil {
			s.badRequest(w, op, name, err.Error())
			return
		}
	}
	for name, dst := range map[string]**int{"minQty": &pf.MinQty, "maxQty": &pf.MaxQty, "offset": &pf.Offset, "limit": &pf.Limit} {
		if *dst, err = queryInt(r, name); err != nil {
			s.badRequest(w, op, name, err.Error())
			return
		}
	}

	products, total, err := s.engine.Search(r.Context(), pf)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, ProductsSearchResult{Data: products, Meta: Meta{TotalCount: total}})
}
