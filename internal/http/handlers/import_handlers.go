package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/inventory-dashboard/internal/inventory"
)

const maxUploadBytes = 10 << 20

// ImportProductsHandler godoc
// @Summary Import products from CSV
// @Description Columns: title, department, unit_price, quantity_available, and optionally summary and status
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file"
// @Param mode query string false "skip (default) or update existing titles"
// @Success 200 {object} inventory.ImportResult
// @Failure 400 {object} ErrorResponse
// @Router /products/import [post]
func (s *Server) ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	const op = "import products"

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.badRequest(w, op, "file", "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		s.badRequest(w, op, "file", "is required")
		return
	}
	defer file.Close()

	rows, err := inventory.ParseCSV(file)
	if err != nil {
		s.fail(w, err)
		return
	}

	res, err := s.engine.Import(r.Context(), rows, inventory.ParseImportMode(r.URL.Query().Get("mode")))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.respond(w, http.StatusOK, res)
}
