package inventory

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/rogerio-castellano/inventory-dashboard/internal/apperr"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

const minTitleLength = 2

// CreateInput holds the fields accepted when creating a product.
type CreateInput struct {
	Title             string        `json:"title"`
	Summary           string        `json:"summary,omitempty"`
	Department        string        `json:"department"`
	UnitPrice         float64       `json:"unit_price"`
	QuantityAvailable int           `json:"quantity_available"`
	Images            []string      `json:"images,omitempty"`
	Status            models.Status `json:"status,omitempty"`
}

func (in CreateInput) normalized() CreateInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Department = strings.TrimSpace(in.Department)
	in.Summary = strings.TrimSpace(in.Summary)
	in.Images = cleanImages(in.Images)
	if in.Status == "" {
		in.Status = models.StatusActive
	}
	return in
}

func (in CreateInput) validate(op string) apperr.ValidationErrors {
	var errs apperr.ValidationErrors
	for _, err := range []*apperr.ValidationError{
		checkTitle(op, in.Title),
		checkDepartment(op, in.Department),
		checkUnitPrice(op, in.UnitPrice),
		checkQuantity(op, in.QuantityAvailable),
		checkStatus(op, in.Status),
	} {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func normalizePatch(p models.ProductPatch) models.ProductPatch {
	if p.Title != nil {
		t := strings.TrimSpace(*p.Title)
		p.Title = &t
	}
	if p.Department != nil {
		d := strings.TrimSpace(*p.Department)
		p.Department = &d
	}
	if p.Summary != nil {
		s := strings.TrimSpace(*p.Summary)
		p.Summary = &s
	}
	if p.Images != nil {
		images := cleanImages(*p.Images)
		p.Images = &images
	}
	return p
}

// validatePatch checks each provided field with the same rules as creation.
func validatePatch(op string, p models.ProductPatch) apperr.ValidationErrors {
	var errs apperr.ValidationErrors
	add := func(err *apperr.ValidationError) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	if p.Title != nil {
		add(checkTitle(op, *p.Title))
	}
	if p.Department != nil {
		add(checkDepartment(op, *p.Department))
	}
	if p.UnitPrice != nil {
		add(checkUnitPrice(op, *p.UnitPrice))
	}
	if p.QuantityAvailable != nil {
		add(checkQuantity(op, *p.QuantityAvailable))
	}
	if p.Status != nil {
		add(checkStatus(op, *p.Status))
	}
	return errs
}

func checkTitle(op, title string) *apperr.ValidationError {
	if utf8.RuneCountInString(title) < minTitleLength {
		return apperr.Validation(op, "title", "must be at least 2 characters")
	}
	return nil
}

func checkDepartment(op, department string) *apperr.ValidationError {
	if department == "" {
		return apperr.Validation(op, "department", "is required")
	}
	return nil
}

func checkUnitPrice(op string, price float64) *apperr.ValidationError {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return apperr.Validation(op, "unit_price", "must be greater than zero")
	}
	return nil
}

func checkQuantity(op string, quantity int) *apperr.ValidationError {
	if quantity < 0 {
		return apperr.Validation(op, "quantity_available", "cannot be negative")
	}
	return nil
}

func checkStatus(op string, status models.Status) *apperr.ValidationError {
	if !status.Valid() {
		return apperr.Validation(op, "status", "must be active or inactive")
	}
	return nil
}

func cleanImages(images []string) []string {
	out := []string{}
	for _, img := range images {
		if s := strings.TrimSpace(img); s != "" {
			out = append(out, s)
		}
	}
	return out
}
