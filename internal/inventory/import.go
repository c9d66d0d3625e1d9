package inventory

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/inventory-dashboard/internal/apperr"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
	"github.com/rogerio-castellano/inventory-dashboard/internal/repo"
)

// ImportMode decides what happens to rows whose title already exists.
type ImportMode string

const (
	ImportSkip   ImportMode = "skip"
	ImportUpdate ImportMode = "update"
)

// ParseImportMode maps any value other than "update" to skip.
func ParseImportMode(s string) ImportMode {
	if strings.EqualFold(s, string(ImportUpdate)) {
		return ImportUpdate
	}
	return ImportSkip
}

// ImportRow is one CSV line. Numeric cells keep their raw text so bad values are
// reported per row instead of silently becoming zero.
type ImportRow struct {
	Line              int
	Title             string
	Department        string
	Summary           string
	UnitPrice         string
	QuantityAvailable string
	Status            string
}

type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Imported int              `json:"imported"`
	Errors   []ImportRowError `json:"errors"`
}

var requiredColumns = []string{"title", "department", "unit_price", "quantity_available"}

// ParseCSV reads a product CSV with a header row. Column order is free; title, department,
// unit_price and quantity_available are required, summary and status are optional.
func ParseCSV(r io.Reader) ([]ImportRow, error) {
	const op = "import products"

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	headers, err := reader.Read()
	if err != nil {
		return nil, apperr.Validation(op, "file", "has no readable CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, apperr.Validation(op, "file", fmt.Sprintf("is missing the %q column", col))
		}
	}

	cell := func(record []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []ImportRow
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, apperr.Validation(op, "file", fmt.Sprintf("line %d: %v", line, err))
		}
		rows = append(rows, ImportRow{
			Line:              line,
			Title:             cell(record, "title"),
			Department:        cell(record, "department"),
			Summary:           cell(record, "summary"),
			UnitPrice:         cell(record, "unit_price"),
			QuantityAvailable: cell(record, "quantity_available"),
			Status:            cell(record, "status"),
		})
	}
	return rows, nil
}

func (row ImportRow) input() (CreateInput, error) {
	price, err := strconv.ParseFloat(row.UnitPrice, 64)
	if err != nil {
		return CreateInput{}, errors.New("invalid unit_price")
	}
	qty, err := strconv.Atoi(row.QuantityAvailable)
	if err != nil {
		return CreateInput{}, errors.New("invalid quantity_available")
	}
	return CreateInput{
		Title:             row.Title,
		Department:        row.Department,
		Summary:           row.Summary,
		UnitPrice:         price,
		QuantityAvailable: qty,
		Status:            models.Status(strings.ToLower(row.Status)),
	}, nil
}

// Import creates products from parsed rows. Existing titles are reported in skip mode and
// edited in update mode. Store failures abort the import; row problems do not.
func (e *Engine) Import(ctx context.Context, rows []ImportRow, mode ImportMode) (ImportResult, error) {
	res := ImportResult{Errors: []ImportRowError{}}
	fail := func(row ImportRow, reason string) {
		res.Errors = append(res.Errors, ImportRowError{Row: row.Line, Reason: reason})
	}

	for _, row := range rows {
		in, err := row.input()
		if err != nil {
			fail(row, err.Error())
			continue
		}

		existing, err := e.products.GetByTitle(ctx, strings.TrimSpace(in.Title))
		switch {
		case err == nil:
			if mode == ImportSkip {
				fail(row, fmt.Sprintf("product %q already exists", existing.Title))
				continue
			}
			_, err = e.Edit(ctx, existing.ID, in.patch())
		case apperr.IsValidation(err):
			fail(row, err.Error())
			continue
		case !errors.Is(err, repo.ErrProductNotFound):
			return res, storeError("import products", "", err)
		default:
			_, err = e.Create(ctx, in)
		}

		if err != nil {
			if apperr.IsValidation(err) {
				fail(row, err.Error())
				continue
			}
			return res, err
		}
		res.Imported++
	}

	e.log.Sugar().Infof("import finished: %d imported, %d rejected", res.Imported, len(res.Errors))
	return res, nil
}

func (in CreateInput) patch() models.ProductPatch {
	p := models.ProductPatch{
		Department:        &in.Department,
		UnitPrice:         &in.UnitPrice,
		QuantityAvailable: &in.QuantityAvailable,
	}
	if in.Summary != "" {
		p.Summary = &in.Summary
	}
	if in.Status != "" {
		p.Status = &in.Status
	}
	return p
}
