package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/inventory-dashboard/internal/apperr"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

const productColumns = `id, title, summary, department, unit_price, quantity_available, units_sold, status, images, sales, created_at, updated_at`

const defaultQueryTimeout = 3 * time.Second

type PostgresProductRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresProductRepository(db *sql.DB, timeout time.Duration) *PostgresProductRepository {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &PostgresProductRepository{db: db, timeout: timeout}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanProduct reads one row and validates its shape. Rows that do not satisfy the
// product invariants come back as *apperr.ValidationError instead of half-filled structs.
func scanProduct(row rowScanner) (models.Product, error) {
	var (
		p         models.Product
		summary   sql.NullString
		status    string
		imagesRaw []byte
		salesRaw  []byte
	)
	err := row.Scan(&p.ID, &p.Title, &summary, &p.Department, &p.UnitPrice, &p.QuantityAvailable,
		&p.UnitsSold, &status, &imagesRaw, &salesRaw, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Product{}, err
	}
	p.Summary = summary.String
	p.Status = models.Status(status)

	p.Images = []string{}
	if len(imagesRaw) > 0 {
		if err := json.Unmarshal(imagesRaw, &p.Images); err != nil {
			return models.Product{}, apperr.Validation("decode product", "images", "is not a list of strings")
		}
	}
	p.Sales = []models.Sale{}
	if len(salesRaw) > 0 {
		if err := json.Unmarshal(salesRaw, &p.Sales); err != nil {
			return models.Product{}, apperr.Validation("decode product", "sales", "is not a list of sale records")
		}
	}

	if err := checkStoredProduct(p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func checkStoredProduct(p models.Product) error {
	const op = "decode product"
	if utf8.RuneCountInString(strings.TrimSpace(p.Title)) < 2 {
		return apperr.Validation(op, "title", "is shorter than 2 characters")
	}
	if strings.TrimSpace(p.Department) == "" {
		return apperr.Validation(op, "department", "is empty")
	}
	if !p.Status.Valid() {
		return apperr.Validation(op, "status", fmt.Sprintf("has unknown value %q", p.Status))
	}
	if p.QuantityAvailable < 0 {
		return apperr.Validation(op, "quantity_available", "is negative")
	}
	if p.UnitPrice < 0 {
		return apperr.Validation(op, "unit_price", "is negative")
	}
	sold := 0
	for _, s := range p.Sales {
		if s.Quantity <= 0 {
			return apperr.Validation(op, "sales", "contains a non-positive quantity")
		}
		sold += s.Quantity
	}
	if sold != p.UnitsSold {
		return apperr.Validation(op, "units_sold", "does not match the sales ledger")
	}
	return nil
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

func marshalImages(images []string) (string, error) {
	if images == nil {
		images = []string{}
	}
	b, err := json.Marshal(images)
	return string(b), err
}

func (r *PostgresProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	images, err := marshalImages(p.Images)
	if err != nil {
		return models.Product{}, err
	}
	now := time.Now().UTC()

	query := `INSERT INTO products (id, title, summary, department, unit_price, quantity_available, units_sold, status, images, sales, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8::jsonb, '[]'::jsonb, $9, $9)
		RETURNING ` + productColumns
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, query, p.ID, p.Title, p.Summary, p.Department, p.UnitPrice,
		p.QuantityAvailable, string(p.Status), images, now)
	created, err := scanProduct(row)
	if isUniqueViolation(err) {
		return models.Product{}, ErrDuplicatedValueUnique
	}
	return created, err
}

func (r *PostgresProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at, id`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *PostgresProductRepository) GetByID(ctx context.Context, id string) (models.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Product{}, ErrProductNotFound
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) GetByTitle(ctx context.Context, title string) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE title = $1 ORDER BY created_at LIMIT 1`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, title))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Product{}, ErrProductNotFound
	}

	set, args, argIdx, err := updateAssignments(patch)
	if err != nil {
		return models.Product{}, err
	}
	set += fmt.Sprintf("updated_at = $%d", argIdx)
	args = append(args, time.Now().UTC())
	argIdx++

	query := fmt.Sprintf(`UPDATE products SET %s WHERE id = $%d RETURNING %s`, set, argIdx, productColumns)
	args = append(args, id)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func updateAssignments(patch models.ProductPatch) (string, []any, int, error) {
	set := ""
	argIdx := 1
	args := []any{}

	add := func(column string, value any, cast string) {
		set += fmt.Sprintf("%s = $%d%s, ", column, argIdx, cast)
		args = append(args, value)
		argIdx++
	}

	if patch.Title != nil {
		add("title", *patch.Title, "")
	}
	if patch.Summary != nil {
		add("summary", *patch.Summary, "")
	}
	if patch.Department != nil {
		add("department", *patch.Department, "")
	}
	if patch.UnitPrice != nil {
		add("unit_price", *patch.UnitPrice, "")
	}
	if patch.QuantityAvailable != nil {
		add("quantity_available", *patch.QuantityAvailable, "")
	}
	if patch.Images != nil {
		images, err := marshalImages(*patch.Images)
		if err != nil {
			return "", nil, 0, err
		}
		add("images", images, "::jsonb")
	}
	if patch.Status != nil {
		add("status", string(*patch.Status), "")
	}

	return set, args, argIdx, nil
}

func (r *PostgresProductRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrProductNotFound
	}
	query := `DELETE FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// RecordSale runs the stock check and the ledger append as a single conditional UPDATE,
// so two concurrent sales can never both pass the guard against the same stock.
func (r *PostgresProductRepository) RecordSale(ctx context.Context, id string, quantity int, at time.Time) (models.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Product{}, ErrProductNotFound
	}
	query := `
		UPDATE products
		SET quantity_available = quantity_available - $1,
			units_sold = units_sold + $1,
			sales = sales || jsonb_build_array(jsonb_build_object('date', $2::text, 'quantity', $1::int, 'price_at_sale', unit_price)),
			updated_at = $3
		WHERE id = $4 AND quantity_available >= $1
		RETURNING ` + productColumns
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	at = at.UTC()
	p, err := scanProduct(r.db.QueryRowContext(ctx, query, quantity, at.Format(time.RFC3339Nano), at, id))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, err
	}

	// The guard rejected the update: tell a missing product apart from a short one.
	current, err := scanProduct(r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return current, ErrInsufficientStock
}

func (r *PostgresProductRepository) Filter(ctx context.Context, pf ProductFilter) ([]models.Product, int, error) {
	conditions, args, argIdx := filterConditions(pf)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM products WHERE 1=1" + conditions
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	query += conditions
	query += " ORDER BY created_at, id"

	if pf.Limit != nil && *pf.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, *pf.Limit)
		argIdx++
	}
	if pf.Offset != nil && *pf.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, *pf.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, totalCount, nil
}

func filterConditions(pf ProductFilter) (string, []any, int) {
	query := ""
	argIdx := 1
	args := []any{}

	if pf.Title != "" {
		query += fmt.Sprintf(" AND title ILIKE $%d", argIdx)
		args = append(args, "%"+pf.Title+"%")
		argIdx++
	}
	if pf.Department != "" {
		query += fmt.Sprintf(" AND department = $%d", argIdx)
		args = append(args, pf.Department)
		argIdx++
	}
	if pf.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, string(pf.Status))
		argIdx++
	}
	if pf.MinPrice != nil {
		query += fmt.Sprintf(" AND unit_price >= $%d", argIdx)
		args = append(args, *pf.MinPrice)
		argIdx++
	}
	if pf.MaxPrice != nil {
		query += fmt.Sprintf(" AND unit_price <= $%d", argIdx)
		args = append(args, *pf.MaxPrice)
		argIdx++
	}
	if pf.MinQty != nil {
		query += fmt.Sprintf(" AND quantity_available >= $%d", argIdx)
		args = append(args, *pf.MinQty)
		argIdx++
	}
	if pf.MaxQty != nil {
		query += fmt.Sprintf(" AND quantity_available <= $%d", argIdx)
		args = append(args, *pf.MaxQty)
		argIdx++
	}

	return query, args, argIdx
}
