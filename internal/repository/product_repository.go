package repository

import (
	"context"
	"database/sql"
	"fmt"

	"stockroom/internal/domain"
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	ListWithVendor(ctx context.Context) ([]*domain.ProductWithVendor, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new product. A vendor_id that references no vendor
// violates the foreign key and surfaces as ErrVendorMissing.
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (vendor_id, name, category, quantity, price, contains, box)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		product.VendorID,
		product.Name,
		product.Category,
		product.Quantity,
		product.Price,
		product.Contains,
		product.Box,
	).Scan(&product.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrVendorMissing
		}
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// Update replaces all mutable fields of a product by id. Updating a
// nonexistent id is not an error; the returned count is zero.
func (r *productRepository) Update(ctx context.Context, product *domain.Product) (int64, error) {
	query := `
		UPDATE products
		SET vendor_id = $2, name = $3, category = $4, quantity = $5,
		    price = $6, contains = $7, box = $8
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		product.ID,
		product.VendorID,
		product.Name,
		product.Category,
		product.Quantity,
		product.Price,
		product.Contains,
		product.Box,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, ErrVendorMissing
		}
		return 0, fmt.Errorf("failed to update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

// Delete removes a product by id, zero rows affected included.
func (r *productRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

// ListWithVendor retrieves all products joined to their vendor's name. The
// inner join drops rows without a matching vendor, a state the foreign key
// already prevents.
func (r *productRepository) ListWithVendor(ctx context.Context) ([]*domain.ProductWithVendor, error) {
	query := `
		SELECT p.id, p.vendor_id, p.name, p.category, p.quantity, p.price,
		       p.contains, p.box, v.name AS vendor_name
		FROM products p
		INNER JOIN vendors v ON p.vendor_id = v.id
		ORDER BY p.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.ProductWithVendor{}
	for rows.Next() {
		p := &domain.ProductWithVendor{}
		err := rows.Scan(
			&p.ID,
			&p.VendorID,
			&p.Name,
			&p.Category,
			&p.Quantity,
			&p.Price,
			&p.Contains,
			&p.Box,
			&p.VendorName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
