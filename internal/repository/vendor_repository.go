package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"stockroom/internal/domain"
)

// VendorRepository defines the interface for vendor data access
type VendorRepository interface {
	Create(ctx context.Context, name string) (*domain.Vendor, error)
	List(ctx context.Context) ([]*domain.Vendor, error)
	FindByID(ctx context.Context, id int64) (*domain.Vendor, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type vendorRepository struct {
	db *sql.DB
}

// NewVendorRepository creates a new instance of VendorRepository
func NewVendorRepository(db *sql.DB) VendorRepository {
	return &vendorRepository{db: db}
}

// Create inserts a new vendor. Vendor names carry no uniqueness constraint;
// duplicates are permitted.
func (r *vendorRepository) Create(ctx context.Context, name string) (*domain.Vendor, error) {
	query := `
		INSERT INTO vendors (name)
		VALUES ($1)
		RETURNING id
	`

	vendor := &domain.Vendor{Name: name}
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&vendor.ID); err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}

	return vendor, nil
}

// List retrieves all vendors
func (r *vendorRepository) List(ctx context.Context) ([]*domain.Vendor, error) {
	query := `
		SELECT id, name
		FROM vendors
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer rows.Close()

	vendors := []*domain.Vendor{}
	for rows.Next() {
		vendor := &domain.Vendor{}
		if err := rows.Scan(&vendor.ID, &vendor.Name); err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, vendor)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vendors: %w", err)
	}

	return vendors, nil
}

// FindByID retrieves a vendor by ID using parameterized queries
func (r *vendorRepository) FindByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	query := `
		SELECT id, name
		FROM vendors
		WHERE id = $1
	`

	vendor := &domain.Vendor{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&vendor.ID, &vendor.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVendorNotFound
		}
		return nil, fmt.Errorf("failed to find vendor by ID: %w", err)
	}

	return vendor, nil
}

// Delete removes a vendor by id. The store cascades the delete onto the
// vendor's products. Deleting a nonexistent id is not an error; the returned
// count is zero.
func (r *vendorRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query := `DELETE FROM vendors WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete vendor: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
