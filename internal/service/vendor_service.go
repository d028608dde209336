package service

import (
	"context"
	"fmt"

	"stockroom/internal/domain"
	"stockroom/internal/repository"
)

// VendorService defines the interface for vendor business logic
type VendorService interface {
	List(ctx context.Context) ([]*domain.Vendor, error)
	Add(ctx context.Context, name string) (*domain.Vendor, error)
	Remove(ctx context.Context, id int64) error
}

type vendorService struct {
	vendorRepo repository.VendorRepository
}

// NewVendorService creates a new instance of VendorService
func NewVendorService(vendorRepo repository.VendorRepository) VendorService {
	return &vendorService{vendorRepo: vendorRepo}
}

func (s *vendorService) List(ctx context.Context) ([]*domain.Vendor, error) {
	vendors, err := s.vendorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	return vendors, nil
}

func (s *vendorService) Add(ctx context.Context, name string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to add vendor: %w", err)
	}
	return vendor, nil
}

// Remove deletes a vendor; its products go with it through the cascade.
// Removing an id that no longer exists is a no-op, same as product removal.
func (s *vendorService) Remove(ctx context.Context, id int64) error {
	if _, err := s.vendorRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to remove vendor: %w", err)
	}
	return nil
}
