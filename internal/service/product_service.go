package service

import (
	"context"
	"errors"
	"fmt"

	"stockroom/internal/domain"
	"stockroom/internal/repository"
)

// ProductService defines the interface for product business logic
type ProductService interface {
	List(ctx context.Context) ([]*domain.ProductWithVendor, error)
	Add(ctx context.Context, product *domain.Product) error
	Replace(ctx context.Context, product *domain.Product) error
	Remove(ctx context.Context, id int64) error
}

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new instance of ProductService
func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) List(ctx context.Context) ([]*domain.ProductWithVendor, error) {
	products, err := s.productRepo.ListWithVendor(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *productService) Add(ctx context.Context, product *domain.Product) error {
	if err := s.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrVendorMissing) {
			return err
		}
		return fmt.Errorf("failed to add product: %w", err)
	}
	return nil
}

// Replace performs a full-field update by id. A missing id is not an error:
// zero rows are affected and the call succeeds silently.
func (s *productService) Replace(ctx context.Context, product *domain.Product) error {
	if _, err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrVendorMissing) {
			return err
		}
		return fmt.Errorf("failed to replace product: %w", err)
	}
	return nil
}

// Remove deletes by id with the same silent zero-rows semantics as Replace.
func (s *productService) Remove(ctx context.Context, id int64) error {
	if _, err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to remove product: %w", err)
	}
	return nil
}
