package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"go-magmart-api/internal/core/cache"
	"go-magmart-api/internal/domain"
	"go-magmart-api/internal/repo"
)

type UpdateProductInput struct {
	Name          *string
	Description   *string
	Price         *float64
	DiscountPrice *float64
	CountInStock  *int
	CategoryID    *int64
	Brand         *string
	Sizes         *[]string
	Colours       *[]string
	Images        *[]string
	Tags          *[]string
	IsFeatured    *bool
	IsPublished   *bool
}

type ProductService struct {
	products *repo.ProductRepo
	cache    *cache.Cache // 可为 nil，nil 时直连 DB
}

func NewProductService(db *gorm.DB, c *cache.Cache) *ProductService {
	return &ProductService{products: repo.NewProductRepo(db), cache: c}
}

func productKey(id int64) string { return fmt.Sprintf("product:%d", id) }

func (s *ProductService) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID 走读穿缓存；未配置缓存时直接回源。
func (s *ProductService) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return cache.GetOrLoadJSON[domain.Product](s.cache, ctx, productKey(id), 5*time.Minute,
		func(ctx context.Context) (*domain.Product, error) {
			return s.products.FindByID(ctx, id)
		})
}

func (s *ProductService) List(ctx context.Context, f repo.ProductFilter) ([]domain.Product, error) {
	return s.products.List(ctx, f)
}

func (s *ProductService) Update(ctx context.Context, id int64, in UpdateProductInput) (*domain.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	applyProductPatch(p, in)
	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, productKey(id))
	}
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := s.products.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, productKey(id))
	}
	return n > 0, nil
}

func applyProductPatch(p *domain.Product, in UpdateProductInput) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.DiscountPrice != nil {
		p.DiscountPrice = *in.DiscountPrice
	}
	if in.CountInStock != nil {
		p.CountInStock = *in.CountInStock
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if in.Brand != nil {
		p.Brand = in.Brand
	}
	if in.Sizes != nil {
		p.Sizes = *in.Sizes
	}
	if in.Colours != nil {
		p.Colours = *in.Colours
	}
	if in.Images != nil {
		p.Images = *in.Images
	}
	if in.Tags != nil {
		p.Tags = *in.Tags
	}
	if in.IsFeatured != nil {
		p.IsFeatured = *in.IsFeatured
	}
	if in.IsPublished != nil {
		p.IsPublished = *in.IsPublished
	}
}
