package service

import (
	"context"

	"gorm.io/gorm"

	"go-magmart-api/internal/domain"
	"go-magmart-api/internal/repo"
)

type CategoryService struct {
	categories *repo.CategoryRepo
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{categories: repo.NewCategoryRepo(db)}
}

func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	c := domain.Category{Name: name}
	if err := s.categories.Create(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CategoryService) Rename(ctx context.Context, id int64, name string) (*domain.Category, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	c.Name = name
	if err := s.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := s.categories.Delete(ctx, id)
	return n > 0, err
}
