package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-magmart-api/internal/domain"
)

type CategoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CategoryRepo) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	var c domain.Category
	err := r.db.WithContext(ctx).First(&c, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	var cs []domain.Category
	err := r.db.WithContext(ctx).Order("name asc").Find(&cs).Error
	return cs, err
}

func (r *CategoryRepo) Update(ctx context.Context, c *domain.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CategoryRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Category{})
	return res.RowsAffected, res.Error
}

// StatusCatalogRepo 订单状态字典
type StatusCatalogRepo struct{ db *gorm.DB }

func NewStatusCatalogRepo(db *gorm.DB) *StatusCatalogRepo { return &StatusCatalogRepo{db: db} }

func (r *StatusCatalogRepo) Create(ctx context.Context, s *domain.StatusCatalog) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StatusCatalogRepo) FindByName(ctx context.Context, name string) (*domain.StatusCatalog, error) {
	var s domain.StatusCatalog
	err := r.db.WithContext(ctx).First(&s, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StatusCatalogRepo) List(ctx context.Context) ([]domain.StatusCatalog, error) {
	var ss []domain.StatusCatalog
	err := r.db.WithContext(ctx).Order("id asc").Find(&ss).Error
	return ss, err
}
