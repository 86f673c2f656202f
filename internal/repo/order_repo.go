package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-magmart-api/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderRepo) InsertLine(ctx context.Context, li *domain.OrderItem) error {
	return r.db.WithContext(ctx).Create(li).Error
}

func (r *OrderRepo) AppendStatus(ctx context.Context, st *domain.OrderStatus) error {
	return r.db.WithContext(ctx).Create(st).Error
}

// FindByID 连同状态历史和行项目一起取出。
func (r *OrderRepo) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).
		Preload("Statuses").
		Preload("Statuses.Status").
		Preload("Lines").
		First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	var os []domain.Order
	err := r.db.WithContext(ctx).
		Preload("Statuses").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&os).Error
	return os, err
}

func (r *OrderRepo) UpdateDelivery(ctx context.Context, id int64, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}
