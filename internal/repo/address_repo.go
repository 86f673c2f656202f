package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-magmart-api/internal/domain"
)

type AddressRepo struct{ db *gorm.DB }

func NewAddressRepo(db *gorm.DB) *AddressRepo { return &AddressRepo{db: db} }

func (r *AddressRepo) Create(ctx context.Context, a *domain.Address) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AddressRepo) FindByUserID(ctx context.Context, userID int64) (*domain.Address, error) {
	var a domain.Address
	err := r.db.WithContext(ctx).First(&a, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepo) UpdateFields(ctx context.Context, userID int64, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).Model(&domain.Address{}).Where("user_id = ?", userID).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *AddressRepo) DeleteByUserID(ctx context.Context, userID int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.Address{})
	return res.RowsAffected, res.Error
}
