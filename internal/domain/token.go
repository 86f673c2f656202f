package domain

import "time"

type RefreshToken struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	HashedToken string     `gorm:"uniqueIndex;size:128;not null" json:"-"`
	UserID      int64      `gorm:"not null;index" json:"userId"`
	Revoked     bool       `gorm:"default:false" json:"revoked"`
	ExpireAt    *time.Time `json:"expireAt,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (RefreshToken) TableName() string { return "refresh_tokens" }
