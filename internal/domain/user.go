package domain

import "time"

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string    `gorm:"size:64;not null" json:"firstName"`
	LastName  string    `gorm:"size:64;not null" json:"lastName"`
	UserImage *string   `gorm:"size:255" json:"userImage,omitempty"`
	Email     string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      string    `gorm:"size:16;not null;default:customer" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Address       *Address       `gorm:"foreignKey:UserID" json:"-"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
	Orders        []Order        `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string { return "users" }

type Address struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	StreetAddress string    `gorm:"size:255;not null" json:"streetAddress"`
	PostalCode    string    `gorm:"size:32;not null" json:"postalCode"`
	UserID        int64     `gorm:"not null;uniqueIndex" json:"userId"`
	City          string    `gorm:"size:64;not null" json:"city"`
	Phone         string    `gorm:"size:32;not null" json:"phone"`
	Country       string    `gorm:"size:64;not null" json:"country"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Address) TableName() string { return "address" }
