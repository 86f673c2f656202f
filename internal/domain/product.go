package domain

import "time"

type Product struct {
	ID              int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string      `gorm:"uniqueIndex;size:191;not null" json:"name"`
	Description     string      `gorm:"not null" json:"description"`
	Price           float64     `gorm:"not null" json:"price"`
	DiscountPrice   float64     `gorm:"default:0" json:"discountPrice"`
	CountInStock    int         `gorm:"not null" json:"countInStock"`
	SKU             string      `gorm:"column:sku;uniqueIndex;size:64;not null" json:"sku"`
	CategoryID      int64       `gorm:"not null" json:"categoryId"`
	Brand           *string     `gorm:"size:64" json:"brand,omitempty"`
	Sizes           StringArray `gorm:"type:text" json:"sizes"`
	Colours         StringArray `gorm:"type:text" json:"colours"`
	Collections     string      `gorm:"size:128;not null" json:"collections"`
	Material        *string     `gorm:"size:64" json:"material,omitempty"`
	Gender          string      `gorm:"size:16;not null" json:"gender"`
	Images          StringArray `gorm:"type:text" json:"images"`
	ImageAlt        StringArray `gorm:"type:text" json:"imageAlt"`
	IsFeatured      bool        `gorm:"default:false" json:"isFeatured"`
	IsPublished     bool        `gorm:"default:false" json:"isPublished"`
	Rating          int         `gorm:"default:0" json:"rating"`
	NumberOfReviews int         `gorm:"default:0" json:"numberOfReviews"`
	Tags            StringArray `gorm:"type:text" json:"tags"`
	MetaTitle       *string     `gorm:"size:191" json:"metaTitle,omitempty"`
	MetaDescription *string     `gorm:"size:255" json:"metaDescription,omitempty"`
	MetaKeywords    *string     `gorm:"size:255" json:"metaKeywords,omitempty"`
	Length          float64     `gorm:"column:dimensions_length;default:0" json:"dimensionsLength"`
	Width           float64     `gorm:"column:dimensions_width;default:0" json:"dimensionsWidth"`
	Height          float64     `gorm:"column:dimensions_height;default:0" json:"dimensionsHeight"`
	Weight          float64     `gorm:"default:0" json:"weight"`
	CreatorID       int64       `gorm:"not null" json:"creatorId"`
	CreatedAt       time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
	Creator  *User     `gorm:"foreignKey:CreatorID" json:"-"`
}

func (Product) TableName() string { return "products" }

type Category struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:128;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Category) TableName() string { return "category" }
