package domain

import "time"

type Order struct {
	ID                    int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID                int64      `gorm:"not null" json:"userId"`
	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime,omitempty"`
	ActualDeliveryTime    *time.Time `json:"actualDeliveryTime,omitempty"`
	Items                 int        `gorm:"not null" json:"items"`
	Price                 float64    `gorm:"not null" json:"price"`
	Discount              float64    `gorm:"default:0" json:"discount"`
	TotalPrice            float64    `gorm:"not null" json:"totalPrice"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	User     *User         `gorm:"foreignKey:UserID" json:"-"`
	Statuses []OrderStatus `gorm:"foreignKey:OrderID" json:"statuses,omitempty"`
	Lines    []OrderItem   `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
}

func (Order) TableName() string { return "orders" }

// OrderStatus 订单状态历史，一行一次状态变更
type OrderStatus struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID         int64     `gorm:"not null;index" json:"orderId"`
	StatusCatalogID int64     `gorm:"not null" json:"statusCatalogId"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Status *StatusCatalog `gorm:"foreignKey:StatusCatalogID" json:"status,omitempty"`
}

func (OrderStatus) TableName() string { return "order_status" }

type StatusCatalog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:64;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (StatusCatalog) TableName() string { return "status_catalog" }

type OrderItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64     `gorm:"not null;index" json:"orderId"`
	ProductID int64     `gorm:"not null" json:"productId"`
	Size      string    `gorm:"size:16;not null" json:"size"`
	Colour    string    `gorm:"size:32;not null" json:"colour"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	ItemPrice float64   `gorm:"not null" json:"itemPrice"`
	Price     float64   `gorm:"not null" json:"price"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (OrderItem) TableName() string { return "order_product_item" }
