package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"go-magmart-api/internal/domain"
	"go-magmart-api/internal/repo"
)

// InitialOrderStatus 新订单写入的首条状态
const InitialOrderStatus = "pending"

// ErrOrderLineProduct 行项目指向不存在的商品，属客户端输入错误。
var ErrOrderLineProduct = errors.New("order: line references unknown product")

type OrderLineInput struct {
	ProductID int64
	Size      string
	Colour    string
	Quantity  int
	Comment   *string
}

type OrderService struct {
	db     *gorm.DB
	orders *repo.OrderRepo
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db, orders: repo.NewOrderRepo(db)}
}

// Create 在一个事务里落订单头、行项目和首条状态。
// 行项目单价按商品当前价（有折扣价优先）定格。
func (s *OrderService) Create(ctx context.Context, userID int64, discount float64, lines []OrderLineInput) (*domain.Order, error) {
	if len(lines) == 0 {
		return nil, errors.New("order: at least one line required")
	}

	var out *domain.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := repo.NewProductRepo(tx)

		itemCount := 0
		price := 0.0
		resolved := make([]domain.OrderItem, 0, len(lines))
		for _, ln := range lines {
			p, err := products.FindByID(ctx, ln.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return ErrOrderLineProduct
			}
			unit := p.Price
			if p.DiscountPrice > 0 && p.DiscountPrice < p.Price {
				unit = p.DiscountPrice
			}
			lineTotal := unit * float64(ln.Quantity)
			itemCount += ln.Quantity
			price += lineTotal
			resolved = append(resolved, domain.OrderItem{
				ProductID: ln.ProductID,
				Size:      ln.Size,
				Colour:    ln.Colour,
				Quantity:  ln.Quantity,
				ItemPrice: unit,
				Price:     lineTotal,
				Comment:   ln.Comment,
			})
		}

		o := domain.Order{
			UserID:     userID,
			Items:      itemCount,
			Price:      price,
			Discount:   discount,
			TotalPrice: price - discount,
		}
		orders := repo.NewOrderRepo(tx)
		if err := orders.Create(ctx, &o); err != nil {
			return err
		}
		for i := range resolved {
			resolved[i].OrderID = o.ID
			if err := orders.InsertLine(ctx, &resolved[i]); err != nil {
				return err
			}
		}

		st, err := ensureStatus(ctx, tx, InitialOrderStatus)
		if err != nil {
			return err
		}
		if err := orders.AppendStatus(ctx, &domain.OrderStatus{OrderID: o.ID, StatusCatalogID: st.ID}); err != nil {
			return err
		}

		o.Lines = resolved
		out = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *OrderService) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *OrderService) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// AppendStatus 给订单追加一条状态历史；订单不存在返回 (nil, nil)。
func (s *OrderService) AppendStatus(ctx context.Context, orderID int64, statusName string) (*domain.Order, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil || o == nil {
		return nil, err
	}
	st, err := ensureStatus(ctx, s.db, statusName)
	if err != nil {
		return nil, err
	}
	if err := s.orders.AppendStatus(ctx, &domain.OrderStatus{OrderID: orderID, StatusCatalogID: st.ID}); err != nil {
		return nil, err
	}
	return s.orders.FindByID(ctx, orderID)
}

// SetDelivered 记录实际送达时间。
func (s *OrderService) SetDelivered(ctx context.Context, orderID int64, at time.Time) (bool, error) {
	n, err := s.orders.UpdateDelivery(ctx, orderID, map[string]any{"actual_delivery_time": at})
	return n > 0, err
}

func ensureStatus(ctx context.Context, db *gorm.DB, name string) (*domain.StatusCatalog, error) {
	statuses := repo.NewStatusCatalogRepo(db)
	st, err := statuses.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if st != nil {
		return st, nil
	}
	created := domain.StatusCatalog{Name: name}
	if err := statuses.Create(ctx, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
