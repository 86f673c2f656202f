package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-magmart-api/internal/domain"
	"go-magmart-api/internal/repo"
	"go-magmart-api/pkg/utils"
)

// errAccountMissing 让 Transaction 闭包整体回滚，调用方映射成 not-found。
var errAccountMissing = errors.New("account: user or address missing")

type AddressInput struct {
	StreetAddress string
	PostalCode    string
	City          string
	Phone         string
	Country       string
}

type UpdateAddressInput struct {
	StreetAddress *string
	PostalCode    *string
	City          *string
	Phone         *string
	Country       *string
}

func (in UpdateAddressInput) Empty() bool {
	return in.StreetAddress == nil && in.PostalCode == nil && in.City == nil &&
		in.Phone == nil && in.Country == nil
}

// AccountView 用户行与其地址行的扁平合并。
type AccountView struct {
	ID            int64   `json:"id"`
	UserIDInAddr  int64   `json:"userIdInAddress"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	UserImage     *string `json:"userImage,omitempty"`
	Email         string  `json:"email"`
	Role          string  `json:"role"`
	StreetAddress string  `json:"streetAddress"`
	PostalCode    string  `json:"postalCode"`
	City          string  `json:"city"`
	Phone         string  `json:"phone"`
	Country       string  `json:"country"`
}

func mergeAccount(u *domain.User, a *domain.Address) *AccountView {
	return &AccountView{
		ID:            u.ID,
		UserIDInAddr:  a.UserID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		UserImage:     u.UserImage,
		Email:         u.Email,
		Role:          u.Role,
		StreetAddress: a.StreetAddress,
		PostalCode:    a.PostalCode,
		City:          a.City,
		Phone:         a.Phone,
		Country:       a.Country,
	}
}

// AccountService 把用户行和它的单条地址行当成一个原子单元维护。
// 所有联合写都走 gorm 的 Transaction 闭包：闭包返回 error 即整体回滚，
// 不存在手动 rollback 分支。
type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService { return &AccountService{db: db} }

// Create 先散列密码，再在一个事务里插入用户行和带外键的地址行。
func (s *AccountService) Create(ctx context.Context, uin CreateUserInput, ain AddressInput) (*AccountView, error) {
	hashed := utils.HashPassword(uin.Password)

	var out *AccountView
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u := domain.User{
			FirstName: uin.FirstName,
			LastName:  uin.LastName,
			Email:     uin.Email,
			Password:  hashed,
			Role:      "customer",
		}
		if err := tx.Create(&u).Error; err != nil {
			return err
		}
		a := domain.Address{
			StreetAddress: ain.StreetAddress,
			PostalCode:    ain.PostalCode,
			City:          ain.City,
			Phone:         ain.Phone,
			Country:       ain.Country,
			UserID:        u.ID,
		}
		if err := tx.Create(&a).Error; err != nil {
			return err
		}
		out = mergeAccount(&u, &a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID 在同一事务里读用户再读地址；缺任何一个都算 not-found，返回 (nil, nil)。
func (s *AccountService) GetByID(ctx context.Context, id int64) (*AccountView, error) {
	var out *AccountView
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u, err := repo.NewUserRepo(tx).FindByID(ctx, id)
		if err != nil {
			return err
		}
		if u == nil {
			return errAccountMissing
		}
		a, err := repo.NewAddressRepo(tx).FindByUserID(ctx, u.ID)
		if err != nil {
			return err
		}
		if a == nil {
			return errAccountMissing
		}
		out = mergeAccount(u, a)
		return nil
	})
	if errors.Is(err, errAccountMissing) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update 在事务外读出两行，算出合并后的字段集，再在一个事务里同时落两个更新。
// 任一更新影响 0 行即整体回滚。未找到返回 (nil, nil)。
func (s *AccountService) Update(ctx context.Context, id int64, uin UpdateUserInput, ain UpdateAddressInput) (*AccountView, error) {
	u, err := repo.NewUserRepo(s.db).FindByID(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}
	a, err := repo.NewAddressRepo(s.db).FindByUserID(ctx, u.ID)
	if err != nil || a == nil {
		return nil, err
	}

	applyUserPatch(u, uin)
	applyAddressPatch(a, ain)

	userFields := map[string]any{
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"user_image": u.UserImage,
		"email":      u.Email,
		"password":   u.Password,
		"role":       u.Role,
	}
	addrFields := map[string]any{
		"street_address": a.StreetAddress,
		"postal_code":    a.PostalCode,
		"city":           a.City,
		"phone":          a.Phone,
		"country":        a.Country,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := repo.NewUserRepo(tx).UpdateFields(ctx, id, userFields)
		if err != nil {
			return err
		}
		if n == 0 {
			return errAccountMissing
		}
		n, err = repo.NewAddressRepo(tx).UpdateFields(ctx, id, addrFields)
		if err != nil {
			return err
		}
		if n == 0 {
			return errAccountMissing
		}
		return nil
	})
	if errors.Is(err, errAccountMissing) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mergeAccount(u, a), nil
}

// Delete 先确认两行都在，再在一个事务里删地址、删用户。
// 任一条失败或没删到行，整体回滚，用户行保持不动。
func (s *AccountService) Delete(ctx context.Context, id int64) (bool, error) {
	u, err := repo.NewUserRepo(s.db).FindByID(ctx, id)
	if err != nil || u == nil {
		return false, err
	}
	a, err := repo.NewAddressRepo(s.db).FindByUserID(ctx, u.ID)
	if err != nil || a == nil {
		return false, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := repo.NewAddressRepo(tx).DeleteByUserID(ctx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return errAccountMissing
		}
		n, err = repo.NewUserRepo(tx).Delete(ctx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return errAccountMissing
		}
		return nil
	})
	if errors.Is(err, errAccountMissing) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListAll 用户左连地址，按姓氏升序；没有地址的用户地址字段留空。
func (s *AccountService) ListAll(ctx context.Context) ([]AccountView, error) {
	users, err := repo.NewUserRepo(s.db).ListWithAddress(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AccountView, 0, len(users))
	for i := range users {
		u := &users[i]
		a := u.Address
		if a == nil {
			a = &domain.Address{}
		}
		out = append(out, *mergeAccount(u, a))
	}
	return out, nil
}

func applyAddressPatch(a *domain.Address, in UpdateAddressInput) {
	if in.StreetAddress != nil {
		a.StreetAddress = *in.StreetAddress
	}
	if in.PostalCode != nil {
		a.PostalCode = *in.PostalCode
	}
	if in.City != nil {
		a.City = *in.City
	}
	if in.Phone != nil {
		a.Phone = *in.Phone
	}
	if in.Country != nil {
		a.Country = *in.Country
	}
}
