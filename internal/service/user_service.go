package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"go-magmart-api/internal/domain"
	"go-magmart-api/internal/repo"
	"go-magmart-api/pkg/utils"
)

type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// UpdateUserInput 指针字段为 nil 表示“未提供，保留原值”。
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	UserImage *string
	Email     *string
	Password  *string
	Role      *string
}

func (in UpdateUserInput) Empty() bool {
	return in.FirstName == nil && in.LastName == nil && in.UserImage == nil &&
		in.Email == nil && in.Password == nil && in.Role == nil
}

type UserService struct {
	users *repo.UserRepo
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{users: repo.NewUserRepo(db)}
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	u := domain.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  utils.HashPassword(in.Password),
		Role:      "customer",
	}
	if err := s.users.Create(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// List 按创建时间排序；sortOrder 非 "desc" 一律按升序。
func (s *UserService) List(ctx context.Context, sortOrder string) ([]domain.User, error) {
	desc := strings.EqualFold(strings.TrimSpace(sortOrder), "desc")
	return s.users.List(ctx, desc)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindByEmail(ctx, email)
}

func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.users.EmailExists(ctx, email)
}

// Update 加载现有行，仅覆盖提供的字段后整行写回。未找到返回 (nil, nil)。
func (s *UserService) Update(ctx context.Context, id int64, in UpdateUserInput) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}
	applyUserPatch(u, in)
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) (bool, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil || u == nil {
		return false, err
	}
	n, err := s.users.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func applyUserPatch(u *domain.User, in UpdateUserInput) {
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.UserImage != nil {
		u.UserImage = in.UserImage
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Password != nil {
		u.Password = utils.HashPassword(*in.Password)
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
}
