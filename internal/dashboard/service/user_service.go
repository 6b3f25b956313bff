package service

import (
	"context"
	"fmt"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/repository"
	"github.com/google/uuid"
)

// UserService 用户管理服务
type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List 查询全部用户
func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.userRepo.FindAll(ctx)
}

// Save 新增或整条替换用户，同ID覆盖
func (s *UserService) Save(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if user.Role != entity.RoleDirector && user.Role != entity.RolePM {
		return nil, fmt.Errorf("invalid role: %s", user.Role)
	}
	if user.ID == "" {
		user.ID = uuid.New().String()[:32]
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// Delete 删除用户
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}
