package dao

import (
	"Blackout/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByEmail 邮箱查询
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}

func (u *Users) FindByUsername(ctx context.Context, username string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

// IsUsernameTaken 用户名是否被其他用户占用，excludeID 为 0 时不排除
func (u *Users) IsUsernameTaken(ctx context.Context, username string, excludeID uint64) bool {
	exist, _ := u.Repo.IsExist(ctx, "username = ? AND id <> ?", username, excludeID)
	return exist
}

func (u *Users) IsEmailExist(ctx context.Context, email string) bool {
	exist, _ := u.Repo.IsExist(ctx, "email = ?", email)
	return exist
}

func (u *Users) Update(ctx context.Context, userID uint64, updates map[string]any) error {
	if err := u.Repo.UpdateById(ctx, userID, updates); err != nil {
		return fmt.Errorf("dao.User.Update error: %w", err)
	}
	return nil
}
