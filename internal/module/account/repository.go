package account

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// 示例商品的持有账号，不可登录
const (
	systemEmail = "marketplace@blackout.local"
	systemName  = "BLACKOUT Marketplace"
)

// Repository 接口定义
type Repository interface {
	Create(ctx context.Context, u *UserModel) error
	FindByID(ctx context.Context, id uint64) (*UserModel, error)
	FindByEmail(ctx context.Context, email string) (*UserModel, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// SystemSeller 取系统卖家，不存在时创建
	SystemSeller(ctx context.Context) (*UserModel, error)
}

// repository 具体实现
type repository struct {
	db *gorm.DB
}

// NewRepository 构造函数
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *UserModel) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id uint64) (*UserModel, error) {
	var u UserModel
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*UserModel, error) {
	var u UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&UserModel{}).Where("email = ?", email).Count(&n).Error
	return n > 0, err
}

func (r *repository) SystemSeller(ctx context.Context) (*UserModel, error) {
	u := &UserModel{Name: systemName, Email: systemEmail, Password: "!", IsAdmin: true}
	err := r.db.WithContext(ctx).Where("email = ?", systemEmail).FirstOrCreate(u).Error
	// 并发初始化时另一方已写入
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return r.FindByEmail(ctx, systemEmail)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
