package catalog

import (
	"context"

	"gorm.io/gorm"
)

// Repository 接口定义
type Repository interface {
	Create(ctx context.Context, items ...*ItemModel) error
	FindByID(ctx context.Context, id uint64) (*ItemModel, error)
	// List search 为空时返回全部，否则按标题、描述、分类模糊匹配
	List(ctx context.Context, search string) ([]*ItemModel, error)
	ListBySeller(ctx context.Context, userID uint64) ([]*ItemModel, error)
	Count(ctx context.Context) (int64, error)
}

// repository 具体实现
type repository struct {
	db *gorm.DB
}

// NewRepository 构造函数
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, items ...*ItemModel) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(items).Error
}

func (r *repository) FindByID(ctx context.Context, id uint64) (*ItemModel, error) {
	var item ItemModel
	if err := r.db.WithContext(ctx).Preload("Seller").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) List(ctx context.Context, search string) ([]*ItemModel, error) {
	tx := r.db.WithContext(ctx).Preload("Seller").Order("id DESC")
	if search != "" {
		like := "%" + search + "%"
		tx = tx.Where("title LIKE ? OR description LIKE ? OR category LIKE ?", like, like, like)
	}

	var items []*ItemModel
	err := tx.Find(&items).Error
	return items, err
}

func (r *repository) ListBySeller(ctx context.Context, userID uint64) ([]*ItemModel, error) {
	var items []*ItemModel
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id DESC").Find(&items).Error
	return items, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&ItemModel{}).Count(&n).Error
	return n, err
}
