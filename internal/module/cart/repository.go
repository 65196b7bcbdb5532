package cart

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository 接口定义
type Repository interface {
	// Add 已存在则数量加一
	Add(ctx context.Context, userID, itemID uint64) error
	Remove(ctx context.Context, userID, itemID uint64) error
	// ListByUser 带商品信息，商品已删除的行被忽略
	ListByUser(ctx context.Context, userID uint64) ([]*CartItemModel, error)
}

// repository 具体实现
type repository struct {
	db *gorm.DB
}

// NewRepository 构造函数
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Add(ctx context.Context, userID, itemID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		incr := func() *gorm.DB {
			return tx.Model(&CartItemModel{}).
				Where("user_id = ? AND item_id = ?", userID, itemID).
				Update("quantity", gorm.Expr("quantity + ?", 1))
		}

		res := incr()
		if res.Error != nil || res.RowsAffected > 0 {
			return res.Error
		}

		err := tx.Create(&CartItemModel{UserID: userID, ItemID: itemID, Quantity: 1}).Error
		// 并发插入撞唯一键，改为自增
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return incr().Error
		}
		return err
	})
}

func (r *repository) Remove(ctx context.Context, userID, itemID uint64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&CartItemModel{}).Error
}

func (r *repository) ListByUser(ctx context.Context, userID uint64) ([]*CartItemModel, error) {
	var rows []*CartItemModel
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("user_id = ?", userID).
		Order("added_at ASC, id ASC").
		Find(&rows).Error
	return rows, err
}
