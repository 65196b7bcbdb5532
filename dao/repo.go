package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo 单表通用操作
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) Create(ctx context.Context, data *T) error {
	return r.Db.WithContext(ctx).Create(data).Error
}

// FindById 不存在时返回 gorm.ErrRecordNotFound
func (r *Repo[T]) FindById(ctx context.Context, id uint64) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByWhere 不存在时返回 gorm.ErrRecordNotFound
func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var n int64
	if err := r.Db.WithContext(ctx).Model(new(T)).Where(where, args...).Limit(1).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Repo[T]) Count(ctx context.Context, where string, args ...any) (int64, error) {
	var n int64
	err := r.Db.WithContext(ctx).Model(new(T)).Where(where, args...).Count(&n).Error
	return n, err
}

func (r *Repo[T]) UpdateById(ctx context.Context, id uint64, data map[string]any) error {
	if len(data) == 0 {
		return nil
	}
	return r.Db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(data).Error
}

func (r *Repo[T]) Delete(ctx context.Context, where string, args ...any) (int64, error) {
	res := r.Db.WithContext(ctx).Where(where, args...).Delete(new(T))
	return res.RowsAffected, res.Error
}

// CountIn 按 column 分组计数，column 只能是内部常量
func (r *Repo[T]) CountIn(ctx context.Context, column string, ids []uint64) (map[uint64]int64, error) {
	res := make(map[uint64]int64, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	var rows []struct {
		ID    uint64
		Total int64
	}
	err := r.Db.WithContext(ctx).Model(new(T)).
		Select(column+" AS id, COUNT(*) AS total").
		Where(column+" IN ?", ids).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		res[row.ID] = row.Total
	}
	return res, nil
}

// Toggle 存在则删除返回 false，不存在则写入 row 返回 true
// 并发写入撞唯一键时视为已存在
func (r *Repo[T]) Toggle(ctx context.Context, row *T, where string, args ...any) (bool, error) {
	var on bool
	err := r.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where(where, args...).Delete(new(T))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			on = false
			return nil
		}

		err := tx.Create(row).Error
		if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		on = true
		return nil
	})
	return on, err
}
