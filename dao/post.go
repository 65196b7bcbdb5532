package dao

import (
	"Blackout/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

func (d *PostDAO) newest(ctx context.Context) *gorm.DB {
	return d.Db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC, id DESC")
}

// Feed 自己和已关注用户的帖子，按发布时间倒序
func (d *PostDAO) Feed(ctx context.Context, userID uint64) ([]*models.Post, error) {
	following := d.Db.WithContext(ctx).Model(&models.UserFollow{}).
		Select("followed_id").
		Where("follower_id = ?", userID)

	var posts []*models.Post
	err := d.newest(ctx).
		Where("user_id = ? OR user_id IN (?)", userID, following).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("dao.Post.Feed error: %w", err)
	}
	return posts, nil
}

// Explore 全部帖子
func (d *PostDAO) Explore(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.newest(ctx).Find(&posts).Error
	return posts, err
}

func (d *PostDAO) ListByUser(ctx context.Context, userID uint64) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.newest(ctx).Where("user_id = ?", userID).Find(&posts).Error
	return posts, err
}

// FindWithAuthor 不存在时返回 gorm.ErrRecordNotFound
func (d *PostDAO) FindWithAuthor(ctx context.Context, id uint64) (*models.Post, error) {
	var post models.Post
	if err := d.Db.WithContext(ctx).Preload("Author").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// DeleteWithChildren 同一事务内删除帖子及其点赞、评论
func (d *PostDAO) DeleteWithChildren(ctx context.Context, id uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
