package dao

import (
	"Blackout/models"
	"context"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{Repo: NewRepo[models.Comment](db)}
}

// ListByPost 按时间正序
func (d *CommentDAO) ListByPost(ctx context.Context, postID uint64) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

func (d *CommentDAO) CountByPosts(ctx context.Context, postIDs []uint64) (map[uint64]int64, error) {
	return d.CountIn(ctx, "post_id", postIDs)
}
