package dao

import (
	"Blackout/models"
	"context"

	"gorm.io/gorm"
)

type PostLikeDAO struct {
	Repo[models.PostLike]
}

func NewPostLikeDAO(db *gorm.DB) *PostLikeDAO {
	return &PostLikeDAO{Repo: NewRepo[models.PostLike](db)}
}

// Toggle 切换点赞状态，返回切换后是否已点赞
func (d *PostLikeDAO) Toggle(ctx context.Context, userID, postID uint64) (bool, error) {
	return d.Repo.Toggle(ctx, &models.PostLike{UserID: userID, PostID: postID},
		"user_id = ? AND post_id = ?", userID, postID)
}

func (d *PostLikeDAO) CountByPost(ctx context.Context, postID uint64) (int64, error) {
	return d.Count(ctx, "post_id = ?", postID)
}

func (d *PostLikeDAO) CountByPosts(ctx context.Context, postIDs []uint64) (map[uint64]int64, error) {
	return d.CountIn(ctx, "post_id", postIDs)
}

// LikedPosts 用户在给定帖子中点过赞的集合
func (d *PostLikeDAO) LikedPosts(ctx context.Context, userID uint64, postIDs []uint64) (map[uint64]bool, error) {
	res := make(map[uint64]bool)
	if len(postIDs) == 0 {
		return res, nil
	}

	var ids []uint64
	err := d.Db.WithContext(ctx).Model(&models.PostLike{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		res[id] = true
	}
	return res, nil
}
