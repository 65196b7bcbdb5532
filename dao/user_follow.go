package dao

import (
	"Blackout/models"
	"context"

	"gorm.io/gorm"
)

type UserFollowDAO struct {
	Repo[models.UserFollow]
}

func NewUserFollowDAO(db *gorm.DB) *UserFollowDAO {
	return &UserFollowDAO{Repo: NewRepo[models.UserFollow](db)}
}

// Toggle 切换关注状态，返回切换后是否关注中
func (d *UserFollowDAO) Toggle(ctx context.Context, followerID, followedID uint64) (bool, error) {
	return d.Repo.Toggle(ctx, &models.UserFollow{FollowerID: followerID, FollowedID: followedID},
		"follower_id = ? AND followed_id = ?", followerID, followedID)
}

func (d *UserFollowDAO) IsFollowing(ctx context.Context, followerID, followedID uint64) (bool, error) {
	return d.IsExist(ctx, "follower_id = ? AND followed_id = ?", followerID, followedID)
}

// FollowerCount 粉丝数
func (d *UserFollowDAO) FollowerCount(ctx context.Context, userID uint64) (int64, error) {
	return d.Count(ctx, "followed_id = ?", userID)
}

// FollowingCount 关注数
func (d *UserFollowDAO) FollowingCount(ctx context.Context, userID uint64) (int64, error) {
	return d.Count(ctx, "follower_id = ?", userID)
}
