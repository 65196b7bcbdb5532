package models

import (
	"time"
)

// UserFollow 关注关系，有向边
// 唯一键: follower_id + followed_id
type UserFollow struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FollowerID uint64    `gorm:"column:follower_id;not null;uniqueIndex:uk_follow,priority:1" json:"follower_id"`       // 关注人
	FollowedID uint64    `gorm:"column:followed_id;not null;uniqueIndex:uk_follow,priority:2;index" json:"followed_id"` // 被关注人
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (UserFollow) TableName() string {
	return "follows"
}
