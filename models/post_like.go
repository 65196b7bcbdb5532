package models

import "time"

// PostLike 点赞记录
// 对应表 likes
// 唯一键: user_id + post_id
type PostLike struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_like_user_post,priority:1" json:"user_id"`
	PostID    uint64    `gorm:"column:post_id;not null;uniqueIndex:uk_like_user_post,priority:2;index" json:"post_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (PostLike) TableName() string { return "likes" }
