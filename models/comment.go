package models

import "time"

type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Text      string    `gorm:"column:text;type:text;not null" json:"text"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UserID    uint64    `gorm:"column:user_id;not null" json:"user_id"`
	PostID    uint64    `gorm:"column:post_id;not null;index" json:"post_id"`

	Author *Users `gorm:"foreignKey:UserID" json:"author,omitempty"`
}

func (Comment) TableName() string { return "comments" }
