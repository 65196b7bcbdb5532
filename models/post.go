package models

import "time"

// Post 带价格的图片帖子，价格单位 KES
type Post struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Image       string    `gorm:"column:image;size:100;not null" json:"image"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	Price       int64     `gorm:"column:price;not null" json:"price"`
	CreatedAt   time.Time `gorm:"column:created_at;index" json:"created_at"`
	UserID      uint64    `gorm:"column:user_id;not null;index" json:"user_id"`

	Author *Users `gorm:"foreignKey:UserID" json:"author,omitempty"`
}

func (Post) TableName() string { return "posts" }

// PostCount 按帖子聚合的计数
type PostCount struct {
	ID    uint64 `gorm:"column:id"`
	Total int64  `gorm:"column:total"`
}
