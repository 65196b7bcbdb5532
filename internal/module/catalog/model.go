package catalog

import (
	"Blackout/internal/module/account"
	"time"
)

// ItemModel 在售服务 / 商品
type ItemModel struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;size:100;not null" json:"title"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	Price       float64   `gorm:"column:price;not null" json:"price"`
	Category    string    `gorm:"column:category;size:50;not null;index" json:"category"`
	Image       string    `gorm:"column:image;size:100" json:"image"`
	UserID      uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`

	Seller *account.UserModel `gorm:"foreignKey:UserID" json:"seller,omitempty"`
}

func (ItemModel) TableName() string {
	return "items"
}
