package cart

import (
	"Blackout/internal/module/catalog"
	"time"
)

// CartItemModel 购物车行，同一用户同一商品只有一行
type CartItemModel struct {
	ID       uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID   uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_cart_user_item,priority:1" json:"user_id"`
	ItemID   uint64    `gorm:"column:item_id;not null;uniqueIndex:uk_cart_user_item,priority:2" json:"item_id"`
	Quantity int       `gorm:"column:quantity;not null;default:1" json:"quantity"`
	AddedAt  time.Time `gorm:"column:added_at;autoCreateTime" json:"added_at"`

	Item *catalog.ItemModel `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

func (CartItemModel) TableName() string {
	return "cart_items"
}
