package cart

import "Blackout/internal/module/catalog"

type Line struct {
	Item     *catalog.ItemModel
	Quantity int
	Subtotal float64
}

// View 购物车页面数据
type View struct {
	Lines []*Line
	Total float64
}
