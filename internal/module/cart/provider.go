package cart

import "github.com/google/wire"

// ProviderSet 购物车模块的构造函数
var ProviderSet = wire.NewSet(
	NewRepository,
	NewService,
	NewHandler,
)
