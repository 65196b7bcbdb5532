package catalog

import "github.com/google/wire"

// ProviderSet 商品模块的构造函数
var ProviderSet = wire.NewSet(
	NewRepository,
	NewService,
	NewHandler,
)
