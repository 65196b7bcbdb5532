package account

import "github.com/google/wire"

// ProviderSet 账号模块的构造函数
var ProviderSet = wire.NewSet(
	NewRepository,
	NewService,
	NewHandler,
)
