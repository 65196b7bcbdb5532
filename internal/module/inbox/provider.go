package inbox

import "github.com/google/wire"

// ProviderSet 站内信模块的构造函数
var ProviderSet = wire.NewSet(
	NewRepository,
	NewNotifier,
	NewService,
	NewHandler,
)
