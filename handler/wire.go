package handler

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(Auth), "*"),
	wire.Struct(new(Feed), "*"),
	wire.Struct(new(Post), "*"),
	wire.Struct(new(User), "*"),
	wire.Struct(new(Handlers), "*"),
	NewEngine,
)
