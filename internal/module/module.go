package module

import (
	"Blackout/config"
	"Blackout/internal/module/account"
	"Blackout/internal/module/cart"
	"Blackout/internal/module/catalog"
	"Blackout/internal/module/inbox"
	"Blackout/pkg/server"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
)

// ProviderSet 市场站全部模块
var ProviderSet = wire.NewSet(
	account.ProviderSet,
	catalog.ProviderSet,
	cart.ProviderSet,
	inbox.ProviderSet,
	wire.Struct(new(Handlers), "*"),
	NewEngine,
)

// Handlers 市场站全部路由
type Handlers struct {
	Account *account.Handler
	Catalog *catalog.Handler
	Cart    *cart.Handler
	Inbox   *inbox.Handler
}

// Market 服务进程依赖
type Market struct {
	App     *server.AppProvider
	Catalog catalog.Service
}

func NewEngine(conf *config.Config, tmpl *template.Template, h *Handlers) *gin.Engine {
	return server.NewGinEngine(conf, tmpl, h.Account, h.Catalog, h.Cart, h.Inbox)
}

// Models 需要迁移的表
func Models() []any {
	return []any{
		&account.UserModel{},
		&catalog.ItemModel{},
		&cart.CartItemModel{},
		&inbox.MessageModel{},
	}
}
