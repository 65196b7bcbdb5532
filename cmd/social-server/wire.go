//go:build wireinject
// +build wireinject

package main

import (
	"Blackout/config"
	"Blackout/dao"
	"Blackout/dao/cache"
	"Blackout/handler"
	"Blackout/pkg/client"
	"Blackout/pkg/database"
	"Blackout/pkg/server"
	"Blackout/pkg/upload"
	"Blackout/service"
	"Blackout/web"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		upload.NewStorage,
		upload.NewUploader,
		web.NewSocialTemplates,

		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,
		handler.ProviderSet,

		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil, nil
}
