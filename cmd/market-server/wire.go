//go:build wireinject
// +build wireinject

package main

import (
	"Blackout/config"
	"Blackout/dao/cache"
	"Blackout/internal/module"
	"Blackout/internal/module/inbox"
	"Blackout/pkg/client"
	"Blackout/pkg/database"
	"Blackout/pkg/mail"
	"Blackout/pkg/server"
	"Blackout/pkg/upload"
	"Blackout/web"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*module.Market, func(), error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		upload.NewStorage,
		upload.NewUploader,
		mail.NewSender,
		web.NewMarketTemplates,

		cache.ProviderSet,
		module.ProviderSet,

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(module.Market), "*"),
	)
	return nil, nil, nil
}

func InitWorker(cfg *config.Config) *inbox.Worker {
	wire.Build(mail.NewSender, inbox.NewWorker)
	return nil
}
