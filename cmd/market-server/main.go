package main

import (
	"Blackout/config"
	"Blackout/internal/module"
	"Blackout/pkg/database"
	"Blackout/pkg/log"
	"Blackout/pkg/server"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func configPath(ctx *cli.Context) string {
	if p := ctx.String("config"); p != "" {
		return p
	}
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	return fmt.Sprintf("configs/market.%s.yaml", env)
}

// loadConfig 读取配置并给日志打上应用名
func loadConfig(ctx *cli.Context) *config.Config {
	cfg := config.New(configPath(ctx))
	log.SetApp(cfg.App.Name, cfg.Debug())
	return cfg
}

func main() {
	cliApp := &cli.App{
		Name:  "market-server",
		Usage: "services marketplace with buyer seller messaging",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "config file path", EnvVars: []string{"CONFIG_FILE"}},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					cfg := loadConfig(ctx)
					market, cleanup, err := InitServer(cfg)
					if err != nil {
						return err
					}
					defer cleanup()

					if err := database.Migrate(market.App.DB, module.Models()...); err != nil {
						return err
					}
					if err := market.Catalog.Seed(ctx.Context); err != nil {
						log.L.Warn("seed items", zap.Error(err))
					}
					return server.Run(ctx, market.App)
				},
			},
			{
				Name:  "migrate",
				Usage: "create database tables",
				Action: func(ctx *cli.Context) error {
					cfg := loadConfig(ctx)
					if err := database.Migrate(database.NewDB(cfg), module.Models()...); err != nil {
						return err
					}
					log.L.Info("migrate done", zap.String("driver", cfg.Database.Driver))
					return nil
				},
			},
			{
				Name:  "notify-worker",
				Usage: "consume seller inquiries from rocketmq and send mail",
				Action: func(ctx *cli.Context) error {
					cfg := loadConfig(ctx)
					c, stop := signal.NotifyContext(ctx.Context, syscall.SIGINT, syscall.SIGTERM)
					defer stop()
					return InitWorker(cfg).Run(c)
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
