package main

import (
	"Blackout/config"
	"Blackout/models"
	"Blackout/pkg/database"
	"Blackout/pkg/log"
	"Blackout/pkg/server"
	"fmt"
	"os"

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
	return fmt.Sprintf("configs/social.%s.yaml", env)
}

// loadConfig 读取配置并给日志打上应用名
func loadConfig(ctx *cli.Context) *config.Config {
	cfg := config.New(configPath(ctx))
	log.SetApp(cfg.App.Name, cfg.Debug())
	return cfg
}

func main() {
	cliApp := &cli.App{
		Name:  "social-server",
		Usage: "photo feed marketplace",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "config file path", EnvVars: []string{"CONFIG_FILE"}},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					cfg := loadConfig(ctx)
					appProvider, err := InitServer(cfg)
					if err != nil {
						return err
					}

					if err := database.Migrate(appProvider.DB, models.All()...); err != nil {
						return err
					}
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create database tables",
				Action: func(ctx *cli.Context) error {
					cfg := loadConfig(ctx)
					if err := database.Migrate(database.NewDB(cfg), models.All()...); err != nil {
						return err
					}
					log.L.Info("migrate done", zap.String("driver", cfg.Database.Driver))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
