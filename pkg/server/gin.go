package server

import (
	"Blackout/config"
	"Blackout/middleware"
	"Blackout/pkg/context"
	"Blackout/pkg/log"
	"Blackout/pkg/response"
	"Blackout/web"
	stdctx "context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Router 各业务 Handler 自行注册路由
type Router interface {
	RegisterRouter(r gin.IRouter)
}

type AppProvider struct {
	Config *config.Config
	Engine *gin.Engine
	DB     *gorm.DB
}

// serverId 形如 192.168.1.10:5000，仅用于日志
func serverId(port int) string {
	ip, err := getLocalIP()
	if err != nil {
		ip = "127.0.0.1"
	}
	return fmt.Sprintf("%s:%d", ip, port)
}

func getLocalIP() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}
	for _, address := range addrs {
		// 排除回环地址
		if ipnet, ok := address.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String(), nil
			}
		}
	}
	return "", errors.New("no ip address found")
}

func NewGinEngine(conf *config.Config, tmpl *template.Template, routers ...Router) *gin.Engine {
	if !conf.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if tmpl != nil {
		r.SetHTMLTemplate(tmpl)
	}
	r.Use(middleware.GinZap(), response.ErrorMiddleware())
	r.Use(middleware.Prometheus(conf.App.Name))
	r.Use(middleware.BodyLimit(conf.Upload.MaxSize))

	r.Static("/static", conf.Upload.Root)
	r.StaticFS("/assets", web.Assets())
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	for _, router := range routers {
		router.RegisterRouter(r)
	}

	r.NoRoute(func(c *gin.Context) {
		if tmpl == nil {
			response.Abort(c, http.StatusNotFound, "Not found")
			return
		}
		context.Render(c, http.StatusNotFound, "error.html", gin.H{"Status": http.StatusNotFound, "Message": "Page not found"})
	})
	return r
}

func Run(ctx *cli.Context, app *AppProvider) error {
	eg, groupCtx := errgroup.WithContext(ctx.Context)
	c := make(chan os.Signal, 1)
	// 终止的信号 服务要停止了
	signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)

	sid := serverId(app.Config.Server.Http)
	log.L.Info("server starting", zap.String("serverId", sid),
		zap.String("app", app.Config.App.Name),
		zap.Int("port", app.Config.Server.Http),
		zap.String("env", app.Config.App.Env),
	)

	return run(c, eg, groupCtx, sid, app)
}

func run(c chan os.Signal, eg *errgroup.Group, ctx stdctx.Context, sid string, app *AppProvider) error {
	serv := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.Config.Server.Http),
		Handler:           app.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 启动 http 服务
	eg.Go(func() error {
		err := serv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		defer func() {
			log.L.Info("server stopping", zap.String("serverId", sid))

			// 等待中断信号以优雅地关闭服务器
			timeCtx, timeCancel := stdctx.WithTimeout(stdctx.Background(), 3*time.Second)
			defer timeCancel()

			if err := serv.Shutdown(timeCtx); err != nil {
				log.L.Info("server stopping", zap.String("serverId", sid), zap.Error(err))
			}
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c:
			return nil
		}
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, stdctx.Canceled) {
		log.L.Info("server stopping", zap.Error(err))
		return err
	}

	log.L.Info("server stopped", zap.String("serverId", sid))

	return nil
}
