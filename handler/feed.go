package handler

import (
	"Blackout/config"
	"Blackout/dao/cache"
	"Blackout/middleware"
	"Blackout/pkg/context"
	"Blackout/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Feed struct {
	Config      *config.Config
	Tokens      *cache.TokenStorage
	PostService service.IPostService
}

func (f *Feed) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(f.Config.Jwt, f.Tokens)
	r.GET("/", authorize, context.WrapPage(f.Home))
	r.GET("/explore", authorize, context.WrapPage(f.Explore))
}

// Home 关注流
func (f *Feed) Home(c *gin.Context) error {
	posts, err := f.PostService.Feed(c.Request.Context(), context.MustUserID(c))
	if err != nil {
		return err
	}
	context.Render(c, http.StatusOK, "feed.html", gin.H{"Title": "Feed", "Posts": posts})
	return nil
}

// Explore 发现页，全部帖子
func (f *Feed) Explore(c *gin.Context) error {
	posts, err := f.PostService.Explore(c.Request.Context(), context.MustUserID(c))
	if err != nil {
		return err
	}
	context.Render(c, http.StatusOK, "feed.html", gin.H{"Title": "Explore", "Posts": posts, "Explore": true})
	return nil
}
