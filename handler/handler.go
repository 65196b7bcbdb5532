package handler

import (
	"Blackout/config"
	"Blackout/pkg/server"
	"html/template"

	"github.com/gin-gonic/gin"
)

// Handlers 社交站全部路由
type Handlers struct {
	Auth *Auth
	Feed *Feed
	Post *Post
	User *User
}

// NewEngine 注册全部路由
func NewEngine(conf *config.Config, tmpl *template.Template, h *Handlers) *gin.Engine {
	return server.NewGinEngine(conf, tmpl, h.Auth, h.Feed, h.Post, h.User)
}
