package handler

import (
	"Blackout/config"
	"Blackout/dao/cache"
	"Blackout/middleware"
	"Blackout/pkg/context"
	"Blackout/pkg/log"
	"Blackout/service"
	"Blackout/types"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Auth struct {
	Config      *config.Config
	Tokens      *cache.TokenStorage
	AuthService service.IAuthService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	guest := middleware.Guest(a.Config.Jwt, a.Tokens)
	authorize := middleware.Auth(a.Config.Jwt, a.Tokens)

	r.GET("/login", guest, context.WrapPage(a.LoginPage))
	r.POST("/login", guest, context.WrapPage(a.Login))
	r.GET("/signup", guest, context.WrapPage(a.SignupPage))
	r.POST("/signup", guest, context.WrapPage(a.Signup))
	r.GET("/logout", authorize, context.WrapPage(a.Logout))
}

func (a *Auth) LoginPage(c *gin.Context) error {
	context.Render(c, http.StatusOK, "login.html", gin.H{"Title": "Login"})
	return nil
}

// Login 邮箱密码登录
func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		return context.FormError(c, "login.html", gin.H{"Title": "Login"}, service.ErrLoginFailed)
	}

	user, err := a.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return context.FormError(c, "login.html", gin.H{"Title": "Login"}, err)
	}

	token, err := a.AuthService.IssueToken(user)
	if err != nil {
		return err
	}
	context.SetAuthCookie(c, a.Config.Jwt, token)
	c.Redirect(http.StatusFound, "/")
	return nil
}

func (a *Auth) SignupPage(c *gin.Context) error {
	context.Render(c, http.StatusOK, "signup.html", gin.H{"Title": "Sign up"})
	return nil
}

// Signup 注册后直接登录
func (a *Auth) Signup(c *gin.Context) error {
	var req types.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		return context.FormError(c, "signup.html", gin.H{"Title": "Sign up"}, service.ErrFieldsRequired)
	}

	user, err := a.AuthService.Signup(c.Request.Context(), &req)
	if err != nil {
		return context.FormError(c, "signup.html", gin.H{"Title": "Sign up"}, err)
	}
	log.L.Info("user signup", zap.Uint64("user_id", user.ID), zap.String("username", user.Username))

	token, err := a.AuthService.IssueToken(user)
	if err != nil {
		return err
	}
	context.SetAuthCookie(c, a.Config.Jwt, token)
	c.Redirect(http.StatusFound, "/")
	return nil
}

func (a *Auth) Logout(c *gin.Context) error {
	claims, _ := middleware.GetClaims(c)
	if err := a.AuthService.Logout(c.Request.Context(), claims); err != nil {
		log.L.Warn("revoke token", zap.Error(err))
	}
	context.ClearAuthCookie(c, a.Config.Jwt)
	c.Redirect(http.StatusFound, "/login")
	return nil
}
