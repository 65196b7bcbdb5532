package account

import (
	"Blackout/config"
	"Blackout/dao/cache"
	"Blackout/middleware"
	"Blackout/pkg/context"
	"Blackout/pkg/log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 登录注册
type Handler struct {
	conf   *config.Config
	tokens *cache.TokenStorage
	svc    Service
}

// NewHandler 构造函数
func NewHandler(conf *config.Config, tokens *cache.TokenStorage, svc Service) *Handler {
	return &Handler{conf: conf, tokens: tokens, svc: svc}
}

// RegisterRouter 注册路由
func (h *Handler) RegisterRouter(r gin.IRouter) {
	guest := middleware.Guest(h.conf.Jwt, h.tokens)
	r.GET("/login", guest, context.WrapPage(h.LoginPage))
	r.POST("/login", guest, context.WrapPage(h.Login))
	r.GET("/signup", guest, context.WrapPage(h.SignupPage))
	r.POST("/signup", guest, context.WrapPage(h.Signup))
	r.GET("/logout", middleware.Auth(h.conf.Jwt, h.tokens), context.WrapPage(h.Logout))
}

func (h *Handler) LoginPage(c *gin.Context) error {
	context.Render(c, http.StatusOK, "login.html", gin.H{"Title": "Login"})
	return nil
}

func (h *Handler) Login(c *gin.Context) error {
	var req LoginRequest
	_ = c.ShouldBind(&req)

	u, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		return context.FormError(c, "login.html", gin.H{"Title": "Login"}, err)
	}
	return h.signIn(c, u)
}

func (h *Handler) SignupPage(c *gin.Context) error {
	context.Render(c, http.StatusOK, "signup.html", gin.H{"Title": "Sign up"})
	return nil
}

// Signup 注册后直接登录
func (h *Handler) Signup(c *gin.Context) error {
	var req SignupRequest
	_ = c.ShouldBind(&req)

	u, err := h.svc.Signup(c.Request.Context(), &req)
	if err != nil {
		return context.FormError(c, "signup.html", gin.H{"Title": "Sign up"}, err)
	}
	log.L.Info("user signup", zap.Uint64("user_id", u.ID))
	return h.signIn(c, u)
}

// Logout 退出后回首页
func (h *Handler) Logout(c *gin.Context) error {
	claims, _ := middleware.GetClaims(c)
	if err := h.svc.Logout(c.Request.Context(), claims); err != nil {
		log.L.Warn("revoke token", zap.Error(err))
	}
	context.ClearAuthCookie(c, h.conf.Jwt)
	c.Redirect(http.StatusFound, "/")
	return nil
}

func (h *Handler) signIn(c *gin.Context, u *UserModel) error {
	token, err := h.svc.IssueToken(u)
	if err != nil {
		return err
	}
	context.SetAuthCookie(c, h.conf.Jwt, token)
	c.Redirect(http.StatusFound, "/")
	return nil
}
