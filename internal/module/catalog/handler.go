package catalog

import (
	"Blackout/config"
	"Blackout/dao/cache"
	"Blackout/middleware"
	"Blackout/pkg/context"
	"Blackout/pkg/log"
	"Blackout/pkg/response"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 商品浏览与发布
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
	identify := middleware.Identify(h.conf.Jwt, h.tokens)
	authorize := middleware.Auth(h.conf.Jwt, h.tokens)

	r.GET("/", identify, context.WrapPage(h.Home))
	r.GET("/contact", identify, context.WrapPage(h.ContactPage))
	r.POST("/contact", identify, context.WrapPage(h.Contact))

	r.GET("/add_item", authorize, context.WrapPage(h.AddPage))
	r.POST("/add_item", authorize, context.WrapPage(h.Add))
	r.GET("/dashboard", authorize, context.WrapPage(h.Dashboard))
}

// Home 首页，支持 ?search= 搜索
func (h *Handler) Home(c *gin.Context) error {
	search := c.Query("search")
	items, err := h.svc.List(c.Request.Context(), search)
	if err != nil {
		return err
	}
	context.Render(c, http.StatusOK, "index.html", gin.H{"Items": items, "Search": search})
	return nil
}

func (h *Handler) AddPage(c *gin.Context) error {
	context.Render(c, http.StatusOK, "add_item.html", gin.H{"Title": "Sell", "Categories": Categories})
	return nil
}

func (h *Handler) Add(c *gin.Context) error {
	var req AddItemRequest
	_ = c.ShouldBind(&req)
	image, _ := c.FormFile("image")

	if _, err := h.svc.Add(c.Request.Context(), context.MustUserID(c), &req, image); err != nil {
		return context.FormError(c, "add_item.html", gin.H{"Title": "Sell", "Categories": Categories}, err)
	}
	context.RedirectWithFlash(c, "/", response.FlashSuccess, "Item added successfully!")
	return nil
}

// Dashboard 我发布的商品
func (h *Handler) Dashboard(c *gin.Context) error {
	items, err := h.svc.Dashboard(c.Request.Context(), context.MustUserID(c))
	if err != nil {
		return err
	}
	context.Render(c, http.StatusOK, "dashboard.html", gin.H{"Title": "Dashboard", "Items": items})
	return nil
}

func (h *Handler) ContactPage(c *gin.Context) error {
	context.Render(c, http.StatusOK, "contact.html", gin.H{"Title": "Contact"})
	return nil
}

// Contact 通用联系表单，只记录日志
func (h *Handler) Contact(c *gin.Context) error {
	var req ContactRequest
	_ = c.ShouldBind(&req)
	log.L.Info("contact form",
		zap.String("name", strings.TrimSpace(req.Name)),
		zap.String("email", strings.TrimSpace(req.Email)),
		zap.Int("length", len(req.Message)),
	)
	context.RedirectWithFlash(c, "/", response.FlashSuccess, "Message sent successfully!")
	return nil
}
