package cart

import (
	"Blackout/config"
	"Blackout/dao/cache"
	"Blackout/middleware"
	"Blackout/pkg/context"
	"Blackout/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler 购物车
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
	authorize := middleware.Auth(h.conf.Jwt, h.tokens)
	r.GET("/cart", authorize, context.WrapPage(h.Cart))
	r.GET("/add_to_cart/:id", authorize, context.WrapPage(h.Add))
	r.GET("/remove_from_cart/:id", authorize, context.WrapPage(h.Remove))
}

func (h *Handler) Cart(c *gin.Context) error {
	view, err := h.svc.View(c.Request.Context(), context.MustUserID(c))
	if err != nil {
		return err
	}
	context.Render(c, http.StatusOK, "cart.html", gin.H{"Title": "Cart", "Cart": view})
	return nil
}

func (h *Handler) Add(c *gin.Context) error {
	itemID, err := context.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Add(c.Request.Context(), context.MustUserID(c), itemID); err != nil {
		return err
	}
	context.RedirectWithFlash(c, "/", response.FlashSuccess, "Item added to cart!")
	return nil
}

func (h *Handler) Remove(c *gin.Context) error {
	itemID, err := context.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Remove(c.Request.Context(), context.MustUserID(c), itemID); err != nil {
		return err
	}
	c.Redirect(http.StatusFound, "/cart")
	return nil
}
