package inbox

import (
	"Blackout/config"
	"Blackout/dao/cache"
	"Blackout/internal/module/catalog"
	"Blackout/middleware"
	"Blackout/pkg/context"
	"Blackout/pkg/log"
	"Blackout/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 站内信
type Handler struct {
	conf   *config.Config
	tokens *cache.TokenStorage
	svc    Service
	items  catalog.Service
}

// NewHandler 构造函数
func NewHandler(conf *config.Config, tokens *cache.TokenStorage, svc Service, items catalog.Service) *Handler {
	return &Handler{conf: conf, tokens: tokens, svc: svc, items: items}
}

// RegisterRouter 注册路由
func (h *Handler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.conf.Jwt, h.tokens)

	r.GET("/messages", authorize, context.WrapPage(h.Messages))
	r.POST("/mark_message_read/:id", authorize, context.Wrap(h.MarkRead))
	r.GET("/contact_seller/:id", authorize, context.WrapPage(h.ContactSellerPage))
	r.POST("/contact_seller/:id", authorize, context.WrapPage(h.ContactSeller))

	api := r.Group("/api", authorize)
	api.GET("/conversations", context.Wrap(h.Conversations))
	api.GET("/conversation/:id", context.Wrap(h.Thread))
	api.POST("/mark_conversation_read/:id", context.Wrap(h.MarkConversationRead))
	api.POST("/send_message/:id", context.Wrap(h.Send))
	api.GET("/unread_count", context.Wrap(h.UnreadCount))
}

// Messages 会话页，数据由前端调用接口加载
func (h *Handler) Messages(c *gin.Context) error {
	context.Render(c, http.StatusOK, "messages.html", gin.H{"Title": "Messages"})
	return nil
}

func (h *Handler) MarkRead(c *gin.Context) error {
	id, err := context.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.MarkRead(c.Request.Context(), id, context.MustUserID(c)); err != nil {
		return err
	}
	c.Status(http.StatusNoContent)
	return nil
}

func (h *Handler) Conversations(c *gin.Context) error {
	list, err := h.svc.Conversations(c.Request.Context(), context.MustUserID(c))
	if err != nil {
		return err
	}
	response.Success(c, &ConversationsResponse{Conversations: list})
	return nil
}

func (h *Handler) Thread(c *gin.Context) error {
	otherID, err := context.ParseID(c, "id")
	if err != nil {
		return err
	}
	msgs, err := h.svc.Thread(c.Request.Context(), context.MustUserID(c), otherID)
	if err != nil {
		return err
	}
	response.Success(c, &ThreadResponse{Messages: msgs})
	return nil
}

func (h *Handler) MarkConversationRead(c *gin.Context) error {
	otherID, err := context.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.MarkConversationRead(c.Request.Context(), context.MustUserID(c), otherID); err != nil {
		return err
	}
	response.Success(c, &SuccessResponse{Success: true})
	return nil
}

func (h *Handler) Send(c *gin.Context) error {
	receiverID, err := context.ParseID(c, "id")
	if err != nil {
		return err
	}

	// 请求体非法按空消息处理
	var req SendMessageRequest
	_ = c.ShouldBindJSON(&req)

	if _, err := h.svc.Send(c.Request.Context(), context.MustUserID(c), receiverID, req.Message); err != nil {
		return err
	}
	response.Success(c, &SuccessResponse{Success: true})
	return nil
}

func (h *Handler) UnreadCount(c *gin.Context) error {
	n, err := h.svc.UnreadTotal(c.Request.Context(), context.MustUserID(c))
	if err != nil {
		return err
	}
	response.Success(c, &UnreadResponse{Unread: n})
	return nil
}

func (h *Handler) ContactSellerPage(c *gin.Context) error {
	itemID, err := context.ParseID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.items.Get(c.Request.Context(), itemID)
	if err != nil {
		return err
	}
	context.Render(c, http.StatusOK, "contact_seller.html", gin.H{"Title": "Contact seller", "Item": item})
	return nil
}

func (h *Handler) ContactSeller(c *gin.Context) error {
	itemID, err := context.ParseID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.items.Get(c.Request.Context(), itemID)
	if err != nil {
		return err
	}

	var req ContactSellerRequest
	_ = c.ShouldBind(&req)

	m, err := h.svc.ContactSeller(c.Request.Context(), context.MustUserID(c), itemID, &req)
	if err != nil {
		return context.FormError(c, "contact_seller.html", gin.H{"Title": "Contact seller", "Item": item}, err)
	}
	log.L.Info("contact seller", zap.Uint64("message_id", m.ID), zap.Uint64("item_id", itemID))
	context.RedirectWithFlash(c, "/messages", response.FlashSuccess,
		"Message sent successfully! Check your Messages page to continue the conversation.")
	return nil
}
