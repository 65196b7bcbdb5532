package context

import (
	"Blackout/pkg/log"
	"Blackout/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID   = "user_id"
	CtxUserName = "user_name"
	CtxTokenID  = "token_id"
)

type HandlerFunc func(*gin.Context) error

// Wrap 接口类路由，错误输出为 JSON
func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			log.L.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
			response.Fail(c, http.StatusInternalServerError, "Internal server error")
		}
	}
}

// WrapPage 页面类路由，错误渲染 error.html
func WrapPage(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {
			if c.Writer.Written() {
				return
			}
			status, msg := http.StatusInternalServerError, "Internal server error"
			var be *response.BizError
			if errors.As(err, &be) {
				status, msg = be.Code, be.Msg
			} else {
				log.L.Error("page failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
			}
			Render(c, status, "error.html", gin.H{"Status": status, "Message": msg})
		}
	}
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id 不存在")
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, errors.New("user_id 类型错误")
	}

	return uid, nil
}

// MustUserID 仅用于已挂载 Auth 中间件的路由
func MustUserID(c *gin.Context) uint64 {
	uid, _ := GetUserID(c)
	return uid
}

func GetUserName(c *gin.Context) string {
	return c.GetString(CtxUserName)
}
