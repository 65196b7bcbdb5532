package context

import (
	"Blackout/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Render 渲染模板，统一注入提示消息与当前登录用户
func Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = response.Flashes(c)
	if uid, err := GetUserID(c); err == nil {
		data["CurrentUserID"] = uid
		data["CurrentUserName"] = GetUserName(c)
	}
	c.HTML(status, name, data)
}

// RedirectWithFlash 提示后跳转（POST/Redirect/GET）
func RedirectWithFlash(c *gin.Context, location, category, message string) {
	response.Flash(c, category, message)
	c.Redirect(http.StatusFound, location)
}
