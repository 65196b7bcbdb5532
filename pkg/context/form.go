package context

import (
	"Blackout/config"
	"Blackout/pkg/response"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseID 路径中的数字 ID，非法时按 404 处理
func ParseID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusNotFound, "Not found")
	}
	return id, nil
}

// FormError 业务错误提示后回显表单页，其他错误原样返回交给 WrapPage
func FormError(c *gin.Context, name string, data gin.H, err error) error {
	var be *response.BizError
	if !errors.As(err, &be) {
		return err
	}
	response.Flash(c, response.FlashDanger, be.Msg)
	Render(c, be.Code, name, data)
	return nil
}

// SetAuthCookie 写入登录 cookie
func SetAuthCookie(c *gin.Context, conf *config.Jwt, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(conf.CookieName, token, int(conf.ExpiresIn), "/", "", false, true)
}

func ClearAuthCookie(c *gin.Context, conf *config.Jwt) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(conf.CookieName, "", -1, "/", "", false, true)
}
