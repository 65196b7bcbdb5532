package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 接口失败时的统一结构
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Success 直接输出业务数据
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Fail(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, Response{
		Success: false,
		Error:   msg,
	})
}
