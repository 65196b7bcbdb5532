package response

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	flashCookie = "_flash"
	flashKey    = "_flash"

	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashInfo    = "info"
)

type FlashMessage struct {
	Category string `json:"c"`
	Message  string `json:"m"`
}

// Flash 记录一条一次性提示，下一次渲染页面时展示
func Flash(c *gin.Context, category, message string) {
	msgs := append(pending(c), FlashMessage{Category: category, Message: message})
	c.Set(flashKey, msgs)

	raw, _ := json.Marshal(msgs)
	c.SetCookie(flashCookie, base64.RawURLEncoding.EncodeToString(raw), 0, "/", "", false, true)
}

// Flashes 取出并清空提示，本次请求写过或带来的 cookie 一并作废
func Flashes(c *gin.Context) []FlashMessage {
	msgs := pending(c)
	c.Set(flashKey, []FlashMessage{})

	_, err := c.Cookie(flashCookie)
	if dropFlashCookie(c) || err == nil {
		c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	}
	return msgs
}

// dropFlashCookie 移除响应里尚未发出的 _flash cookie
func dropFlashCookie(c *gin.Context) bool {
	header := c.Writer.Header()
	var kept []string
	dropped := false
	for _, v := range header.Values("Set-Cookie") {
		if strings.HasPrefix(v, flashCookie+"=") {
			dropped = true
			continue
		}
		kept = append(kept, v)
	}
	if dropped {
		header.Del("Set-Cookie")
		for _, v := range kept {
			header.Add("Set-Cookie", v)
		}
	}
	return dropped
}

func pending(c *gin.Context) []FlashMessage {
	if v, ok := c.Get(flashKey); ok {
		if msgs, ok := v.([]FlashMessage); ok {
			return msgs
		}
	}

	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var msgs []FlashMessage
	if json.Unmarshal(decoded, &msgs) != nil {
		return nil
	}
	return msgs
}
