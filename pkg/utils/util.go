package utils

import (
	"bytes"
	"errors"
	"fmt"
	"runtime"
	"unicode/utf8"

	"github.com/speps/go-hashids/v2"
)

var ErrBadHashID = errors.New("invalid hash id")

func PanicTrace(err interface{}) string {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%v\n", err)
	for i := 2; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fmt.Fprintf(buf, "%s:%d (0x%x)\n", file, line, pc)
	}
	return buf.String()
}

func newHashID(salt string, minLength int) (*hashids.HashID, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = minLength
	return hashids.NewWithData(hd)
}

// GenHashID 数字 ID 转短链编码
func GenHashID(salt string, minLength int, id uint64) string {
	h, err := newHashID(salt, minLength)
	if err != nil {
		return ""
	}
	e, _ := h.EncodeInt64([]int64{int64(id)})
	return e
}

// DecodeHashID 短链编码还原 ID
func DecodeHashID(salt string, minLength int, code string) (uint64, error) {
	h, err := newHashID(salt, minLength)
	if err != nil {
		return 0, err
	}
	ids, err := h.DecodeInt64WithError(code)
	if err != nil || len(ids) != 1 || ids[0] <= 0 {
		return 0, ErrBadHashID
	}
	return uint64(ids[0]), nil
}

// Truncate 按字符截断，超出部分以 ... 结尾
func Truncate(content string, maxLen int) string {
	if utf8.RuneCountInString(content) <= maxLen {
		return content
	}
	runes := []rune(content)
	return string(runes[:maxLen]) + "..."
}
