package upload

import (
	"Blackout/config"
	"Blackout/pkg/snowflake"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"regexp"
	"strings"

	_ "golang.org/x/image/webp"
)

var (
	ErrMissingImage  = errors.New("missing image")
	ErrInvalidImage  = errors.New("invalid image file")
	ErrImageTooLarge = errors.New("image too large")
)

var allowedFormats = map[string]string{
	"jpeg": ".jpg",
	"png":  ".png",
	"gif":  ".gif",
	"webp": ".webp",
}

type Uploader struct {
	Storage Storage
	MaxSize int64
}

func NewUploader(conf *config.Config, storage Storage) *Uploader {
	return &Uploader{Storage: storage, MaxSize: conf.Upload.MaxSize}
}

// SaveImage 校验图片格式后写入 folder，返回保存的文件名
func (u *Uploader) SaveImage(ctx context.Context, folder string, header *multipart.FileHeader) (string, error) {
	if header == nil || header.Filename == "" {
		return "", ErrMissingImage
	}
	if u.MaxSize > 0 && header.Size > u.MaxSize {
		return "", ErrImageTooLarge
	}

	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	// 只读头部取格式，不解码全图
	_, format, err := image.DecodeConfig(f)
	if err != nil {
		return "", ErrInvalidImage
	}
	ext, ok := allowedFormats[strings.ToLower(format)]
	if !ok {
		return "", ErrInvalidImage
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	base := SecureFilename(header.Filename)
	if base == "" {
		base = "image" + ext
	}
	name := fmt.Sprintf("%d_%s", snowflake.GenID(), base)

	if err := u.Storage.Put(ctx, u.key(folder, name), f); err != nil {
		return "", err
	}
	return name, nil
}

func (u *Uploader) Remove(ctx context.Context, folder, name string) error {
	if name == "" {
		return nil
	}
	return u.Storage.Delete(ctx, u.key(folder, name))
}

func (u *Uploader) URL(folder, name string) string {
	if name == "" {
		return ""
	}
	return u.Storage.URL(u.key(folder, name))
}

func (u *Uploader) key(folder, name string) string {
	return strings.Trim(folder, "/") + "/" + name
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SecureFilename 去掉路径和特殊字符，空白转为下划线
func SecureFilename(name string) string {
	name = strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeChars.ReplaceAllString(name, "")
	return strings.TrimLeft(name, "._")
}
