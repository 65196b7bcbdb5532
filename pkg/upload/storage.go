package upload

import (
	"Blackout/config"
	ossclient "Blackout/pkg/oss"
	"context"
	"fmt"
	"io"
)

// Storage 图片存储后端，key 形如 uploads/123_a.jpg
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

func NewStorage(conf *config.Config) (Storage, error) {
	switch conf.Upload.Driver {
	case config.UploadLocal, "":
		return NewLocalStorage(conf.Upload.Root, "/static"), nil
	case config.UploadOss:
		return NewOssStorage(ossclient.NewClient(conf.Oss), conf.Oss), nil
	default:
		return nil, fmt.Errorf("unsupported upload driver: %s", conf.Upload.Driver)
	}
}
