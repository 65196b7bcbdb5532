package upload

import (
	"Blackout/config"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
)

type OssStorage struct {
	Client  *oss.Client
	Bucket  string
	BaseURL string
}

func NewOssStorage(client *oss.Client, conf *config.OssConfig) *OssStorage {
	base := strings.TrimRight(conf.BaseURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.%s", conf.Bucket, conf.Endpoint)
	}
	return &OssStorage{Client: client, Bucket: conf.Bucket, BaseURL: base}
}

// Put 上传流（HTTP 表单上传）
func (s *OssStorage) Put(ctx context.Context, key string, r io.Reader) error {
	_, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.Bucket),
		Key:    oss.Ptr(key),
		Body:   r,
	})
	return err
}

// Delete 删除对象
func (s *OssStorage) Delete(ctx context.Context, key string) error {
	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.Bucket),
		Key:    oss.Ptr(key),
	})
	return err
}

func (s *OssStorage) URL(key string) string {
	return s.BaseURL + "/" + key
}
