package upload

import (
	"context"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var errBadKey = errors.New("upload: invalid object key")

type LocalStorage struct {
	Root      string
	URLPrefix string
}

func NewLocalStorage(root, urlPrefix string) *LocalStorage {
	return &LocalStorage{Root: root, URLPrefix: strings.TrimRight(urlPrefix, "/")}
}

func (s *LocalStorage) Put(ctx context.Context, key string, r io.Reader) error {
	target, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	dst, err := os.Create(target)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, r)
	return err
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	target, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStorage) URL(key string) string {
	return s.URLPrefix + "/" + key
}

func (s *LocalStorage) path(key string) (string, error) {
	// 只拒绝 ".." 路径段，my..photo.png 之类的文件名合法
	for _, seg := range strings.Split(filepath.ToSlash(key), "/") {
		if seg == ".." {
			return "", errBadKey
		}
	}
	clean := path.Clean("/" + key)
	if clean == "/" {
		return "", errBadKey
	}
	return filepath.Join(s.Root, filepath.FromSlash(clean[1:])), nil
}
