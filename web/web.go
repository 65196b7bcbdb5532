package web

import (
	"Blackout/config"
	"Blackout/models"
	"Blackout/pkg/upload"
	"Blackout/pkg/utils"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"
)

//go:embed social market assets
var files embed.FS

const (
	TimeLayout    = "2006-01-02 15:04"
	defaultAvatar = "/assets/default_profile.svg"
)

// Templates 解析某个应用目录下的全部页面
func Templates(app string, conf *config.Config, uploader *upload.Uploader) (*template.Template, error) {
	funcs := template.FuncMap{
		"fmtTime": func(t time.Time) string {
			return t.Format(TimeLayout)
		},
		"image": func(name string) string {
			return uploader.URL(conf.Upload.PostDir, name)
		},
		"avatar": func(name string) string {
			if name == "" || name == models.DefaultProfilePic {
				return defaultAvatar
			}
			return uploader.URL(conf.Upload.ProfileDir, name)
		},
		"money": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"truncate": utils.Truncate,
	}
	return template.New(app).Funcs(funcs).ParseFS(files, app+"/*.html")
}

func NewSocialTemplates(conf *config.Config, uploader *upload.Uploader) (*template.Template, error) {
	return Templates("social", conf, uploader)
}

func NewMarketTemplates(conf *config.Config, uploader *upload.Uploader) (*template.Template, error) {
	return Templates("market", conf, uploader)
}

// Assets 样式、脚本和默认头像
func Assets() http.FileSystem {
	sub, err := fs.Sub(files, "assets")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
