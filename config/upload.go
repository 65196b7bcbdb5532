package config

const (
	UploadLocal = "local"
	UploadOss   = "oss"
)

type Upload struct {
	Driver string `json:"driver" yaml:"driver"`
	// Root 本地存储根目录，对外以 /static 暴露
	Root       string `json:"root" yaml:"root"`
	PostDir    string `json:"post_dir" yaml:"post_dir"`
	ProfileDir string `json:"profile_dir" yaml:"profile_dir"`
	MaxSize    int64  `json:"max_size" yaml:"max_size"`
}
