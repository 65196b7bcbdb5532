package config

type OssConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	AccessKeySecret string `json:"sk" yaml:"sk"`
	// BaseURL 对外访问域名，为空时使用 bucket.endpoint
	BaseURL string `json:"base_url" yaml:"base_url"`
}

func ProvideOssConfig(cfg *Config) *OssConfig {
	return cfg.Oss
}
