package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App            `json:"app" yaml:"app"`
	Server   *Server         `json:"server" yaml:"server"`
	Database *Database       `json:"database" yaml:"database"`
	Redis    *Redis          `json:"redis" yaml:"redis"`
	Jwt      *Jwt            `json:"jwt" yaml:"jwt"`
	Upload   *Upload         `json:"upload" yaml:"upload"`
	Oss      *OssConfig      `json:"oss" yaml:"oss"`
	Mail     *Mail           `json:"mail" yaml:"mail"`
	RocketMQ *RocketMQConfig `json:"rocketmq" yaml:"rocketmq"`
	Hashids  *Hashids        `json:"hashids" yaml:"hashids"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// New 读取配置文件，失败直接 panic
func New(filename string) *Config {
	conf, err := Load(filename)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load 读取 yaml 配置并叠加 .env / 环境变量中的敏感配置
func Load(filename string) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("解析 %s 错误: %w", filename, err)
	}

	// .env 不存在时忽略
	_ = godotenv.Load()

	conf.withDefaults()
	conf.applyEnv()
	return &conf, nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}

func (c *Config) withDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 5000
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverSqlite
	}
	if c.Database.Driver == DriverSqlite && c.Database.Path == "" && c.Database.Dsn == "" {
		c.Database.Path = c.App.Name + ".db"
	}
	if c.Redis == nil {
		c.Redis = &Redis{Address: "127.0.0.1", Port: 6379}
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Jwt.ExpiresIn == 0 {
		c.Jwt.ExpiresIn = 7 * 24 * 3600
	}
	// 两个应用可能同域不同端口，cookie 不区分端口
	if c.Jwt.CookieName == "" {
		c.Jwt.CookieName = "token"
		if c.App.Name != "" {
			c.Jwt.CookieName = c.App.Name + "_token"
		}
	}
	if c.Upload == nil {
		c.Upload = &Upload{}
	}
	if c.Upload.Driver == "" {
		c.Upload.Driver = UploadLocal
	}
	if c.Upload.Root == "" {
		c.Upload.Root = "static"
	}
	if c.Upload.PostDir == "" {
		c.Upload.PostDir = "uploads"
	}
	if c.Upload.ProfileDir == "" {
		c.Upload.ProfileDir = "profile_pics"
	}
	if c.Upload.MaxSize == 0 {
		c.Upload.MaxSize = 16 << 20
	}
	if c.Oss == nil {
		c.Oss = &OssConfig{}
	}
	if c.Mail == nil {
		c.Mail = &Mail{}
	}
	if c.Mail.Port == 0 {
		c.Mail.Port = 587
	}
	if c.RocketMQ == nil {
		c.RocketMQ = &RocketMQConfig{}
	}
	if c.RocketMQ.InquiryTopic == "" {
		c.RocketMQ.InquiryTopic = "blackout_inquiry"
	}
	if c.Hashids == nil {
		c.Hashids = &Hashids{}
	}
	if c.Hashids.MinLength == 0 {
		c.Hashids.MinLength = 8
	}
}

// applyEnv 环境变量优先于配置文件
func (c *Config) applyEnv() {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Jwt.Secret = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		c.Database.Dsn = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("MAIL_USERNAME"); v != "" {
		c.Mail.Username = v
		if c.Mail.From == "" {
			c.Mail.From = v
		}
	}
	if v := os.Getenv("MAIL_PASSWORD"); v != "" {
		c.Mail.Password = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Http = port
		}
	}
}
