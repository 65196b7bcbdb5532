package config

import "fmt"

const (
	DriverSqlite = "sqlite"
	DriverMySQL  = "mysql"
)

// Database 数据库配置，driver 为 sqlite 时只需要 path
type Database struct {
	Driver   string `json:"driver" yaml:"driver"`
	Path     string `json:"path" yaml:"path"`
	Dsn      string `json:"dsn" yaml:"dsn"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database string `json:"database" yaml:"database"`
	Charset  string `json:"charset" yaml:"charset"`
}

// Source 返回驱动连接串
func (d *Database) Source() string {
	if d.Dsn != "" {
		return d.Dsn
	}
	if d.Driver == DriverMySQL {
		charset := d.Charset
		if charset == "" {
			charset = "utf8mb4"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
			d.Username, d.Password, d.Host, d.Port, d.Database, charset)
	}
	return d.Path
}
