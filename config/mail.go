package config

type Mail struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
	UseTLS   bool   `json:"use_tls" yaml:"use_tls"`
	// AsyncMQ 为 true 时咨询通知投递到 RocketMQ，由 notify-worker 发送
	AsyncMQ bool `json:"async_mq" yaml:"async_mq"`
}
