package config

import "time"

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// ExpiresIn 过期时间（秒）
	ExpiresIn  int64  `json:"expires_in" yaml:"expires_in"`
	CookieName string `json:"cookie_name" yaml:"cookie_name"`
}

func (j *Jwt) TTL() time.Duration {
	return time.Duration(j.ExpiresIn) * time.Second
}
