package config

type Hashids struct {
	Salt      string `json:"salt" yaml:"salt"`
	MinLength int    `json:"min_length" yaml:"min_length"`
}
