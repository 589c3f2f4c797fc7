package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	PostgresDSN string `env:"POSTGRES_DSN,required,notEmpty"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`

	StartingBalance int64 `env:"STARTING_BALANCE" envDefault:"1000"`
	DefaultTopUp    int64 `env:"DEFAULT_TOPUP" envDefault:"500"`
	ListDefault     int   `env:"LIST_DEFAULT_LIMIT" envDefault:"10"`
	ListMax         int   `env:"LIST_MAX_LIMIT" envDefault:"100"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
