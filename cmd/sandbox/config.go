package main

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// SANDBOX_COLOURS enables colorized output
	Colours  bool   `envconfig:"SANDBOX_COLOURS" default:"true"`
	BotName  string `envconfig:"SANDBOX_BOT_NAME" default:"CaiuPerdeu"`
	LogLevel string `envconfig:"SANDBOX_LOG_LEVEL" default:"WARN"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
