package main

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	DiscordToken      string        `env:"DISCORD_TOKEN,required=true" validate:"required"`
	BotName           string        `env:"BOT_NAME,default=CaiuPerdeu" validate:"required"`
	PollInterval      time.Duration `env:"POLL_INTERVAL" validate:"gte=0"`
	CooldownTimeMs    *int          `env:"COOLDOWN_TIME_MS" validate:"omitempty,gt=0"`
	FetchRetries      int           `env:"FETCH_RETRIES,default=0" validate:"gte=0,lte=10"`
	FetchBackoff      time.Duration `env:"FETCH_BACKOFF,default=500ms" validate:"gte=0"`
	HistoryLimit      *int          `env:"HISTORY_LIMIT" validate:"omitempty,gt=0"`
	CommandGuildID    string        `env:"COMMAND_GUILD_ID"`
	EventBufferSize   int           `env:"EVENT_BUFFER_SIZE,default=64" validate:"gt=0"`
	SinkTimeout       time.Duration `env:"SINK_TIMEOUT,default=2s" validate:"gt=0"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=2s" validate:"gt=0"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=1m" validate:"gt=0"`
	HealthPort        int           `env:"HEALTH_PORT,default=8080" validate:"gt=0,lte=65535"`
	DebugPort         int           `env:"DEBUG_PORT,default=0" validate:"gte=0,lte=65535"`
}

// Validate checks the struct tags and resolves the poll interval,
// falling back to COOLDOWN_TIME_MS when POLL_INTERVAL is unset.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if c.PollInterval > 0 {
		return nil
	}
	if c.CooldownTimeMs == nil {
		return fmt.Errorf("POLL_INTERVAL or COOLDOWN_TIME_MS must be set")
	}
	c.PollInterval = time.Duration(*c.CooldownTimeMs) * time.Millisecond
	return nil
}
