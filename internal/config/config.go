package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port           int    `envconfig:"PORT" default:"8080"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`

	CanvasWidth      int    `envconfig:"CANVAS_WIDTH" default:"1280"`
	CanvasHeight     int    `envconfig:"CANVAS_HEIGHT" default:"720"`
	ExportBackground string `envconfig:"EXPORT_BACKGROUND" default:"#FFFFFF"`
	ExportFilename   string `envconfig:"EXPORT_FILENAME" default:"easypaint"`

	SampleScene bool `envconfig:"SAMPLE_SCENE" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.CanvasWidth <= 0 || cfg.CanvasHeight <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", cfg.CanvasWidth, cfg.CanvasHeight)
	}
	return &cfg, nil
}

// Origins splits AllowedOrigins into trimmed, non-empty entries.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// OriginPatterns strips the scheme from each origin, the form websocket
// origin checks expect ("localhost:5173").
func (c *Config) OriginPatterns() []string {
	origins := c.Origins()
	patterns := make([]string, 0, len(origins))
	for _, o := range origins {
		if _, host, ok := strings.Cut(o, "://"); ok {
			o = host
		}
		patterns = append(patterns, o)
	}
	return patterns
}

// Level parses LogLevel, falling back to info.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
