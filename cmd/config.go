package cmd

import (
	"fmt"
	"log/slog"
	"strings"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   string
	SeedFile   string
}

// WithDefaults fills unset database settings with a local development server.
func (c Config) WithDefaults() Config {
	defaults := map[*string]string{
		&c.DBHost:    "localhost",
		&c.DBPort:    "5432",
		&c.DBUser:    "postgres",
		&c.DBName:    "laundry",
		&c.DBSslMode: "disable",
		&c.LogLevel:  "info",
	}
	for field, value := range defaults {
		if *field == "" {
			*field = value
		}
	}
	return c
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// SlogLevel reads LogLevel; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}
