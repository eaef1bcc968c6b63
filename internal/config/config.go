package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DB holds connection parameters for the backing Postgres database.
// The users table is assumed to already exist; no schema is created here.
type DB struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Config is the full process configuration, read from the environment.
type Config struct {
	Port      string // PORT
	LogLevel  string // LOG_LEVEL
	JWTSecret string // JWT_SECRET
	DB        DB     // DB_HOST, DB_PORT, DB_USER, DB_PASS, DB_NAME
}

// Load reads configuration from environment variables, falling back to
// defaults suitable for local development.
func Load() *Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("jwt.secret", "secret123")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "testdb")

	return &Config{
		Port:      v.GetString("port"),
		LogLevel:  v.GetString("log.level"),
		JWTSecret: v.GetString("jwt.secret"),
		DB: DB{
			Host:     v.GetString("db.host"),
			Port:     v.GetString("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.pass"),
			Name:     v.GetString("db.name"),
		},
	}
}

// DSN builds a pgx-compatible connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Password, d.Host, d.Port, d.Name)
}
