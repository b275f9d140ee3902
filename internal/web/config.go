package web

import "github.com/nycgeo/nycaddr/internal/config"

// Config holds the web server settings.
type Config struct {
	Host      string
	Port      int
	StaticDir string
	Debug     bool
}

// DefaultConfig builds a configuration from the environment.
func DefaultConfig() *Config {
	return &Config{
		Host:      config.GetEnv("NYCADDR_HOST", "0.0.0.0"),
		Port:      config.GetEnvInt("NYCADDR_PORT", 8080),
		StaticDir: config.GetEnv("NYCADDR_STATIC_DIR", "internal/web/static"),
		Debug:     config.GetEnvBool("NYCADDR_DEBUG", false),
	}
}
