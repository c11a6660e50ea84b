package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	CORS     CORSConfig     `mapstructure:"cors"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings,
// including the bounded connection pool limits.
type DatabaseConfig struct {
	URL                 string `mapstructure:"url"                   validate:"required"`
	MaxOpenConns        int    `mapstructure:"max_open_conns"        validate:"required,gt=0"`
	MaxIdleConns        int    `mapstructure:"max_idle_conns"        validate:"required,gt=0"`
	ConnMaxLifetimeSecs int    `mapstructure:"conn_max_lifetime_secs" validate:"required,gt=0"`
}

// CORSConfig contains the fixed allow-list of origins permitted to make
// cross-origin requests. Requests without an Origin header (e.g.
// server-to-server) are always allowed.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1,dive,required"`
}
