package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Log     LogConfig     `mapstructure:"log"     validate:"required"`
	Auth    AuthConfig    `mapstructure:"auth"    validate:"required"`
}

// StorageConfig contains the location of the persisted collections.
// The collection file names themselves are fixed.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir" validate:"required"`
}

// LogConfig contains all logging-related configuration settings.
type LogConfig struct {
	Level  string `mapstructure:"level"  validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// AuthConfig contains all authentication and authorization settings.
// JWTSecret may be left empty; commands that issue or check session tokens
// then fail, while everything else keeps working.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"omitempty,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"gt=0"`
	BCryptCost           int    `mapstructure:"bcrypt_cost"            validate:"gte=4,lte=31"`
}
