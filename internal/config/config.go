package config

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains the Gemini integration settings.
type LLMConfig struct {
	// GeminiAPIKey is resolved from the secrets file or the environment,
	// never from the CHEF_ prefixed variables.
	GeminiAPIKey string `mapstructure:"-"          validate:"required"`
	ModelName    string `mapstructure:"model_name" validate:"required"`
}
