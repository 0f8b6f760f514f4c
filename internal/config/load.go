package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// CredentialKey names the Gemini API key in both the secrets file and
	// the process environment.
	CredentialKey = "GEMINI_API_KEY"

	// SecretsDirEnv optionally names an extra directory holding secrets.toml.
	SecretsDirEnv = "CHEF_SECRETS_DIR"

	// DefaultModelName is the Gemini model used when none is configured.
	DefaultModelName = "gemini-2.5-flash"

	// UserMessage is shown to the operator when the credential is missing.
	UserMessage = "Erro de Configuração: Chave de API do Gemini não encontrada. " +
		"Por favor, configure a chave 'GEMINI_API_KEY' nos Streamlit Secrets."

	envPrefix   = "CHEF"
	secretsFile = "secrets.toml"
)

// ErrMissingCredential is returned when the Gemini API key is found in
// neither the secrets file nor the environment.
var ErrMissingCredential = errors.New("gemini api key not configured")

// Load builds the configuration from defaults, CHEF_ environment variables
// and the layered credential lookup, then validates it.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8501)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("llm.model_name", DefaultModelName)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	apiKey, err := resolveCredential()
	if err != nil {
		return nil, err
	}
	cfg.LLM.GeminiAPIKey = apiKey

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// resolveCredential reads CredentialKey from secrets.toml, falling back to
// the environment variable of the same name.
func resolveCredential() (string, error) {
	secret, err := readSecret(CredentialKey)
	if err != nil {
		return "", err
	}
	if secret != "" {
		return secret, nil
	}

	if env := strings.TrimSpace(os.Getenv(CredentialKey)); env != "" {
		return env, nil
	}

	return "", fmt.Errorf("%w: set %s in secrets.toml or the environment", ErrMissingCredential, CredentialKey)
}

// readSecret returns the named value from the first secrets.toml found on
// the search path. Only that exact file name is considered and key lookup is
// case-sensitive. A missing file is not an error; an unreadable one is.
func readSecret(key string) (string, error) {
	path, ok := findSecretsFile()
	if !ok {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read secrets file %s: %w", path, err)
	}

	var secrets map[string]any
	if err := toml.Unmarshal(data, &secrets); err != nil {
		return "", fmt.Errorf("failed to read secrets file %s: %w", path, err)
	}

	raw, ok := secrets[key]
	if !ok {
		return "", nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("failed to read secrets file %s: %s must be a string", path, key)
	}

	return strings.TrimSpace(value), nil
}

// findSecretsFile returns the first regular secrets.toml on the search path.
func findSecretsFile() (string, bool) {
	for _, dir := range secretsDirs() {
		path := filepath.Join(dir, secretsFile)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

func secretsDirs() []string {
	var dirs []string
	if dir := os.Getenv(SecretsDirEnv); dir != "" {
		dirs = append(dirs, dir)
	}
	return append(dirs, ".", ".streamlit")
}
