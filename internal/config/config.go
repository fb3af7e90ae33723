package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/hugohenrick/whop-relay/pkg/whop"
)

// Chaves de ambiente reconhecidas
const (
	KeyAPIKey         = "WHOP_API_KEY"
	KeyAppID          = "NEXT_PUBLIC_WHOP_APP_ID"
	KeyAppIDAlias     = "WHOP_APP_ID"
	KeyCompanyID      = "WHOP_COMPANY_ID"
	KeyAPIBaseURL     = "WHOP_API_BASE_URL"
	KeyProductURLBase = "WHOP_PRODUCT_URL_BASE"
	KeyPort           = "PORT"
	KeyCORSOrigins    = "RELAY_CORS_ORIGINS"
	KeyJWTSecret      = "RELAY_JWT_SECRET"
	KeyLogLevel       = "LOG_LEVEL"
	KeyRelayURL       = "RELAY_URL"
)

// Valores padrão
const (
	DefaultAPIBaseURL     = whop.DefaultBaseURL
	DefaultProductURLBase = "https://whop.com/product/"
	DefaultPort           = "8080"
	DefaultRelayURL       = "http://localhost:8080"
)

// ConfigError indica que credenciais ou identificadores obrigatórios não foram informados
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuração obrigatória ausente: %s", strings.Join(e.Missing, ", "))
}

// Config é a configuração imutável do processo, construída uma única vez na inicialização
type Config struct {
	APIKey         string
	AppID          string
	CompanyID      string
	APIBaseURL     string
	ProductURLBase string
	Port           string
	CORSOrigins    []string
	JWTSecret      string
	LogLevel       string
	RelayURL       string
}

// SessionAuthEnabled informa se o middleware de sessão do relay deve ser aplicado
func (c *Config) SessionAuthEnabled() bool {
	return c.JWTSecret != ""
}

// WhopCredentials extrai o que os clientes da API do Whop precisam
func (c *Config) WhopCredentials() whop.Credentials {
	return whop.Credentials{
		APIKey:         c.APIKey,
		AppID:          c.AppID,
		CompanyID:      c.CompanyID,
		BaseURL:        c.APIBaseURL,
		ProductURLBase: c.ProductURLBase,
	}
}

// LoadDotEnv carrega o arquivo .env, se existir. Retorna o erro para que o chamador decida se avisa.
func LoadDotEnv(files ...string) error {
	return godotenv.Load(files...)
}

// Load lê a configuração do relay a partir do ambiente.
// Retorna *ConfigError quando a chave da API ou o ID do aplicativo estão ausentes.
func Load() (*Config, error) {
	cfg := read(newViper())

	var missing []string
	if cfg.APIKey == "" {
		missing = append(missing, KeyAPIKey)
	}
	if cfg.AppID == "" {
		missing = append(missing, KeyAppID)
	}
	if len(missing) > 0 {
		return nil, &ConfigError{Missing: missing}
	}

	return cfg, nil
}

// LoadCatalog lê a configuração exigida pelo cliente de catálogo (chave da API e ID da empresa)
func LoadCatalog() (*Config, error) {
	cfg := read(newViper())

	var missing []string
	if cfg.APIKey == "" {
		missing = append(missing, KeyAPIKey)
	}
	if cfg.CompanyID == "" {
		missing = append(missing, KeyCompanyID)
	}
	if len(missing) > 0 {
		return nil, &ConfigError{Missing: missing}
	}

	return cfg, nil
}

// LoadClient lê a configuração do consumidor do relay, que não exige credenciais
func LoadClient() *Config {
	return read(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(KeyAPIBaseURL, DefaultAPIBaseURL)
	v.SetDefault(KeyProductURLBase, DefaultProductURLBase)
	v.SetDefault(KeyPort, DefaultPort)
	v.SetDefault(KeyCORSOrigins, "*")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyRelayURL, DefaultRelayURL)

	return v
}

func read(v *viper.Viper) *Config {
	appID := strings.TrimSpace(v.GetString(KeyAppID))
	if appID == "" {
		appID = strings.TrimSpace(v.GetString(KeyAppIDAlias))
	}

	return &Config{
		APIKey:         strings.TrimSpace(v.GetString(KeyAPIKey)),
		AppID:          appID,
		CompanyID:      strings.TrimSpace(v.GetString(KeyCompanyID)),
		APIBaseURL:     strings.TrimRight(v.GetString(KeyAPIBaseURL), "/"),
		ProductURLBase: v.GetString(KeyProductURLBase),
		Port:           v.GetString(KeyPort),
		CORSOrigins:    splitList(v.GetString(KeyCORSOrigins)),
		JWTSecret:      v.GetString(KeyJWTSecret),
		LogLevel:       v.GetString(KeyLogLevel),
		RelayURL:       strings.TrimRight(v.GetString(KeyRelayURL), "/"),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
