package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port               int    `mapstructure:"PORT"`
	BodyLimitMB        int64  `mapstructure:"BODY_LIMIT_MB"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// Store de sessão do WhatsApp
	StoreDriver string `mapstructure:"WA_STORE_DRIVER"` // sqlite3, postgres, pgx
	StoreDSN    string `mapstructure:"WA_STORE_DSN"`

	// Opcional: eventos de entrega e comandos via fila
	AMQPURL string `mapstructure:"AMQP_URL"`

	// Opcional: QR Code de pareamento por e-mail
	MailHost           string `mapstructure:"MAIL_HOST"`
	MailPort           int    `mapstructure:"MAIL_PORT"`
	MailUser           string `mapstructure:"MAIL_USER"`
	MailPass           string `mapstructure:"MAIL_PASS"`
	MailFrom           string `mapstructure:"MAIL_FROM"`
	PairingNotifyEmail string `mapstructure:"PAIRING_NOTIFY_EMAIL"`
}

var defaults = map[string]interface{}{
	"PORT":                 3000,
	"BODY_LIMIT_MB":        50,
	"LOG_LEVEL":            "info",
	"CORS_ALLOWED_ORIGINS": "*",
	"WA_STORE_DRIVER":      "sqlite3",
	"WA_STORE_DSN":         "file:whatsapp-session.db?_foreign_keys=on",
	"AMQP_URL":             "",
	"MAIL_HOST":            "",
	"MAIL_PORT":            587,
	"MAIL_USER":            "",
	"MAIL_PASS":            "",
	"MAIL_FROM":            "nao-responda@localhost",
	"PAIRING_NOTIFY_EMAIL": "",
}

// Load reads .env files (when present) into the environment and then the
// environment into Config. Real environment variables win over .env.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// .env é opcional
		_ = godotenv.Load(f)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("erro ao ler configuração: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case "sqlite3", "postgres", "pgx":
	default:
		return fmt.Errorf("WA_STORE_DRIVER inválido: %q", c.StoreDriver)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT inválida: %d", c.Port)
	}
	if c.BodyLimitMB <= 0 {
		return fmt.Errorf("BODY_LIMIT_MB deve ser positivo")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) BodyLimitBytes() int64 {
	return c.BodyLimitMB << 20
}

func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c *Config) MailEnabled() bool {
	return c.MailHost != "" && c.PairingNotifyEmail != ""
}

func (c *Config) QueueEnabled() bool {
	return c.AMQPURL != ""
}
