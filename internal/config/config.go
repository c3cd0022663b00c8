package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	NotifierHTTP = "http"
	NotifierSMTP = "smtp"
)

type Config struct {
	Server       ServerConfig
	Epayco       EpaycoConfig
	Billing      BillingConfig
	Notification NotificationConfig
	RabbitMQ     RabbitMQConfig
	Log          LogConfig
}

type ServerConfig struct {
	Port              string
	AllowedOrigins    []string
	HTTPClientTimeout time.Duration
}

type EpaycoConfig struct {
	PublicKey       string
	PrivateKey      string
	Test            bool
	Language        string
	BaseURL         string
	URLResponse     string
	URLConfirmation string
}

type BillingConfig struct {
	BaseURL string
}

type NotificationConfig struct {
	Driver   string
	URL      string
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

type RabbitMQConfig struct {
	URL string
}

type LogConfig struct {
	Level string
}

// Load lê o .env (se existir) e o ambiente. É chamado uma vez no boot; o
// Config devolvido não muda depois disso.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (*Config, error) {
	test, err := boolEnv("EPAYCO_TEST", true)
	if err != nil {
		return nil, err
	}

	timeout, err := durationEnv("HTTP_CLIENT_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}

	smtpPort, err := intEnv("MAIL_PORT", 587)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:              getEnv("PORT", "5001"),
			AllowedOrigins:    splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
			HTTPClientTimeout: timeout,
		},
		Epayco: EpaycoConfig{
			PublicKey:       os.Getenv("PUBLIC_KEY"),
			PrivateKey:      os.Getenv("PRIVATE_KEY"),
			Test:            test,
			Language:        getEnv("EPAYCO_LANGUAGE", "ES"),
			BaseURL:         getEnv("EPAYCO_URL", "https://api.secure.payco.co"),
			URLResponse:     getEnv("URL_RESPONSE", "https://tudominio.com/respuesta"),
			URLConfirmation: getEnv("URL_CONFIRMATION", "https://tudominio.com/confirmacion"),
		},
		Billing: BillingConfig{
			BaseURL: os.Getenv("MS_NEGOCIO_URL"),
		},
		Notification: NotificationConfig{
			Driver:   strings.ToLower(getEnv("NOTIFIER_DRIVER", NotifierHTTP)),
			URL:      os.Getenv("NOTIFICATION_SERVICE_URL"),
			SMTPHost: os.Getenv("MAIL_HOST"),
			SMTPPort: smtpPort,
			SMTPUser: os.Getenv("MAIL_USER"),
			SMTPPass: os.Getenv("MAIL_PASS"),
			SMTPFrom: getEnv("MAIL_FROM", "no-reply@tuempresa.com"),
		},
		RabbitMQ: RabbitMQConfig{
			URL: os.Getenv("RABBITMQ_URL"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if cfg.Notification.Driver != NotifierHTTP && cfg.Notification.Driver != NotifierSMTP {
		return nil, fmt.Errorf("NOTIFIER_DRIVER inválido %q: use %s ou %s", cfg.Notification.Driver, NotifierHTTP, NotifierSMTP)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func boolEnv(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s inválido: %w", key, err)
	}
	return b, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s inválido: %w", key, err)
	}
	return n, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s inválido: %w", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
