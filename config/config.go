package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ClientNotFound is the sentinel client id recorded when a store name has no
// routing entry. It is stored as-is so misconfigured rows stay auditable.
const ClientNotFound = "clientId Not Found"

type Config struct {
	Server      ServerConfig
	Logger      LoggerConfig
	Postgres    PostgresConfig
	Redis       RedisConfig
	ShipStation ShipStationConfig
	SendGrid    SendGridConfig
	Stripe      StripeConfig
	Routing     RoutingConfig
}

type ServerConfig struct {
	AppEnv          string
	HTTPPort        string
	WebhookTimeout  int // seconds, bounds the two-hop external fetch
	ShutdownTimeout int // seconds
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type ShipStationConfig struct {
	BaseURL   string
	APIKey    string
	APISecret string
}

type SendGridConfig struct {
	APIKey    string
	Endpoint  string
	FromEmail string
	FromName  string
}

type StripeConfig struct {
	PrivateKey string
	BaseURL    string
}

// RoutingConfig maps external sales channels onto internal clients. Clients maps
// exact store names to the client's notification email, which doubles as the
// client id on shipment rows. ExcludedStores are channels whose orders must not
// produce shipments or inventory effects (manual or internally fulfilled).
type RoutingConfig struct {
	Clients        map[string]string
	ExcludedStores []string
	OpsEmail       string
}

// ClientFor resolves a store name to a client id. A miss returns the
// ClientNotFound sentinel, never an empty string.
func (r RoutingConfig) ClientFor(storeName string) string {
	if id, ok := r.Clients[storeName]; ok {
		return id
	}
	return ClientNotFound
}

// IsExcludedStore reports whether orders from the store are skipped entirely.
func (r RoutingConfig) IsExcludedStore(storeName string) bool {
	for _, s := range r.ExcludedStores {
		if s == storeName {
			return true
		}
	}
	return false
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("WEBHOOK_TIMEOUT_SECONDS", 30)
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 15)

	v.SetDefault("LOGGER_LEVEL", "debug")
	v.SetDefault("LOGGER_ENCODING", "console")
	v.SetDefault("LOGGER_DISABLE_CALLER", false)
	v.SetDefault("LOGGER_DISABLE_STACKTRACE", true)

	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_USER", "warehouse")
	v.SetDefault("POSTGRES_PASSWORD", "warehouse")
	v.SetDefault("POSTGRES_DB", "warehouse")
	v.SetDefault("POSTGRES_SSLMODE", "disable")
	v.SetDefault("POSTGRES_MAX_OPEN_CONNS", 10)
	v.SetDefault("POSTGRES_MAX_IDLE_CONNS", 5)
	v.SetDefault("POSTGRES_CONN_MAX_LIFETIME", 300)
	v.SetDefault("POSTGRES_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("SHIPSTATION_BASE_URL", "https://ssapi.shipstation.com")
	v.SetDefault("SENDGRID_ENDPOINT", "https://api.sendgrid.com/v3/mail/send")
	v.SetDefault("SENDGRID_FROM_EMAIL", "storageandfulfillment@hometown-industries.com")
	v.SetDefault("SENDGRID_FROM_NAME", "Inventory Update")
	v.SetDefault("STRIPE_BASE_URL", "https://api.stripe.com")

	v.SetDefault("CLIENT_ROUTING", "{}")
	v.SetDefault("EXCLUDED_STORES", "")
	v.SetDefault("OPS_EMAIL", "storageandfulfillment@hometown-industries.com")

	routing, err := parseRouting(v.GetString("CLIENT_ROUTING"), v.GetString("EXCLUDED_STORES"))
	if err != nil {
		return nil, err
	}
	routing.OpsEmail = v.GetString("OPS_EMAIL")

	cfg := &Config{
		Server: ServerConfig{
			AppEnv:          v.GetString("APP_ENV"),
			HTTPPort:        v.GetString("HTTP_PORT"),
			WebhookTimeout:  v.GetInt("WEBHOOK_TIMEOUT_SECONDS"),
			ShutdownTimeout: v.GetInt("SHUTDOWN_TIMEOUT_SECONDS"),
		},
		Logger: LoggerConfig{
			Level:             v.GetString("LOGGER_LEVEL"),
			Encoding:          v.GetString("LOGGER_ENCODING"),
			DisableCaller:     v.GetBool("LOGGER_DISABLE_CALLER"),
			DisableStacktrace: v.GetBool("LOGGER_DISABLE_STACKTRACE"),
		},
		Postgres: PostgresConfig{
			Host:            v.GetString("POSTGRES_HOST"),
			Port:            v.GetString("POSTGRES_PORT"),
			User:            v.GetString("POSTGRES_USER"),
			Password:        v.GetString("POSTGRES_PASSWORD"),
			DBName:          v.GetString("POSTGRES_DB"),
			SSLMode:         v.GetString("POSTGRES_SSLMODE"),
			MaxOpenConns:    v.GetInt("POSTGRES_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("POSTGRES_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetInt("POSTGRES_CONN_MAX_LIFETIME"),
			ConnMaxIdleTime: v.GetInt("POSTGRES_CONN_MAX_IDLE_TIME"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		ShipStation: ShipStationConfig{
			BaseURL:   v.GetString("SHIPSTATION_BASE_URL"),
			APIKey:    v.GetString("SHIPSTATION_API_KEY"),
			APISecret: v.GetString("SHIPSTATION_SECRET"),
		},
		SendGrid: SendGridConfig{
			APIKey:    v.GetString("SENDGRID_API_KEY"),
			Endpoint:  v.GetString("SENDGRID_ENDPOINT"),
			FromEmail: v.GetString("SENDGRID_FROM_EMAIL"),
			FromName:  v.GetString("SENDGRID_FROM_NAME"),
		},
		Stripe: StripeConfig{
			PrivateKey: v.GetString("STRIPE_PRIVATE_KEY"),
			BaseURL:    v.GetString("STRIPE_BASE_URL"),
		},
		Routing: routing,
	}
	return cfg, nil
}

// parseRouting decodes the CLIENT_ROUTING JSON object and the comma separated
// EXCLUDED_STORES list. Onboarding a new store is a data change here, not a
// code change. Empty keys or values are a startup failure.
func parseRouting(clientsJSON, excluded string) (RoutingConfig, error) {
	clients := map[string]string{}
	if err := json.Unmarshal([]byte(clientsJSON), &clients); err != nil {
		return RoutingConfig{}, fmt.Errorf("CLIENT_ROUTING is not a valid JSON object: %w", err)
	}
	for store, client := range clients {
		if strings.TrimSpace(store) == "" {
			return RoutingConfig{}, fmt.Errorf("CLIENT_ROUTING contains an empty store name")
		}
		if strings.TrimSpace(client) == "" {
			return RoutingConfig{}, fmt.Errorf("CLIENT_ROUTING entry for %q has an empty client id", store)
		}
	}

	var stores []string
	for _, s := range strings.Split(excluded, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		for _, seen := range stores {
			if seen == s {
				return RoutingConfig{}, fmt.Errorf("EXCLUDED_STORES lists %q twice", s)
			}
		}
		stores = append(stores, s)
	}

	return RoutingConfig{Clients: clients, ExcludedStores: stores}, nil
}
