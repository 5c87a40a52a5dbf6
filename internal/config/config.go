package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"orcamentos_rtv/internal/domain/access"
	"orcamentos_rtv/internal/domain/pricing"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	Dynamo   DynamoConfig
	Auth     AuthConfig
	Access   AccessConfig
	Pricing  PricingConfig
	Features FeatureFlags
	Metadata MetadataConfig
	Redis    RedisConfig
	CORS     CORSConfig
}

// Load reads the whole configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if !c.Auth.Disabled && strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("AUTH_JWT_SECRET is required unless AUTH_DISABLED=true")
	}
	for name, v := range map[string]decimal.Decimal{
		"PRICING_DEFAULT_HONORARIO_PERCENT": c.Pricing.DefaultHonorarioPercent,
		"PRICING_TAX_PERCENT":               c.Pricing.TaxPercent,
		"PRICING_FEE_PERCENT":               c.Pricing.FeePercent,
	} {
		if v.IsNegative() {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	return nil
}

type AppConfig struct {
	Env         string `envconfig:"APP_ENV" default:"dev"`
	Port        int    `envconfig:"APP_PORT" default:"8080"`
	ServiceName string `envconfig:"APP_SERVICE_NAME" default:"orcamentos-rtv"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"json"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

// DynamoConfig keeps the local-friendly defaults used with dynamodb-local.
type DynamoConfig struct {
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	Endpoint        string `envconfig:"DYNAMODB_ENDPOINT"`

	ClientsTable       string `envconfig:"CLIENTS_TABLE" default:"clients"`
	ProductsTable      string `envconfig:"PRODUCTS_TABLE" default:"products"`
	SuppliersTable     string `envconfig:"SUPPLIERS_TABLE" default:"suppliers"`
	BudgetsTable       string `envconfig:"BUDGETS_TABLE" default:"budgets"`
	VersionsTable      string `envconfig:"VERSIONS_TABLE" default:"versions"`
	RightsTable        string `envconfig:"RIGHTS_TABLE" default:"rights"`
	FinanceEventsTable string `envconfig:"FINANCE_EVENTS_TABLE" default:"finance_events"`
}

type AuthConfig struct {
	Disabled       bool     `envconfig:"AUTH_DISABLED" default:"false"`
	JWTSecret      string   `envconfig:"AUTH_JWT_SECRET"`
	JWTIssuer      string   `envconfig:"AUTH_JWT_ISSUER"`
	AllowedDomains []string `envconfig:"AUTH_ALLOWED_DOMAINS" default:"agencia.com.br,agencia.digital"`
	DevEmail       string   `envconfig:"AUTH_DEV_EMAIL" default:"dev@agencia.com.br"`
}

// AccessConfig feeds access.Policy.
//
//	ACCESS_ROLE_CAPABILITIES=rtv=budget:read|budget:write,financeiro=finance:read|finance:edit
//	ACCESS_USER_ROLES=ana@agencia.com.br=admin
//	ACCESS_USER_GRANTS=joao@agencia.com.br=finance:edit
type AccessConfig struct {
	RoleCapabilities ListTable `envconfig:"ACCESS_ROLE_CAPABILITIES"`
	UserRoles        ListTable `envconfig:"ACCESS_USER_ROLES"`
	UserGrants       ListTable `envconfig:"ACCESS_USER_GRANTS"`
	DefaultRole      string    `envconfig:"ACCESS_DEFAULT_ROLE" default:"rtv"`
}

func (a AccessConfig) PolicyConfig() access.Config {
	return access.Config{
		RoleCapabilities: a.RoleCapabilities,
		UserRoles:        a.UserRoles,
		UserGrants:       a.UserGrants,
		DefaultRole:      a.DefaultRole,
	}
}

// ListTable decodes "key=a|b,other=c". Capability names contain ':', which
// rules out envconfig's built-in map syntax.
type ListTable map[string][]string

func (t *ListTable) Decode(value string) error {
	out := ListTable{}
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key, list, ok := strings.Cut(entry, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		if !ok || key == "" {
			return fmt.Errorf("invalid entry %q, want key=value|value", entry)
		}
		var values []string
		for _, v := range strings.Split(list, "|") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
		out[key] = values
	}
	*t = out
	return nil
}

// PricingConfig holds the documented fallbacks used when a client has no
// configured honorário.
type PricingConfig struct {
	DefaultHonorarioPercent decimal.Decimal `envconfig:"PRICING_DEFAULT_HONORARIO_PERCENT" default:"15"`
	TaxPercent              decimal.Decimal `envconfig:"PRICING_TAX_PERCENT" default:"5"`
	FeePercent              decimal.Decimal `envconfig:"PRICING_FEE_PERCENT" default:"2"`
	DisplayIDPrefix         string          `envconfig:"PRICING_DISPLAY_ID_PREFIX" default:"ORC"`
	Locale                  string          `envconfig:"PRICING_LOCALE" default:"pt-BR"`
}

func (p PricingConfig) Defaults() pricing.Defaults {
	return pricing.Defaults{
		Honorario: p.DefaultHonorarioPercent,
		Tax:       p.TaxPercent,
		Fee:       p.FeePercent,
	}
}

// FeatureFlags gate whole modules at startup.
type FeatureFlags struct {
	FinanceModule       bool `envconfig:"FEATURE_FINANCE_MODULE" default:"true"`
	RightsNotifications bool `envconfig:"FEATURE_RIGHTS_NOTIFICATIONS" default:"true"`
	MediaMetadata       bool `envconfig:"FEATURE_MEDIA_METADATA" default:"true"`
}

type MetadataConfig struct {
	Timeout   time.Duration `envconfig:"METADATA_HTTP_TIMEOUT" default:"10s"`
	UserAgent string        `envconfig:"METADATA_USER_AGENT" default:"Mozilla/5.0 (compatible; orcamentos-rtv/1.0)"`
	MaxBytes  int64         `envconfig:"METADATA_MAX_BYTES" default:"2097152"`
}

// RedisConfig is optional: without an address the metadata cache and the
// sweep lock are disabled.
type RedisConfig struct {
	Addr             string        `envconfig:"REDIS_ADDR"`
	Password         string        `envconfig:"REDIS_PASSWORD"`
	DB               int           `envconfig:"REDIS_DB" default:"0"`
	MetadataCacheTTL time.Duration `envconfig:"METADATA_CACHE_TTL" default:"24h"`
	SweepLockTTL     time.Duration `envconfig:"RIGHTS_SWEEP_LOCK_TTL" default:"10m"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.Addr) != ""
}

// CORSConfig lists the browser origins allowed in prod; dev allows any.
type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`
}
