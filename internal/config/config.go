// Package config loads the configuration from the environment,
// an optional .env file and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"golang.org/x/text/currency"
)

// Config keys. Environment variables are the upper case versions.
const (
	KeyCurrency                = "currency"
	KeyDefaultShippingPercent  = "default_shipping_percent"
	KeyDefaultLogisticsPercent = "default_logistics_percent"
	KeyDefaultAdminPercent     = "default_admin_percent"
	KeyDefaultIndirectPercent  = "default_indirect_percent"
	KeyAllowBackdatedBudget    = "allow_backdated_budget"
	KeyVerifyCascades          = "verify_cascades"
	KeyDataDir                 = "data_dir"
	KeyDBHost                  = "db_host"
	KeyDBPort                  = "db_port"
	KeyDBUser                  = "db_user"
	KeyDBPassword              = "db_password"
	KeyDBName                  = "db_name"
	KeyAPIURL                  = "api_url"
	KeyLogFormat               = "log_format"
	KeyGinMode                 = "gin_mode"
	KeyCorsAllowOrigins        = "cors_allow_origins"
	KeyEnablePprof             = "enable_pprof"
	KeyPort                    = "port"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Settings are the parts of the configuration that change how budgets
// are calculated and validated.
type Settings struct {
	Currency                string          // ISO 4217 code of the only currency in use
	DefaultShippingPercent  decimal.Decimal // Reporting overlay, not part of the totals
	DefaultLogisticsPercent decimal.Decimal // Reporting overlay, not part of the totals
	DefaultAdminPercent     decimal.Decimal // Reporting overlay, not part of the totals
	DefaultIndirectPercent  decimal.Decimal // Reporting overlay, not part of the totals
	AllowBackdatedBudget    bool            // Allow budget lines starting before the current month
	VerifyCascades          bool            // Recompute every touched composite after a cascade and compare
}

// Config is the complete configuration of the backend.
type Config struct {
	Settings

	DataDir          string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	APIURL           *url.URL
	LogFormat        string
	GinMode          string
	CorsAllowOrigins []string
	EnablePprof      bool
	Port             string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Currency:                "USD",
		DefaultShippingPercent:  decimal.NewFromInt(15),
		DefaultLogisticsPercent: decimal.Zero,
		DefaultAdminPercent:     decimal.Zero,
		DefaultIndirectPercent:  decimal.NewFromInt(7),
		AllowBackdatedBudget:    false,
		VerifyCascades:          true,
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultSettings()

	v.SetDefault(KeyCurrency, d.Currency)
	v.SetDefault(KeyDefaultShippingPercent, d.DefaultShippingPercent.String())
	v.SetDefault(KeyDefaultLogisticsPercent, d.DefaultLogisticsPercent.String())
	v.SetDefault(KeyDefaultAdminPercent, d.DefaultAdminPercent.String())
	v.SetDefault(KeyDefaultIndirectPercent, d.DefaultIndirectPercent.String())
	v.SetDefault(KeyAllowBackdatedBudget, d.AllowBackdatedBudget)
	v.SetDefault(KeyVerifyCascades, d.VerifyCascades)
	v.SetDefault(KeyDataDir, "data")
	v.SetDefault(KeyDBPort, "5432")
	v.SetDefault(KeyDBName, "budget")
	v.SetDefault(KeyAPIURL, "http://localhost:8080")
	v.SetDefault(KeyGinMode, "release")
	v.SetDefault(KeyEnablePprof, false)
	v.SetDefault(KeyPort, "8080")
}

// Load reads the configuration.
//
// Precedence is environment, then the YAML file at configFile (if set),
// then the defaults. A .env file in the working directory is loaded into
// the environment first, without overriding variables that are already set.
func Load(configFile string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	settings, err := settingsFromViper(v)
	if err != nil {
		return Config{}, err
	}

	apiURL, err := url.Parse(v.GetString(KeyAPIURL))
	if err != nil || apiURL.Scheme == "" || apiURL.Host == "" {
		return Config{}, fmt.Errorf("%w: %s must be an absolute URL, got '%s'", ErrInvalidConfig, strings.ToUpper(KeyAPIURL), v.GetString(KeyAPIURL))
	}

	return Config{
		Settings:         settings,
		DataDir:          v.GetString(KeyDataDir),
		DBHost:           v.GetString(KeyDBHost),
		DBPort:           v.GetString(KeyDBPort),
		DBUser:           v.GetString(KeyDBUser),
		DBPassword:       v.GetString(KeyDBPassword),
		DBName:           v.GetString(KeyDBName),
		APIURL:           apiURL,
		LogFormat:        v.GetString(KeyLogFormat),
		GinMode:          v.GetString(KeyGinMode),
		CorsAllowOrigins: strings.Fields(v.GetString(KeyCorsAllowOrigins)),
		EnablePprof:      v.GetBool(KeyEnablePprof),
		Port:             v.GetString(KeyPort),
	}, nil
}

func settingsFromViper(v *viper.Viper) (Settings, error) {
	code := strings.ToUpper(strings.TrimSpace(v.GetString(KeyCurrency)))
	if _, err := currency.ParseISO(code); err != nil {
		return Settings{}, fmt.Errorf("%w: '%s' is not an ISO 4217 currency code", ErrInvalidConfig, code)
	}

	s := Settings{
		Currency:             code,
		AllowBackdatedBudget: v.GetBool(KeyAllowBackdatedBudget),
		VerifyCascades:       v.GetBool(KeyVerifyCascades),
	}

	percents := []struct {
		key    string
		target *decimal.Decimal
	}{
		{KeyDefaultShippingPercent, &s.DefaultShippingPercent},
		{KeyDefaultLogisticsPercent, &s.DefaultLogisticsPercent},
		{KeyDefaultAdminPercent, &s.DefaultAdminPercent},
		{KeyDefaultIndirectPercent, &s.DefaultIndirectPercent},
	}

	for _, p := range percents {
		d, err := decimal.NewFromString(v.GetString(p.key))
		if err != nil || d.IsNegative() {
			return Settings{}, fmt.Errorf("%w: %s must be a non-negative number, got '%s'", ErrInvalidConfig, strings.ToUpper(p.key), v.GetString(p.key))
		}
		*p.target = d
	}

	return s, nil
}

// UsePostgres reports whether a PostgreSQL server is configured.
func (c Config) UsePostgres() bool {
	return c.DBHost != ""
}

// PostgresDSN returns the connection string for the PostgreSQL server.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC", c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

// SQLitePath returns the path of the SQLite database file.
func (c Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "budget.db")
}
