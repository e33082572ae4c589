package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/domain/settings"
	"github.com/spf13/viper"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Metrics       MetricsConfig       `mapstructure:"metrics"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Risk          map[string]any      `mapstructure:"risk"`
	Counter       CounterConfig       `mapstructure:"counter"`
	Upstream      UpstreamConfig      `mapstructure:"upstream"`
	Breaker       BreakerConfig       `mapstructure:"breaker"`
	Exporters     []ExporterConfig    `mapstructure:"exporters"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Maintenance   MaintenanceConfig   `mapstructure:"maintenance"`
}

type ServerConfig struct {
	AdminPort   int    `mapstructure:"admin_port"`
	ProxyPort   int    `mapstructure:"proxy_port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	WorkerPort  int    `mapstructure:"worker_port"`
	SecretKey   string `mapstructure:"secret_key"`
	AdminURL    string `mapstructure:"admin_url"`
	// TrustedProxies lists the addresses or CIDRs allowed to set X-User-ID
	// and the forwarded client address headers.
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type CounterConfig struct {
	// Backend is "database" or "redis".
	Backend string `mapstructure:"backend"`
}

type UpstreamConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	MaxFailures  uint32        `mapstructure:"max_failures"`
	BreakerReset time.Duration `mapstructure:"breaker_reset"`
	QuotaPaths   []string      `mapstructure:"quota_paths"`
}

type BreakerConfig struct {
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxFailures uint32        `mapstructure:"max_failures"`
}

// ExporterConfig names a security-event exporter and its loosely typed
// settings, e.g. {name: kafka, settings: {host, port, topic}}.
type ExporterConfig struct {
	Name     string                 `mapstructure:"name"`
	Settings map[string]interface{} `mapstructure:"settings"`
}

type NotificationsConfig struct {
	Channel string `mapstructure:"channel"`
}

type MaintenanceConfig struct {
	RetentionDays    int           `mapstructure:"retention_days"`
	PurgeInterval    time.Duration `mapstructure:"purge_interval"`
	AnalysisInterval time.Duration `mapstructure:"analysis_interval"`
	AnalysisRequests int64         `mapstructure:"analysis_requests"`
	AnalysisAvgScore float64       `mapstructure:"analysis_avg_score"`
	ExportWorkers    int           `mapstructure:"export_workers"`
}

// RiskSettings decodes the risk section, falling back to defaults per key.
func (c *Config) RiskSettings() (settings.Settings, []string) {
	return settings.Decode(c.Risk)
}

// Load reads config.yaml from configPath (or ./config, .) and overlays the
// environment, e.g. DATABASE_HOST for database.host.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}
	if err := loadConfigFile(viper.New(), configPath, "config", cfg); err != nil {
		return nil, err
	}
	setDefaultValues(cfg)
	return cfg, nil
}

func loadConfigFile(v *viper.Viper, configPath, fileName string, out interface{}) error {
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

// bindEnv registers the keys that must be settable without a config file.
func bindEnv(v *viper.Viper) {
	for _, key := range []string{
		"server.admin_port", "server.proxy_port", "server.metrics_port", "server.worker_port", "server.secret_key",
		"metrics.enabled",
		"database.host", "database.port", "database.user", "database.password", "database.name", "database.sslmode",
		"redis.host", "redis.port", "redis.password", "redis.db", "redis.tls",
		"counter.backend",
		"upstream.base_url", "upstream.timeout",
		"notifications.channel",
	} {
		_ = v.BindEnv(key)
	}
}

func setDefaultValues(cfg *Config) {
	if cfg.Server.AdminPort == 0 {
		cfg.Server.AdminPort = 8080
	}
	if cfg.Server.ProxyPort == 0 {
		cfg.Server.ProxyPort = 8081
	}
	if cfg.Server.WorkerPort == 0 {
		cfg.Server.WorkerPort = 8082
	}
	if cfg.Server.MetricsPort == 0 {
		cfg.Server.MetricsPort = 9090
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Counter.Backend != "redis" {
		cfg.Counter.Backend = "database"
	}
	if cfg.Upstream.Timeout <= 0 {
		cfg.Upstream.Timeout = 30 * time.Second
	}
	if cfg.Upstream.MaxFailures == 0 {
		cfg.Upstream.MaxFailures = 5
	}
	if cfg.Upstream.BreakerReset <= 0 {
		cfg.Upstream.BreakerReset = 30 * time.Second
	}
	if len(cfg.Upstream.QuotaPaths) == 0 {
		cfg.Upstream.QuotaPaths = []string{"/v1/quotes/"}
	}
	if cfg.Breaker.Timeout <= 0 {
		cfg.Breaker.Timeout = 10 * time.Second
	}
	if cfg.Breaker.MaxFailures == 0 {
		cfg.Breaker.MaxFailures = 3
	}
	if cfg.Notifications.Channel == "" {
		cfg.Notifications.Channel = "riskgate:notifications"
	}
	if cfg.Maintenance.RetentionDays <= 0 {
		cfg.Maintenance.RetentionDays = 30
	}
	if cfg.Maintenance.PurgeInterval <= 0 {
		cfg.Maintenance.PurgeInterval = 24 * time.Hour
	}
	if cfg.Maintenance.AnalysisInterval <= 0 {
		cfg.Maintenance.AnalysisInterval = time.Hour
	}
	if cfg.Maintenance.AnalysisRequests <= 0 {
		cfg.Maintenance.AnalysisRequests = 50
	}
	if cfg.Maintenance.AnalysisAvgScore <= 0 {
		cfg.Maintenance.AnalysisAvgScore = 70
	}
	if cfg.Maintenance.ExportWorkers <= 0 {
		cfg.Maintenance.ExportWorkers = 4
	}
}
