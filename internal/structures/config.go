package structures

import "time"

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type RepoConfig struct {
	Owner          string `yaml:"owner" validate:"required"`
	Name           string `yaml:"name" validate:"required"`
	Token          string `yaml:"token"`
	WebhookSecret  string `yaml:"webhookSecret"`
	StaleAfterDays int    `yaml:"staleAfterDays" validate:"required|min:1"`
	StaleLabel     string `yaml:"staleLabel" validate:"required"`
}

type ScheduleConfig struct {
	ScanAt  string `yaml:"scanAt" validate:"required"`
	StatsAt string `yaml:"statsAt" validate:"required"`
}

type StorageConfig struct {
	DataDir   string `yaml:"dataDir" validate:"required|unixPath"`
	StaticDir string `yaml:"staticDir" validate:"required|unixPath"`
	Bucket    string `yaml:"bucket"`
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	UseSSL    bool   `yaml:"useSSL"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type ReportingConfig struct {
	DSN string `yaml:"dsn"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	Repo      RepoConfig      `yaml:"repo"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	Storage   StorageConfig   `yaml:"storage"`
	WebServer Server          `yaml:"webServer"`
	Logger    LoggerConfig    `yaml:"logger"`
	Cache     CacheConfig     `yaml:"cache"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Reporting ReportingConfig `yaml:"reporting"`
}

func (c *Config) StaleThreshold() time.Duration {
	return time.Duration(c.Repo.StaleAfterDays) * 24 * time.Hour
}
